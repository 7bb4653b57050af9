package admin

import (
	"net/http"

	"rosea_server/handling"
	"rosea_server/lib"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
)

// UpdateSiteContent replaces the whole content record, FAQ included.
func (arm *AdminRoutesManager) UpdateSiteContent(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.SiteContent](r)
	if err != nil {
		handling.HandleError(w, err)
		return
	}

	arm.catalogService.UpdateSiteContent(r.Context(), *body)

	gecho.Success(w,
		gecho.WithData(arm.catalogService.SiteContent(r.Context())),
		gecho.Send(),
	)
}
