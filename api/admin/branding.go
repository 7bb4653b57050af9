package admin

import (
	"net/http"

	"rosea_server/handling"
	"rosea_server/lib"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AdminRoutesManager) UpdateHeroImage(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.BrandingRequest](r)
	if err != nil {
		handling.HandleError(w, err)
		return
	}

	arm.catalogService.UpdateHeroImage(r.Context(), body.URL)

	gecho.Success(w,
		gecho.WithData(map[string]string{"hero_image": arm.catalogService.HeroImage(r.Context())}),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdateLogo(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.BrandingRequest](r)
	if err != nil {
		handling.HandleError(w, err)
		return
	}

	arm.catalogService.UpdateLogo(r.Context(), body.URL)

	gecho.Success(w,
		gecho.WithData(map[string]string{"logo": arm.catalogService.Logo(r.Context())}),
		gecho.Send(),
	)
}
