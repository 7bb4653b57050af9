package admin

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ResetData wipes every persisted storefront record. Defaults come back
// lazily on the next read.
func (arm *AdminRoutesManager) ResetData(w http.ResponseWriter, r *http.Request) {
	arm.catalogService.ResetData(r.Context())
	arm.logger.Warn("Store data reset by admin")

	gecho.Success(w,
		gecho.WithMessage(msgDataReset),
		gecho.Send(),
	)
}
