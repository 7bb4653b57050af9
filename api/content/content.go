package content

import (
	"net/http"

	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
)

func (crm *ContentRoutesManager) FetchSiteContent(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(crm.catalogService.SiteContent(r.Context())),
		gecho.Send(),
	)
}

// FetchBranding returns the hero image and logo. The hero image always has
// a value; the logo may be empty, meaning the storefront shows its text
// fallback.
func (crm *ContentRoutesManager) FetchBranding(w http.ResponseWriter, r *http.Request) {
	hero := crm.catalogService.HeroImage(r.Context())
	if hero == "" {
		hero = structs.DefaultHeroImage
	}

	gecho.Success(w,
		gecho.WithData(map[string]string{
			"hero_image": hero,
			"logo":       crm.catalogService.Logo(r.Context()),
		}),
		gecho.Send(),
	)
}

func (crm *ContentRoutesManager) FetchGovernorates(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(structs.Governorates()),
		gecho.Send(),
	)
}
