package auth

import (
	"net/http"
	"rosea_server/lib"
	"rosea_server/services"

	"github.com/MonkyMars/gecho"
)

// HandleMe reconstructs the current-session user view from the access
// cookie. Admin sessions have no directory entry; they get the claims back.
func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, err := lib.ExtractClaims(r, arm.authService.GetAccessTokenSecret())
	if err != nil {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.notSignedIn"), gecho.Send())
		return
	}

	if claims.Role == services.RoleAdmin {
		gecho.Success(w,
			gecho.WithData(map[string]any{"role": claims.Role, "username": claims.Email}),
			gecho.Send(),
		)
		return
	}

	user, err := arm.authService.UserByID(r.Context(), claims.Sub)
	if err != nil {
		arm.logger.Warn("Session for unknown user", gecho.Field("user_id", claims.Sub))
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.notSignedIn"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}
