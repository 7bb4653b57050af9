package admin

import (
	"net/http"

	"rosea_server/lib"
	"rosea_server/services"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// HandleAdminLogin exchanges the configured admin credentials for an
// admin-role session cookie pair. The admin has no directory entry; the
// token subject is a throwaway id.
func (arm *AdminRoutesManager) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AdminLoginRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract admin login body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage(msgInvalidAdminCredentials), gecho.Send())
		return
	}

	if !arm.authService.LoginAdmin(body.Username, body.Password) {
		arm.logger.Warn("Admin login failed", gecho.Field("username", body.Username))
		gecho.Unauthorized(w, gecho.WithMessage(msgInvalidAdminCredentials), gecho.Send())
		return
	}

	sub := uuid.New()
	accessToken, err := arm.authService.GenerateAccessToken(sub, body.Username, services.RoleAdmin)
	if err != nil {
		arm.logger.Error("Failed to generate admin access token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.auth.loginFailed"), gecho.Send())
		return
	}

	refreshToken, err := arm.authService.GenerateRefreshToken(sub, body.Username, services.RoleAdmin)
	if err != nil {
		arm.logger.Error("Failed to generate admin refresh token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.auth.loginFailed"), gecho.Send())
		return
	}

	lib.SetCookie(lib.RefreshCookieName, refreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, accessToken, arm.authService.GetAccessTokenExpiration(), w)

	gecho.Success(w,
		gecho.WithMessage("success.auth.loggedIn"),
		gecho.WithData(map[string]any{"role": services.RoleAdmin, "username": body.Username}),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleAdminLogout(w http.ResponseWriter, r *http.Request) {
	lib.ClearCookie(lib.AccessCookieName, w)
	lib.ClearCookie(lib.RefreshCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("success.auth.loggedOut"),
		gecho.Send(),
	)
}
