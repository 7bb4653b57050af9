package auth

import (
	"net/http"
	"rosea_server/lib"
	"rosea_server/services"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AuthRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage(msgInvalidCredentials), gecho.Send())
		return
	}

	user, err := arm.authService.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		// Same message for unknown email and wrong password.
		arm.logger.Warn("Login failed", gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage(msgInvalidCredentials), gecho.Send())
		return
	}

	if err := arm.issueSession(w, user); err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("error.auth.loginFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.auth.loggedIn"),
		gecho.WithData(user),
		gecho.Send(),
	)
}

// issueSession sets the access/refresh cookie pair for a signed-in user.
func (arm *AuthRoutesManager) issueSession(w http.ResponseWriter, user *structs.User) error {
	accessToken, err := arm.authService.GenerateAccessToken(user.Id, user.Email, services.RoleUser)
	if err != nil {
		arm.logger.Error("Failed to generate access token", gecho.Field("error", err))
		return err
	}

	refreshToken, err := arm.authService.GenerateRefreshToken(user.Id, user.Email, services.RoleUser)
	if err != nil {
		arm.logger.Error("Failed to generate refresh token", gecho.Field("error", err))
		return err
	}

	lib.SetCookie(lib.RefreshCookieName, refreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, accessToken, arm.authService.GetAccessTokenExpiration(), w)
	return nil
}
