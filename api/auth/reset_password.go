package auth

import (
	"net/http"
	"rosea_server/handling"
	"rosea_server/lib"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleResetPassword always reports success so the endpoint cannot be
// used to probe which addresses have an account. The mail itself is sent
// in the background, and only when the address is actually known.
func (arm *AuthRoutesManager) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ResetPasswordRequest](r)
	if err != nil {
		handling.HandleError(w, err)
		return
	}

	if user, ok := arm.authService.HasUser(r.Context(), body.Email); ok {
		go func(user *structs.User) {
			if err := arm.emailService.SendPasswordResetEmail(user); err != nil {
				arm.logger.Error("Failed to send reset email", gecho.Field("error", err.Error()))
			}
		}(user)
	}

	gecho.Success(w,
		gecho.WithMessage(msgResetRequested),
		gecho.Send(),
	)
}
