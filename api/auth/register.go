package auth

import (
	"errors"
	"net/http"
	"rosea_server/lib"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract and validate request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.auth.checkRegistrationInformation"), gecho.WithData(err), gecho.Send())
		return
	}

	user, err := arm.authService.Register(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		if errors.Is(err, lib.ErrDuplicateEmail) {
			gecho.Conflict(w, gecho.WithMessage(msgDuplicateEmail), gecho.Send())
			return
		}

		gecho.InternalServerError(w, gecho.WithMessage("error.auth.registrationFailed"), gecho.Send())
		return
	}

	// Auto-login the new user.
	if err := arm.issueSession(w, user); err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("error.auth.loginFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.auth.userRegistered"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
