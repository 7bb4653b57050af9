package auth

import (
	"net/http"
	"rosea_server/lib"

	"github.com/MonkyMars/gecho"
)

// HandleLogout clears the session cookies. There is no server-side session
// record to destroy; the session was the cookie pair.
func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	lib.ClearCookie(lib.AccessCookieName, w)
	lib.ClearCookie(lib.RefreshCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("success.auth.loggedOut"),
		gecho.Send(),
	)
}
