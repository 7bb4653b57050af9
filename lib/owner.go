package lib

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ResolveCartOwner determines whose cart a request touches. A signed-in
// user owns their cart by user id; everyone else gets an anonymous cart
// token cookie, minted on first use. Returns the owner key and, when signed
// in, the user id for order linking.
func ResolveCartOwner(w http.ResponseWriter, r *http.Request, accessSecret string) (string, *uuid.UUID) {
	if claims, err := ExtractClaims(r, accessSecret); err == nil {
		sub := claims.Sub
		return sub.String(), &sub
	}

	if token, err := GetCookieValue(CartCookieName, r); err == nil && token != "" {
		return token, nil
	}

	token := uuid.New().String()
	SetCookie(CartCookieName, token, time.Now().Add(30*24*time.Hour), w)
	return token, nil
}
