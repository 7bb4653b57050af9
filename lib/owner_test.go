package lib

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCartOwnerMintsAnonymousToken(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/cart", nil)

	owner, userId := ResolveCartOwner(w, r, "secret")
	assert.NotEmpty(t, owner)
	assert.Nil(t, userId)

	// The minted token comes back as a cookie for the next request.
	cookies := w.Result().Cookies()
	var cartCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == CartCookieName {
			cartCookie = c
		}
	}
	require.NotNil(t, cartCookie)
	assert.Equal(t, owner, cartCookie.Value)
}

func TestResolveCartOwnerReusesExistingToken(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/cart", nil)
	r.AddCookie(&http.Cookie{Name: CartCookieName, Value: "existing-token"})

	owner, userId := ResolveCartOwner(w, r, "secret")
	assert.Equal(t, "existing-token", owner)
	assert.Nil(t, userId)

	// No new cookie is minted when one already exists.
	assert.Empty(t, w.Result().Cookies())
}
