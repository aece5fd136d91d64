package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedInRequest(t *testing.T, m *Manager, userID uint) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	require.NoError(t, m.SignIn(rec, req, userID))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "SignIn must set the session cookie")

	next := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		next.AddCookie(c)
	}
	return next
}

func TestAnonymousByDefault(t *testing.T) {
	m := NewManager("development-key")

	_, ok := m.CurrentUserID(httptest.NewRequest("GET", "/", nil))
	assert.False(t, ok)
}

func TestSignInRoundTrip(t *testing.T) {
	m := NewManager("development-key")

	req := signedInRequest(t, m, 7)
	userID, ok := m.CurrentUserID(req)
	assert.True(t, ok)
	assert.Equal(t, uint(7), userID)
}

func TestTamperedCookieIsAnonymous(t *testing.T) {
	m := NewManager("development-key")

	req := signedInRequest(t, m, 7)
	cookie, err := req.Cookie(CookieName)
	require.NoError(t, err)

	tampered := httptest.NewRequest("GET", "/", nil)
	tampered.AddCookie(&http.Cookie{Name: CookieName, Value: cookie.Value + "x"})

	_, ok := m.CurrentUserID(tampered)
	assert.False(t, ok)
}

func TestCookieFromOtherSecretIsAnonymous(t *testing.T) {
	issuer := NewManager("one-secret")
	verifier := NewManager("another-secret")

	req := signedInRequest(t, issuer, 7)
	_, ok := verifier.CurrentUserID(req)
	assert.False(t, ok)
}

func TestSignOut(t *testing.T) {
	m := NewManager("development-key")

	req := signedInRequest(t, m, 7)
	rec := httptest.NewRecorder()
	require.NoError(t, m.SignOut(rec, req))

	// The response must clear the cookie client-side.
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "SignOut must expire the session cookie")

	// Signing out twice is fine.
	require.NoError(t, m.SignOut(httptest.NewRecorder(), httptest.NewRequest("GET", "/logout", nil)))
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	m := NewManager("development-key")

	var called bool
	protected := m.RequireAuth(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	protected(rec, httptest.NewRequest("POST", "/delete/1", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	m := NewManager("development-key")

	var called bool
	protected := m.RequireAuth(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	protected(rec, signedInRequest(t, m, 7))
	assert.True(t, called)
}
