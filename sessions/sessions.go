package sessions

import (
	"net/http"

	gsessions "github.com/gorilla/sessions"
)

const (
	// CookieName is the name of the signed session cookie.
	CookieName = "session-cookie"

	userIDKey = "user_id"
)

// Manager tracks the authenticated principal through a signed client-side
// cookie. Nothing is stored server-side; a cookie whose signature does not
// verify against the server secret decodes to an anonymous session.
type Manager struct {
	store *gsessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := gsessions.NewCookieStore([]byte(secret))
	store.Options = &gsessions.Options{
		Path:     "/",
		HttpOnly: true,
	}
	return &Manager{store: store}
}

// SignIn binds the session to the given user id.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, userID uint) error {
	session, _ := m.store.Get(r, CookieName)
	session.Values[userIDKey] = userID
	return session.Save(r, w)
}

// SignOut destroys the current session. Calling it without a session is a
// no-op.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, CookieName)
	delete(session.Values, userIDKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// CurrentUserID resolves the request's session to a user id. The second
// return value is false for anonymous requests, including those carrying a
// tampered or expired cookie.
func (m *Manager) CurrentUserID(r *http.Request) (uint, bool) {
	// Get swallows decode errors and hands back a fresh session, which is
	// exactly the anonymous fallback we want for bad cookies.
	session, _ := m.store.Get(r, CookieName)
	userID, ok := session.Values[userIDKey].(uint)
	return userID, ok
}

// RequireAuth gates a handler behind a valid session. Anonymous requests
// are redirected to the login page.
func (m *Manager) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.CurrentUserID(r); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r)
	}
}
