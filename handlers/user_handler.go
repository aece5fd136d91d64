package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"guestbook/models"
	"guestbook/monitoring"
	"guestbook/repositories"
)

// One message for unknown username and wrong password alike, so the form
// cannot be used to probe which usernames exist.
const badCredentialsMessage = "Invalid username or password"

// Register shows the registration form on GET and creates the account on
// POST. Duplicates and bad input re-show the form with a message.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, http.StatusOK, "register.html", formData{Title: "Register"})
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if msg := validateCredentials(username, password); msg != "" {
		h.render(w, http.StatusBadRequest, "register.html", formData{Title: "Register", Error: msg, Username: username})
		return
	}

	// Pre-check gives a friendly message; the unique index on username is
	// what actually holds under concurrent registrations.
	exists, err := h.userRepo.Exists(username)
	if err != nil {
		logrus.Errorf("checking username %q: %v", username, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if exists {
		h.render(w, http.StatusBadRequest, "register.html", formData{Title: "Register", Error: "The username is already taken", Username: username})
		return
	}

	hash, err := h.hasher.Hash(password)
	if err != nil {
		logrus.Errorf("hashing password: %v", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	user := models.User{Username: username, PasswordHash: hash}
	if err := h.userRepo.Create(&user); err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			h.render(w, http.StatusBadRequest, "register.html", formData{Title: "Register", Error: "The username is already taken", Username: username})
			return
		}
		logrus.Errorf("creating user %q: %v", username, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	monitoring.RegisterSuccess.Inc()
	http.Redirect(w, r, "/login", http.StatusFound)
}

// Login shows the login form on GET and authenticates on POST.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, http.StatusOK, "login.html", formData{Title: "Login"})
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if msg := validateCredentials(username, password); msg != "" {
		h.render(w, http.StatusBadRequest, "login.html", formData{Title: "Login", Error: msg, Username: username})
		return
	}

	user, err := h.userRepo.FindByUsername(username)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		logrus.Errorf("looking up user %q: %v", username, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if err != nil {
		monitoring.LoginFailure.WithLabelValues("unknown_user").Inc()
		h.render(w, http.StatusUnauthorized, "login.html", formData{Title: "Login", Error: badCredentialsMessage, Username: username})
		return
	}

	if !h.hasher.Verify(password, user.PasswordHash) {
		monitoring.LoginFailure.WithLabelValues("wrong_password").Inc()
		h.render(w, http.StatusUnauthorized, "login.html", formData{Title: "Login", Error: badCredentialsMessage, Username: username})
		return
	}

	if err := h.sessions.SignIn(w, r, user.ID); err != nil {
		logrus.Errorf("establishing session for %q: %v", username, err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	monitoring.LoginSuccess.Inc()
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout destroys the session. Routing guarantees an authenticated session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		logrus.Errorf("destroying session: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func validateCredentials(username, password string) string {
	switch {
	case username == "":
		return "You have to enter a username"
	case len(username) > maxNameLength:
		return "The username is too long"
	case password == "":
		return "You have to enter a password"
	}
	return ""
}
