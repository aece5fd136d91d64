package handlers

import (
	"net/http"

	"guestbook/models"
	"guestbook/repositories"
	"guestbook/security"
	"guestbook/sessions"
)

// Handler carries the collaborators every route needs. It is constructed
// once in main; nothing here is package-level state.
type Handler struct {
	userRepo    repositories.UserRepository
	messageRepo repositories.MessageRepository
	hasher      security.PasswordHasher
	sessions    *sessions.Manager
}

func NewHandler(userRepo repositories.UserRepository, messageRepo repositories.MessageRepository, hasher security.PasswordHasher, sessionManager *sessions.Manager) *Handler {
	return &Handler{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		hasher:      hasher,
		sessions:    sessionManager,
	}
}

// currentUser resolves the request's session back to its User row. A
// session whose user id no longer resolves counts as anonymous.
func (h *Handler) currentUser(r *http.Request) (*models.User, bool) {
	id, ok := h.sessions.CurrentUserID(r)
	if !ok {
		return nil, false
	}
	user, err := h.userRepo.FindByID(id)
	if err != nil {
		return nil, false
	}
	return user, true
}
