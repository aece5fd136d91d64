package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"guestbook/models"
	"guestbook/monitoring"
	"guestbook/repositories"
)

const maxNameLength = 50

// Index renders the message list, most recent first.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageRepo.Latest()
	if err != nil {
		logrus.Errorf("listing messages: %v", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	_, loggedIn := h.sessions.CurrentUserID(r)
	h.render(w, http.StatusOK, "index.html", indexData{
		Title:    "Messages",
		Messages: messages,
		LoggedIn: loggedIn,
	})
}

// PostMessage creates a message from the posted form. A missing name or
// body skips the insert without complaint and redirects back to the list.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("user_name")
	text := r.FormValue("content")

	if name != "" && text != "" && len(name) <= maxNameLength {
		message := models.Message{AuthorName: name, Body: text}
		if err := h.messageRepo.Create(&message); err != nil {
			logrus.Errorf("creating message: %v", err)
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}
		monitoring.MessagesPosted.Inc()
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// DeleteMessage removes the message named in the path. The session must
// resolve to a real user; an unknown id gets a 404 page rather than a
// crash or a bare text blob.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.renderNotFound(w, r)
		return
	}

	if err := h.messageRepo.Delete(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.renderNotFound(w, r)
			return
		}
		logrus.Errorf("deleting message %d: %v", id, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	monitoring.MessagesDeleted.Inc()
	logrus.WithFields(logrus.Fields{"user": user.Username, "message_id": id}).Info("message deleted")
	http.Redirect(w, r, "/", http.StatusFound)
}

// About renders the static about page.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	_, loggedIn := h.sessions.CurrentUserID(r)
	h.render(w, http.StatusOK, "about.html", aboutData{Title: "About", LoggedIn: loggedIn})
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	_, loggedIn := h.sessions.CurrentUserID(r)
	h.render(w, http.StatusNotFound, "notfound.html", notFoundData{Title: "Not found", LoggedIn: loggedIn})
}
