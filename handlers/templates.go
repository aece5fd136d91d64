package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"

	"guestbook/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template data types
type indexData struct {
	Title    string
	Messages []models.Message
	LoggedIn bool
}

type aboutData struct {
	Title    string
	LoggedIn bool
}

type formData struct {
	Title    string
	Error    string
	Username string
	LoggedIn bool
}

type notFoundData struct {
	Title    string
	LoggedIn bool
}

// render writes the given page with the given status code. Pages fill the
// "content" block of base.html.
func (h *Handler) render(w http.ResponseWriter, status int, page string, data interface{}) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/"+page))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		logrus.Errorf("rendering %s: %v", page, err)
	}
}
