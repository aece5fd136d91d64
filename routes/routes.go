package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"guestbook/handlers"
	"guestbook/monitoring"
	"guestbook/sessions"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(h *handlers.Handler, sessionManager *sessions.Manager) http.Handler {
	router := mux.NewRouter()

	// Message routes
	router.HandleFunc("/", h.Index).Methods("GET")
	router.HandleFunc("/post_message", h.PostMessage).Methods("POST")
	router.HandleFunc("/delete/{id}", sessionManager.RequireAuth(h.DeleteMessage)).Methods("POST")
	router.HandleFunc("/about", h.About).Methods("GET")

	// User routes
	router.HandleFunc("/register", h.Register).Methods("GET", "POST")
	router.HandleFunc("/login", h.Login).Methods("GET", "POST")
	router.HandleFunc("/logout", sessionManager.RequireAuth(h.Logout)).Methods("GET")

	// Add metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return monitoring.InstrumentHandler(router)
}
