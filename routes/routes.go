package routes

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"warbler/handlers"
	"warbler/monitoring"
)

// New builds the router mapping the HTTP surface onto the stores.
func New(h *handlers.Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(monitoring.InstrumentHandler)
	r.Use(handlers.RequestLogger)

	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", h.Health).Methods("GET")

	r.HandleFunc("/", h.HomeTimeline).Methods("GET")
	r.HandleFunc("/signup", h.Signup).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/logout", h.Logout).Methods("GET")

	r.HandleFunc("/users", h.ListUsers).Methods("GET")
	r.HandleFunc("/users/profile", h.UpdateProfile).Methods("POST")
	r.HandleFunc("/users/delete", h.DeleteAccount).Methods("POST")
	r.HandleFunc("/users/follow/{id:[0-9]+}", h.FollowUser).Methods("POST")
	r.HandleFunc("/users/stop-following/{id:[0-9]+}", h.StopFollowingUser).Methods("POST")
	r.HandleFunc("/users/{id:[0-9]+}", h.GetUser).Methods("GET")
	r.HandleFunc("/users/{id:[0-9]+}/following", h.Following).Methods("GET")
	r.HandleFunc("/users/{id:[0-9]+}/followers", h.Followers).Methods("GET")
	r.HandleFunc("/users/{id:[0-9]+}/messages", h.UserMessages).Methods("GET")
	r.HandleFunc("/users/{id:[0-9]+}/likes", h.UserLikes).Methods("GET")

	r.HandleFunc("/messages", h.RecentMessages).Methods("GET")
	r.HandleFunc("/messages/new", h.PostMessage).Methods("POST")
	r.HandleFunc("/messages/{id:[0-9]+}", h.GetMessage).Methods("GET")
	r.HandleFunc("/messages/{id:[0-9]+}/delete", h.DeleteMessage).Methods("POST")
	r.HandleFunc("/messages/{id:[0-9]+}/like", h.ToggleLike).Methods("POST")

	return r
}
