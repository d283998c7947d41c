package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"

	"warbler/repositories"
)

const (
	sessionName    = "warbler_session"
	currentUserKey = "curr_user"
)

// Handler owns the three stores and the session store, and maps HTTP
// requests onto them.
type Handler struct {
	users    repositories.UserRepository
	follows  repositories.FollowRepository
	messages repositories.MessageRepository
	store    *sessions.CookieStore
}

func New(users repositories.UserRepository, follows repositories.FollowRepository,
	messages repositories.MessageRepository, store *sessions.CookieStore) *Handler {
	return &Handler{users: users, follows: follows, messages: messages, store: store}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// currentUserID reads the logged-in user id from the session cookie.
func (h *Handler) currentUserID(r *http.Request) (uint, bool) {
	session, err := h.store.Get(r, sessionName)
	if err != nil {
		return 0, false
	}
	raw, ok := session.Values[currentUserKey]
	if !ok {
		return 0, false
	}
	id, ok := raw.(uint)
	return id, ok
}

func (h *Handler) setCurrentUser(w http.ResponseWriter, r *http.Request, id uint) error {
	session, _ := h.store.Get(r, sessionName)
	session.Values[currentUserKey] = id
	return session.Save(r, w)
}

func (h *Handler) clearCurrentUser(w http.ResponseWriter, r *http.Request) error {
	session, _ := h.store.Get(r, sessionName)
	delete(session.Values, currentUserKey)
	return session.Save(r, w)
}

// requireUser resolves the current user or answers 401. Anonymous callers
// never reach the stores.
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, ok := h.currentUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"status":    http.StatusUnauthorized,
			"error_msg": "Access unauthorized.",
		})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

// writeError maps store errors onto HTTP statuses: validation 400,
// authorization 403, not found 404, conflict 409, anything else 500.
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErr    *repositories.ValidationError
		authorizationErr *repositories.AuthorizationError
		conflictErr      *repositories.ConflictError
		notFoundErr      *repositories.NotFoundError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.As(err, &authorizationErr):
		status = http.StatusForbidden
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	case errors.As(err, &conflictErr):
		status = http.StatusConflict
	default:
		logrus.WithError(err).Error("Unhandled store error")
		writeJSON(w, status, map[string]interface{}{
			"status":    status,
			"error_msg": "An error occurred.",
		})
		return
	}

	writeJSON(w, status, map[string]interface{}{
		"status":    status,
		"error_msg": err.Error(),
	})
}
