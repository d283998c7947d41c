package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"warbler/monitoring"
)

// pathID parses the {id} route variable, answering 404 when it is not a
// valid identifier.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"status":    http.StatusNotFound,
			"error_msg": "Not found",
		})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) FollowUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	targetID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.follows.Follow(userID, targetID); err != nil {
		writeError(w, err)
		return
	}
	monitoring.FollowsCreated.Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) StopFollowingUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	targetID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.follows.Unfollow(userID, targetID); err != nil {
		writeError(w, err)
		return
	}
	monitoring.FollowsRemoved.Inc()
	w.WriteHeader(http.StatusNoContent)
}

// Following lists who the given user follows. Visible to logged-in users
// only.
func (h *Handler) Following(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	users, err := h.follows.FollowingOf(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) Followers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	users, err := h.follows.FollowersOf(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
