package handlers

import (
	"encoding/json"
	"net/http"

	"warbler/monitoring"
)

const timelineLimit = 100

type messageRequest struct {
	Text string `json:"text"`
}

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"status":    http.StatusBadRequest,
			"error_msg": "Invalid request body",
		})
		return
	}

	msg, err := h.messages.Post(userID, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	monitoring.MessagesPosted.Inc()
	writeJSON(w, http.StatusCreated, msg)
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	msg, err := h.messages.ByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.messages.Delete(id, userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleLike likes the message, or unlikes it when already liked.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	liked, err := h.messages.ToggleLike(userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	action := "unlike"
	if liked {
		action = "like"
	}
	monitoring.LikesToggled.WithLabelValues(action).Inc()
	writeJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}

// RecentMessages lists the newest messages across all users. Open to
// anonymous callers.
func (h *Handler) RecentMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messages.Recent(timelineLimit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// HomeTimeline shows the logged-in user's own messages plus those of the
// users they follow, newest first.
func (h *Handler) HomeTimeline(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	messages, err := h.messages.Timeline(userID, timelineLimit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) UserMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := h.users.ByID(id); err != nil {
		writeError(w, err)
		return
	}

	messages, err := h.messages.ByAuthor(id, timelineLimit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) UserLikes(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	messages, err := h.messages.LikedBy(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
