package handlers

import (
	"encoding/json"
	"net/http"

	"warbler/monitoring"
	"warbler/repositories"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ImageURL string `json:"image_url"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"status":    http.StatusBadRequest,
			"error_msg": "Invalid request body",
		})
		return
	}

	user, err := h.users.Signup(req.Username, req.Email, req.Password, req.ImageURL)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.setCurrentUser(w, r, user.ID); err != nil {
		writeError(w, err)
		return
	}

	monitoring.SignupSuccess.Inc()
	writeJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"status":    http.StatusBadRequest,
			"error_msg": "Invalid request body",
		})
		return
	}

	user, err := h.users.Authenticate(req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		monitoring.LoginFailure.WithLabelValues("bad_credentials").Inc()
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"status":    http.StatusUnauthorized,
			"error_msg": "Invalid credentials",
		})
		return
	}
	if err := h.setCurrentUser(w, r, user.ID); err != nil {
		writeError(w, err)
		return
	}

	monitoring.LoginSuccess.Inc()
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.clearCurrentUser(w, r); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "You have been logged out"})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.Search(r.URL.Query().Get("q"), 50)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	user, err := h.users.ByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type profileRequest struct {
	Username       *string `json:"username"`
	Email          *string `json:"email"`
	ImageURL       *string `json:"image_url"`
	HeaderImageURL *string `json:"header_image_url"`
	Bio            *string `json:"bio"`
	Location       *string `json:"location"`
	Password       string  `json:"password"`
}

// UpdateProfile edits the logged-in user's profile. The current password
// must be confirmed in the request.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"status":    http.StatusBadRequest,
			"error_msg": "Invalid request body",
		})
		return
	}

	fields := repositories.ProfileUpdate{
		Username:       req.Username,
		Email:          req.Email,
		ImageURL:       req.ImageURL,
		HeaderImageURL: req.HeaderImageURL,
		Bio:            req.Bio,
		Location:       req.Location,
	}
	user, err := h.users.UpdateProfile(userID, fields, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// DeleteAccount removes the logged-in user and everything they own, then
// ends the session.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	if err := h.users.Delete(userID); err != nil {
		writeError(w, err)
		return
	}
	if err := h.clearCurrentUser(w, r); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
