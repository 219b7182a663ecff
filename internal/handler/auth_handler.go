package handlers

import (
	"encoding/json"
	"net/http"

	"portfolioAPI/internal/middleware"
	"portfolioAPI/internal/models"
)

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if msg, ok := h.decodeAndValidate(r, &req); !ok {
		writeAuthFailure(w, msg, http.StatusBadRequest)
		return
	}

	resp, err := h.AuthService.Login(r.Context(), req)
	if err != nil {
		h.authFailure(w, r, err)
		return
	}

	writeSuccess(w, resp, http.StatusOK)
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if msg, ok := h.decodeAndValidate(r, &req); !ok {
		writeAuthFailure(w, msg, http.StatusBadRequest)
		return
	}

	resp, err := h.AuthService.Register(r.Context(), req)
	if err != nil {
		h.authFailure(w, r, err)
		return
	}

	writeSuccess(w, resp, http.StatusOK)
}

func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if msg, ok := h.decodeAndValidate(r, &req); !ok {
		writeAuthFailure(w, msg, http.StatusBadRequest)
		return
	}

	resp, err := h.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.authFailure(w, r, err)
		return
	}

	writeSuccess(w, resp, http.StatusOK)
}

// Logout reads the token from the refresh-token header, falling back to the
// JSON body. It always succeeds.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("refresh-token")
	if token == "" {
		var req models.RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			token = req.RefreshToken
		}
	}

	h.AuthService.Logout(r.Context(), token)

	writeSuccess(w, models.AuthResponse{Success: true, Message: "logout successful"}, http.StatusOK)
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeAuthFailure(w, "authentication required", http.StatusUnauthorized)
		return
	}

	profile, err := h.AuthService.CurrentUser(r.Context(), user.Username)
	if err != nil {
		h.authFailure(w, r, err)
		return
	}

	writeSuccess(w, models.AuthResponse{Success: true, Message: "ok", User: profile}, http.StatusOK)
}

func (h *Handlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeAuthFailure(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req models.UpdateUserRequest
	if msg, ok := h.decodeAndValidate(r, &req); !ok {
		writeAuthFailure(w, msg, http.StatusBadRequest)
		return
	}

	profile, err := h.AuthService.UpdateCurrentUser(r.Context(), user.Username, req)
	if err != nil {
		h.authFailure(w, r, err)
		return
	}

	writeSuccess(w, models.AuthResponse{Success: true, Message: "profile updated", User: profile}, http.StatusOK)
}
