package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"portfolioAPI/internal/models"
	"portfolioAPI/internal/service"
)

const oauthStateCookie = "oauth2_state"

// OAuthAuthorize sends the browser to the provider with a fresh state
// remembered in a short-lived cookie.
func (h *Handlers) OAuthAuthorize(w http.ResponseWriter, r *http.Request) {
	state := uuid.New().String()

	target, err := h.OAuthService.AuthorizeURL(mux.Vars(r)["provider"], state)
	if err != nil {
		if errors.Is(err, service.ErrUnknownProvider) {
			WriteError(w, err.Error(), http.StatusNotFound)
			return
		}
		h.failure(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/auth/oauth2",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handlers) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Path: "/auth/oauth2", MaxAge: -1})

	q := r.URL.Query()
	if msg := q.Get("error"); msg != "" {
		http.Redirect(w, r, h.OAuthService.FailureRedirect(msg), http.StatusFound)
		return
	}

	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != q.Get("state") {
		http.Redirect(w, r, h.OAuthService.FailureRedirect("invalid oauth2 state"), http.StatusFound)
		return
	}

	code := q.Get("code")
	if code == "" {
		http.Redirect(w, r, h.OAuthService.FailureRedirect("missing authorization code"), http.StatusFound)
		return
	}

	http.Redirect(w, r, h.OAuthService.Callback(r.Context(), mux.Vars(r)["provider"], code), http.StatusFound)
}

// OAuthSuccess lets a frontend without fragment handling exchange the
// redirect tokens for the profile.
func (h *Handlers) OAuthSuccess(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	token, refresh := q.Get("token"), q.Get("refreshToken")
	if token == "" {
		writeAuthFailure(w, "missing token", http.StatusBadRequest)
		return
	}

	username, err := h.AuthService.VerifyAccessToken(token)
	if err != nil {
		writeAuthFailure(w, "invalid token", http.StatusBadRequest)
		return
	}

	profile, err := h.AuthService.CurrentUser(r.Context(), username)
	if err != nil {
		h.authFailure(w, r, err)
		return
	}

	writeSuccess(w, models.AuthResponse{
		Success:      true,
		Message:      "login successful",
		Token:        token,
		RefreshToken: refresh,
		User:         profile,
	}, http.StatusOK)
}

func (h *Handlers) OAuthFailure(w http.ResponseWriter, r *http.Request) {
	msg := r.URL.Query().Get("error")
	if msg == "" {
		msg = "oauth2 login failed"
	}
	writeAuthFailure(w, msg, http.StatusBadRequest)
}
