package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"portfolioAPI/internal/middleware"
	"portfolioAPI/internal/models"
)

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.CommentService.ListByPost(r.Context(), mux.Vars(r)["postId"])
	if err != nil {
		h.failure(w, r, err)
		return
	}
	writeSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req models.CommentRequest
	if msg, ok := h.decodeAndValidate(r, &req); !ok {
		WriteError(w, msg, http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.Add(r.Context(), user.Username, req)
	if err != nil {
		h.failure(w, r, err)
		return
	}
	writeSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.CommentService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.failure(w, r, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "comment deleted"}, http.StatusOK)
}
