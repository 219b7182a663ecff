package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"portfolioAPI/internal/models"
)

// ListPosts supports ?featured=true.
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	var (
		posts []models.BlogPost
		err   error
	)
	if featured, _ := strconv.ParseBool(r.URL.Query().Get("featured")); featured {
		posts, err = h.BlogPostService.ListFeatured(r.Context())
	} else {
		posts, err = h.BlogPostService.List(r.Context())
	}
	if err != nil {
		h.failure(w, r, err)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.BlogPostService.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.failure(w, r, err)
		return
	}
	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req models.BlogPostRequest
	if msg, ok := h.decodeAndValidate(r, &req); !ok {
		WriteError(w, msg, http.StatusBadRequest)
		return
	}

	post, err := h.BlogPostService.Create(r.Context(), req)
	if err != nil {
		h.failure(w, r, err)
		return
	}
	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req models.BlogPostRequest
	if msg, ok := h.decodeAndValidate(r, &req); !ok {
		WriteError(w, msg, http.StatusBadRequest)
		return
	}

	post, err := h.BlogPostService.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		h.failure(w, r, err)
		return
	}
	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.BlogPostService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.failure(w, r, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "post deleted"}, http.StatusOK)
}
