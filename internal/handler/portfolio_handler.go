package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"portfolioAPI/internal/models"
)

// ListPortfolio supports ?featured=true and ?category=<key>.
func (h *Handlers) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		items []models.PortfolioItem
		err   error
	)
	switch featured, _ := strconv.ParseBool(q.Get("featured")); {
	case featured:
		items, err = h.PortfolioService.ListFeatured(r.Context())
	case q.Get("category") != "":
		items, err = h.PortfolioService.ListByCategory(r.Context(), q.Get("category"))
	default:
		items, err = h.PortfolioService.List(r.Context())
	}
	if err != nil {
		h.failure(w, r, err)
		return
	}

	writeSuccess(w, items, http.StatusOK)
}

func (h *Handlers) GetPortfolioItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.PortfolioService.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.failure(w, r, err)
		return
	}
	writeSuccess(w, item, http.StatusOK)
}

func (h *Handlers) CreatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	var req models.PortfolioItemRequest
	if msg, ok := h.decodeAndValidate(r, &req); !ok {
		WriteError(w, msg, http.StatusBadRequest)
		return
	}

	item, err := h.PortfolioService.Create(r.Context(), req)
	if err != nil {
		h.failure(w, r, err)
		return
	}
	writeSuccess(w, item, http.StatusOK)
}

func (h *Handlers) UpdatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	var req models.PortfolioItemRequest
	if msg, ok := h.decodeAndValidate(r, &req); !ok {
		WriteError(w, msg, http.StatusBadRequest)
		return
	}

	item, err := h.PortfolioService.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		h.failure(w, r, err)
		return
	}
	writeSuccess(w, item, http.StatusOK)
}

func (h *Handlers) DeletePortfolioItem(w http.ResponseWriter, r *http.Request) {
	if err := h.PortfolioService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.failure(w, r, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "portfolio item deleted"}, http.StatusOK)
}
