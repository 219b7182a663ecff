package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"portfolioAPI/internal/models"
)

// UploadImage accepts a multipart form with the file in the "image" field.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "file too large or malformed form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "image: must not be blank", http.StatusBadRequest)
		return
	}
	defer file.Close()

	object, url, err := h.ImageService.Upload(r.Context(), header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		h.failure(w, r, err)
		return
	}

	writeSuccess(w, models.ImageUploadResponse{Object: object, URL: url}, http.StatusOK)
}

// DeleteImage removes an uploaded cover by the object name returned from UploadImage.
func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	object := mux.Vars(r)["object"]

	if err := h.ImageService.Delete(r.Context(), object); err != nil {
		h.failure(w, r, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "image deleted"}, http.StatusOK)
}
