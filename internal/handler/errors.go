package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"portfolioAPI/internal/models"
	"portfolioAPI/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeSuccess(w, ErrorResponse{Error: message}, statusCode)
}

func writeSuccess(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeAuthFailure answers auth endpoints with the envelope the frontend
// reads instead of the plain error body.
func writeAuthFailure(w http.ResponseWriter, message string, statusCode int) {
	writeSuccess(w, models.AuthResponse{Success: false, Message: message}, statusCode)
}

// statusFor maps service errors onto HTTP statuses. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrUnknownProvider):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidRefreshToken),
		errors.Is(err, service.ErrRefreshTokenExpired),
		errors.Is(err, service.ErrInvalidParent),
		errors.Is(err, service.ErrInvalidImage),
		errors.Is(err, service.ErrInvalidObjectName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// failure writes err with its mapped status, hiding internal details.
func (h *Handlers) failure(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("err", err))
		WriteError(w, "internal server error", status)
		return
	}
	WriteError(w, err.Error(), status)
}

// authFailure is failure for endpoints that answer with AuthResponse.
func (h *Handlers) authFailure(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	switch status {
	case http.StatusInternalServerError:
		h.Logger.Error("auth request failed", slog.String("path", r.URL.Path), slog.Any("err", err))
		writeAuthFailure(w, "internal server error", status)
	case http.StatusNotFound:
		writeAuthFailure(w, err.Error(), http.StatusBadRequest)
	default:
		writeAuthFailure(w, err.Error(), status)
	}
}

// decodeAndValidate reads a JSON body into dst and runs the struct rules.
// The returned message is ready to send to the client.
func (h *Handlers) decodeAndValidate(r *http.Request, dst any) (string, bool) {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return "invalid request body", false
	}
	if err := h.Validate.Struct(dst); err != nil {
		return validationMessage(err), false
	}
	return "", true
}

// validationMessage renders "field: message; field: message".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+": "+describe(fe))
	}
	return strings.Join(parts, "; ")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "must not be blank"
	case "email":
		return "must be a well-formed email address"
	case "min":
		return fmt.Sprintf("size must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("size must be at most %s", fe.Param())
	default:
		return "is invalid"
	}
}
