package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strconv"
	"strings"
	"time"

	"portfolioAPI/internal/metrics"
	"portfolioAPI/internal/models"
)

type Middleware func(http.Handler) http.Handler

// Chain wraps h so that the last middleware runs first.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}

type contextKey string

const userKey contextKey = "user"

func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

// TokenVerifier resolves an access token to its subject.
type TokenVerifier interface {
	VerifyAccessToken(token string) (string, error)
}

type UserLookup interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Auth enforces the policy. A valid bearer token attaches the user to the
// request context even on public routes; an invalid one is only rejected
// where authentication is required.
func Auth(policy Policy, tokens TokenVerifier, users UserLookup, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			access := policy.Resolve(r.Method, r.URL.Path)

			user, err := authenticate(r, tokens, users)
			if err != nil && !errors.Is(err, errNoToken) {
				logger.Debug("authentication failed", slog.String("path", r.URL.Path), slog.Any("err", err))
			}

			switch access {
			case Authenticated:
				if user == nil {
					writeError(w, "authentication required", http.StatusUnauthorized)
					return
				}
			case Admin:
				if user == nil {
					writeError(w, "authentication required", http.StatusUnauthorized)
					return
				}
				if !user.Role.IsAdmin() {
					writeError(w, "access denied", http.StatusForbidden)
					return
				}
			}

			if user != nil {
				r = r.WithContext(WithUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

var errNoToken = errors.New("no bearer token")

func authenticate(r *http.Request, tokens TokenVerifier, users UserLookup) (*models.User, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return nil, errNoToken
	}

	username, err := tokens.VerifyAccessToken(strings.TrimSpace(token))
	if err != nil {
		return nil, err
	}

	return users.GetByUsername(r.Context(), username)
}

// CORS allows the configured origins. "*" allows any origin.
func CORS(allowedOrigins []string) Middleware {
	allowAll := slices.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (allowAll || slices.Contains(allowedOrigins, origin)) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, refresh-token")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Logging records every request and feeds the HTTP metrics. routeOf maps a
// request to a low-cardinality route label.
func Logging(logger *slog.Logger, routeOf func(*http.Request) string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			route := routeOf(r)
			metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
			metrics.HTTPDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())

			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("latency", elapsed),
			)
		})
	}
}

func Recover(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					logger.Error("panic serving request",
						slog.String("path", r.URL.Path),
						slog.Any("panic", v),
						slog.String("stack", string(debug.Stack())),
					)
					writeError(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
