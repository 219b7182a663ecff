package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"portfolioAPI/internal/metrics"
	"portfolioAPI/internal/middleware"
)

func (h *Handlers) Router() *mux.Router {
	r := mux.NewRouter()

	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	auth.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", h.Refresh).Methods(http.MethodPost)
	auth.HandleFunc("/logout", h.Logout).Methods(http.MethodPost)
	auth.HandleFunc("/me", h.Me).Methods(http.MethodGet)
	auth.HandleFunc("/me", h.UpdateMe).Methods(http.MethodPut)
	auth.HandleFunc("/oauth2/authorize/{provider}", h.OAuthAuthorize).Methods(http.MethodGet)
	auth.HandleFunc("/oauth2/callback/{provider}", h.OAuthCallback).Methods(http.MethodGet)
	auth.HandleFunc("/oauth2/success", h.OAuthSuccess).Methods(http.MethodGet)
	auth.HandleFunc("/oauth2/failure", h.OAuthFailure).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/portfolio", h.ListPortfolio).Methods(http.MethodGet)
	api.HandleFunc("/portfolio", h.CreatePortfolioItem).Methods(http.MethodPost)
	api.HandleFunc("/portfolio/{id}", h.GetPortfolioItem).Methods(http.MethodGet)
	api.HandleFunc("/portfolio/{id}", h.UpdatePortfolioItem).Methods(http.MethodPut)
	api.HandleFunc("/portfolio/{id}", h.DeletePortfolioItem).Methods(http.MethodDelete)

	api.HandleFunc("/posts", h.ListPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", h.UpdatePost).Methods(http.MethodPut)
	api.HandleFunc("/posts/{id}", h.DeletePost).Methods(http.MethodDelete)

	api.HandleFunc("/comments/post/{postId}", h.ListComments).Methods(http.MethodGet)
	api.HandleFunc("/comments", h.AddComment).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id}", h.DeleteComment).Methods(http.MethodDelete)

	api.HandleFunc("/images", h.UploadImage).Methods(http.MethodPost)
	api.HandleFunc("/images/{object:.+}", h.DeleteImage).Methods(http.MethodDelete)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}

// Handler is the full HTTP stack: routes behind auth, CORS, request logging
// and panic recovery.
func (h *Handlers) Handler() http.Handler {
	router := h.Router()

	return middleware.Chain(
		router,
		middleware.Auth(middleware.DefaultPolicy(), h.AuthService, h.UserService, h.Logger),
		middleware.CORS(h.Cfg.AllowedOrigins),
		middleware.Logging(h.Logger, routeTemplate(router)),
		middleware.Recover(h.Logger),
	)
}

// routeTemplate labels requests by their route pattern so metrics do not
// grow with every id.
func routeTemplate(router *mux.Router) func(*http.Request) string {
	return func(r *http.Request) string {
		var match mux.RouteMatch
		if router.Match(r, &match) && match.Route != nil {
			if tpl, err := match.Route.GetPathTemplate(); err == nil {
				return tpl
			}
		}
		return "unmatched"
	}
}
