package http

import (
	"log/slog"
	"net/http"

	"explorewithme/internal/delivery/http/controllers"
	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/delivery/http/middleware"
	"explorewithme/internal/domain"

	_ "explorewithme/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig carries the collaborators NewRouter wires together.
// A nil Verifier leaves the private routes unauthenticated.
type RouterConfig struct {
	Requests    *controllers.RequestController
	Events      *controllers.EventController
	Verifier    domain.TokenVerifier
	CORSOrigins []string
	Logger      *slog.Logger
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	private := func(h http.HandlerFunc) http.HandlerFunc { return h }
	if cfg.Verifier != nil {
		private = middleware.RequireAuth(cfg.Verifier, cfg.Logger)
	}

	// Requester
	mux.HandleFunc("POST /users/{userId}/requests", private(cfg.Requests.CreateRequest))
	mux.HandleFunc("GET /users/{userId}/requests", private(cfg.Requests.ListUserRequests))
	mux.HandleFunc("PATCH /users/{userId}/requests/{requestId}/cancel", private(cfg.Requests.CancelRequest))

	// Initiator
	mux.HandleFunc("GET /users/{userId}/events/{eventId}/requests", private(cfg.Requests.ListEventRequests))
	mux.HandleFunc("PATCH /users/{userId}/events/{eventId}/requests", private(cfg.Requests.UpdateRequestStatus))

	// Public
	mux.HandleFunc("GET /events/{eventId}", cfg.Events.GetEvent)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORSOrigins, handler)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	handler = middleware.Recover(cfg.Logger, handler)
	return handler
}
