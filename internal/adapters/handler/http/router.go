package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type Handlers struct {
	Poll   *PollHandler
	Vote   *VoteHandler
	Auth   *AuthHandler
	User   *UserHandler
	Health *HealthHandler
}

func NewHandler(h Handlers, issuer ports.TokenIssuer, allowedOrigins []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(CORS(allowedOrigins))

	r.Get("/healthz", h.Health.Check)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		r.Route("/polls", func(r chi.Router) {
			r.Get("/", h.Poll.ListPolls)
			r.Get("/{poll_id}", h.Poll.GetPoll)
			r.Get("/{poll_id}/results", h.Poll.GetResults)

			r.Group(func(r chi.Router) {
				r.Use(RequireAuth(issuer))
				r.Post("/", h.Poll.CreatePoll)
				r.Post("/{poll_id}/vote", h.Vote.Vote)
			})
		})

		r.With(RequireAuth(issuer)).Get("/me", h.User.GetMe)
	})

	return r
}
