package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/frolovkirill/pdf2office/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, wf Workflow, auth AuthService) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	ah := NewAuthHandler(auth)
	ch := NewConversionsHandler(wf)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", ah.Register)
			r.Post("/login", ah.Login)

			r.Group(func(r chi.Router) {
				r.Use(ah.RequireUser)
				r.Post("/logout", ah.Logout)
				r.Get("/me", ah.Me)
			})
		})

		r.Route("/conversions", func(r chi.Router) {
			r.Use(ah.RequireUser)
			r.Post("/", ch.Submit)
			r.Get("/", ch.History)
			r.Get("/export", ch.ExportCSV)
			r.Get("/{id}/download", ch.Download)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      r,
		},
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
