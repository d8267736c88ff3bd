package server

import (
	"net/http"

	"github.com/nuagehq/mediagate/config"
	"github.com/nuagehq/mediagate/pkg/mcp"
	"github.com/nuagehq/mediagate/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	s := &Server{
		Config: cfg,

		handler: r,
	}

	r.Use(s.handleAuth)

	apiHandler, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	r.Route("/v1", func(r chi.Router) {
		apiHandler.Attach(r)
	})

	mcpServer, err := mcp.NewServer("mediagate", cfg.Tools())

	if err != nil {
		return nil, err
	}

	r.Handle("/mcp", mcpServer)

	return s, nil
}

func (s *Server) handleAuth(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if len(s.Authorizers) > 0 {
			var authorized bool

			for _, a := range s.Authorizers {
				ctx, err := a.Authenticate(r.Context(), r)

				if err != nil {
					continue
				}

				authorized = true
				r = r.WithContext(ctx)

				break
			}

			if !authorized {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe() error {
	handler := otelhttp.NewHandler(s, "http")

	return http.ListenAndServe(s.Address, handler)
}
