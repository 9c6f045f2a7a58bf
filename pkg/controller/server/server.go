package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/monoconf/pkg/domain/interfaces"
	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/utils/logging"
)

// DefaultMaxBodySize is the request body cap of every RPC endpoint
const DefaultMaxBodySize int64 = 1 << 20

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response body is an encoded message, never raw user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	maxBodySize int64
}

type Option func(*config)

func WithMaxBodySize(size int64) Option {
	return func(cfg *config) {
		cfg.maxBodySize = size
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api/2", func(r chi.Router) {
		r.Post("/get_projects", handleRPC(cfg, types.RPCGetProjects,
			func() *model.GetProjectsRequest { return &model.GetProjectsRequest{} },
			uc.GetProjects,
		))
		r.Post("/get_workspaces", handleRPC(cfg, types.RPCGetWorkspaces,
			func() *model.GetWorkspacesRequest { return &model.GetWorkspacesRequest{} },
			uc.GetWorkspaces,
		))
		r.Post("/about", handleRPC(cfg, types.RPCGetAbout,
			func() *model.GetAboutRequest { return &model.GetAboutRequest{} },
			uc.GetAbout,
		))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
