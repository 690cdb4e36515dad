package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lucasmrqs/go-tarefas-server/identity"
	"github.com/lucasmrqs/go-tarefas-server/internal/config"
	"github.com/lucasmrqs/go-tarefas-server/quotes"
	"github.com/lucasmrqs/go-tarefas-server/tasks"
	"github.com/lucasmrqs/go-tarefas-server/token"
)

type Server struct {
	env    string // Environment (e.g., "DEV", "production")
	mux    *http.ServeMux
	routes []string
	config config.Config

	identity *identity.Service
	tasks    *tasks.Repository
	quotes   *quotes.Fetcher
	tokens   *token.Issuer
	logger   zerolog.Logger
}

func New(
	cfg config.Config,
	identityService *identity.Service,
	taskRepository *tasks.Repository,
	quoteFetcher *quotes.Fetcher,
	tokens *token.Issuer,
	logger zerolog.Logger,
) (*Server, error) {
	if identityService == nil {
		return nil, errors.New("[Server New] identity service is required")
	}
	if taskRepository == nil {
		return nil, errors.New("[Server New] task repository is required")
	}
	if quoteFetcher == nil {
		return nil, errors.New("[Server New] quote fetcher is required")
	}
	if tokens == nil {
		return nil, errors.New("[Server New] token issuer is required")
	}

	s := &Server{
		mux:      http.NewServeMux(),
		config:   cfg,
		identity: identityService,
		tasks:    taskRepository,
		quotes:   quoteFetcher,
		tokens:   tokens,
		logger:   logger,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
