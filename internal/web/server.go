package web

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/llpg-simpleaddress/internal/address"
	"github.com/llpg-simpleaddress/internal/config"
	"github.com/llpg-simpleaddress/internal/llpg"
	"github.com/llpg-simpleaddress/internal/web/handlers"
	"github.com/llpg-simpleaddress/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	config     *config.Config
	db         *sql.DB
	composer   *address.Composer
	parse      func(string) address.PAFAddress
	httpServer *http.Server
	router     *mux.Router
}

// Option customises a Server
type Option func(*Server)

// WithDatabase enables the gazetteer routes backed by db
func WithDatabase(db *sql.DB) Option {
	return func(s *Server) { s.db = db }
}

// WithParser enables free-text composition using parse
func WithParser(parse func(string) address.PAFAddress) Option {
	return func(s *Server) { s.parse = parse }
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config, opts ...Option) *Server {
	server := &Server{
		config:   cfg,
		composer: address.NewComposer(cfg.AddressOptions()),
	}
	for _, opt := range opts {
		opt(server)
	}

	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	composeHandler := &handlers.ComposeHandler{
		Composer:   s.composer,
		LocalDebug: s.config.Debug,
		Parse:      s.parse,
	}
	llpgHandler := &handlers.LLPGHandler{Composer: s.composer}
	healthHandler := &handlers.HealthHandler{}
	if s.db != nil {
		llpgHandler.Store = llpg.NewStore(s.db)
		healthHandler.DB = s.db
	}

	s.router.HandleFunc("/health", healthHandler.Health).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/compose/paf", composeHandler.ComposePAF).Methods("POST")
	api.HandleFunc("/compose/bs7666", composeHandler.ComposeBS7666).Methods("POST")
	api.HandleFunc("/compose/text", composeHandler.ComposeText).Methods("POST")

	api.HandleFunc("/llpg/{uprn:[0-9]+}", llpgHandler.GetAddress).Methods("GET")
	api.HandleFunc("/postcode/{postcode}", llpgHandler.ListByPostcode).Methods("GET")

	api.Use(middleware.Authentication(s.config.Server.APIKey))
}

// Handler is the router wrapped in the logging and CORS middleware.
// CORS sits outside the router so preflight requests never reach route matching.
func (s *Server) Handler() http.Handler {
	return middleware.RequestLogging()(middleware.CORS()(s.router))
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		log.Printf("Starting server on http://%s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
	return nil
}
