package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"appideas/internal/catalog"
	"appideas/internal/config"
	"appideas/internal/database"
	"appideas/internal/generator"
	"appideas/internal/handlers"
	"appideas/internal/middlewares"
	"appideas/internal/repositories"
	"appideas/internal/services"
	"appideas/internal/validation"
)

const storageCloseTimeout = 5 * time.Second

type Server struct {
	port        int
	httpServer  *http.Server
	db          database.Service
	health      handlers.HealthChecker
	catalog     *catalog.Catalog
	validator   *validation.Validator
	ideaService services.IdeaService
	limiter     *middlewares.RateLimiter
	corsOrigins []string
	stopCleanup context.CancelFunc
}

// NewServer wires the storage backend selected by cfg into a ready to start server.
func NewServer(cfg config.Config) (*Server, error) {
	var (
		db       database.Service
		ideaRepo repositories.IdeaRepository
		health   handlers.HealthChecker
	)

	switch cfg.StorageDriver {
	case config.StorageMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var err error
		db, err = database.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		ideaRepo = repositories.NewIdeaRepository(db)
		health = db
	default:
		memRepo := repositories.NewMemoryIdeaRepository()
		ideaRepo = memRepo
		health = memRepo
	}

	log.Info().Str("storage", cfg.StorageDriver).Msg("Storage backend ready")
	s := newServer(cfg, ideaRepo, health, generator.NewSource())
	s.db = db
	return s, nil
}

func newServer(cfg config.Config, ideaRepo repositories.IdeaRepository, health handlers.HealthChecker, src generator.Source) *Server {
	cat := catalog.Default()

	s := &Server{
		port:        cfg.Port,
		health:      health,
		catalog:     cat,
		validator:   validation.New(cat),
		ideaService: services.NewIdeaService(ideaRepo, generator.New(cat, src), cfg.PageSize),
		limiter:     middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		corsOrigins: cfg.AllowedOrigins,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.stopCleanup = cancel
	go s.limiter.CleanupVisitors(ctx)

	log.Info().Int("port", s.port).Msg("Starting server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) GracefulShutdown(done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
	}

	if s.stopCleanup != nil {
		s.stopCleanup()
	}
	s.closeStorage()

	log.Info().Msg("Server exiting")
	done <- true
}

// closeStorage disconnects MongoDB with its own deadline, independent of the HTTP shutdown.
func (s *Server) closeStorage() {
	if s.db == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageCloseTimeout)
	defer cancel()
	if err := s.db.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Error disconnecting from MongoDB")
	}
}
