package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"appideas/internal/handlers"
	"appideas/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	r.Use(middlewares.RequestLogger)
	r.Use(middlewares.Instrument)
	r.Use(middlewares.NewCorsMiddleware(s.corsOrigins))
	r.Use(s.limiter.Limit)

	ch := handlers.NewCommonHandler(s.health)
	r.HandleFunc("/", ch.RootHandler).Methods("GET")
	r.HandleFunc("/health", ch.HealthHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	s.registerGeneratorRoutes(r)
	s.registerIdeaRoutes(r)

	return r
}

func (s *Server) registerGeneratorRoutes(r *mux.Router) {
	gh := handlers.NewGeneratorHandler(s.ideaService, s.validator, s.catalog)

	r.HandleFunc("/api/options", gh.GetOptions).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/generate", gh.GenerateIdea).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/generate/preview", gh.PreviewIdea).Methods("POST", "OPTIONS")
}

func (s *Server) registerIdeaRoutes(r *mux.Router) {
	ih := handlers.NewIdeaHandler(s.ideaService, s.validator)

	r.HandleFunc("/api/ideas", ih.GetIdeas).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/ideas", ih.AddIdea).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/ideas/saved", ih.GetSavedIdeas).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/ideas/{id}", ih.GetIdeaByID).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/ideas/{id}", ih.UpdateIdea).Methods("PATCH", "OPTIONS")
	r.HandleFunc("/api/ideas/{id}", ih.DeleteIdea).Methods("DELETE", "OPTIONS")
	r.HandleFunc("/api/ideas/{id}/toggle-save", ih.ToggleSaved).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/ideas/{id}/copy", ih.CopyIdea).Methods("GET", "OPTIONS")
}
