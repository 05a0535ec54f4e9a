package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Idea lifecycle metrics
	IdeasGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_ideas_generated_total",
		Help: "Total number of generated ideas, persisted or previewed.",
	}, []string{"category"})
	IdeasCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_ideas_created_total",
		Help: "Total number of ideas stored.",
	})
	IdeasDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_ideas_deleted_total",
		Help: "Total number of ideas deleted.",
	})
	IdeasSaveToggledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_ideas_save_toggled_total",
		Help: "Total number of save toggles by resulting state.",
	}, []string{"saved"}) // saved: "true" or "false"
)
