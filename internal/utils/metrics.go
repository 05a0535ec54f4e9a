package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Database Metrics
var DBQueryDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "db_query_duration_seconds",
	Help:    "Duration of database queries in seconds.",
	Buckets: prometheus.DefBuckets,
}, []string{"query_type", "repository", "status"})

var DBQueryErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "db_query_errors_total",
	Help: "Total number of failed database queries.",
}, []string{"query_type", "repository"})

// QueryTimer records the duration and outcome of one repository query.
type QueryTimer struct {
	repository string
	queryType  string
	status     string
	timer      *prometheus.Timer
}

func StartQueryTimer(repository, queryType string) *QueryTimer {
	q := &QueryTimer{repository: repository, queryType: queryType, status: "success"}
	q.timer = prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		DBQueryDurationSeconds.WithLabelValues(q.queryType, q.repository, q.status).Observe(v)
	}))
	return q
}

// Fail marks the query as failed and counts the error.
func (q *QueryTimer) Fail() {
	q.status = "error"
	DBQueryErrorsTotal.WithLabelValues(q.queryType, q.repository).Inc()
}

func (q *QueryTimer) ObserveDuration() {
	q.timer.ObserveDuration()
}
