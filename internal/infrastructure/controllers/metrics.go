package controllers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rios0rios0/profilereport/internal/domain/entities"
)

const outcomeGenerated = "generated"

//nolint:gochecknoglobals // registered once on the default Prometheus registry
var (
	reportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profilereport_reports_total",
		Help: "Total number of report runs served over HTTP, by outcome",
	}, []string{"outcome"})

	reportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "profilereport_report_duration_seconds",
		Help:    "Time spent retrieving the profile and rendering the document",
		Buckets: prometheus.DefBuckets,
	})
)

// observeRun records one run. Failed runs are labelled with their error kind.
func observeRun(err error, elapsed time.Duration) {
	reportDuration.Observe(elapsed.Seconds())

	outcome := outcomeGenerated
	if err != nil {
		outcome = entities.ErrorKind(err)
	}
	reportsTotal.WithLabelValues(outcome).Inc()
}
