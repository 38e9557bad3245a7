// Package metrics records provisioning telemetry and pushes it to a
// Prometheus Pushgateway. rgbbuild runs are short-lived, so scraping is not
// an option; each run pushes its final gauges instead.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const job = "rgbbuild"

// Recorder aggregates the metrics of one provisioning run. A nil Recorder is
// valid and records nothing, so callers never branch on whether metrics are
// configured.
type Recorder struct {
	reg           *prometheus.Registry
	stageDuration *prometheus.GaugeVec
	artifactBytes *prometheus.GaugeVec
	lastSuccess   prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		stageDuration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "rgbbuild",
				Subsystem: "provision",
				Name:      "stage_duration_seconds",
				Help:      "Wall-clock duration of each provisioning stage",
			},
			[]string{"stage"},
		),
		artifactBytes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "rgbbuild",
				Subsystem: "provision",
				Name:      "artifact_bytes",
				Help:      "Size of each staged artifact in bytes",
			},
			[]string{"artifact"},
		),
		lastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "rgbbuild",
				Subsystem: "provision",
				Name:      "last_success_timestamp_seconds",
				Help:      "Unix time of the last successful provisioning run",
			},
		),
	}
	r.reg.MustRegister(r.stageDuration, r.artifactBytes, r.lastSuccess)
	return r
}

// ObserveStage records the wall-clock duration of one provisioning stage
// ("build", "stage").
func (r *Recorder) ObserveStage(stage string, d time.Duration) {
	if r == nil {
		return
	}
	r.stageDuration.WithLabelValues(stage).Set(d.Seconds())
}

// ObserveArtifact records the size of one staged artifact ("library",
// "header").
func (r *Recorder) ObserveArtifact(artifact string, bytes int64) {
	if r == nil {
		return
	}
	r.artifactBytes.WithLabelValues(artifact).Set(float64(bytes))
}

// MarkSuccess stamps the completion time of a successful run.
func (r *Recorder) MarkSuccess(t time.Time) {
	if r == nil {
		return
	}
	r.lastSuccess.Set(float64(t.Unix()))
}

// Push sends the recorded gauges to the Pushgateway at url, grouped by
// platform so mac and linux runs don't overwrite each other. An empty url
// disables pushing.
func (r *Recorder) Push(ctx context.Context, url, platform string) error {
	if r == nil || url == "" {
		return nil
	}
	return push.New(url, job).
		Gatherer(r.reg).
		Grouping("platform", platform).
		PushContext(ctx)
}
