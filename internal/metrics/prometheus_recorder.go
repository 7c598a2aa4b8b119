// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "photosync"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	contactOutcomes *prom.CounterVec
	runOutcomes     *prom.CounterVec
	runDuration     prom.Histogram
	approvalWait    *prom.HistogramVec
}

// NewPrometheusRecorder constructs the sync metrics and registers them on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		contactOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "contacts_total",
			Help:      "Directory contacts processed by outcome",
		}, []string{"outcome"}),
		runOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Sync runs by final outcome",
		}, []string{"outcome"}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Total sync run duration",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		}),
		approvalWait: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "approval_wait_seconds",
			Help:      "Time spent waiting for a photo approval decision",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 45, 60},
		}, []string{"result"}),
	}
	reg.MustRegister(pr.contactOutcomes, pr.runOutcomes, pr.runDuration, pr.approvalWait)

	return pr
}

func (p *PrometheusRecorder) IncContactOutcome(outcome ContactOutcome) {
	if p == nil || p.contactOutcomes == nil {
		return
	}
	p.contactOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncRunOutcome(outcome string) {
	if p == nil || p.runOutcomes == nil {
		return
	}
	p.runOutcomes.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveApprovalWait(result ApprovalResult, d time.Duration) {
	if p == nil || p.approvalWait == nil {
		return
	}
	p.approvalWait.WithLabelValues(string(result)).Observe(d.Seconds())
}
