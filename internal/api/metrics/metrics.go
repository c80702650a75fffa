// Package metrics defines the custom Prometheus metrics of the worklog API.
// Metrics register themselves with the default registry on package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hrc-navate/worklog/internal/core/report"
)

const namespace = "worklog"

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportsBuiltTotal counts report models served.
// Label:
//   - kind: "dashboard", "pdf" or "xlsx"
var ReportsBuiltTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_built_total",
		Help:      "Total number of reports built, by kind.",
	},
	[]string{"kind"},
)

// ReportDuration measures end-to-end report handling including rendering.
var ReportDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_duration_seconds",
		Help:      "Duration of report requests from store read to rendered output.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)

// ExportBytes tracks the size of rendered documents.
var ExportBytes = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "export_bytes",
		Help:      "Size of exported documents in bytes.",
		Buckets:   prometheus.ExponentialBuckets(4096, 4, 8),
	},
	[]string{"format"},
)

// DataQualityWarningsTotal counts entries excluded from, or relabelled in, a
// report dimension.
// Labels:
//   - dimension: e.g. "date", "project", "user"
//   - reason: e.g. "missing date", "unknown project"
var DataQualityWarningsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "data_quality_warnings_total",
		Help:      "Total number of data-quality warnings raised while building reports.",
	},
	[]string{"dimension", "reason"},
)

// ── Entry metrics ─────────────────────────────────────────────────────────────

// EntriesWrittenTotal counts entry mutations.
// Label:
//   - op: "create", "update" or "delete"
var EntriesWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_written_total",
		Help:      "Total number of work entry mutations, by operation.",
	},
	[]string{"op"},
)

// ObserveWarning is a report.Builder warning observer.
func ObserveWarning(w report.Warning) {
	DataQualityWarningsTotal.WithLabelValues(w.Dimension, w.Reason).Inc()
}
