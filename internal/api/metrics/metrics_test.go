package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/hrc-navate/worklog/internal/core/report"
)

func TestObserveWarning(t *testing.T) {
	c := DataQualityWarningsTotal.WithLabelValues("date", "missing date")
	before := testutil.ToFloat64(c)

	ObserveWarning(report.Warning{EntryID: "e1", Dimension: "date", Reason: "missing date"})
	ObserveWarning(report.Warning{EntryID: "e2", Dimension: "date", Reason: "missing date"})

	if got := testutil.ToFloat64(c) - before; got != 2 {
		t.Fatalf("expected 2 increments, got %v", got)
	}
}
