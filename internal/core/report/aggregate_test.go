package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrc-navate/worklog/internal/core/domain"
)

func TestAggregate_PreservesFirstSeenOrder(t *testing.T) {
	entries := []domain.WorkEntry{
		entry("1", "u", "p", "2024-01-03", domain.UnitHours, 1),
		entry("2", "u", "p", "2024-01-01", domain.UnitHours, 2),
		entry("3", "u", "p", "2024-01-03", domain.UnitHours, 4),
	}

	g, warnings := Aggregate(entries, ByDate("date"))

	assert.Empty(t, warnings)
	assert.Equal(t, []string{"2024-01-03", "2024-01-01"}, g.Keys())
	assert.Equal(t, "5", g.Sum("2024-01-03").String())
	assert.Equal(t, []string{"2024-01-01", "2024-01-03"}, g.Sorted().Keys())
	// Sorting must not reorder the original.
	assert.Equal(t, []string{"2024-01-03", "2024-01-01"}, g.Keys())
}

func TestAggregate_SumsExactly(t *testing.T) {
	entries := []domain.WorkEntry{
		entry("1", "u", "p", "2024-01-01", domain.UnitHours, 0.1),
		entry("2", "u", "p", "2024-01-01", domain.UnitHours, 0.2),
	}

	g, _ := Aggregate(entries, ByDate("date"))

	assert.Equal(t, "0.3", g.Sum("2024-01-01").String())
	assert.Equal(t, []float64{0.3}, g.Series().Values)
}

func TestAggregate_MissingDateExcludedWithWarning(t *testing.T) {
	entries := []domain.WorkEntry{
		entry("1", "u", "p", "", domain.UnitHours, 3),
		entry("2", "u", "p", "2024-01-01", domain.UnitHours, 2),
	}

	g, warnings := Aggregate(entries, ByDate("date"))

	require.Len(t, warnings, 1)
	assert.Equal(t, Warning{EntryID: "1", Dimension: "date", Reason: "missing date"}, warnings[0])
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, "2", g.Total().String())
}

func TestAggregate_UnknownProjectBucket(t *testing.T) {
	names := map[string]string{"a": "Alpha"}
	entries := []domain.WorkEntry{
		entry("1", "u", "gone", "2024-01-01", domain.UnitHours, 1),
		entry("2", "u", "a", "2024-01-01", domain.UnitHours, 2),
		entry("3", "u", "", "2024-01-01", domain.UnitArea, 4),
	}

	g, warnings := Aggregate(entries, ByProject(names))

	assert.Empty(t, warnings)
	s := g.Series()
	assert.Equal(t, []string{UnknownProject, "Alpha"}, s.Labels)
	assert.Equal(t, []float64{5, 2}, s.Values)
}

func TestAggregate_EmptyInputGivesEmptySeries(t *testing.T) {
	g, warnings := Aggregate(nil, ByUnit())

	assert.Empty(t, warnings)
	s := g.Series()
	assert.NotNil(t, s.Labels)
	assert.NotNil(t, s.Values)
	assert.Empty(t, s.Labels)
}

func TestOnlyUnit(t *testing.T) {
	entries := []domain.WorkEntry{
		entry("1", "u", "p", "2024-01-01", domain.UnitHours, 1),
		entry("2", "u", "p", "2024-01-01", domain.UnitArea, 2),
		entry("3", "u", "p", "2024-01-02", domain.UnitHours, 3),
	}

	hours := OnlyUnit(entries, domain.UnitHours)

	require.Len(t, hours, 2)
	assert.Equal(t, "1", hours[0].ID)
	assert.Equal(t, "3", hours[1].ID)
}
