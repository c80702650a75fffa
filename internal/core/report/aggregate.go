// Package report turns filtered work entries into dashboard statistics and
// paginated documents.
//
// Aggregation is a single function parameterised by a Dimension. Sums are
// exact (decimal); conversion to float64 only happens when a Series is built
// for presentation.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/hrc-navate/worklog/internal/core/domain"
)

const (
	// UnknownProject labels contributions of entries whose project no longer exists.
	UnknownProject = "unknown project"
	// UnknownUser labels rows whose owner no longer exists.
	UnknownUser = "unknown"

	unknownKey = "\x00unknown"
)

// Dimension describes one grouping pass over a list of entries.
type Dimension struct {
	Name string
	// Key extracts the grouping key. ok=false excludes the entry from this
	// dimension and produces a Warning.
	Key func(e domain.WorkEntry) (key string, ok bool)
	// Label maps a key to its display text. Nil means the key is the label.
	Label func(key string) string
	// Reason is reported in warnings for excluded entries.
	Reason string
}

// Warning is a non-fatal data-quality finding.
type Warning struct {
	EntryID   string `json:"entry_id"`
	Dimension string `json:"dimension"`
	Reason    string `json:"reason"`
}

// Grouped is an insertion-ordered mapping from key to summed amount.
type Grouped struct {
	dim  Dimension
	keys []string
	sums map[string]decimal.Decimal
}

// Aggregate sums entry amounts per key of dim, preserving the order in which
// keys are first encountered.
func Aggregate(entries []domain.WorkEntry, dim Dimension) (*Grouped, []Warning) {
	g := &Grouped{dim: dim, sums: make(map[string]decimal.Decimal)}
	var warnings []Warning
	for _, e := range entries {
		key, ok := dim.Key(e)
		if !ok {
			warnings = append(warnings, Warning{EntryID: e.ID, Dimension: dim.Name, Reason: dim.Reason})
			continue
		}
		sum, seen := g.sums[key]
		if !seen {
			g.keys = append(g.keys, key)
		}
		g.sums[key] = sum.Add(decimal.NewFromFloat(e.Amount))
	}
	return g, warnings
}

// Keys returns the grouping keys in their current order.
func (g *Grouped) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Len returns the number of distinct keys.
func (g *Grouped) Len() int { return len(g.keys) }

// Sum returns the exact total for key, zero when absent.
func (g *Grouped) Sum(key string) decimal.Decimal { return g.sums[key] }

// Total returns the exact sum over every key.
func (g *Grouped) Total() decimal.Decimal {
	total := decimal.Zero
	for _, k := range g.keys {
		total = total.Add(g.sums[k])
	}
	return total
}

// Label returns the display text of key.
func (g *Grouped) Label(key string) string {
	if g.dim.Label == nil {
		return key
	}
	return g.dim.Label(key)
}

// Sorted returns a copy whose keys are in lexicographic order. For YYYY-MM-DD
// keys this is chronological order.
func (g *Grouped) Sorted() *Grouped {
	keys := g.Keys()
	sort.Strings(keys)
	return &Grouped{dim: g.dim, keys: keys, sums: g.sums}
}

// Series converts the grouping to presentation values.
func (g *Grouped) Series() Series {
	s := Series{Labels: make([]string, 0, len(g.keys)), Values: make([]float64, 0, len(g.keys))}
	for _, k := range g.keys {
		s.Labels = append(s.Labels, g.Label(k))
		s.Values = append(s.Values, g.sums[k].InexactFloat64())
	}
	return s
}

// ByDate groups by calendar day. Entries without a date are excluded.
func ByDate(name string) Dimension {
	return Dimension{
		Name:   name,
		Reason: "missing date",
		Key: func(e domain.WorkEntry) (string, bool) {
			return e.Date, e.HasDate()
		},
	}
}

// ByUnit groups by unit kind.
func ByUnit() Dimension {
	return Dimension{
		Name: "unit",
		Key: func(e domain.WorkEntry) (string, bool) {
			return string(e.Unit), e.Unit.Valid()
		},
		Label:  func(key string) string { return domain.UnitKind(key).Label() },
		Reason: "unrecognised unit",
	}
}

// ByProject groups by project. Entries referencing a project missing from
// names share the UnknownProject bucket instead of being dropped.
func ByProject(names map[string]string) Dimension {
	return byReference("project", names, UnknownProject, func(e domain.WorkEntry) string { return e.ProjectID })
}

// ByUser groups by owner, attributing missing owners to UnknownUser.
func ByUser(names map[string]string) Dimension {
	return byReference("user", names, UnknownUser, func(e domain.WorkEntry) string { return e.UserID })
}

func byReference(name string, names map[string]string, unknown string, ref func(domain.WorkEntry) string) Dimension {
	return Dimension{
		Name: name,
		Key: func(e domain.WorkEntry) (string, bool) {
			id := ref(e)
			if _, ok := names[id]; !ok {
				return unknownKey, true
			}
			return id, true
		},
		Label: func(key string) string {
			if n, ok := names[key]; ok {
				return n
			}
			return unknown
		},
	}
}

// OnlyUnit returns the entries of one unit kind, keeping their order.
func OnlyUnit(entries []domain.WorkEntry, unit domain.UnitKind) []domain.WorkEntry {
	out := make([]domain.WorkEntry, 0, len(entries))
	for _, e := range entries {
		if e.Unit == unit {
			out = append(out, e)
		}
	}
	return out
}
