package ports

import (
	"context"

	"github.com/hrc-navate/worklog/internal/core/domain"
)

// EntryFilter carries the retrieval criteria for work entries. Zero values mean
// "no restriction". ISOWeek is only meaningful together with ISOYear.
type EntryFilter struct {
	UserID    string // empty = every user (admin scope)
	ProjectID string
	Unit      domain.UnitKind
	ISOYear   int
	ISOWeek   int
}

// WithoutPeriod drops the year/week restriction, keeping user/project/unit.
func (f EntryFilter) WithoutPeriod() EntryFilter {
	f.ISOYear, f.ISOWeek = 0, 0
	return f
}

// DateBounds returns the inclusive YYYY-MM-DD bounds implied by the year/week
// restriction, or ok=false when there is none.
func (f EntryFilter) DateBounds() (from, to string, ok bool) {
	if f.ISOYear == 0 {
		return "", "", false
	}
	if f.ISOWeek > 0 {
		mon, sun := domain.ISOWeekRange(f.ISOYear, f.ISOWeek)
		return mon.Format(domain.DateLayout), sun.Format(domain.DateLayout), true
	}
	first, last := domain.ISOYearRange(f.ISOYear)
	return first.Format(domain.DateLayout), last.Format(domain.DateLayout), true
}

// EntryRepository is the Entry Store.
type EntryRepository interface {
	Create(ctx context.Context, e *domain.WorkEntry) error
	Update(ctx context.Context, e *domain.WorkEntry) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.WorkEntry, error)
	// Find returns matching entries ordered by date descending. Entries without
	// a date sort last.
	Find(ctx context.Context, filter EntryFilter) ([]domain.WorkEntry, error)
	// DeleteByProject removes every entry of a project and reports how many.
	DeleteByProject(ctx context.Context, projectID string) (int64, error)
}
