package report

import (
	"context"
	"errors"
	"sort"

	"github.com/hrc-navate/worklog/internal/core/domain"
	"github.com/hrc-navate/worklog/internal/core/ports"
)

type stubEntries struct {
	entries []domain.WorkEntry
	calls   []ports.EntryFilter
	err     error
}

func (s *stubEntries) Create(context.Context, *domain.WorkEntry) error { return errors.New("not used") }
func (s *stubEntries) Update(context.Context, *domain.WorkEntry) error { return errors.New("not used") }
func (s *stubEntries) Delete(context.Context, string) error            { return errors.New("not used") }
func (s *stubEntries) FindByID(context.Context, string) (*domain.WorkEntry, error) {
	return nil, domain.ErrEntryNotFound
}
func (s *stubEntries) DeleteByProject(context.Context, string) (int64, error) { return 0, nil }

// Find mirrors the Mongo query: field equality, inclusive date bounds, date descending.
func (s *stubEntries) Find(_ context.Context, f ports.EntryFilter) ([]domain.WorkEntry, error) {
	s.calls = append(s.calls, f)
	if s.err != nil {
		return nil, s.err
	}
	from, to, bounded := f.DateBounds()
	var out []domain.WorkEntry
	for _, e := range s.entries {
		if f.UserID != "" && e.UserID != f.UserID {
			continue
		}
		if f.ProjectID != "" && e.ProjectID != f.ProjectID {
			continue
		}
		if f.Unit != "" && e.Unit != f.Unit {
			continue
		}
		if bounded && (e.Date < from || e.Date > to) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

type stubProjects struct{ projects []domain.Project }

func (s *stubProjects) Create(context.Context, *domain.Project) error { return nil }
func (s *stubProjects) Update(context.Context, *domain.Project) error { return nil }
func (s *stubProjects) Delete(context.Context, string) error          { return nil }
func (s *stubProjects) FindByID(_ context.Context, id string) (*domain.Project, error) {
	for _, p := range s.projects {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}
func (s *stubProjects) List(context.Context) ([]domain.Project, error) { return s.projects, nil }

type stubUsers struct{ users []domain.User }

func (s *stubUsers) Create(context.Context, *domain.User) error { return nil }
func (s *stubUsers) FindByID(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (s *stubUsers) FindByName(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (s *stubUsers) FindBootstrap(context.Context) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (s *stubUsers) List(context.Context) ([]domain.User, error)      { return s.users, nil }
func (s *stubUsers) UpdatePassword(context.Context, string, string) error { return nil }
func (s *stubUsers) Delete(context.Context, string) error              { return nil }

func entry(id, user, project, date string, unit domain.UnitKind, amount float64) domain.WorkEntry {
	return domain.WorkEntry{ID: id, UserID: user, ProjectID: project, Date: date, Unit: unit, Amount: amount}
}
