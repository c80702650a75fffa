package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hrc-navate/worklog/internal/core/domain"
	"github.com/hrc-navate/worklog/internal/core/ports"
)

type EntryService struct {
	entries  ports.EntryRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewEntryService(entries ports.EntryRepository, projects ports.ProjectRepository, users ports.UserRepository, logger zerolog.Logger) *EntryService {
	return &EntryService{entries: entries, projects: projects, users: users, logger: logger}
}

// Create logs work for the viewer. Administrators may log on behalf of another
// user through in.UserID.
func (s *EntryService) Create(ctx context.Context, viewer domain.Viewer, in ports.EntryInput) (*domain.WorkEntry, error) {
	owner := viewer.UserID
	if in.UserID != "" && in.UserID != viewer.UserID {
		if !viewer.IsAdmin {
			return nil, domain.ErrForbidden
		}
		owner = in.UserID
	}
	if owner == "" {
		return nil, domain.ErrForbidden
	}
	if _, err := s.users.FindByID(ctx, owner); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	e := &domain.WorkEntry{UserID: owner, CreatedAt: now, UpdatedAt: now}
	if err := s.apply(ctx, e, in); err != nil {
		return nil, err
	}
	if err := s.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Debug().Str("entry_id", e.ID).Str("user_id", owner).Msg("entry created")
	return e, nil
}

// Update rewrites the editable fields. Concurrent edits are last-write-wins.
func (s *EntryService) Update(ctx context.Context, viewer domain.Viewer, id string, in ports.EntryInput) (*domain.WorkEntry, error) {
	e, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !viewer.CanAccess(e.UserID) {
		return nil, domain.ErrForbidden
	}
	if err := s.apply(ctx, e, in); err != nil {
		return nil, err
	}
	e.UpdatedAt = time.Now().UTC()
	if err := s.entries.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EntryService) Delete(ctx context.Context, viewer domain.Viewer, id string) error {
	e, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !viewer.CanAccess(e.UserID) {
		return domain.ErrForbidden
	}
	return s.entries.Delete(ctx, id)
}

// List returns entries matching filter. Non-administrators only ever see their
// own entries.
func (s *EntryService) List(ctx context.Context, viewer domain.Viewer, filter ports.EntryFilter) ([]domain.WorkEntry, error) {
	if viewer.UserID == "" {
		return nil, domain.ErrForbidden
	}
	if !viewer.IsAdmin {
		if filter.UserID != "" && filter.UserID != viewer.UserID {
			return nil, domain.ErrForbidden
		}
		filter.UserID = viewer.UserID
	}
	return s.entries.Find(ctx, filter)
}

// apply copies in onto e, resolving the unit from the project default when
// none is given, and validates the result.
func (s *EntryService) apply(ctx context.Context, e *domain.WorkEntry, in ports.EntryInput) error {
	project, err := s.projects.FindByID(ctx, in.ProjectID)
	if err != nil {
		return err
	}

	unit := project.DefaultUnit
	if strings.TrimSpace(in.Unit) != "" {
		if unit, err = domain.ParseUnitKind(in.Unit); err != nil {
			return err
		}
	}
	if unit == "" {
		unit = domain.UnitHours
	}

	e.ProjectID = project.ID
	e.Date = strings.TrimSpace(in.Date)
	e.Amount = in.Amount
	e.Unit = unit
	e.Note = strings.TrimSpace(in.Note)
	return e.Validate()
}
