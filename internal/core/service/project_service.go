package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hrc-navate/worklog/internal/core/domain"
	"github.com/hrc-navate/worklog/internal/core/ports"
)

type ProjectService struct {
	projects ports.ProjectRepository
	entries  ports.EntryRepository
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, entries ports.EntryRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, entries: entries, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, viewer domain.Viewer, in ports.ProjectInput) (*domain.Project, error) {
	if !viewer.IsAdmin {
		return nil, domain.ErrForbidden
	}
	now := time.Now().UTC()
	p := &domain.Project{CreatedAt: now, UpdatedAt: now}
	if err := applyProjectInput(p, in); err != nil {
		return nil, err
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info().Str("by", viewer.UserID).Str("project_id", p.ID).Msg("project created")
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, viewer domain.Viewer, id string, in ports.ProjectInput) (*domain.Project, error) {
	if !viewer.IsAdmin {
		return nil, domain.ErrForbidden
	}
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyProjectInput(p, in); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the project together with all of its entries and returns the
// number of entries removed.
func (s *ProjectService) Delete(ctx context.Context, viewer domain.Viewer, id string) (int64, error) {
	if !viewer.IsAdmin {
		return 0, domain.ErrForbidden
	}
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		return 0, err
	}
	removed, err := s.entries.DeleteByProject(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return removed, err
	}
	s.logger.Info().Str("by", viewer.UserID).Str("project_id", id).Int64("entries_removed", removed).Msg("project deleted")
	return removed, nil
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

// Entries returns a project with every entry logged against it.
func (s *ProjectService) Entries(ctx context.Context, viewer domain.Viewer, id string) (*domain.Project, []domain.WorkEntry, error) {
	if !viewer.IsAdmin {
		return nil, nil, domain.ErrForbidden
	}
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.entries.Find(ctx, ports.EntryFilter{ProjectID: id})
	if err != nil {
		return nil, nil, err
	}
	return p, entries, nil
}

func applyProjectInput(p *domain.Project, in ports.ProjectInput) error {
	p.Name = strings.TrimSpace(in.Name)
	p.DefaultUnit = ""
	if in.DefaultUnit != "" {
		u, err := domain.ParseUnitKind(in.DefaultUnit)
		if err != nil {
			return err
		}
		p.DefaultUnit = u
	}
	return p.Validate()
}
