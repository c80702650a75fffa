package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hrc-navate/worklog/internal/core/domain"
	"github.com/hrc-navate/worklog/internal/core/ports"
	"github.com/hrc-navate/worklog/internal/core/report"
)

// ModelBuilder produces report models. *report.Builder satisfies it.
type ModelBuilder interface {
	Build(ctx context.Context, viewer domain.Viewer, req report.Request) (*report.Model, error)
}

// DocumentRenderer turns a report model into a downloadable file.
type DocumentRenderer interface {
	Format() string
	ContentType() string
	Render(m *report.Model, generatedAt time.Time) ([]byte, error)
}

// ReportService serves dashboards and document exports.
type ReportService struct {
	builder   ModelBuilder
	renderers map[string]DocumentRenderer
	logger    zerolog.Logger
	now       func() time.Time
}

func NewReportService(builder ModelBuilder, logger zerolog.Logger, renderers ...DocumentRenderer) *ReportService {
	s := &ReportService{
		builder:   builder,
		renderers: make(map[string]DocumentRenderer, len(renderers)),
		logger:    logger,
		now:       time.Now,
	}
	for _, r := range renderers {
		s.renderers[r.Format()] = r
	}
	return s
}

func (s *ReportService) Dashboard(ctx context.Context, viewer domain.Viewer, req report.Request) (*report.Model, error) {
	return s.builder.Build(ctx, viewer, req)
}

// Export renders the report for req in the given format. The same scope and
// filter rules as Dashboard apply.
func (s *ReportService) Export(ctx context.Context, viewer domain.Viewer, req report.Request, format string) (*ports.ExportedDocument, error) {
	r, ok := s.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFormat, format)
	}
	m, err := s.builder.Build(ctx, viewer, req)
	if err != nil {
		return nil, err
	}
	body, err := r.Render(m, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}
	s.logger.Info().
		Str("viewer", viewer.UserID).
		Str("format", format).
		Int("rows", len(m.Rows)).
		Int("bytes", len(body)).
		Msg("report exported")
	return &ports.ExportedDocument{
		Filename:    report.Filename(m.Scope, m.Request, format),
		ContentType: r.ContentType(),
		Body:        body,
	}, nil
}
