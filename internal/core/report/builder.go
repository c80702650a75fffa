package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hrc-navate/worklog/internal/core/domain"
	"github.com/hrc-navate/worklog/internal/core/ports"
)

// ScopeAll requests every user's entries. Only administrators may use it.
const ScopeAll = "all"

// Request is the caller-supplied report scope and filter.
type Request struct {
	UserID    string `json:"user_id,omitempty" query:"user_id"`
	ProjectID string `json:"project_id,omitempty" query:"project_id"`
	Unit      string `json:"unit,omitempty" query:"unit"`
	Year      int    `json:"year,omitempty" query:"year"`
	Week      int    `json:"week,omitempty" query:"week"`
}

// Builder assembles report models from the entry, project and user stores.
type Builder struct {
	entries  ports.EntryRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	log      zerolog.Logger
	observe  func(Warning)
}

// Option customises a Builder.
type Option func(*Builder)

// WithWarningObserver registers a callback invoked for every data-quality warning.
func WithWarningObserver(fn func(Warning)) Option {
	return func(b *Builder) { b.observe = fn }
}

// NewBuilder returns a Builder reading from the given stores.
func NewBuilder(entries ports.EntryRepository, projects ports.ProjectRepository, users ports.UserRepository, log zerolog.Logger, opts ...Option) *Builder {
	b := &Builder{entries: entries, projects: projects, users: users, log: log}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ResolveScope decides whose entries the viewer gets. Non-administrators asking
// for anyone but themselves are refused rather than silently narrowed.
func ResolveScope(viewer domain.Viewer, requested string) (Scope, error) {
	if viewer.UserID == "" {
		return Scope{}, domain.ErrForbidden
	}
	requested = strings.TrimSpace(requested)
	switch {
	case requested == "":
		if viewer.IsAdmin {
			return Scope{All: true}, nil
		}
		return Scope{UserID: viewer.UserID}, nil
	case requested == viewer.UserID:
		return Scope{UserID: viewer.UserID}, nil
	case !viewer.IsAdmin:
		return Scope{}, domain.ErrForbidden
	case strings.EqualFold(requested, ScopeAll):
		return Scope{All: true}, nil
	default:
		return Scope{UserID: requested}, nil
	}
}

// Filter validates req and combines it with scope into a store filter.
func (req Request) Filter(scope Scope) (ports.EntryFilter, error) {
	f := ports.EntryFilter{ProjectID: strings.TrimSpace(req.ProjectID)}
	if !scope.All {
		f.UserID = scope.UserID
	}
	if req.Unit != "" {
		u, err := domain.ParseUnitKind(req.Unit)
		if err != nil {
			return f, fmt.Errorf("%w: %v", domain.ErrInvalidFilter, err)
		}
		f.Unit = u
	}
	if req.Year < 0 || req.Year > 9999 {
		return f, fmt.Errorf("%w: year %d out of range", domain.ErrInvalidFilter, req.Year)
	}
	if req.Week != 0 {
		if req.Year == 0 {
			return f, fmt.Errorf("%w: week requires year", domain.ErrInvalidFilter)
		}
		if req.Week < 1 || req.Week > domain.WeeksInISOYear(req.Year) {
			return f, fmt.Errorf("%w: week %d out of range", domain.ErrInvalidFilter, req.Week)
		}
	}
	f.ISOYear, f.ISOWeek = req.Year, req.Week
	return f, nil
}

// Build produces the report model for viewer. Every call reads the stores
// afresh.
func (b *Builder) Build(ctx context.Context, viewer domain.Viewer, req Request) (*Model, error) {
	scope, err := ResolveScope(viewer, req.UserID)
	if err != nil {
		b.log.Warn().Str("viewer", viewer.UserID).Str("requested", req.UserID).Msg("report scope refused")
		return nil, err
	}
	filter, err := req.Filter(scope)
	if err != nil {
		return nil, err
	}

	filtered, err := b.entries.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("build report: filtered entries: %w", err)
	}
	// Trend series deliberately ignore the year/week restriction.
	trend, err := b.entries.Find(ctx, filter.WithoutPeriod())
	if err != nil {
		return nil, fmt.Errorf("build report: trend entries: %w", err)
	}
	projects, err := b.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("build report: projects: %w", err)
	}
	users, err := b.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("build report: users: %w", err)
	}

	projectNames := make(map[string]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}
	userNames := make(map[string]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Name
	}

	m := Compose(filtered, trend, projectNames, userNames)
	m.Scope = scope
	m.Request = req

	for _, w := range m.Warnings {
		b.log.Warn().
			Str("entry_id", w.EntryID).
			Str("dimension", w.Dimension).
			Str("reason", w.Reason).
			Msg("data quality warning")
		if b.observe != nil {
			b.observe(w)
		}
	}
	b.log.Debug().
		Bool("all", scope.All).
		Str("user_id", scope.UserID).
		Int("entries", len(m.Entries)).
		Float64("total", m.Total).
		Msg("report built")
	return m, nil
}

// Compose runs every aggregation pass. filtered honours the full filter;
// trend is the same scope without the period restriction.
func Compose(filtered, trend []domain.WorkEntry, projectNames, userNames map[string]string) *Model {
	m := &Model{
		Entries:    filtered,
		Rows:       make([]Row, 0, len(filtered)),
		PerProject: []ProjectBreakdown{},
		PerUser:    []Breakdown{},
		Warnings:   []Warning{},
	}
	if m.Entries == nil {
		m.Entries = []domain.WorkEntry{}
	}
	var warnings warningSet

	total, hoursTotal, areaTotal := decimal.Zero, decimal.Zero, decimal.Zero
	projectIDs := make(map[string]struct{})
	for _, e := range filtered {
		amount := decimal.NewFromFloat(e.Amount)
		total = total.Add(amount)
		if e.ProjectID != "" {
			projectIDs[e.ProjectID] = struct{}{}
		}

		row := Row{
			EntryID:     e.ID,
			Date:        e.Date,
			UserID:      e.UserID,
			UserName:    userNames[e.UserID],
			ProjectID:   e.ProjectID,
			ProjectName: projectNames[e.ProjectID],
			Unit:        e.Unit,
			Amount:      e.Amount,
			Note:        e.Note,
		}
		if _, ok := userNames[e.UserID]; !ok {
			row.UserName = UnknownUser
			warnings.add(Warning{EntryID: e.ID, Dimension: "user", Reason: "unknown user"})
		}
		if _, ok := projectNames[e.ProjectID]; !ok {
			row.ProjectName = UnknownProject
			warnings.add(Warning{EntryID: e.ID, Dimension: "project", Reason: "unknown project"})
		}
		switch e.Unit {
		case domain.UnitHours:
			row.Hours = e.Amount
			hoursTotal = hoursTotal.Add(amount)
		case domain.UnitArea:
			row.Area = e.Amount
			areaTotal = areaTotal.Add(amount)
		}
		m.Rows = append(m.Rows, row)
	}
	m.Total = total.InexactFloat64()
	m.HoursTotal = hoursTotal.InexactFloat64()
	m.AreaTotal = areaTotal.InexactFloat64()
	m.ProjectCount = len(projectIDs)

	byDate, w := Aggregate(filtered, ByDate("date"))
	warnings.add(w...)
	m.DateSeries = byDate.Sorted().Series()

	hoursTrend, w := Aggregate(OnlyUnit(trend, domain.UnitHours), ByDate("hours_trend"))
	warnings.add(w...)
	m.HoursSeries = hoursTrend.Sorted().Series()

	areaTrend, w := Aggregate(OnlyUnit(trend, domain.UnitArea), ByDate("area_trend"))
	warnings.add(w...)
	m.AreaSeries = areaTrend.Sorted().Series()

	byUnit, w := Aggregate(filtered, ByUnit())
	warnings.add(w...)
	m.UnitSummary = byUnit.Series()

	for _, b := range splitByUnit(filtered, ByProject(projectNames)) {
		m.PerProject = append(m.PerProject, ProjectBreakdown{ProjectName: b.Name, Hours: b.Hours, Area: b.Area})
	}
	m.PerUser = append(m.PerUser, splitByUnit(filtered, ByUser(userNames))...)

	m.Warnings = append(m.Warnings, warnings.list...)
	return m
}

// splitByUnit groups entries by dim and reports hours and area per key, in
// first-encountered key order.
func splitByUnit(entries []domain.WorkEntry, dim Dimension) []Breakdown {
	all, _ := Aggregate(entries, dim)
	hours, _ := Aggregate(OnlyUnit(entries, domain.UnitHours), dim)
	area, _ := Aggregate(OnlyUnit(entries, domain.UnitArea), dim)

	out := make([]Breakdown, 0, all.Len())
	for _, k := range all.Keys() {
		out = append(out, Breakdown{
			Name:  all.Label(k),
			Hours: hours.Sum(k).InexactFloat64(),
			Area:  area.Sum(k).InexactFloat64(),
		})
	}
	return out
}

type warningSet struct {
	seen map[Warning]struct{}
	list []Warning
}

func (s *warningSet) add(ws ...Warning) {
	if s.seen == nil {
		s.seen = make(map[Warning]struct{})
	}
	for _, w := range ws {
		if _, dup := s.seen[w]; dup {
			continue
		}
		s.seen[w] = struct{}{}
		s.list = append(s.list, w)
	}
}
