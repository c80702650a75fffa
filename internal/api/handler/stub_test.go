package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrc-navate/worklog/internal/api/middleware"
	"github.com/hrc-navate/worklog/internal/core/domain"
	"github.com/hrc-navate/worklog/internal/core/ports"
	"github.com/hrc-navate/worklog/internal/core/report"
)

var (
	alice = domain.Viewer{UserID: "u1", DisplayName: "alice"}
	admin = domain.Viewer{UserID: "adm", DisplayName: "admin", IsAdmin: true}
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newContext builds an echo context as the Auth middleware would leave it.
// A zero viewer leaves the context unauthenticated.
func newContext(e *echo.Echo, method, target string, body io.Reader, viewer domain.Viewer) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if viewer.UserID != "" {
		c.Set(middleware.ViewerKey, viewer)
	}
	return c, rec
}

type stubAuthService struct {
	loginFn  func(ctx context.Context, name, password string) (string, *domain.User, error)
	logoutFn func(ctx context.Context, tokenID string, expiresAt time.Time) error
}

func (s *stubAuthService) Login(ctx context.Context, name, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, name, password)
}

func (s *stubAuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return s.logoutFn(ctx, tokenID, expiresAt)
}

type stubUserService struct {
	createFn func(ctx context.Context, viewer domain.Viewer, in ports.CreateUserInput) (*domain.User, error)
	listFn   func(ctx context.Context, viewer domain.Viewer) ([]domain.User, error)
	getFn    func(ctx context.Context, viewer domain.Viewer, id string) (*domain.User, error)
	resetFn  func(ctx context.Context, viewer domain.Viewer, id, password string) error
	deleteFn func(ctx context.Context, viewer domain.Viewer, id string) error
}

func (s *stubUserService) Create(ctx context.Context, viewer domain.Viewer, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, viewer, in)
}

func (s *stubUserService) List(ctx context.Context, viewer domain.Viewer) ([]domain.User, error) {
	return s.listFn(ctx, viewer)
}

func (s *stubUserService) Get(ctx context.Context, viewer domain.Viewer, id string) (*domain.User, error) {
	return s.getFn(ctx, viewer, id)
}

func (s *stubUserService) ResetPassword(ctx context.Context, viewer domain.Viewer, id, password string) error {
	return s.resetFn(ctx, viewer, id, password)
}

func (s *stubUserService) Delete(ctx context.Context, viewer domain.Viewer, id string) error {
	return s.deleteFn(ctx, viewer, id)
}

type stubProjectService struct {
	createFn  func(ctx context.Context, viewer domain.Viewer, in ports.ProjectInput) (*domain.Project, error)
	updateFn  func(ctx context.Context, viewer domain.Viewer, id string, in ports.ProjectInput) (*domain.Project, error)
	deleteFn  func(ctx context.Context, viewer domain.Viewer, id string) (int64, error)
	listFn    func(ctx context.Context) ([]domain.Project, error)
	entriesFn func(ctx context.Context, viewer domain.Viewer, id string) (*domain.Project, []domain.WorkEntry, error)
}

func (s *stubProjectService) Create(ctx context.Context, viewer domain.Viewer, in ports.ProjectInput) (*domain.Project, error) {
	return s.createFn(ctx, viewer, in)
}

func (s *stubProjectService) Update(ctx context.Context, viewer domain.Viewer, id string, in ports.ProjectInput) (*domain.Project, error) {
	return s.updateFn(ctx, viewer, id, in)
}

func (s *stubProjectService) Delete(ctx context.Context, viewer domain.Viewer, id string) (int64, error) {
	return s.deleteFn(ctx, viewer, id)
}

func (s *stubProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.listFn(ctx)
}

func (s *stubProjectService) Entries(ctx context.Context, viewer domain.Viewer, id string) (*domain.Project, []domain.WorkEntry, error) {
	return s.entriesFn(ctx, viewer, id)
}

type stubEntryService struct {
	createFn func(ctx context.Context, viewer domain.Viewer, in ports.EntryInput) (*domain.WorkEntry, error)
	updateFn func(ctx context.Context, viewer domain.Viewer, id string, in ports.EntryInput) (*domain.WorkEntry, error)
	deleteFn func(ctx context.Context, viewer domain.Viewer, id string) error
	listFn   func(ctx context.Context, viewer domain.Viewer, filter ports.EntryFilter) ([]domain.WorkEntry, error)
}

func (s *stubEntryService) Create(ctx context.Context, viewer domain.Viewer, in ports.EntryInput) (*domain.WorkEntry, error) {
	return s.createFn(ctx, viewer, in)
}

func (s *stubEntryService) Update(ctx context.Context, viewer domain.Viewer, id string, in ports.EntryInput) (*domain.WorkEntry, error) {
	return s.updateFn(ctx, viewer, id, in)
}

func (s *stubEntryService) Delete(ctx context.Context, viewer domain.Viewer, id string) error {
	return s.deleteFn(ctx, viewer, id)
}

func (s *stubEntryService) List(ctx context.Context, viewer domain.Viewer, filter ports.EntryFilter) ([]domain.WorkEntry, error) {
	return s.listFn(ctx, viewer, filter)
}

type stubDocumentService struct {
	uploadFn func(ctx context.Context, viewer domain.Viewer, in ports.UploadInput, body io.Reader) (*domain.Document, error)
	listFn   func(ctx context.Context, viewer domain.Viewer) ([]domain.Document, error)
	deleteFn func(ctx context.Context, viewer domain.Viewer, id string) error
}

func (s *stubDocumentService) Upload(ctx context.Context, viewer domain.Viewer, in ports.UploadInput, body io.Reader) (*domain.Document, error) {
	return s.uploadFn(ctx, viewer, in, body)
}

func (s *stubDocumentService) List(ctx context.Context, viewer domain.Viewer) ([]domain.Document, error) {
	return s.listFn(ctx, viewer)
}

func (s *stubDocumentService) Delete(ctx context.Context, viewer domain.Viewer, id string) error {
	return s.deleteFn(ctx, viewer, id)
}

type stubReportService struct {
	dashboardFn func(ctx context.Context, viewer domain.Viewer, req report.Request) (*report.Model, error)
	exportFn    func(ctx context.Context, viewer domain.Viewer, req report.Request, format string) (*ports.ExportedDocument, error)
}

func (s *stubReportService) Dashboard(ctx context.Context, viewer domain.Viewer, req report.Request) (*report.Model, error) {
	return s.dashboardFn(ctx, viewer, req)
}

func (s *stubReportService) Export(ctx context.Context, viewer domain.Viewer, req report.Request, format string) (*ports.ExportedDocument, error) {
	return s.exportFn(ctx, viewer, req, format)
}
