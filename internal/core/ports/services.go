package ports

import (
	"context"
	"io"

	"github.com/hrc-navate/worklog/internal/core/domain"
)

// CreateUserInput carries the fields an administrator supplies for a new account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	IsAdmin  bool
}

// UserService manages accounts.
type UserService interface {
	Create(ctx context.Context, viewer domain.Viewer, in CreateUserInput) (*domain.User, error)
	List(ctx context.Context, viewer domain.Viewer) ([]domain.User, error)
	Get(ctx context.Context, viewer domain.Viewer, id string) (*domain.User, error)
	ResetPassword(ctx context.Context, viewer domain.Viewer, id, password string) error
	Delete(ctx context.Context, viewer domain.Viewer, id string) error
}

// ProjectInput carries editable project fields.
type ProjectInput struct {
	Name        string
	DefaultUnit string
}

// ProjectService manages projects. Mutations are administrator-only.
type ProjectService interface {
	Create(ctx context.Context, viewer domain.Viewer, in ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, viewer domain.Viewer, id string, in ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, viewer domain.Viewer, id string) (int64, error)
	List(ctx context.Context) ([]domain.Project, error)
	Entries(ctx context.Context, viewer domain.Viewer, id string) (*domain.Project, []domain.WorkEntry, error)
}

// EntryInput carries editable entry fields. UserID is only honoured for
// administrators logging work on behalf of someone else.
type EntryInput struct {
	UserID    string
	ProjectID string
	Date      string
	Amount    float64
	Unit      string
	Note      string
}

// EntryService manages work entries.
type EntryService interface {
	Create(ctx context.Context, viewer domain.Viewer, in EntryInput) (*domain.WorkEntry, error)
	Update(ctx context.Context, viewer domain.Viewer, id string, in EntryInput) (*domain.WorkEntry, error)
	Delete(ctx context.Context, viewer domain.Viewer, id string) error
	List(ctx context.Context, viewer domain.Viewer, filter EntryFilter) ([]domain.WorkEntry, error)
}

// UploadInput describes an incoming attachment.
type UploadInput struct {
	Filename    string
	ContentType string
}

// DocumentService manages uploaded attachments.
type DocumentService interface {
	Upload(ctx context.Context, viewer domain.Viewer, in UploadInput, body io.Reader) (*domain.Document, error)
	List(ctx context.Context, viewer domain.Viewer) ([]domain.Document, error)
	Delete(ctx context.Context, viewer domain.Viewer, id string) error
}
