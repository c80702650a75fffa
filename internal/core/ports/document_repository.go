package ports

import (
	"context"
	"io"

	"github.com/hrc-navate/worklog/internal/core/domain"
)

// DocumentRepository stores attachment metadata.
type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) error
	FindByID(ctx context.Context, id string) (*domain.Document, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
	Delete(ctx context.Context, id string) error
}

// BlobStore keeps the uploaded bytes.
type BlobStore interface {
	Put(ctx context.Context, name string, r io.Reader) (int64, error)
	Remove(ctx context.Context, name string) error
}
