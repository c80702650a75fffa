package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hrc-navate/worklog/internal/core/domain"
	"github.com/hrc-navate/worklog/internal/core/ports"
)

// sniffLen is how much of an upload is inspected to detect its content type.
const sniffLen = 3072

// DocumentService stores uploaded attachments. Documents take no part in
// reporting.
type DocumentService struct {
	repo   ports.DocumentRepository
	blobs  ports.BlobStore
	logger zerolog.Logger
}

func NewDocumentService(repo ports.DocumentRepository, blobs ports.BlobStore, logger zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, blobs: blobs, logger: logger}
}

func (s *DocumentService) Upload(ctx context.Context, viewer domain.Viewer, in ports.UploadInput, body io.Reader) (*domain.Document, error) {
	if viewer.UserID == "" {
		return nil, domain.ErrForbidden
	}
	filename := filepath.Base(strings.TrimSpace(in.Filename))
	if filename == "." || filename == string(filepath.Separator) || filename == "" {
		return nil, domain.ErrInvalidName
	}

	contentType := in.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		head := make([]byte, sniffLen)
		n, err := io.ReadFull(body, head)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return nil, fmt.Errorf("read document: %w", err)
		}
		head = head[:n]
		contentType = mimetype.Detect(head).String()
		body = io.MultiReader(bytes.NewReader(head), body)
	}

	stored := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	size, err := s.blobs.Put(ctx, stored, body)
	if err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	doc := &domain.Document{
		UserID:      viewer.UserID,
		Filename:    filename,
		StoredName:  stored,
		ContentType: contentType,
		Size:        size,
		UploadedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		if rmErr := s.blobs.Remove(ctx, stored); rmErr != nil {
			s.logger.Error().Err(rmErr).Str("stored_name", stored).Msg("orphaned document blob")
		}
		return nil, err
	}
	s.logger.Info().Str("user_id", viewer.UserID).Str("document_id", doc.ID).Int64("size", size).Msg("document uploaded")
	return doc, nil
}

// List returns the viewer's documents, or all of them for administrators.
func (s *DocumentService) List(ctx context.Context, viewer domain.Viewer) ([]domain.Document, error) {
	switch {
	case viewer.IsAdmin:
		return s.repo.List(ctx)
	case viewer.UserID != "":
		return s.repo.ListByUser(ctx, viewer.UserID)
	default:
		return nil, domain.ErrForbidden
	}
}

func (s *DocumentService) Delete(ctx context.Context, viewer domain.Viewer, id string) error {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !viewer.CanAccess(doc.UserID) {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.blobs.Remove(ctx, doc.StoredName); err != nil {
		s.logger.Warn().Err(err).Str("stored_name", doc.StoredName).Msg("remove document blob")
	}
	return nil
}
