package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hrc-navate/worklog/internal/core/domain"
	"github.com/hrc-navate/worklog/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// BootstrapAdmin describes the administrator created on first start.
type BootstrapAdmin struct {
	Name     string
	Email    string
	Password string
}

// EnsureBootstrapAdmin creates the bootstrap administrator unless one already
// exists. An empty password is replaced by a random one, which is logged once.
func (s *UserService) EnsureBootstrapAdmin(ctx context.Context, in BootstrapAdmin) (*domain.User, bool, error) {
	existing, err := s.repo.FindBootstrap(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, err
	}

	if in.Name == "" {
		in.Name = "admin"
	}
	generated := in.Password == ""
	if generated {
		in.Password = strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	}
	user, err := s.create(ctx, ports.CreateUserInput{Name: in.Name, Email: in.Email, Password: in.Password, IsAdmin: true}, true)
	if err != nil {
		return nil, false, err
	}

	ev := s.logger.Warn().Str("name", user.Name)
	if generated {
		ev = ev.Str("password", in.Password)
	}
	ev.Msg("bootstrap administrator created")
	return user, true, nil
}

// CreateAdmin adds an administrator without a viewer, for operator tooling.
func (s *UserService) CreateAdmin(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	in.IsAdmin = true
	return s.create(ctx, in, false)
}

func (s *UserService) Create(ctx context.Context, viewer domain.Viewer, in ports.CreateUserInput) (*domain.User, error) {
	if !viewer.IsAdmin {
		return nil, domain.ErrForbidden
	}
	user, err := s.create(ctx, in, false)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("by", viewer.UserID).Str("user_id", user.ID).Bool("admin", user.IsAdmin).Msg("user created")
	return user, nil
}

func (s *UserService) create(ctx context.Context, in ports.CreateUserInput, bootstrap bool) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		IsAdmin:      in.IsAdmin,
		Bootstrap:    bootstrap,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, viewer domain.Viewer) ([]domain.User, error) {
	if !viewer.IsAdmin {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, viewer domain.Viewer, id string) (*domain.User, error) {
	if !viewer.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

// ResetPassword lets users change their own password and administrators
// change anyone's.
func (s *UserService) ResetPassword(ctx context.Context, viewer domain.Viewer, id, password string) error {
	if !viewer.CanAccess(id) {
		return domain.ErrForbidden
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}
	s.logger.Info().Str("by", viewer.UserID).Str("user_id", id).Msg("password reset")
	return nil
}

// Delete removes a non-admin account. Entries of deleted users are kept
// and reported as belonging to an unknown user.
func (s *UserService) Delete(ctx context.Context, viewer domain.Viewer, id string) error {
	if !viewer.IsAdmin {
		return domain.ErrForbidden
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Bootstrap {
		return domain.ErrBootstrapAdmin
	}
	if user.IsAdmin {
		return domain.ErrAdminAccount
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("by", viewer.UserID).Str("user_id", id).Msg("user deleted")
	return nil
}
