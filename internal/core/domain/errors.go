package domain

import "errors"

var (
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrBootstrapAdmin     = errors.New("bootstrap administrator cannot be deleted")
	ErrAdminAccount       = errors.New("administrator accounts cannot be deleted")
	ErrProjectNotFound    = errors.New("project not found")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrDocumentTooLarge   = errors.New("document exceeds size limit")
	ErrInvalidName        = errors.New("name must not be empty")
	ErrInvalidAmount      = errors.New("amount must be a non-negative number")
	ErrInvalidUnit        = errors.New("unit must be HOURS or AREA")
	ErrInvalidDate        = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidFilter      = errors.New("invalid report filter")
	ErrNoteTooLong        = errors.New("note is too long")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrInvalidPassword    = errors.New("password is too short")
	ErrInvalidFormat      = errors.New("unsupported export format")
)
