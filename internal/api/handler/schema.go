package handler

import (
	"time"

	"github.com/hrc-navate/worklog/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// --- Users ---

type createUserRequest struct {
	Name     string `json:"name"            validate:"required,max=80"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password"        validate:"required,min=6"`
	IsAdmin  bool   `json:"is_admin"`
}

type passwordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// --- Projects ---

type projectRequest struct {
	Name        string `json:"name"                   validate:"required,max=120"`
	DefaultUnit string `json:"default_unit,omitempty" validate:"omitempty,unit"`
}

type projectDeletedResponse struct {
	EntriesRemoved int64 `json:"entries_removed"`
}

type projectDetailResponse struct {
	Project *domain.Project    `json:"project"`
	Entries []domain.WorkEntry `json:"entries"`
}

// --- Entries ---

type entryRequest struct {
	UserID    string  `json:"user_id,omitempty"`
	ProjectID string  `json:"project_id"       validate:"required"`
	Date      string  `json:"date"             validate:"required,datetime=2006-01-02"`
	Amount    float64 `json:"amount"           validate:"gte=0"`
	Unit      string  `json:"unit,omitempty"   validate:"omitempty,unit"`
	Note      string  `json:"note,omitempty"   validate:"max=200"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func newList[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Items: items, Count: len(items)}
}

// --- Health ---

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
	CheckedAt    time.Time                   `json:"checked_at"`
}
