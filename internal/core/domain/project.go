package domain

import (
	"strings"
	"time"
)

// Project is a named unit of work allocation.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DefaultUnit UnitKind  `json:"default_unit,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks the project invariants.
func (p Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	if p.DefaultUnit != "" && !p.DefaultUnit.Valid() {
		return ErrInvalidUnit
	}
	return nil
}
