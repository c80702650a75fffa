package domain

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the storage format of WorkEntry.Date. It sorts lexicographically
// in chronological order.
const DateLayout = "2006-01-02"

// MaxNoteLength bounds WorkEntry.Note, counted in runes.
const MaxNoteLength = 200

// UnitKind tags what an entry's amount measures.
type UnitKind string

const (
	UnitHours UnitKind = "HOURS"
	UnitArea  UnitKind = "AREA"
)

// ParseUnitKind accepts the canonical names plus the aliases older clients send.
func ParseUnitKind(s string) (UnitKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hours", "hour", "h", "hodiny":
		return UnitHours, nil
	case "area", "m2", "m²", "sqm":
		return UnitArea, nil
	}
	return "", ErrInvalidUnit
}

// Valid reports whether u is one of the two fixed unit kinds.
func (u UnitKind) Valid() bool {
	return u == UnitHours || u == UnitArea
}

// Label is the human readable name used in charts and documents.
func (u UnitKind) Label() string {
	switch u {
	case UnitHours:
		return "Hours"
	case UnitArea:
		return "Area"
	default:
		return "Unknown"
	}
}

// WorkEntry is one logged unit of work.
type WorkEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProjectID string    `json:"project_id"`
	Date      string    `json:"date"`
	Amount    float64   `json:"amount"`
	Unit      UnitKind  `json:"unit"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasDate reports whether the entry carries a calendar day.
func (e WorkEntry) HasDate() bool {
	return e.Date != ""
}

// Validate checks the invariants every stored entry must satisfy. Reference
// checks (user, project) belong to the service layer.
func (e WorkEntry) Validate() error {
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) || e.Amount < 0 {
		return ErrInvalidAmount
	}
	if !e.Unit.Valid() {
		return ErrInvalidUnit
	}
	if _, err := ParseDate(e.Date); err != nil {
		return err
	}
	if utf8.RuneCountInString(e.Note) > MaxNoteLength {
		return ErrNoteTooLong
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
