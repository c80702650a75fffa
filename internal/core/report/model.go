package report

import (
	"github.com/hrc-navate/worklog/internal/core/domain"
)

// Series is an ordered list of labelled values, ready for charting.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Sum adds up the series values.
func (s Series) Sum() float64 {
	var total float64
	for _, v := range s.Values {
		total += v
	}
	return total
}

// Breakdown is one line of a per-project or per-user split by unit kind.
type Breakdown struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
	Area  float64 `json:"area"`
}

// ProjectBreakdown is the per-project hours/area split.
type ProjectBreakdown struct {
	ProjectName string  `json:"project_name"`
	Hours       float64 `json:"hours"`
	Area        float64 `json:"area"`
}

// Scope is the resolved set of users whose entries a report covers.
type Scope struct {
	All    bool   `json:"all"`
	UserID string `json:"user_id,omitempty"`
}

// Row is one entry as it appears in a document or table.
type Row struct {
	EntryID     string          `json:"entry_id"`
	Date        string          `json:"date"`
	UserID      string          `json:"user_id"`
	UserName    string          `json:"user_name"`
	ProjectID   string          `json:"project_id"`
	ProjectName string          `json:"project_name"`
	Unit        domain.UnitKind `json:"unit"`
	Amount      float64         `json:"amount"`
	Hours       float64         `json:"hours"`
	Area        float64         `json:"area"`
	Note        string          `json:"note,omitempty"`
}

// Model is the per-request report over a filtered set of entries.
type Model struct {
	Scope        Scope              `json:"scope"`
	Request      Request            `json:"filter"`
	Entries      []domain.WorkEntry `json:"entries"`
	Rows         []Row              `json:"rows"`
	Total        float64            `json:"total"`
	HoursTotal   float64            `json:"hours_total"`
	AreaTotal    float64            `json:"area_total"`
	ProjectCount int                `json:"project_count"`
	DateSeries   Series             `json:"date_series"`
	HoursSeries  Series             `json:"hours_series"`
	AreaSeries   Series             `json:"area_series"`
	UnitSummary  Series             `json:"unit_summary"`
	PerProject   []ProjectBreakdown `json:"per_project_breakdown"`
	PerUser      []Breakdown        `json:"per_user_breakdown"`
	Warnings     []Warning          `json:"warnings"`
}
