package export

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/hrc-navate/worklog/internal/core/report"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	entriesSheet = "Entries"
	summarySheet = "Summary"
)

var entryColumns = []string{"User", "Date", "Amount", "Unit", "Project", "Note"}

// XLSXRenderer writes a report model as a two-sheet workbook. Spreadsheets are
// not paginated.
type XLSXRenderer struct {
	log zerolog.Logger
}

func NewXLSXRenderer(log zerolog.Logger) *XLSXRenderer {
	return &XLSXRenderer{log: log}
}

func (r *XLSXRenderer) Format() string      { return "xlsx" }
func (r *XLSXRenderer) ContentType() string { return xlsxContentType }

// Render produces the workbook bytes for m.
func (r *XLSXRenderer) Render(m *report.Model, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			r.log.Warn().Err(err).Msg("close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", entriesSheet); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	if err := writeEntries(f, m, bold); err != nil {
		return nil, fmt.Errorf("render xlsx: entries: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	if err := writeSummary(f, m, bold, generatedAt); err != nil {
		return nil, fmt.Errorf("render xlsx: summary: %w", err)
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	r.log.Debug().Int("rows", len(m.Rows)).Msg("xlsx rendered")
	return buf.Bytes(), nil
}

func writeEntries(f *excelize.File, m *report.Model, bold int) error {
	header := make([]interface{}, len(entryColumns))
	for i, c := range entryColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(entriesSheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(entriesSheet, "A1", "F1", bold); err != nil {
		return err
	}
	for i, row := range m.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.UserName, row.Date, row.Amount, row.Unit.Label(), row.ProjectName, row.Note}
		if err := f.SetSheetRow(entriesSheet, cell, &values); err != nil {
			return err
		}
	}
	for col, width := range map[string]float64{"A": 18, "B": 12, "C": 10, "D": 8, "E": 24, "F": 48} {
		if err := f.SetColWidth(entriesSheet, col, col, width); err != nil {
			return err
		}
	}
	return f.SetPanes(entriesSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeSummary(f *excelize.File, m *report.Model, bold int, generatedAt time.Time) error {
	w := &sheetWriter{f: f, sheet: summarySheet, bold: bold}

	w.row(true, "Generated", generatedAt.UTC().Format(time.RFC3339))
	w.row(true, "Entries", len(m.Rows))
	w.row(true, "Projects", m.ProjectCount)
	w.row(true, "Hours total", m.HoursTotal)
	w.row(true, "Area total", m.AreaTotal)
	w.skip()

	w.row(true, "Project", "Hours", "Area")
	for _, p := range m.PerProject {
		w.row(false, p.ProjectName, p.Hours, p.Area)
	}
	w.skip()

	w.row(true, "User", "Hours", "Area")
	for _, u := range m.PerUser {
		w.row(false, u.Name, u.Hours, u.Area)
	}
	if w.err != nil {
		return w.err
	}
	return f.SetColWidth(summarySheet, "A", "A", 24)
}

// sheetWriter appends rows and keeps the first error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	bold  int
	next  int
	err   error
}

func (w *sheetWriter) skip() { w.next++ }

func (w *sheetWriter) row(header bool, values ...interface{}) {
	if w.err != nil {
		return
	}
	w.next++
	cell, err := excelize.CoordinatesToCellName(1, w.next)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(w.sheet, cell, &values); err != nil {
		w.err = err
		return
	}
	if header {
		w.err = w.f.SetCellStyle(w.sheet, cell, cell, w.bold)
	}
}
