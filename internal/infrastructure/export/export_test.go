package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hrc-navate/worklog/internal/core/domain"
	"github.com/hrc-navate/worklog/internal/core/report"
)

var generatedAt = time.Date(2024, time.March, 4, 10, 30, 0, 0, time.UTC)

func sampleModel(n int) *report.Model {
	entries := make([]domain.WorkEntry, 0, n)
	for i := 0; i < n; i++ {
		e := domain.WorkEntry{
			ID:        string(rune('a' + i%26)),
			UserID:    "u1",
			ProjectID: "p1",
			Date:      "2024-01-01",
			Amount:    1.5,
			Unit:      domain.UnitHours,
			Note:      "Údržba strechy – južná strana, výmena plechov a tesnení okolo komína",
		}
		if i%2 == 1 {
			e.ProjectID, e.Unit, e.Amount = "p2", domain.UnitArea, 12
		}
		entries = append(entries, e)
	}
	m := report.Compose(entries, entries,
		map[string]string{"p1": "Strecha Žilina", "p2": "Fasáda"},
		map[string]string{"u1": "Ľubomír"})
	m.Scope = report.Scope{UserID: "u1"}
	return m
}

func TestPDFRenderer_CoreFontFallback(t *testing.T) {
	r, err := NewPDFRenderer(PDFConfig{Title: "Výkaz", FontPath: filepath.Join(t.TempDir(), "missing.ttf")}, zerolog.Nop())
	require.NoError(t, err)

	out, res, err := r.render(sampleModel(80), generatedAt)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Equal(t, 3, res.Pages)
	assert.Equal(t, res.Pages, res.Headers)
	assert.Equal(t, report.Totals{Rows: 80, Hours: 60, Area: 480}, res.Totals)
}

func TestPDFRenderer_BrokenFontDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o600))
	var logs bytes.Buffer
	r, err := NewPDFRenderer(PDFConfig{FontPath: path}, zerolog.New(&logs))
	require.NoError(t, err)
	assert.Nil(t, r.font)
	assert.Contains(t, logs.String(), "falling back to core fonts")

	for _, m := range []*report.Model{sampleModel(3), report.Compose(nil, nil, nil, nil)} {
		out, err := r.Render(m, generatedAt)

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	}
}

func TestPDFRenderer_SubtotalSections(t *testing.T) {
	m := sampleModel(4)
	assert.Equal(t, []string{"Per project"}, sectionTitles(sections(m)))

	m.Scope = report.Scope{All: true}
	got := sections(m)
	require.Equal(t, []string{"Per project", "Per user"}, sectionTitles(got))
	assert.Len(t, got[0].Lines, len(m.PerProject))
	assert.Equal(t, m.PerUser, got[1].Lines)

	r, err := NewPDFRenderer(PDFConfig{}, zerolog.Nop())
	require.NoError(t, err)
	out, res, err := r.render(m, generatedAt)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Equal(t, res.Pages, res.Headers)
}

func sectionTitles(ss []report.Section) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.Title)
	}
	return out
}

func TestPDFRenderer_EmptyModel(t *testing.T) {
	r, err := NewPDFRenderer(PDFConfig{}, zerolog.Nop())
	require.NoError(t, err)

	_, res, err := r.render(report.Compose(nil, nil, nil, nil), generatedAt)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "pdf", r.Format())
	assert.Equal(t, "application/pdf", r.ContentType())
}

func TestNewPDFRenderer_RejectsBadLayout(t *testing.T) {
	_, err := NewPDFRenderer(PDFConfig{Layout: report.Layout{PageHeight: 10, RowPitch: 20}}, zerolog.Nop())
	assert.Error(t, err)
}

func TestXLSXRenderer_Sheets(t *testing.T) {
	r := NewXLSXRenderer(zerolog.Nop())

	out, err := r.Render(sampleModel(4), generatedAt)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Entries", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Entries")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"User", "Date", "Amount", "Unit", "Project", "Note"}, rows[0])
	assert.Equal(t, "Ľubomír", rows[1][0])
	assert.Equal(t, "Hours", rows[1][3])
	assert.Equal(t, "Strecha Žilina", rows[1][4])
	assert.Equal(t, "Area", rows[2][3])

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, []string{"Entries", "4"}, summary[1])
	assert.Equal(t, []string{"Project", "Hours", "Area"}, summary[6])
	assert.Equal(t, "Strecha Žilina", summary[7][0])
	assert.Equal(t, "Fasáda", summary[8][0])
}
