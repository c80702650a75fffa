// Package export renders report models into downloadable documents.
package export

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"

	"github.com/hrc-navate/worklog/internal/core/report"
)

const (
	pdfContentType = "application/pdf"

	pageWidth   = 210.0
	sideMargin  = 15.0
	cellPadding = 1.5
	fontSize    = 9.0
	titleSize   = 14.0

	utf8Family = "worklog"
	coreFamily = "Helvetica"
)

// columnWidths follow report.Columns and add up to the printable width.
var columnWidths = []float64{22, 30, 40, 18, 18, 52}

// sectionNameWidth spans the Date, User and Project columns.
const sectionNameWidth = 92.0

// PDFConfig configures the PDF renderer.
type PDFConfig struct {
	Title string
	// FontPath optionally points at a TrueType font with full Unicode coverage.
	// Without it, text is reduced to ASCII and drawn with the core fonts.
	FontPath string
	Layout   report.Layout
}

// PDFRenderer draws a report model as a paginated A4 document.
type PDFRenderer struct {
	cfg  PDFConfig
	log  zerolog.Logger
	font []byte // validated TTF; nil means core fonts
}

func NewPDFRenderer(cfg PDFConfig, log zerolog.Logger) (*PDFRenderer, error) {
	if cfg.Layout == (report.Layout{}) {
		cfg.Layout = report.A4Layout()
	}
	if err := cfg.Layout.Validate(); err != nil {
		return nil, err
	}
	if cfg.Title == "" {
		cfg.Title = "Work report"
	}
	r := &PDFRenderer{cfg: cfg, log: log}
	if cfg.FontPath != "" {
		font, err := readFont(cfg.FontPath)
		if err != nil {
			log.Warn().Err(err).Str("font", cfg.FontPath).Msg("unicode font unavailable, falling back to core fonts")
		} else {
			r.font = font
		}
	}
	return r, nil
}

func (r *PDFRenderer) Format() string      { return "pdf" }
func (r *PDFRenderer) ContentType() string { return pdfContentType }

// Render produces the PDF bytes for m.
func (r *PDFRenderer) Render(m *report.Model, generatedAt time.Time) ([]byte, error) {
	out, res, err := r.render(m, generatedAt)
	if err != nil {
		return nil, err
	}
	r.log.Debug().Int("pages", res.Pages).Int("rows", res.Totals.Rows).Msg("pdf rendered")
	return out, nil
}

func (r *PDFRenderer) render(m *report.Model, generatedAt time.Time) ([]byte, report.Result, error) {
	canvas := r.newCanvas()
	res := report.NewPaginator(r.cfg.Layout, canvas).Render(report.Document{
		Title:       r.title(m),
		GeneratedAt: generatedAt,
		Rows:        m.Rows,
		Sections:    sections(m),
	})

	var buf bytes.Buffer
	if err := canvas.pdf.Output(&buf); err != nil {
		return nil, res, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), res, nil
}

func (r *PDFRenderer) title(m *report.Model) string {
	switch {
	case m.Scope.All:
		return r.cfg.Title + " - all users"
	case len(m.Rows) > 0:
		return r.cfg.Title + " - " + m.Rows[0].UserName
	default:
		return r.cfg.Title + " - user " + m.Scope.UserID
	}
}

// sections lists the subtotal tables printed after the summary. Per-user
// subtotals only make sense when the report spans several users.
func sections(m *report.Model) []report.Section {
	projects := make([]report.Breakdown, 0, len(m.PerProject))
	for _, p := range m.PerProject {
		projects = append(projects, report.Breakdown{Name: p.ProjectName, Hours: p.Hours, Area: p.Area})
	}
	out := []report.Section{{Title: "Per project", Lines: projects}}
	if m.Scope.All {
		out = append(out, report.Section{Title: "Per user", Lines: m.PerUser})
	}
	return out
}

// newCanvas prefers the configured Unicode font and degrades to the core
// fonts plus diacritic stripping when it cannot be used.
func (r *PDFRenderer) newCanvas() *pdfCanvas {
	if r.font != nil {
		pdf, err := newUTF8Document(r.font)
		if err == nil {
			return &pdfCanvas{pdf: pdf, layout: r.cfg.Layout, family: utf8Family, text: identity}
		}
		r.log.Warn().Err(err).Str("font", r.cfg.FontPath).Msg("unicode font unavailable, falling back to core fonts")
	}
	return &pdfCanvas{pdf: newDocument(), layout: r.cfg.Layout, family: coreFamily, text: report.StripDiacritics}
}

func newDocument() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(sideMargin, 0, sideMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("worklog", false)
	return pdf
}

// readFont loads path and checks that fpdf can actually select it.
func readFont(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if _, err := newUTF8Document(data); err != nil {
		return nil, err
	}
	return data, nil
}

// newUTF8Document registers data as the regular and bold face. fpdf only
// logs some parse failures, so the family is selected once to surface them.
func newUTF8Document(data []byte) (pdf *fpdf.Fpdf, err error) {
	// The TTF parser panics on some malformed files.
	defer func() {
		if rec := recover(); rec != nil {
			pdf, err = nil, fmt.Errorf("parse font: %v", rec)
		}
	}()
	pdf = newDocument()
	pdf.AddUTF8FontFromBytes(utf8Family, "", data)
	pdf.AddUTF8FontFromBytes(utf8Family, "B", data)
	pdf.SetFont(utf8Family, "", fontSize)
	pdf.SetFont(utf8Family, "B", fontSize)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return pdf, nil
}

func identity(s string) string { return s }

// pdfCanvas implements report.Canvas on top of fpdf.
type pdfCanvas struct {
	pdf    *fpdf.Fpdf
	layout report.Layout
	family string
	text   func(string) string
}

func (c *pdfCanvas) AddPage(number int) {
	c.pdf.AddPage()
	c.pdf.SetFont(c.family, "", fontSize-1)
	c.pdf.SetXY(sideMargin, c.layout.PageHeight-c.layout.BottomMargin+4)
	c.pdf.CellFormat(pageWidth-2*sideMargin, 5, fmt.Sprintf("Page %d", number), "", 0, "R", false, 0, "")
}

func (c *pdfCanvas) Banner(y float64, title string, generatedAt time.Time) {
	c.pdf.SetXY(sideMargin, y)
	c.pdf.SetFont(c.family, "B", titleSize)
	c.pdf.CellFormat(pageWidth-2*sideMargin, 9, c.text(title), "", 2, "L", false, 0, "")
	c.pdf.SetFont(c.family, "", fontSize)
	c.pdf.CellFormat(pageWidth-2*sideMargin, 6, "Generated "+generatedAt.Format("2006-01-02 15:04 MST"), "", 0, "L", false, 0, "")
}

func (c *pdfCanvas) Header(y float64, columns []string) {
	c.pdf.SetFont(c.family, "B", fontSize)
	c.pdf.SetFillColor(230, 230, 230)
	c.pdf.SetXY(sideMargin, y)
	for i, col := range columns {
		c.pdf.CellFormat(columnWidths[i], c.layout.HeaderHeight, c.text(col), "1", 0, "L", true, 0, "")
	}
}

func (c *pdfCanvas) Row(y float64, row report.Row) {
	c.pdf.SetFont(c.family, "", fontSize)
	cells := []struct {
		text  string
		align string
	}{
		{row.Date, "L"},
		{row.UserName, "L"},
		{row.ProjectName, "L"},
		{report.FormatAmountOrBlank(row.Hours), "R"},
		{report.FormatAmountOrBlank(row.Area), "R"},
		{report.TruncateNote(row.Note, 60), "L"},
	}
	c.pdf.SetXY(sideMargin, y)
	for i, cell := range cells {
		w := columnWidths[i]
		c.pdf.CellFormat(w, c.layout.RowPitch, c.fit(c.text(cell.text), w-2*cellPadding), "B", 0, cell.align, false, 0, "")
	}
}

func (c *pdfCanvas) Summary(y float64, totals report.Totals) {
	width := pageWidth - 2*sideMargin
	c.pdf.SetXY(sideMargin, y+2)
	c.pdf.SetFont(c.family, "B", fontSize+1)
	c.pdf.CellFormat(width, 6, "Summary", "T", 2, "L", false, 0, "")
	c.pdf.SetFont(c.family, "", fontSize)
	c.pdf.CellFormat(width, 5, fmt.Sprintf("Entries: %d", totals.Rows), "", 2, "L", false, 0, "")
	c.pdf.CellFormat(width, 5, fmt.Sprintf("Hours: %s    Area (m2): %s",
		report.FormatAmount(totals.Hours), report.FormatAmount(totals.Area)), "", 0, "L", false, 0, "")
}

func (c *pdfCanvas) SectionTitle(y float64, title string) {
	c.pdf.SetXY(sideMargin, y)
	c.pdf.SetFont(c.family, "B", fontSize)
	c.pdf.CellFormat(sectionNameWidth, c.layout.HeaderHeight, c.text(title), "B", 0, "L", false, 0, "")
	c.pdf.CellFormat(columnWidths[3], c.layout.HeaderHeight, "Hours", "B", 0, "R", false, 0, "")
	c.pdf.CellFormat(columnWidths[4], c.layout.HeaderHeight, "Area", "B", 0, "R", false, 0, "")
}

func (c *pdfCanvas) SectionLine(y float64, line report.Breakdown) {
	c.pdf.SetXY(sideMargin, y)
	c.pdf.SetFont(c.family, "", fontSize)
	c.pdf.CellFormat(sectionNameWidth, c.layout.RowPitch, c.fit(c.text(line.Name), sectionNameWidth-2*cellPadding), "", 0, "L", false, 0, "")
	c.pdf.CellFormat(columnWidths[3], c.layout.RowPitch, report.FormatAmount(line.Hours), "", 0, "R", false, 0, "")
	c.pdf.CellFormat(columnWidths[4], c.layout.RowPitch, report.FormatAmount(line.Area), "", 0, "R", false, 0, "")
}

// fit shortens s until it fits into width on a single line.
func (c *pdfCanvas) fit(s string, width float64) string {
	if c.pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		cut := string(runes[:n]) + "..."
		if c.pdf.GetStringWidth(cut) <= width {
			return cut
		}
	}
	return ""
}
