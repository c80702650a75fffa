package report

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrc-navate/worklog/internal/core/domain"
)

// Columns is the header row repeated at the top of every page.
var Columns = []string{"Date", "User", "Project", "Hours", "Area", "Note"}

const fitEpsilon = 1e-9

// Layout fixes the vertical geometry of a page, in the canvas' units.
//
// The banner band is reserved on every page so that all pages hold the same
// number of rows; the title block is drawn into it on the first page only.
type Layout struct {
	PageHeight    float64
	TopMargin     float64
	BannerHeight  float64
	HeaderHeight  float64
	RowPitch      float64
	BottomMargin  float64
	SummaryHeight float64
}

// A4Layout is the portrait A4 geometry in millimetres.
func A4Layout() Layout {
	return Layout{
		PageHeight:    297,
		TopMargin:     15,
		BannerHeight:  22,
		HeaderHeight:  8,
		RowPitch:      7,
		BottomMargin:  15,
		SummaryHeight: 20,
	}
}

func (l Layout) bodyTop() float64 { return l.TopMargin + l.BannerHeight + l.HeaderHeight }

func (l Layout) limit() float64 { return l.PageHeight - l.BottomMargin }

// Capacity is the number of rows a page holds.
func (l Layout) Capacity() int {
	if l.RowPitch <= 0 {
		return 0
	}
	return int(math.Floor((l.limit()-l.bodyTop())/l.RowPitch + fitEpsilon))
}

// Validate rejects geometries that could never make progress.
func (l Layout) Validate() error {
	if l.Capacity() < 1 {
		return errors.New("layout: page cannot hold a single row")
	}
	if l.SummaryHeight > l.limit()-l.bodyTop()+fitEpsilon {
		return errors.New("layout: summary block does not fit on an empty page")
	}
	if l.HeaderHeight+l.RowPitch > l.limit()-l.bodyTop()+fitEpsilon {
		return errors.New("layout: section title and first line do not fit on an empty page")
	}
	return nil
}

// Totals are the running sums carried across the whole document.
type Totals struct {
	Rows  int
	Hours float64
	Area  float64
}

// Canvas is the drawing back end driven by the Paginator.
type Canvas interface {
	AddPage(number int)
	Banner(y float64, title string, generatedAt time.Time)
	Header(y float64, columns []string)
	Row(y float64, row Row)
	Summary(y float64, totals Totals)
	SectionTitle(y float64, title string)
	SectionLine(y float64, line Breakdown)
}

// Section is a subtotal table printed after the summary, e.g. per project.
type Section struct {
	Title string
	Lines []Breakdown
}

// Document is the content handed to the Paginator.
type Document struct {
	Title       string
	GeneratedAt time.Time
	Rows        []Row
	Sections    []Section
}

// Result describes what the Paginator produced.
type Result struct {
	Pages   int
	Headers int
	Totals  Totals
}

type pageState int

const (
	statePageOpen pageState = iota
	stateRowEmitted
	statePageFull
)

// Paginator flows rows onto fixed-size pages. Page breaks depend only on the
// remaining vertical space, never on a row count.
type Paginator struct {
	layout  Layout
	canvas  Canvas
	state   pageState
	page    int
	headers int
	y       float64
}

// NewPaginator returns a Paginator drawing onto canvas.
func NewPaginator(layout Layout, canvas Canvas) *Paginator {
	return &Paginator{layout: layout, canvas: canvas}
}

// Render lays out doc and returns page and total statistics.
func (p *Paginator) Render(doc Document) Result {
	p.page, p.headers = 0, 0
	p.openPage()
	p.canvas.Banner(p.layout.TopMargin, doc.Title, doc.GeneratedAt)

	hours, area := decimal.Zero, decimal.Zero
	for _, row := range doc.Rows {
		p.canvas.Row(p.place(p.layout.RowPitch, 0), row)

		switch row.Unit {
		case domain.UnitHours:
			hours = hours.Add(decimal.NewFromFloat(row.Amount))
		case domain.UnitArea:
			area = area.Add(decimal.NewFromFloat(row.Amount))
		}
	}

	totals := Totals{Rows: len(doc.Rows), Hours: hours.InexactFloat64(), Area: area.InexactFloat64()}
	p.canvas.Summary(p.place(p.layout.SummaryHeight, 0), totals)

	for _, sec := range doc.Sections {
		if len(sec.Lines) == 0 {
			continue
		}
		// A title never ends a page on its own.
		p.canvas.SectionTitle(p.place(p.layout.HeaderHeight, p.layout.RowPitch), sec.Title)
		for _, line := range sec.Lines {
			p.canvas.SectionLine(p.place(p.layout.RowPitch, 0), line)
		}
	}

	return Result{Pages: p.page, Headers: p.headers, Totals: totals}
}

// place reserves height (plus keep, which must follow on the same page) and
// returns the y at which to draw. A full page is flushed first.
func (p *Paginator) place(height, keep float64) float64 {
	if p.state == statePageFull || !p.fits(height+keep) {
		p.openPage()
	}
	y := p.y
	p.y += height
	p.state = stateRowEmitted
	if !p.fits(p.layout.RowPitch) {
		p.state = statePageFull
	}
	return y
}

func (p *Paginator) fits(height float64) bool {
	return p.y+height <= p.layout.limit()+fitEpsilon
}

// openPage starts the next page and re-emits the column header.
func (p *Paginator) openPage() {
	p.page++
	p.canvas.AddPage(p.page)
	p.y = p.layout.TopMargin + p.layout.BannerHeight
	p.canvas.Header(p.y, Columns)
	p.headers++
	p.y += p.layout.HeaderHeight
	p.state = statePageOpen
}
