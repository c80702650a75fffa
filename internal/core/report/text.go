package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hrc-navate/worklog/internal/core/domain"
)

// Letters without a canonical decomposition, plus typographic punctuation the
// core PDF fonts cannot draw.
var foldReplacer = strings.NewReplacer(
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ø", "o", "Ø", "O",
	"ß", "ss", "æ", "ae", "Æ", "AE", "œ", "oe", "Œ", "OE",
	"²", "2", "³", "3",
	"–", "-", "—", "-", "…", "...",
	"„", `"`, "“", `"`, "”", `"`, "‘", "'", "’", "'",
	"\u00a0", " ",
)

// StripDiacritics reduces s to printable ASCII: accented letters become their
// base Latin letter, anything still unrepresentable becomes '?'.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = foldReplacer.Replace(out)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case r < 0x20 || r > 0x7e:
			return '?'
		}
		return r
	}, out)
}

// TruncateNote collapses whitespace so the note fits on one line and cuts it
// to max runes, marking the cut with "...".
func TruncateNote(note string, max int) string {
	note = strings.Join(strings.Fields(note), " ")
	if max <= 0 || utf8.RuneCountInString(note) <= max {
		return note
	}
	if max <= 3 {
		return string([]rune(note)[:max])
	}
	return string([]rune(note)[:max-3]) + "..."
}

// FormatAmount renders an amount with two decimals; rounding happens only here.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatAmountOrBlank is FormatAmount, except zero renders as an empty cell.
func FormatAmountOrBlank(v float64) string {
	if v == 0 {
		return ""
	}
	return FormatAmount(v)
}

// Filename encodes scope and period: report_<all|user-ID>_<YYYY-Www|YYYY|all>.<ext>
func Filename(scope Scope, req Request, ext string) string {
	who := "all"
	if !scope.All {
		who = "user-" + scope.UserID
	}
	period := "all"
	switch {
	case req.Year > 0 && req.Week > 0:
		period = fmt.Sprintf("%04d-W%02d", req.Year, req.Week)
	case req.Year > 0:
		period = fmt.Sprintf("%04d", req.Year)
	}
	name := "report_" + who + "_" + period
	if req.Unit != "" {
		if u, err := domain.ParseUnitKind(req.Unit); err == nil {
			name += "_" + strings.ToLower(string(u))
		}
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}
