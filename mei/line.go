package mei

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Glyphs anchoring sections of a car page.
const (
	StarGlyph = "⭐"
	FuelGlyph = "⛽"
	KeyGlyph  = "🔑"
)

// LineKind tags a normalized line with the role it can play on a page.
type LineKind int

const (
	LinePlain      LineKind = iota
	LineClass               // a lone class letter: D, C, B, A or S
	LineStars               // only star glyphs
	LineStatHeader          // "Stock [467]", "⭐⭐ [1031]", "Gold [1381]", "Max w/o epics [..]"
	LineFuel                // starts with the fuel glyph
	LineEpics               // starts with "Epics:"
	LineStarTotal           // starts with "=" and carries a cumulative cost
	LineGrandTotal          // starts with "Total:"
	LineUnlock              // slash-separated blueprint run
)

var lineKindNames = [...]string{
	LinePlain:      "plain",
	LineClass:      "class",
	LineStars:      "stars",
	LineStatHeader: "stat_header",
	LineFuel:       "fuel",
	LineEpics:      "epics",
	LineStarTotal:  "star_total",
	LineGrandTotal: "grand_total",
	LineUnlock:     "unlock",
}

func (k LineKind) String() string {
	if int(k) < len(lineKindNames) {
		return lineKindNames[k]
	}
	return "LineKind(" + strconv.Itoa(int(k)) + ")"
}

// StatKind is the tier family of a stat block header.
type StatKind string

const (
	KindStock           StatKind = "stock"
	KindStar            StatKind = "star"
	KindMaxWithoutEpics StatKind = "max_wo_epics"
	KindGold            StatKind = "gold"
)

// StatHeader is the parsed form of a stat block header line.
type StatHeader struct {
	Kind  StatKind
	Label string
	Rank  int
	// Stars is the glyph count for KindStar headers and zero otherwise.
	Stars int
}

// Line is a normalized line tagged with its kind. Fields other than Text
// and Kind are only set for the kinds named in their comments.
type Line struct {
	Text string
	Kind LineKind

	Stars  int        // LineStars
	Header StatHeader // LineStatHeader
	Run    []int      // LineUnlock
}

var (
	classRe       = regexp.MustCompile(`^[DCBAS]$`)
	statHeaderRe  = regexp.MustCompile(`^(Stock|Gold|Max w/o epics|(?:` + StarGlyph + `)+)\s*\[(\d+)\]$`)
	unlockProbeRe = regexp.MustCompile(`\d+/\d+/|^\d+(?:/\d+)+$`)
	unlockRunRe   = regexp.MustCompile(`\d+(?:/\d+)+`)
)

// Classify tags every line. A line gets the first kind it matches in the
// order header, stars, class, fuel, epics, star total, grand total, unlock.
func Classify(lines []string) []Line {
	out := make([]Line, len(lines))
	for i, text := range lines {
		out[i] = classifyLine(text)
	}
	return out
}

func classifyLine(text string) Line {
	l := Line{Text: text, Kind: LinePlain}

	if h, ok := parseStatHeader(text); ok {
		l.Kind = LineStatHeader
		l.Header = h
		return l
	}

	if n, ok := starRun(text); ok {
		l.Kind = LineStars
		l.Stars = n
		return l
	}

	switch {
	case classRe.MatchString(text):
		l.Kind = LineClass
	case strings.HasPrefix(text, FuelGlyph):
		l.Kind = LineFuel
	case strings.HasPrefix(text, "Epics:"):
		l.Kind = LineEpics
	case strings.HasPrefix(text, "="):
		l.Kind = LineStarTotal
	case strings.HasPrefix(text, "Total:"):
		l.Kind = LineGrandTotal
	default:
		if run, ok := unlockRun(text); ok {
			l.Kind = LineUnlock
			l.Run = run
		}
	}
	return l
}

// starRun reports whether s is made only of star glyphs and returns how many.
func starRun(s string) (int, bool) {
	if s == "" || strings.ReplaceAll(s, StarGlyph, "") != "" {
		return 0, false
	}
	return utf8.RuneCountInString(s), true
}

func parseStatHeader(s string) (StatHeader, bool) {
	m := statHeaderRe.FindStringSubmatch(s)
	if m == nil {
		return StatHeader{}, false
	}
	rank, err := strconv.Atoi(m[2])
	if err != nil {
		return StatHeader{}, false
	}

	h := StatHeader{Label: m[1], Rank: rank}
	switch m[1] {
	case "Stock":
		h.Kind = KindStock
	case "Gold":
		h.Kind = KindGold
	case "Max w/o epics":
		h.Kind = KindMaxWithoutEpics
	default:
		h.Kind = KindStar
		h.Stars = utf8.RuneCountInString(m[1])
	}
	return h, true
}

// unlockRun finds a blueprint run such as "5/8/30" or "🔑/40/45/60".
// The key glyph and plus signs are ignored.
func unlockRun(s string) ([]int, bool) {
	clean := strings.ReplaceAll(s, KeyGlyph, "")
	if !unlockProbeRe.MatchString(clean) {
		return nil, false
	}
	clean = strings.ReplaceAll(clean, "+", "")
	m := unlockRunRe.FindString(clean)
	if m == "" {
		return nil, false
	}

	parts := strings.Split(m, "/")
	run := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		run = append(run, n)
	}
	return run, true
}
