package mei

import (
	"regexp"
	"strings"

	"github.com/fwojciec/carspec"
)

// Sections holds the page header fields found by LocateSections.
type Sections struct {
	Class   string
	Name    string
	MaxStar int
	Fuel    *int
	Unlock  Unlock
	Epics   Epics
}

// Unlock is the blueprint cost block.
type Unlock struct {
	Method       carspec.UnlockMethod
	Requirements []int
	Total        *int
}

// Epics is the premium import part cost block.
type Epics struct {
	PerStat int
	Price   int
}

// Present reports whether the car has a premium part tier.
func (e Epics) Present() bool { return e.PerStat > 0 }

var (
	fuelRe         = regexp.MustCompile(`^` + FuelGlyph + `\s+(\d+)\s+fuels`)
	parenTotalRe   = regexp.MustCompile(`\([^\d]*(\d+)[^\d]*\)`)
	firstIntegerRe = regexp.MustCompile(`\d+`)
)

// sectionStep locates one section starting at line index from. It returns
// the index just past the section and whether it was found.
type sectionStep struct {
	kind     carspec.SectionKind
	required bool
	locate   func(lines []Line, from int, s *Sections) (next int, ok bool)
}

// pageLayout is the order in which header sections appear on a car page.
// Each required section is searched after the previous required one;
// optional sections are searched from the same point but never move it.
var pageLayout = []sectionStep{
	{kind: carspec.SectionClass, required: true, locate: locateClass},
	{kind: carspec.SectionName, required: true, locate: locateName},
	{kind: carspec.SectionStars, required: true, locate: locateStars},
	{kind: carspec.SectionFuel, locate: locateFuel},
	{kind: carspec.SectionUnlock, locate: locateUnlock},
}

// LocateSections walks pageLayout over lines and then scans the whole page
// for the premium part block. A missing required section returns a
// *carspec.SectionError naming it.
func LocateSections(lines []Line, carID int) (*Sections, error) {
	s := &Sections{
		Unlock: Unlock{Requirements: []int{}},
	}

	cursor := 0
	for _, step := range pageLayout {
		next, ok := step.locate(lines, cursor, s)
		if !step.required {
			continue
		}
		if !ok {
			return nil, &carspec.SectionError{CarID: carID, Section: step.kind}
		}
		cursor = next
	}

	s.Epics = locateEpics(lines)
	return s, nil
}

func indexOf(lines []Line, from int, kind LineKind) int {
	for i := from; i < len(lines); i++ {
		if lines[i].Kind == kind {
			return i
		}
	}
	return -1
}

func locateClass(lines []Line, from int, s *Sections) (int, bool) {
	i := indexOf(lines, from, LineClass)
	if i < 0 {
		return from, false
	}
	s.Class = lines[i].Text
	return i + 1, true
}

// locateName takes the line right after the class letter.
func locateName(lines []Line, from int, s *Sections) (int, bool) {
	if from >= len(lines) {
		return from, false
	}
	s.Name = lines[from].Text
	return from + 1, true
}

func locateStars(lines []Line, from int, s *Sections) (int, bool) {
	i := indexOf(lines, from, LineStars)
	if i < 0 {
		return from, false
	}
	s.MaxStar = lines[i].Stars
	return i + 1, true
}

// locateFuel reads "⛽ 6 fuels". A fuel line in another shape leaves Fuel unset.
func locateFuel(lines []Line, from int, s *Sections) (int, bool) {
	i := indexOf(lines, from, LineFuel)
	if i < 0 {
		return from, false
	}
	m := fuelRe.FindStringSubmatch(lines[i].Text)
	if m == nil {
		return from, false
	}
	n, err := ParseNumber(m[1])
	if err != nil {
		return from, false
	}
	fuel := int(n.Int64())
	s.Fuel = &fuel
	return i + 1, true
}

// locateUnlock reads the blueprint run and the parenthesized total that
// follows it on the same or the next line. A key glyph on either line
// marks a key car.
func locateUnlock(lines []Line, from int, s *Sections) (int, bool) {
	i := indexOf(lines, from, LineUnlock)
	if i < 0 {
		return from, false
	}

	cur := lines[i].Text
	var next string
	if i+1 < len(lines) {
		next = lines[i+1].Text
	}

	s.Unlock.Requirements = lines[i].Run
	s.Unlock.Method = carspec.UnlockBP
	if strings.Contains(cur, KeyGlyph) || strings.Contains(next, KeyGlyph) {
		s.Unlock.Method = carspec.UnlockKey
	}

	m := parenTotalRe.FindStringSubmatch(cur)
	if m == nil {
		m = parenTotalRe.FindStringSubmatch(next)
	}
	if m != nil {
		if n, err := ParseNumber(m[1]); err == nil {
			total := int(n.Int64())
			s.Unlock.Total = &total
		}
	}
	return i + 1, true
}

// locateEpics reads the block opened by "Epics:". The next line holds the
// per-metric part count ("2 x 240000 x 4=") and the one after it the total
// price. Without the block both values are zero.
func locateEpics(lines []Line) Epics {
	var e Epics
	i := indexOf(lines, 0, LineEpics)
	if i < 0 {
		return e
	}
	if i+1 < len(lines) {
		if m := firstIntegerRe.FindString(lines[i+1].Text); m != "" {
			if n, err := ParseNumber(m); err == nil {
				e.PerStat = int(n.Int64())
			}
		}
	}
	if i+2 < len(lines) {
		if n, err := ParseNumber(lines[i+2].Text); err == nil {
			e.Price = int(n.Int64())
		}
	}
	return e
}
