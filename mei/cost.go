package mei

import (
	"fmt"
	"regexp"
)

var (
	starTotalRe  = regexp.MustCompile(`^=\s*(\d(?:[\d.,]*\d)?)`)
	grandTotalRe = regexp.MustCompile(`^Total:\s*(\d(?:[\d.,]*\d)?)`)
)

// Costs is the upgrade cost ladder.
type Costs struct {
	// Cumulative holds the running total to fully upgrade each star.
	Cumulative []int
	// PerStar holds the cost of each star on its own.
	PerStar []int
	// All is the grand total, nil when the page has no "Total:" line.
	All *int
}

// RollupCosts reads the upgrade ladder. A star glyph line opens a block
// and the next "= <amount>" line closes it; a block superseded by another
// star line before it closes is dropped.
func RollupCosts(lines []Line) (Costs, error) {
	c := Costs{Cumulative: []int{}}

	open := false
	for _, l := range lines {
		switch {
		case l.Kind == LineStars:
			open = true
		case open && l.Kind == LineStarTotal:
			open = false
			m := starTotalRe.FindStringSubmatch(l.Text)
			if m == nil {
				continue
			}
			n, err := ParseNumber(m[1])
			if err != nil {
				return Costs{}, fmt.Errorf("upgrade cost %q: %w", l.Text, err)
			}
			c.Cumulative = append(c.Cumulative, int(n.Int64()))
		}
	}

	if i := indexOf(lines, 0, LineGrandTotal); i >= 0 {
		if m := grandTotalRe.FindStringSubmatch(lines[i].Text); m != nil {
			if n, err := ParseNumber(m[1]); err == nil {
				all := int(n.Int64())
				c.All = &all
			}
		}
	}

	c.PerStar = PerStar(c.Cumulative)
	return c, nil
}

// PerStar returns the successive differences of a cumulative series.
// The first element is kept as is.
func PerStar(cumulative []int) []int {
	out := make([]int, len(cumulative))
	for i, v := range cumulative {
		if i == 0 {
			out[i] = v
			continue
		}
		out[i] = v - cumulative[i-1]
	}
	return out
}
