// Package mei parses the plain text of MEI car pages into carspec.Car
// records.
//
// Parsing is a pure function of the page text and the car ID. The text is
// normalized into lines, each line is tagged by Classify, and independent
// scans over the tagged lines locate the header sections, the stat blocks
// and the upgrade cost ladder before the record is assembled.
package mei

import (
	"fmt"

	"github.com/fwojciec/carspec"
)

// Ensure Parser implements carspec.Parser at compile time.
var _ carspec.Parser = (*Parser)(nil)

// Parser implements carspec.Parser for MEI pages. The zero value is ready
// to use and safe for concurrent use.
type Parser struct{}

// NewParser returns a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements carspec.Parser.
func (p *Parser) Parse(text string, id int) (*carspec.Car, error) {
	return Parse(text, id)
}

// Parse builds the record for car id from the page text.
func Parse(text string, id int) (*carspec.Car, error) {
	lines := Classify(Normalize(text))

	sec, err := LocateSections(lines, id)
	if err != nil {
		return nil, err
	}

	entries, err := ParseStatBlocks(lines)
	if err != nil {
		return nil, fmt.Errorf("car %d: %w", id, err)
	}
	if len(entries) == 0 {
		return nil, &carspec.SectionError{CarID: id, Section: carspec.SectionStats}
	}

	costs, err := RollupCosts(lines)
	if err != nil {
		return nil, fmt.Errorf("car %d: %w", id, err)
	}

	per := sec.Epics.PerStat
	return &carspec.Car{
		ID:             id,
		UnlockMethod:   sec.Unlock.Method,
		Class:          sec.Class,
		Name:           sec.Name,
		MaxStar:        sec.MaxStar,
		Fuel:           sec.Fuel,
		BPRequirements: sec.Unlock.Requirements,
		BPCumulative:   runningSum(sec.Unlock.Requirements),
		BPAll:          sec.Unlock.Total,
		EpicImportPartsAmount: carspec.EpicParts{
			TopSpeed: per,
			Accel:    per,
			Handling: per,
			Nitro:    per,
		},
		EpicPrice:         sec.Epics.Price,
		Stat:              AggregateStats(entries, sec.MaxStar, sec.Epics.Present()),
		UpgradeCumulative: costs.Cumulative,
		UpgradePerStar:    costs.PerStar,
		UpgradeAll:        costs.All,
	}, nil
}

func runningSum(xs []int) []int {
	out := make([]int, len(xs))
	sum := 0
	for i, x := range xs {
		sum += x
		out[i] = sum
	}
	return out
}
