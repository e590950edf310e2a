package carspec

import (
	"context"
	"encoding/json"
)

// UnlockMethod describes how a car is unlocked.
type UnlockMethod string

const (
	UnlockNone UnlockMethod = ""
	UnlockBP   UnlockMethod = "bp"
	UnlockKey  UnlockMethod = "key"
)

// MarshalJSON encodes UnlockNone as null.
func (m UnlockMethod) MarshalJSON() ([]byte, error) {
	if m == UnlockNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(m))
}

// StatType identifies one rung of the star progression.
type StatType string

const (
	StatStock           StatType = "stock"
	StatFull            StatType = "full"
	StatMaxWithoutEpics StatType = "max_wo_epics"
	StatGold            StatType = "gold"
)

// Stat is the performance of a car at one star and upgrade state.
type Stat struct {
	Star     int      `json:"star"`
	Type     StatType `json:"type"`
	Rank     int      `json:"rank"`
	TopSpeed float64  `json:"top_speed"`
	Accel    float64  `json:"accel"`
	Handling float64  `json:"handling"`
	Nitro    float64  `json:"nitro"`
}

// EpicParts holds the number of premium import parts needed per metric.
// The source lists one quantity, so all four fields carry the same value.
type EpicParts struct {
	TopSpeed int `json:"top_speed"`
	Accel    int `json:"accel"`
	Handling int `json:"handling"`
	Nitro    int `json:"nitro"`
}

// Car is the record extracted from a single car page. Field order matches
// the JSON files consumed downstream.
type Car struct {
	ID                    int          `json:"id"`
	UnlockMethod          UnlockMethod `json:"unlock_method"`
	Class                 string       `json:"class"`
	Name                  string       `json:"name"`
	MaxStar               int          `json:"max_star"`
	Fuel                  *int         `json:"fuel"`
	BPRequirements        []int        `json:"bp_requirements"`
	BPCumulative          []int        `json:"bp_cumulative"`
	BPAll                 *int         `json:"bp_all"`
	EpicImportPartsAmount EpicParts    `json:"epic_importparts_amount"`
	EpicPrice             int          `json:"epic_price"`
	Stat                  []Stat       `json:"stat"`
	UpgradeCumulative     []int        `json:"upgrade_cumulative"`
	UpgradePerStar        []int        `json:"upgrade_per_star"`
	UpgradeAll            *int         `json:"upgrade_all,omitempty"`
}

// Validate returns an error if the car contains invalid fields.
func (c *Car) Validate() error {
	if c.ID <= 0 {
		return Errorf(EINVALID, "car ID must be positive")
	}
	if c.Class == "" {
		return Errorf(EINVALID, "car %d: class required", c.ID)
	}
	if c.Name == "" {
		return Errorf(EINVALID, "car %d: name required", c.ID)
	}
	if c.MaxStar <= 0 {
		return Errorf(EINVALID, "car %d: max star must be positive", c.ID)
	}
	return nil
}

// Parser turns the plain text of one car page into a Car.
type Parser interface {
	// Parse returns a *SectionError when a required section is absent and
	// a *FormatError when a required number cannot be read.
	Parse(text string, id int) (*Car, error)
}

// RecordWriter persists a collection of cars.
type RecordWriter interface {
	// WriteRecords stores cars sorted by ID, replacing any previous output.
	WriteRecords(ctx context.Context, cars []*Car) error
}
