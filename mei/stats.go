package mei

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/carspec"
)

// metricsPerBlock is the number of metric lines under a stat header:
// top speed, acceleration, handling and nitro.
const metricsPerBlock = 4

var (
	speedTokenRe  = regexp.MustCompile(`(\d(?:[\d.,]*\d)?)\s*km/h`)
	numberTokenRe = regexp.MustCompile(`\d(?:[\d.,]*\d)?`)
)

// StatEntry is one stat block as it appears on the page.
type StatEntry struct {
	Kind     StatKind
	Label    string
	Rank     int
	Stars    int
	TopSpeed float64
	Accel    float64
	Handling float64
	Nitro    float64
}

// ParseStatBlocks captures every stat block on the page in page order.
// A header is followed by up to four non-header lines, each contributing
// its first number (a "km/h" value wins when present). Blocks with fewer
// than four numbers are dropped. A number in an unknown format fails the
// whole page.
func ParseStatBlocks(lines []Line) ([]StatEntry, error) {
	var entries []StatEntry

	i := 0
	for i < len(lines) {
		if lines[i].Kind != LineStatHeader {
			i++
			continue
		}
		h := lines[i].Header

		metrics := make([]float64, 0, metricsPerBlock)
		j := i + 1
		for ; j < len(lines) && j <= i+metricsPerBlock; j++ {
			if lines[j].Kind == LineStatHeader {
				break
			}
			tok := metricToken(lines[j].Text)
			if tok == "" {
				continue
			}
			n, err := ParseNumber(tok)
			if err != nil {
				return nil, fmt.Errorf("stat block %q: %w", lines[i].Text, err)
			}
			metrics = append(metrics, n.Float64())
		}
		i = j

		if len(metrics) < metricsPerBlock {
			continue
		}
		entries = append(entries, StatEntry{
			Kind:     h.Kind,
			Label:    h.Label,
			Rank:     h.Rank,
			Stars:    h.Stars,
			TopSpeed: metrics[0],
			Accel:    metrics[1],
			Handling: metrics[2],
			Nitro:    metrics[3],
		})
	}
	return entries, nil
}

func metricToken(s string) string {
	if m := speedTokenRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return numberTokenRe.FindString(s)
}

// AggregateStats orders the captured entries into the star progression:
// stock at star 1, the highest ranked full upgrade for each star below
// maxStar, max w/o epics at maxStar when the car has a premium tier, and
// gold at maxStar. For stock, gold and max w/o epics the first block wins.
func AggregateStats(entries []StatEntry, maxStar int, withEpics bool) []carspec.Stat {
	var stock, gold, maxWithoutEpics *StatEntry
	bestByStar := make(map[int]StatEntry)

	for i := range entries {
		e := &entries[i]
		switch e.Kind {
		case KindStock:
			if stock == nil {
				stock = e
			}
		case KindGold:
			if gold == nil {
				gold = e
			}
		case KindMaxWithoutEpics:
			if maxWithoutEpics == nil {
				maxWithoutEpics = e
			}
		case KindStar:
			if cur, ok := bestByStar[e.Stars]; !ok || e.Rank > cur.Rank {
				bestByStar[e.Stars] = *e
			}
		}
	}

	stats := []carspec.Stat{}
	if stock != nil {
		stats = append(stats, toStat(*stock, 1, carspec.StatStock))
	}
	for star := 1; star < maxStar; star++ {
		if e, ok := bestByStar[star]; ok {
			stats = append(stats, toStat(e, star, carspec.StatFull))
		}
	}
	if withEpics && maxWithoutEpics != nil {
		stats = append(stats, toStat(*maxWithoutEpics, maxStar, carspec.StatMaxWithoutEpics))
	}
	if gold != nil {
		stats = append(stats, toStat(*gold, maxStar, carspec.StatGold))
	}
	return stats
}

func toStat(e StatEntry, star int, typ carspec.StatType) carspec.Stat {
	return carspec.Stat{
		Star:     star,
		Type:     typ,
		Rank:     e.Rank,
		TopSpeed: e.TopSpeed,
		Accel:    e.Accel,
		Handling: e.Handling,
		Nitro:    e.Nitro,
	}
}
