package carspec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseIDs parses a car ID expression such as "1-5,10,20-22".
// Parts are comma-separated positive IDs or inclusive ranges; a reversed
// range is swapped. Parts that cannot be read are skipped and reported in
// warnings. The result is sorted and free of duplicates.
func ParseIDs(expr string) (ids []int, warnings []string, err error) {
	seen := make(map[int]struct{})

	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if startStr, endStr, ok := strings.Cut(part, "-"); ok {
			start, err1 := strconv.Atoi(strings.TrimSpace(startStr))
			end, err2 := strconv.Atoi(strings.TrimSpace(endStr))
			if err1 != nil || err2 != nil || start < 1 || end < 1 {
				warnings = append(warnings, fmt.Sprintf("invalid range %q, skipped", part))
				continue
			}
			if start > end {
				start, end = end, start
			}
			for id := start; id <= end; id++ {
				seen[id] = struct{}{}
			}
			continue
		}

		id, err := strconv.Atoi(part)
		if err != nil || id < 1 {
			warnings = append(warnings, fmt.Sprintf("invalid car ID %q, skipped", part))
			continue
		}
		seen[id] = struct{}{}
	}

	if len(seen) == 0 {
		return nil, warnings, Errorf(EINVALID, "no valid car IDs in %q", expr)
	}

	ids = make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, warnings, nil
}
