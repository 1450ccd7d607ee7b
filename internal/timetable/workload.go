package timetable

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/nextup/internal/domain"
)

// categoryKeywords maps lowercase keywords to workload categories.
// Ordered: the first matching keyword wins, and "lab" must not shadow
// more specific names that contain it.
var categoryKeywords = []struct {
	keyword  string
	category domain.WorkloadCategory
}{
	{"lecture", domain.WorkloadLecture},
	{"tutorial", domain.WorkloadTutorial},
	{"laboratory", domain.WorkloadLab},
	{"lab", domain.WorkloadLab},
	{"recitation", domain.WorkloadRecitation},
	{"self study", domain.WorkloadSelfStudy},
	{"self-study", domain.WorkloadSelfStudy},
	{"seminar", domain.WorkloadSeminar},
}

var hoursRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)(?:\s*-\s*(\d+(?:\.\d+)?))?(?:\s*hours?)?`)

// ExtractWorkload parses a module's declared workload entries into
// categorized weekly hours. Entries without a recognized category keyword
// accumulate in the "other" bucket; entries without parseable numbers
// contribute 0. The total is the sum of category midpoints.
func ExtractWorkload(entries []string) domain.WorkloadBreakdown {
	breakdown := domain.WorkloadBreakdown{
		Entries: make(map[domain.WorkloadCategory]domain.WorkloadEntry),
	}

	for _, raw := range entries {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		category := matchCategory(text)
		hours := parseHours(text)

		entry := breakdown.Entries[category]
		if entry.Declared == "" {
			entry.Declared = text
		} else {
			entry.Declared += "; " + text
		}
		entry.Hours += hours
		breakdown.Entries[category] = entry
		breakdown.TotalWeeklyHours += hours
	}
	return breakdown
}

func matchCategory(text string) domain.WorkloadCategory {
	lower := strings.ToLower(text)
	for _, ck := range categoryKeywords {
		if strings.Contains(lower, ck.keyword) {
			return ck.category
		}
	}
	return domain.WorkloadOther
}

// parseHours extracts "N" or "N-M" hour figures, returning the midpoint of
// a range or the single value. Unparseable text contributes 0.
func parseHours(text string) float64 {
	m := hoursRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	low, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	if m[2] == "" {
		return low
	}
	high, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return low
	}
	return (low + high) / 2
}
