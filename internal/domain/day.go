package domain

import "time"

var dayIndex = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// DayIndex maps a weekday name to its time.Weekday, reporting whether the
// name is recognized.
func DayIndex(day string) (time.Weekday, bool) {
	d, ok := dayIndex[day]
	return d, ok
}

// MinutesOfDay parses an HHMM time string into minutes since midnight.
// Malformed input reports false.
func MinutesOfDay(hhmm string) (int, bool) {
	if len(hhmm) != 4 {
		return 0, false
	}
	h, m := 0, 0
	for i, c := range hhmm {
		if c < '0' || c > '9' {
			return 0, false
		}
		if i < 2 {
			h = h*10 + int(c-'0')
		} else {
			m = m*10 + int(c-'0')
		}
	}
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// FormatClock renders an HHMM string as "HH:MM". Inputs that are not four
// digits are returned unchanged.
func FormatClock(hhmm string) string {
	if len(hhmm) != 4 {
		return hhmm
	}
	return hhmm[:2] + ":" + hhmm[2:]
}
