package timetable

import (
	"sort"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

// Singapore is the only timezone the service reasons in: a fixed UTC+8
// offset with no DST. Not general timezone support.
var Singapore = time.FixedZone("Asia/Singapore", 8*60*60)

// NextOccurrence computes the next concrete calendar instance of a weekly
// lesson relative to now. A lesson on today's weekday whose start is at or
// before now rolls forward a full week: starting exactly this instant counts
// as passed. Reports false for unrecognized weekdays or malformed times.
func NextOccurrence(now time.Time, lesson domain.ResolvedLesson) (domain.Occurrence, bool) {
	targetDay, ok := domain.DayIndex(lesson.Day)
	if !ok {
		return domain.Occurrence{}, false
	}
	startMin, ok := domain.MinutesOfDay(lesson.StartTime)
	if !ok {
		return domain.Occurrence{}, false
	}
	endMin, ok := domain.MinutesOfDay(lesson.EndTime)
	if !ok {
		endMin = startMin
	}

	sgNow := now.In(Singapore)
	nowMin := sgNow.Hour()*60 + sgNow.Minute()

	deltaDays := (int(targetDay) - int(sgNow.Weekday()) + 7) % 7
	if deltaDays == 0 && startMin <= nowMin {
		deltaDays = 7
	}

	year, month, day := sgNow.Date()
	startAt := time.Date(year, month, day+deltaDays, startMin/60, startMin%60, 0, 0, Singapore)
	endAt := time.Date(year, month, day+deltaDays, endMin/60, endMin%60, 0, 0, Singapore)
	if endAt.Before(startAt) {
		endAt = startAt
	}

	return domain.Occurrence{Lesson: lesson, StartAt: startAt, EndAt: endAt}, true
}

// UpcomingWithin returns the next occurrence of each lesson that falls inside
// the window (now, now+days], ordered by start time ascending. Input order
// breaks ties, so the result is deterministic for identical input.
func UpcomingWithin(now time.Time, lessons []domain.ResolvedLesson, days int) []domain.Occurrence {
	windowEnd := now.In(Singapore).AddDate(0, 0, days)

	var upcoming []domain.Occurrence
	for _, lesson := range lessons {
		occ, ok := NextOccurrence(now, lesson)
		if !ok {
			continue
		}
		if occ.StartAt.After(windowEnd) {
			continue
		}
		upcoming = append(upcoming, occ)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartAt.Before(upcoming[j].StartAt)
	})
	return upcoming
}

// NextAcross picks the single earliest upcoming occurrence across all
// lessons within the window, reporting false when none falls inside it.
func NextAcross(now time.Time, lessons []domain.ResolvedLesson, days int) (domain.Occurrence, bool) {
	upcoming := UpcomingWithin(now, lessons, days)
	if len(upcoming) == 0 {
		return domain.Occurrence{}, false
	}
	return upcoming[0], true
}
