package timetable

import (
	"fmt"

	"github.com/alexanderramin/nextup/internal/domain"
)

// Clashes finds every pair of lessons with overlapping time ranges on the
// same weekday. Overlap is half-open: lessons sharing an exact boundary
// (one ends as the other starts) do not clash. The pairwise check is
// quadratic per day, which is fine for the handful of lessons a student
// has on any one day.
func Clashes(lessons []domain.ResolvedLesson) []domain.ClashRecord {
	byDay := make(map[string][]domain.ResolvedLesson)
	var dayOrder []string
	for _, lesson := range lessons {
		if _, ok := byDay[lesson.Day]; !ok {
			dayOrder = append(dayOrder, lesson.Day)
		}
		byDay[lesson.Day] = append(byDay[lesson.Day], lesson)
	}

	var clashes []domain.ClashRecord
	for _, day := range dayOrder {
		dayLessons := byDay[day]
		for i := 0; i < len(dayLessons); i++ {
			for j := i + 1; j < len(dayLessons); j++ {
				a, b := dayLessons[i], dayLessons[j]
				if !overlaps(a, b) {
					continue
				}
				clashes = append(clashes, domain.ClashRecord{
					First:  a,
					Second: b,
					Description: fmt.Sprintf("Overlapping time slots on %s: %s %s-%s and %s %s-%s",
						day,
						a.ModuleCode, domain.FormatClock(a.StartTime), domain.FormatClock(a.EndTime),
						b.ModuleCode, domain.FormatClock(b.StartTime), domain.FormatClock(b.EndTime)),
				})
			}
		}
	}
	return clashes
}

func overlaps(a, b domain.ResolvedLesson) bool {
	start1, ok1 := domain.MinutesOfDay(a.StartTime)
	end1, ok2 := domain.MinutesOfDay(a.EndTime)
	start2, ok3 := domain.MinutesOfDay(b.StartTime)
	end2, ok4 := domain.MinutesOfDay(b.EndTime)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return start1 < end2 && start2 < end1
}
