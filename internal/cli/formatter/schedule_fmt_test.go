package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/nextup/internal/contract"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testOccurrence(module, short string, start time.Time) domain.Occurrence {
	return domain.Occurrence{
		Lesson: domain.ResolvedLesson{
			ModuleCode:      module,
			LessonTypeShort: short,
			ClassNo:         "01",
			Day:             start.Weekday().String(),
			StartTime:       start.Format("1504"),
			EndTime:         start.Add(2 * time.Hour).Format("1504"),
			Venue:           "LT19",
		},
		StartAt: start,
		EndAt:   start.Add(2 * time.Hour),
	}
}

func TestFormatSchedule_GroupsByDay(t *testing.T) {
	tue := time.Date(2026, 1, 6, 10, 0, 0, 0, time.UTC)
	fri := time.Date(2026, 1, 9, 9, 0, 0, 0, time.UTC)
	resp := &contract.ScheduleResponse{
		WindowDays: 7,
		Occurrences: []domain.Occurrence{
			testOccurrence("CS2040C", "LEC", tue),
			testOccurrence("CDE2501", "TUT", fri),
		},
	}

	out := FormatSchedule(resp)
	assert.Contains(t, out, "Tue Jan 6")
	assert.Contains(t, out, "Fri Jan 9")
	assert.Contains(t, out, "CS2040C")
	assert.Contains(t, out, "LT19")
}

func TestFormatSchedule_Empty(t *testing.T) {
	out := FormatSchedule(&contract.ScheduleResponse{WindowDays: 7})
	assert.Contains(t, out, "No classes in this window.")
}

func TestFormatNextClass(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	occ := testOccurrence("CS2040C", "LEC", now.Add(22*time.Hour))
	resp := &contract.NextClassResponse{GeneratedAt: now, Next: &occ}

	out := FormatNextClass(resp)
	assert.Contains(t, out, "CS2040C")
	assert.Contains(t, out, "In 22h")
	assert.Contains(t, out, "LT19")
}

func TestFormatClashes_AllClear(t *testing.T) {
	out := FormatClashes(&contract.ClashResponse{})
	assert.Contains(t, out, "No clashes found.")
}

func TestFormatClashes_ListsBothLessons(t *testing.T) {
	first := testOccurrence("CS2040C", "LEC", time.Date(2026, 1, 6, 10, 0, 0, 0, time.UTC)).Lesson
	second := testOccurrence("CS2040C", "LAB", time.Date(2026, 1, 6, 11, 0, 0, 0, time.UTC)).Lesson
	resp := &contract.ClashResponse{
		Clashes: []domain.ClashRecord{{
			First:       first,
			Second:      second,
			Description: "Overlapping time slots on Tuesday: LEC 10:00-12:00 and LAB 11:00-13:00",
		}},
	}

	out := FormatClashes(resp)
	assert.Contains(t, out, "Overlapping time slots on Tuesday")
	assert.Contains(t, out, "LEC")
	assert.Contains(t, out, "LAB")
}
