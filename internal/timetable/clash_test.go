package timetable

import (
	"testing"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClashes_OverlapOnSameDay(t *testing.T) {
	lessons := []domain.ResolvedLesson{
		lessonAt("CS2040C", "Wednesday", "1400", "1600"),
		lessonAt("MA1508E", "Wednesday", "1500", "1700"),
	}

	clashes := Clashes(lessons)
	require.Len(t, clashes, 1)
	assert.Equal(t, "CS2040C", clashes[0].First.ModuleCode)
	assert.Equal(t, "MA1508E", clashes[0].Second.ModuleCode)
	assert.Contains(t, clashes[0].Description, "Wednesday")
	assert.Contains(t, clashes[0].Description, "14:00-16:00")
}

func TestClashes_SymmetricUnderReordering(t *testing.T) {
	a := lessonAt("CS2040C", "Wednesday", "1400", "1600")
	b := lessonAt("MA1508E", "Wednesday", "1500", "1700")

	forward := Clashes([]domain.ResolvedLesson{a, b})
	reverse := Clashes([]domain.ResolvedLesson{b, a})
	require.Len(t, forward, 1)
	require.Len(t, reverse, 1)
}

func TestClashes_BackToBackDoesNotClash(t *testing.T) {
	lessons := []domain.ResolvedLesson{
		lessonAt("CS2040C", "Monday", "0900", "1000"),
		lessonAt("MA1508E", "Monday", "1000", "1100"),
	}
	assert.Empty(t, Clashes(lessons))
}

func TestClashes_DifferentDaysNeverClash(t *testing.T) {
	lessons := []domain.ResolvedLesson{
		lessonAt("CS2040C", "Monday", "0900", "1100"),
		lessonAt("MA1508E", "Tuesday", "0900", "1100"),
	}
	assert.Empty(t, Clashes(lessons))
}

func TestClashes_LessonInMultipleRecords(t *testing.T) {
	lessons := []domain.ResolvedLesson{
		lessonAt("CS2040C", "Monday", "0900", "1200"),
		lessonAt("MA1508E", "Monday", "0900", "1000"),
		lessonAt("CDE2501", "Monday", "1100", "1200"),
	}

	clashes := Clashes(lessons)
	// CS2040C overlaps both; MA1508E and CDE2501 do not overlap each other.
	require.Len(t, clashes, 2)
}
