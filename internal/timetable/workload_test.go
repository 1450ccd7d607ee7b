package timetable

import (
	"testing"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractWorkload_RangeMidpoint(t *testing.T) {
	breakdown := ExtractWorkload([]string{"Lecture: 2-4 hours"})
	entry, ok := breakdown.Entries[domain.WorkloadLecture]
	require.True(t, ok)
	assert.InDelta(t, 3.0, entry.Hours, 1e-9)
	assert.InDelta(t, 3.0, breakdown.TotalWeeklyHours, 1e-9)
}

func TestExtractWorkload_SingleValue(t *testing.T) {
	breakdown := ExtractWorkload([]string{"Tutorial: 3 hours"})
	assert.InDelta(t, 3.0, breakdown.Entries[domain.WorkloadTutorial].Hours, 1e-9)
}

func TestExtractWorkload_Categories(t *testing.T) {
	breakdown := ExtractWorkload([]string{
		"Lecture: 2 hours",
		"Tutorial: 1 hours",
		"Laboratory: 2 hours",
		"Recitation: 1 hours",
		"Self-study: 3 hours",
		"Seminar: 1 hours",
	})

	assert.Len(t, breakdown.Entries, 6)
	assert.InDelta(t, 10.0, breakdown.TotalWeeklyHours, 1e-9)
}

func TestExtractWorkload_UnknownCategoryGoesToOther(t *testing.T) {
	breakdown := ExtractWorkload([]string{"Fieldwork: 2 hours", "Project: 4 hours"})

	entry, ok := breakdown.Entries[domain.WorkloadOther]
	require.True(t, ok)
	assert.InDelta(t, 6.0, entry.Hours, 1e-9)
	assert.Contains(t, entry.Declared, "Fieldwork")
	assert.Contains(t, entry.Declared, "Project")
}

func TestExtractWorkload_UnparsedTextContributesZero(t *testing.T) {
	breakdown := ExtractWorkload([]string{"Lecture: as announced"})
	assert.InDelta(t, 0.0, breakdown.Entries[domain.WorkloadLecture].Hours, 1e-9)
	assert.InDelta(t, 0.0, breakdown.TotalWeeklyHours, 1e-9)
}

func TestExtractWorkload_Empty(t *testing.T) {
	breakdown := ExtractWorkload(nil)
	assert.Empty(t, breakdown.Entries)
	assert.Zero(t, breakdown.TotalWeeklyHours)
}

func TestExtractWorkload_TotalSumsAllCategories(t *testing.T) {
	breakdown := ExtractWorkload([]string{
		"Lecture: 2-4 hours",
		"Tutorial: 1 hours",
		"Preparation: 5 hours", // other
	})
	assert.InDelta(t, 9.0, breakdown.TotalWeeklyHours, 1e-9)
}
