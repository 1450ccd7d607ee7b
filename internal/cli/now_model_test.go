package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/nextup/internal/contract"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/rightnow"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionFixture(t *testing.T) sessionLoadedMsg {
	t.Helper()
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	due := now.Add(20 * time.Hour)
	assignments := []domain.Task{
		{ID: "a1", Title: "Lab 3 Submission", Source: domain.TaskSourceAssignment,
			ModuleCode: "CS2040C", Importance: 4, EstimatedHours: 2, Difficulty: 3, DueAt: &due},
	}
	study := []domain.Task{
		{ID: "s1", Title: "Prep for CDE2501 TUT (Friday 09:00)", Source: domain.TaskSourceSchedule,
			ModuleCode: "CDE2501", Importance: 2, EstimatedHours: 0.5, Difficulty: 2},
	}
	engine := rightnow.NewEngine(assignments, study,
		rightnow.WithClock(func() time.Time { return now }))
	current := engine.Prompt()
	require.NotNil(t, current)

	return sessionLoadedMsg{
		engine: engine,
		resp: &contract.RightNowResponse{
			GeneratedAt: now,
			Suggestion:  &contract.Suggestion{Task: *current},
			Remaining:   2,
		},
	}
}

func loadedModel(t *testing.T) nowModel {
	t.Helper()
	m := newNowModel(&App{}, contract.NewRightNowRequest(0))
	updated, _ := m.Update(sessionFixture(t))
	return updated.(nowModel)
}

func TestNowModel_LoadingView(t *testing.T) {
	m := newNowModel(&App{}, contract.NewRightNowRequest(0))
	assert.Contains(t, m.View(), "Building your planner...")
}

func TestNowModel_ShowsSuggestionAfterLoad(t *testing.T) {
	m := loadedModel(t)

	view := m.View()
	assert.Contains(t, view, "Lab 3 Submission")
	assert.Contains(t, view, "[f] finish")
}

func TestNowModel_FinishAdvancesToStudyTask(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = updated.(nowModel)

	assert.Equal(t, 1, m.finished)
	require.NotNil(t, m.current)
	assert.Equal(t, domain.TaskSourceSchedule, m.current.Source)
}

func TestNowModel_SkipKeepsTaskUndone(t *testing.T) {
	m := loadedModel(t)
	first := *m.current

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updated.(nowModel)

	assert.Zero(t, m.finished)
	assert.False(t, m.engine.State().DoneIDs[first.ID])
}

func TestNowModel_EnergyKeyRescores(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	m = updated.(nowModel)

	assert.Equal(t, 1, m.engine.Energy())
	assert.Contains(t, m.View(), "Energy 1/5")
}

func TestNowModel_QuitShowsSummary(t *testing.T) {
	m := loadedModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(nowModel)

	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Finished 0 task(s)")
}

func TestNowModel_ExhaustionShowsRestMessage(t *testing.T) {
	m := loadedModel(t)

	for i := 0; i < 2; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
		m = updated.(nowModel)
	}

	assert.Nil(t, m.current)
	assert.Contains(t, m.View(), "Nothing left to do.")
}
