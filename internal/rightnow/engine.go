package rightnow

import (
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

// Engine is the Right Now state machine. It owns the session's
// PrioritizationState and selects one task at a time from two pools:
// assignment tasks, and schedule-derived study tasks used only as a
// fallback once the assignment pool is exhausted.
//
// The engine is synchronous pure computation; the caller serializes
// Prompt/Finish/Skip so at most one operation is in flight.
type Engine struct {
	assignments []domain.Task
	study       []domain.Task
	state       domain.PrioritizationState
	energy      int
	now         func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithEnergy sets the starting energy level (1-5).
func WithEnergy(energy int) Option {
	return func(e *Engine) { e.energy = ClampEnergy(energy) }
}

// NewEngine builds an engine over the two candidate pools. Pool order is
// meaningful: it breaks score ties first-seen-first.
func NewEngine(assignments, study []domain.Task, opts ...Option) *Engine {
	e := &Engine{
		assignments: assignments,
		study:       study,
		state:       domain.NewPrioritizationState(),
		energy:      DefaultEnergy,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns a snapshot of the current prioritization state.
func (e *Engine) State() domain.PrioritizationState {
	return e.state.Clone()
}

// SetEnergy updates the energy level used for scoring.
func (e *Engine) SetEnergy(energy int) {
	e.energy = ClampEnergy(energy)
}

// Energy reports the current energy level.
func (e *Engine) Energy() int {
	return e.energy
}

// Prompt selects the best-scoring eligible candidate (done tasks excluded)
// and sets it as the current task. Exclusion sets are not mutated. A nil
// result means no candidate remains, which is a normal state, not an error.
func (e *Engine) Prompt() *domain.Task {
	next := e.state.Clone()
	next.Current = e.selectTask(next.DoneIDs, "")
	e.state = next
	return e.state.Current
}

// Finish marks the current task done, then selects a replacement excluding
// it, preferring a different module so the same course is not immediately
// re-suggested. Without a current task Finish is a no-op returning nil.
func (e *Engine) Finish() *domain.Task {
	if e.state.Current == nil {
		return nil
	}
	next := e.state.Clone()
	finished := *next.Current
	next.DoneIDs[finished.ID] = true
	next.Current = e.selectTask(next.DoneIDs, finished.ModuleCode)
	e.state = next
	return e.state.Current
}

// Skip shelves the current task without marking it done, then selects a
// replacement excluding both done and skipped tasks. If exclusion empties
// both pools the skip set resets so the student is never left stuck.
func (e *Engine) Skip() *domain.Task {
	if e.state.Current == nil {
		return nil
	}
	next := e.state.Clone()
	skipped := *next.Current
	next.SkippedIDs[skipped.ID] = true

	exclude := unionSet(next.DoneIDs, next.SkippedIDs)
	next.Current = e.selectTask(exclude, skipped.ModuleCode)
	if next.Current == nil {
		// Everything eligible has been skipped: reset and retry with only
		// done tasks excluded.
		next.SkippedIDs = make(map[string]bool)
		next.Current = e.selectTask(next.DoneIDs, skipped.ModuleCode)
	}
	e.state = next
	return e.state.Current
}

// selectTask picks the best-scoring candidate outside the exclusion set.
// Study tasks are considered only when no assignment task is eligible.
// avoidModule is a preference, not a requirement: candidates from other
// modules are tried first, and only if none exist does the avoided module
// win.
func (e *Engine) selectTask(exclude map[string]bool, avoidModule string) *domain.Task {
	pool := eligible(e.assignments, exclude)
	if len(pool) == 0 {
		pool = eligible(e.study, exclude)
	}
	if len(pool) == 0 {
		return nil
	}

	if avoidModule != "" {
		var preferred []domain.Task
		for _, t := range pool {
			if t.ModuleCode != avoidModule {
				preferred = append(preferred, t)
			}
		}
		if len(preferred) > 0 {
			pool = preferred
		}
	}

	best := pickBest(pool, e.now(), e.energy)
	if best == nil {
		return nil
	}
	task := best.Task
	return &task
}

// Candidates scores every currently eligible task, for display.
func (e *Engine) Candidates() []ScoredTask {
	now := e.now()
	var out []ScoredTask
	for _, t := range eligible(e.assignments, e.state.DoneIDs) {
		out = append(out, Score(t, now, e.energy))
	}
	for _, t := range eligible(e.study, e.state.DoneIDs) {
		out = append(out, Score(t, now, e.energy))
	}
	return out
}

func eligible(tasks []domain.Task, exclude map[string]bool) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if !exclude[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

func unionSet(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool, len(a)+len(b))
	for id := range a {
		out[id] = true
	}
	for id := range b {
		out[id] = true
	}
	return out
}
