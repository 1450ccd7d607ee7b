package domain

import "time"

type TaskSource string

const (
	TaskSourceAssignment TaskSource = "assignment"
	TaskSourceSchedule   TaskSource = "schedule"
)

// Task is one actionable candidate for the Right Now engine. IDs are stable
// across re-synthesis: derived from the source record, never random per call.
type Task struct {
	ID             string
	Title          string
	Source         TaskSource
	ModuleCode     string
	Importance     int // 1-5
	EstimatedHours float64
	Difficulty     int // 1-5
	DueAt          *time.Time
	Link           string
}

// Assignment is one externally-sourced assignment record (Canvas todo).
type Assignment struct {
	Title  string
	Course string
	DueAt  *time.Time
	Link   string
}

// PrioritizationState is the only mutable state the engine exposes.
// Operations read a snapshot and replace it atomically; callers serialize
// Prompt/Finish/Skip so no locking is needed.
type PrioritizationState struct {
	DoneIDs    map[string]bool
	SkippedIDs map[string]bool
	Current    *Task
}

func NewPrioritizationState() PrioritizationState {
	return PrioritizationState{
		DoneIDs:    make(map[string]bool),
		SkippedIDs: make(map[string]bool),
	}
}

// Clone returns an independent copy so a new snapshot can be computed
// without partial updates becoming observable.
func (s PrioritizationState) Clone() PrioritizationState {
	out := PrioritizationState{
		DoneIDs:    make(map[string]bool, len(s.DoneIDs)),
		SkippedIDs: make(map[string]bool, len(s.SkippedIDs)),
	}
	for id := range s.DoneIDs {
		out.DoneIDs[id] = true
	}
	for id := range s.SkippedIDs {
		out.SkippedIDs[id] = true
	}
	if s.Current != nil {
		cur := *s.Current
		out.Current = &cur
	}
	return out
}
