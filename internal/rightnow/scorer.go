// Package rightnow selects the single most urgent actionable item from the
// student's assignment and schedule-derived task pools, and tracks done/skip
// state across a session.
package rightnow

import (
	"fmt"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

// Scoring constants. These are heuristic tuning: the contract is the
// relative ordering (monotonic in urgency and importance, anti-monotonic in
// difficulty and estimate under low energy), not the literal numbers.
const (
	importanceWeight    = 10.0
	dueBonusCritical    = 40.0 // due within 2 hours
	dueBonusUrgent      = 30.0 // due within 24 hours
	dueBonusSoon        = 15.0 // due within 72 hours
	scheduleSourceBonus = 5.0

	// DefaultEnergy is assumed when the student has not said otherwise.
	DefaultEnergy = 3
	MinEnergy     = 1
	MaxEnergy     = 5
)

type ReasonCode string

const (
	ReasonImportance ReasonCode = "IMPORTANCE"
	ReasonDueUrgency ReasonCode = "DUE_URGENCY"
	ReasonEnergyFit  ReasonCode = "ENERGY_FIT"
	ReasonSourcePace ReasonCode = "SOURCE_PACE"
)

// Reason explains one scoring factor's contribution, for display.
type Reason struct {
	Code    ReasonCode
	Message string
	Delta   float64
}

// ScoredTask pairs a candidate with its score and the factors behind it.
type ScoredTask struct {
	Task    domain.Task
	Score   float64
	Reasons []Reason
}

// ClampEnergy bounds an energy level to the valid 1-5 range, substituting
// the default for zero values.
func ClampEnergy(e int) int {
	switch {
	case e == 0:
		return DefaultEnergy
	case e < MinEnergy:
		return MinEnergy
	case e > MaxEnergy:
		return MaxEnergy
	}
	return e
}

// Score rates a candidate for the current moment and energy level.
func Score(task domain.Task, now time.Time, energy int) ScoredTask {
	result := ScoredTask{Task: task}
	energy = ClampEnergy(energy)

	factors := []func(domain.Task, time.Time, int) (float64, *Reason){
		scoreImportance,
		scoreDueUrgency,
		scoreEnergyFit,
		scoreSourcePace,
	}
	for _, f := range factors {
		delta, reason := f(task, now, energy)
		result.Score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}
	return result
}

func scoreImportance(task domain.Task, _ time.Time, _ int) (float64, *Reason) {
	delta := float64(task.Importance) * importanceWeight
	return delta, &Reason{
		Code:    ReasonImportance,
		Message: fmt.Sprintf("Importance %d/5", task.Importance),
		Delta:   delta,
	}
}

func scoreDueUrgency(task domain.Task, now time.Time, _ int) (float64, *Reason) {
	if task.DueAt == nil {
		return 0, nil
	}
	hoursLeft := task.DueAt.Sub(now).Hours()

	var delta float64
	var msg string
	switch {
	case hoursLeft <= 2:
		delta = dueBonusCritical
		msg = "Due within 2 hours"
	case hoursLeft <= 24:
		delta = dueBonusUrgent
		msg = "Due within a day"
	case hoursLeft <= 72:
		delta = dueBonusSoon
		msg = "Due within 3 days"
	default:
		return 0, nil
	}
	return delta, &Reason{Code: ReasonDueUrgency, Message: msg, Delta: delta}
}

// scoreEnergyFit penalizes heavy tasks when the student is low on energy.
// At full energy the penalty vanishes except for the residual (6-5)=1 factor.
func scoreEnergyFit(task domain.Task, _ time.Time, energy int) (float64, *Reason) {
	penalty := float64(6-energy) * (float64(task.Difficulty) + task.EstimatedHours)
	if penalty == 0 {
		return 0, nil
	}
	return -penalty, &Reason{
		Code:    ReasonEnergyFit,
		Message: fmt.Sprintf("Difficulty %d and ~%.1fh at energy %d/5", task.Difficulty, task.EstimatedHours, energy),
		Delta:   -penalty,
	}
}

func scoreSourcePace(task domain.Task, _ time.Time, _ int) (float64, *Reason) {
	if task.Source != domain.TaskSourceSchedule {
		return 0, nil
	}
	return scheduleSourceBonus, &Reason{
		Code:    ReasonSourcePace,
		Message: "Keeps you on pace with your timetable",
		Delta:   scheduleSourceBonus,
	}
}

// pickBest returns the highest-scoring candidate; ties keep the first seen.
func pickBest(tasks []domain.Task, now time.Time, energy int) *ScoredTask {
	var best *ScoredTask
	for _, task := range tasks {
		scored := Score(task, now, energy)
		if best == nil || scored.Score > best.Score {
			s := scored
			best = &s
		}
	}
	return best
}
