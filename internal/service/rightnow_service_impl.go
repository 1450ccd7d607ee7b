package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/nextup/internal/contract"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/rightnow"
	"github.com/alexanderramin/nextup/internal/source"
	"github.com/alexanderramin/nextup/internal/timetable"
)

type rightNowService struct {
	src      PlannerSource
	cfg      source.Config
	observer UseCaseObserver
	now      func() time.Time
}

// NewRightNowService wires the planner source into the prioritization
// session use case.
func NewRightNowService(src PlannerSource, cfg source.Config, observers ...UseCaseObserver) RightNowService {
	return &rightNowService{
		src:      src,
		cfg:      cfg,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *rightNowService) NewSession(ctx context.Context, req contract.RightNowRequest) (*rightnow.Engine, *contract.RightNowResponse, error) {
	started := s.now()

	if req.Energy != 0 && (req.Energy < rightnow.MinEnergy || req.Energy > rightnow.MaxEnergy) {
		err := contract.NewError(contract.ErrInvalidEnergy,
			fmt.Sprintf("energy must be between %d and %d", rightnow.MinEnergy, rightnow.MaxEnergy))
		s.observe(ctx, started, false, err, nil)
		return nil, nil, err
	}

	days := req.WindowDays
	if days <= 0 {
		days = 7
	}
	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}

	planner, err := buildPlanner(ctx, s.src, s.cfg, "", 0, s.cfg.CanvasToken)
	if err != nil {
		s.observe(ctx, started, false, err, nil)
		return nil, nil, err
	}

	occurrences := timetable.UpcomingWithin(now, planner.Lessons(), days)
	assignments := rightnow.AssignmentTasks(planner.Assignments, planner.WorkloadByModule())
	study := rightnow.StudyTasks(occurrences)

	if len(assignments) == 0 && len(study) == 0 {
		err := contract.NewError(contract.ErrNoTasks, "no assignments or upcoming classes to work on")
		s.observe(ctx, started, false, err, nil)
		return nil, nil, err
	}

	engine := rightnow.NewEngine(assignments, study,
		rightnow.WithEnergy(req.Energy),
		rightnow.WithClock(func() time.Time { return now }))
	current := engine.Prompt()

	resp := &contract.RightNowResponse{
		GeneratedAt: now,
		Suggestion:  SuggestionFor(engine, current),
		Remaining:   len(engine.Candidates()),
		Warnings:    planner.Warnings,
	}

	s.observe(ctx, started, true, nil, map[string]any{
		"assignment_tasks": len(assignments),
		"study_tasks":      len(study),
		"energy":           engine.Energy(),
	})
	return engine, resp, nil
}

// SuggestionFor pairs a selected task with its score breakdown. A task that
// is no longer a candidate (just finished, for example) is returned without
// reasons.
func SuggestionFor(e *rightnow.Engine, task *domain.Task) *contract.Suggestion {
	if task == nil {
		return nil
	}
	for _, st := range e.Candidates() {
		if st.Task.ID == task.ID {
			return &contract.Suggestion{Task: st.Task, Score: st.Score, Reasons: st.Reasons}
		}
	}
	return &contract.Suggestion{Task: *task}
}

func (s *rightNowService) observe(ctx context.Context, started time.Time, success bool, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		UseCase:  UseCaseRightNow,
		Duration: s.now().Sub(started),
		Success:  success,
		Err:      err,
		Fields:   fields,
	})
}
