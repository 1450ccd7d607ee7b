package service

import (
	"context"
	"time"

	"github.com/alexanderramin/nextup/internal/contract"
	"github.com/alexanderramin/nextup/internal/source"
)

type syncService struct {
	src      PlannerSource
	cfg      source.Config
	observer UseCaseObserver
	now      func() time.Time
}

// NewSyncService wires the planner source into the sync use case.
func NewSyncService(src PlannerSource, cfg source.Config, observers ...UseCaseObserver) SyncService {
	return &syncService{
		src:      src,
		cfg:      cfg,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *syncService) Sync(ctx context.Context, req contract.SyncRequest) (*contract.SyncResponse, error) {
	started := s.now()

	token := req.CanvasToken
	if token == "" {
		token = s.cfg.CanvasToken
	}
	planner, err := buildPlanner(ctx, s.src, s.cfg, req.ShareLink, req.Semester, token)
	if err != nil {
		s.observe(ctx, started, false, err, nil)
		return nil, err
	}

	semester := req.Semester
	if semester == 0 {
		semester = s.cfg.Semester
	}

	resp := &contract.SyncResponse{
		GeneratedAt:     s.now(),
		AcadYear:        s.cfg.AcadYear,
		Semester:        semester,
		AssignmentCount: len(planner.Assignments),
		Warnings:        planner.Warnings,
	}
	for _, mod := range planner.Modules {
		resp.Modules = append(resp.Modules, contract.ModuleSummary{
			ModuleCode:       mod.ModuleCode,
			Title:            mod.Title,
			LessonCount:      len(mod.Lessons),
			TotalWeeklyHours: mod.Workload.TotalWeeklyHours,
		})
	}

	s.observe(ctx, started, true, nil, map[string]any{
		"modules":     len(resp.Modules),
		"assignments": resp.AssignmentCount,
		"warnings":    len(resp.Warnings),
	})
	return resp, nil
}

func (s *syncService) observe(ctx context.Context, started time.Time, success bool, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		UseCase:  UseCaseSync,
		Duration: s.now().Sub(started),
		Success:  success,
		Err:      err,
		Fields:   fields,
	})
}
