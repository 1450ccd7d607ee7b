package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/nextup/internal/contract"
	"github.com/alexanderramin/nextup/internal/source"
	"github.com/alexanderramin/nextup/internal/timetable"
)

type timetableService struct {
	src PlannerSource
	cfg source.Config
	now func() time.Time
}

// NewTimetableService wires the planner source into the read-only timetable
// queries. None of them touch Canvas, so module data alone is fetched.
func NewTimetableService(src PlannerSource, cfg source.Config) TimetableService {
	return &timetableService{src: src, cfg: cfg, now: time.Now}
}

func (s *timetableService) Schedule(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error) {
	days := req.WindowDays
	if days <= 0 {
		days = 7
	}
	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}

	planner, err := buildPlanner(ctx, s.src, s.cfg, "", 0, "")
	if err != nil {
		return nil, err
	}

	return &contract.ScheduleResponse{
		GeneratedAt: now,
		WindowDays:  days,
		Occurrences: timetable.UpcomingWithin(now, planner.Lessons(), days),
		Warnings:    planner.Warnings,
	}, nil
}

func (s *timetableService) NextClass(ctx context.Context, req contract.NextClassRequest) (*contract.NextClassResponse, error) {
	days := req.WindowDays
	if days <= 0 {
		days = 7
	}
	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}

	planner, err := buildPlanner(ctx, s.src, s.cfg, "", 0, "")
	if err != nil {
		return nil, err
	}

	resp := &contract.NextClassResponse{GeneratedAt: now, Warnings: planner.Warnings}
	if occ, ok := timetable.NextAcross(now, planner.Lessons(), days); ok {
		resp.Next = &occ
		return resp, nil
	}
	return nil, contract.NewError(contract.ErrNoUpcomingClass,
		fmt.Sprintf("no class found in the next %d days", days))
}

func (s *timetableService) Clashes(ctx context.Context) (*contract.ClashResponse, error) {
	planner, err := buildPlanner(ctx, s.src, s.cfg, "", 0, "")
	if err != nil {
		return nil, err
	}

	return &contract.ClashResponse{
		GeneratedAt: s.now(),
		Clashes:     timetable.Clashes(planner.Lessons()),
		Warnings:    planner.Warnings,
	}, nil
}

func (s *timetableService) Workload(ctx context.Context) (*contract.WorkloadResponse, error) {
	planner, err := buildPlanner(ctx, s.src, s.cfg, "", 0, "")
	if err != nil {
		return nil, err
	}

	resp := &contract.WorkloadResponse{GeneratedAt: s.now(), Warnings: planner.Warnings}
	for _, mod := range planner.Modules {
		resp.Modules = append(resp.Modules, contract.ModuleWorkload{
			ModuleCode: mod.ModuleCode,
			Title:      mod.Title,
			Breakdown:  mod.Workload,
		})
		resp.TotalWeeklyHours += mod.Workload.TotalWeeklyHours
	}
	if len(resp.Modules) == 0 {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("no modules resolved for semester %d", s.cfg.Semester))
	}
	return resp, nil
}
