package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/nextup/internal/contract"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/source"
)

// stubSource returns a canned planner and records the arguments it saw.
type stubSource struct {
	planner  *domain.Planner
	err      error
	link     string
	semester int
	token    string
	calls    int
}

func (s *stubSource) Build(_ context.Context, link string, semester int, token string) (*domain.Planner, error) {
	s.calls++
	s.link = link
	s.semester = semester
	s.token = token
	if s.err != nil {
		return nil, s.err
	}
	return s.planner, nil
}

// testNow is midday Monday in UTC, morning classes already past in UTC+8.
var testNow = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

func resolvedLesson(module, short, day, start, end string) domain.ResolvedLesson {
	return domain.ResolvedLesson{
		ModuleCode:      module,
		LessonTypeShort: short,
		LessonTypeFull:  "Lecture",
		ClassNo:         "01",
		Day:             day,
		StartTime:       start,
		EndTime:         end,
		Venue:           "LT19",
	}
}

func fixturePlanner() *domain.Planner {
	due := testNow.Add(20 * time.Hour)
	return &domain.Planner{
		Modules: []domain.PlannerModule{
			{
				ModuleCode: "CS2040C",
				Title:      "Data Structures and Algorithms",
				Workload: domain.WorkloadBreakdown{
					Entries: map[domain.WorkloadCategory]domain.WorkloadEntry{
						domain.WorkloadLecture: {Declared: "2 hours", Hours: 2},
					},
					TotalWeeklyHours: 12,
				},
				Lessons: []domain.ResolvedLesson{
					resolvedLesson("CS2040C", "LEC", "Tuesday", "1000", "1200"),
					resolvedLesson("CS2040C", "LAB", "Tuesday", "1100", "1300"),
				},
			},
			{
				ModuleCode: "CDE2501",
				Title:      "Liveable Cities",
				Workload:   domain.WorkloadBreakdown{TotalWeeklyHours: 10},
				Lessons: []domain.ResolvedLesson{
					resolvedLesson("CDE2501", "TUT", "Friday", "0900", "1200"),
				},
			},
		},
		Assignments: []domain.Assignment{
			{Title: "Lab 3 Submission", Course: "CS2040C Data Structures", DueAt: &due},
		},
	}
}

func fixtureConfig() source.Config {
	cfg := source.DefaultConfig()
	cfg.ShareLink = "https://nusmods.com/timetable/sem-1/share?CS2040C=LEC:(0)"
	cfg.Semester = 1
	cfg.CanvasToken = "tok"
	return cfg
}

func requireContractCode(t *testing.T, err error, code contract.ErrorCode) {
	t.Helper()
	var cerr *contract.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected contract error, got %v", err)
	}
	if cerr.Code != code {
		t.Fatalf("expected code %s, got %s", code, cerr.Code)
	}
}
