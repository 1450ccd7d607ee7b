package contract

import (
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

type ScheduleRequest struct {
	WindowDays int
	Now        *time.Time
}

func NewScheduleRequest() ScheduleRequest {
	return ScheduleRequest{WindowDays: 7}
}

type ScheduleResponse struct {
	GeneratedAt time.Time
	WindowDays  int
	Occurrences []domain.Occurrence
	Warnings    []string
}

type NextClassRequest struct {
	WindowDays int
	Now        *time.Time
}

func NewNextClassRequest() NextClassRequest {
	return NextClassRequest{WindowDays: 7}
}

type NextClassResponse struct {
	GeneratedAt time.Time
	Next        *domain.Occurrence
	Warnings    []string
}

type ClashResponse struct {
	GeneratedAt time.Time
	Clashes     []domain.ClashRecord
	Warnings    []string
}

type WorkloadResponse struct {
	GeneratedAt      time.Time
	Modules          []ModuleWorkload
	TotalWeeklyHours float64
	Warnings         []string
}

// ModuleWorkload is one module's weekly workload breakdown.
type ModuleWorkload struct {
	ModuleCode string
	Title      string
	Breakdown  domain.WorkloadBreakdown
}
