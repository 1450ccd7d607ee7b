package service

import (
	"context"

	"github.com/alexanderramin/nextup/internal/contract"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/rightnow"
)

// PlannerSource builds a planner from a share link. Satisfied by
// *source.Builder; tests substitute a stub.
type PlannerSource interface {
	Build(ctx context.Context, link string, semester int, token string) (*domain.Planner, error)
}

type SyncService interface {
	Sync(ctx context.Context, req contract.SyncRequest) (*contract.SyncResponse, error)
}

type TimetableService interface {
	Schedule(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error)
	NextClass(ctx context.Context, req contract.NextClassRequest) (*contract.NextClassResponse, error)
	Clashes(ctx context.Context) (*contract.ClashResponse, error)
	Workload(ctx context.Context) (*contract.WorkloadResponse, error)
}

// RightNowService starts a prioritization session. The returned engine is
// owned by the caller, which drives Prompt/Finish/Skip interactively.
type RightNowService interface {
	NewSession(ctx context.Context, req contract.RightNowRequest) (*rightnow.Engine, *contract.RightNowResponse, error)
}
