package contract

import (
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

type RightNowRequest struct {
	Energy     int
	WindowDays int
	Now        *time.Time
}

func NewRightNowRequest(energy int) RightNowRequest {
	return RightNowRequest{Energy: energy, WindowDays: 7}
}

// Suggestion is one prioritized task with the reasons it won.
type Suggestion struct {
	Task    domain.Task
	Score   float64
	Reasons []Reason
}

type RightNowResponse struct {
	GeneratedAt time.Time
	Suggestion  *Suggestion
	Remaining   int
	Warnings    []string
}
