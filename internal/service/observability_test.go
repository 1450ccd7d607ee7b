package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_SuccessLine(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		UseCase:  UseCaseSync,
		Duration: 120 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"modules": 2},
	})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=sync")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "modules=2")
}

func TestLogUseCaseObserver_FailureLogsAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		UseCase: UseCaseRightNow,
		Success: false,
		Err:     errors.New("planner unavailable"),
	})

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "use_case=right_now_session")
	assert.Contains(t, out, "planner unavailable")
}

func TestLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))

	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	assert.Equal(t, obs, useCaseObserverOrNoop([]UseCaseObserver{obs}))
}
