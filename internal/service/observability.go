package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCase identifies a service operation in telemetry. The set is closed:
// every observed service method reports under exactly one of these names.
type UseCase string

const (
	UseCaseSync     UseCase = "sync"
	UseCaseRightNow UseCase = "right_now_session"
)

// UseCaseEvent describes one completed service call.
type UseCaseEvent struct {
	UseCase  UseCase
	Duration time.Duration
	Success  bool
	Err      error
	Fields   map[string]any
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes use-case events to w as slog text lines,
// one line per completed call. Failed calls log at error level.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []any{
		"use_case", string(event.UseCase),
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	}
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}

	level := slog.LevelInfo
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		level = slog.LevelError
	}
	o.logger.Log(ctx, level, "use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
