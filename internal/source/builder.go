package source

import (
	"context"
	"fmt"
	"sort"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/sharelink"
	"github.com/alexanderramin/nextup/internal/timetable"
	"golang.org/x/sync/errgroup"
)

// ModuleCache stores raw module JSON keyed by (moduleCode, acadYear).
// Implementations decide freshness; a stale or missing entry reports false.
// The cache is an explicit collaborator owned by the Builder, never a
// package-level singleton.
type ModuleCache interface {
	Get(ctx context.Context, moduleCode, acadYear string) ([]byte, bool, error)
	Put(ctx context.Context, moduleCode, acadYear string, payload []byte) error
}

// Builder assembles a Planner from a share link and a Canvas token.
type Builder struct {
	cfg     Config
	nusmods *NUSModsClient
	canvas  *CanvasClient
	cache   ModuleCache // optional
}

// NewBuilder wires the external clients. cache may be nil, in which case
// every module is fetched directly.
func NewBuilder(cfg Config, nusmods *NUSModsClient, canvas *CanvasClient, cache ModuleCache) *Builder {
	return &Builder{cfg: cfg, nusmods: nusmods, canvas: canvas, cache: cache}
}

// Build decodes the share link, fetches every selected module in parallel,
// resolves the selections, and merges in Canvas assignments. A malformed
// link is the only hard failure; an unfetchable module or an unreachable
// Canvas degrades to a partial planner with a warning.
func (b *Builder) Build(ctx context.Context, link string, semester int, token string) (*domain.Planner, error) {
	selections, err := sharelink.Decode(link)
	if err != nil {
		return nil, err
	}

	codes := moduleOrder(selections)
	modules := make([]*domain.PlannerModule, len(codes))
	warnings := make([]string, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	for i, code := range codes {
		g.Go(func() error {
			mod, err := b.buildModule(gctx, code, semester, selections)
			if err != nil {
				// Isolate this module's failure; the others proceed.
				warnings[i] = fmt.Sprintf("skipping %s: %v", code, err)
				return nil
			}
			modules[i] = mod
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	planner := &domain.Planner{}
	for i := range modules {
		if modules[i] != nil {
			planner.Modules = append(planner.Modules, *modules[i])
		}
		if warnings[i] != "" {
			planner.Warnings = append(planner.Warnings, warnings[i])
		}
	}
	sort.SliceStable(planner.Modules, func(i, j int) bool {
		return planner.Modules[i].Workload.TotalWeeklyHours > planner.Modules[j].Workload.TotalWeeklyHours
	})

	assignments, err := b.canvas.FetchTodos(ctx, token)
	if err != nil {
		// Soft failure: the study-task fallback covers an empty pool.
		planner.Warnings = append(planner.Warnings, fmt.Sprintf("assignments unavailable: %v", err))
	} else {
		planner.Assignments = assignments
	}

	return planner, nil
}

// buildModule fetches one module (through the cache when possible) and
// resolves its selections.
func (b *Builder) buildModule(ctx context.Context, code string, semester int, selections []domain.Selection) (*domain.PlannerModule, error) {
	detail, err := b.fetchModule(ctx, code)
	if err != nil {
		return nil, err
	}

	var slots []domain.RawSlot
	if block := detail.SemesterBlock(semester); block != nil {
		for _, lesson := range block.Timetable {
			slots = append(slots, lesson.RawSlot())
		}
	}

	return &domain.PlannerModule{
		ModuleCode: code,
		Title:      detail.Title,
		Workload:   timetable.ExtractWorkload(detail.WorkloadEntries()),
		Lessons:    timetable.ResolveSelections(code, slots, selections),
	}, nil
}

func (b *Builder) fetchModule(ctx context.Context, code string) (*ModuleDetail, error) {
	if b.cache != nil {
		if body, ok, err := b.cache.Get(ctx, code, b.cfg.AcadYear); err == nil && ok {
			if detail, err := DecodeModuleDetail(body); err == nil {
				return detail, nil
			}
			// Corrupt cache entry: fall through to a direct fetch.
		}
	}

	body, err := b.nusmods.FetchModuleRaw(ctx, code, b.cfg.AcadYear)
	if err != nil {
		return nil, err
	}
	if b.cache != nil {
		// Best effort; a failing cache store never fails the fetch.
		_ = b.cache.Put(ctx, code, b.cfg.AcadYear, body)
	}
	return DecodeModuleDetail(body)
}

// moduleOrder returns distinct module codes in selection order.
func moduleOrder(selections []domain.Selection) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, sel := range selections {
		if seen[sel.ModuleCode] {
			continue
		}
		seen[sel.ModuleCode] = true
		codes = append(codes, sel.ModuleCode)
	}
	return codes
}
