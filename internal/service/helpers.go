package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/nextup/internal/contract"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/sharelink"
	"github.com/alexanderramin/nextup/internal/source"
)

// buildPlanner resolves the effective share link from the request override or
// the config and builds the planner. token may be empty, which skips the
// Canvas fetch entirely.
func buildPlanner(ctx context.Context, src PlannerSource, cfg source.Config, link string, semester int, token string) (*domain.Planner, error) {
	if link == "" {
		link = cfg.ShareLink
	}
	if link == "" {
		return nil, contract.NewError(contract.ErrMissingShareLink,
			"no share link configured; run sync with --link or set NEXTUP_SHARE_LINK")
	}
	if semester == 0 {
		semester = cfg.Semester
	}

	planner, err := src.Build(ctx, link, semester, token)
	if err != nil {
		if errors.Is(err, sharelink.ErrInvalidLinkFormat) {
			return nil, contract.NewError(contract.ErrInvalidShareLink, err.Error())
		}
		return nil, contract.NewError(contract.ErrInternalError, err.Error())
	}
	return planner, nil
}
