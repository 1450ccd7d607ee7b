package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/alexanderramin/nextup/internal/contract"
	"github.com/alexanderramin/nextup/internal/service"
	"github.com/alexanderramin/nextup/internal/source"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sync      service.SyncService
	Timetable service.TimetableService
	RightNow  service.RightNowService
	Config    source.Config

	// IsInteractive reports whether stdin is a terminal. Wizard forms and
	// the Right Now loop only run when it returns true.
	IsInteractive func() bool
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "nextup" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "nextup",
		Short:         "Timetable-aware study planner for NUS students",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSyncCmd(app),
		newScheduleCmd(app),
		newNextCmd(app),
		newClashesCmd(app),
		newWorkloadCmd(app),
		newNowCmd(app),
	)

	return root
}

// renderedError replaces selected coded errors with a friendly styled line
// so expected empty states do not surface as failures.
func renderedError(err error) (string, error) {
	var cerr *contract.Error
	if !errors.As(err, &cerr) {
		return "", err
	}
	switch cerr.Code {
	case contract.ErrNoUpcomingClass:
		return formatter.Dim("No upcoming class in that window.") + "\n", nil
	case contract.ErrNoTasks:
		return formatter.Dim("Nothing to work on right now. Enjoy the break.") + "\n", nil
	case contract.ErrMissingShareLink:
		return "", fmt.Errorf("%s\n%s", cerr.Message,
			formatter.Dim("Tip: grab the link from https://nusmods.com via Share/Sync."))
	}
	return "", err
}
