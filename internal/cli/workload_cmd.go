package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWorkloadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "workload",
		Short: "Show declared weekly workload per module",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Timetable.Workload(context.Background())
			if err != nil {
				out, rerr := renderedError(err)
				if rerr != nil {
					return rerr
				}
				fmt.Print(out)
				return nil
			}

			fmt.Print(formatter.FormatWorkload(resp))
			return nil
		},
	}
}
