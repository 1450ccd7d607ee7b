package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/alexanderramin/nextup/internal/contract"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show upcoming classes for the next few days",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewScheduleRequest()
			if cmd.Flags().Changed("days") {
				req.WindowDays = days
			}

			resp, err := app.Timetable.Schedule(context.Background(), req)
			if err != nil {
				out, rerr := renderedError(err)
				if rerr != nil {
					return rerr
				}
				fmt.Print(out)
				return nil
			}

			fmt.Print(formatter.FormatSchedule(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Window size in days")

	return cmd
}
