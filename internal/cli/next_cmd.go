package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/alexanderramin/nextup/internal/contract"
	"github.com/spf13/cobra"
)

func newNextCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show your next class",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewNextClassRequest()
			if cmd.Flags().Changed("days") {
				req.WindowDays = days
			}

			resp, err := app.Timetable.NextClass(context.Background(), req)
			if err != nil {
				out, rerr := renderedError(err)
				if rerr != nil {
					return rerr
				}
				fmt.Print(out)
				return nil
			}

			fmt.Println(formatter.FormatNextClass(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "How far ahead to look, in days")

	return cmd
}
