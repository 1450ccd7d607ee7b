package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newClashesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clashes",
		Short: "Detect overlapping lessons in your timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Timetable.Clashes(context.Background())
			if err != nil {
				out, rerr := renderedError(err)
				if rerr != nil {
					return rerr
				}
				fmt.Print(out)
				return nil
			}

			fmt.Print(formatter.FormatClashes(resp))
			return nil
		},
	}
}
