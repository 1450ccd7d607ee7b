package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/alexanderramin/nextup/internal/contract"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newNowCmd(app *App) *cobra.Command {
	var energy energyValue
	var days int

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Get one thing to work on right now",
		Long: "Suggests the single most urgent task from your Canvas assignments " +
			"and upcoming classes. In a terminal this opens an interactive loop: " +
			"finish or skip the suggestion and get the next one.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewRightNowRequest(int(energy))
			if cmd.Flags().Changed("days") {
				req.WindowDays = days
			}

			if app.interactive() {
				_, err := tea.NewProgram(newNowModel(app, req)).Run()
				return err
			}

			// Without a terminal print the top suggestion once.
			_, resp, err := app.RightNow.NewSession(context.Background(), req)
			if err != nil {
				out, rerr := renderedError(err)
				if rerr != nil {
					return rerr
				}
				fmt.Print(out)
				return nil
			}
			fmt.Println(formatter.FormatRightNow(resp))
			return nil
		},
	}

	cmd.Flags().Var(&energy, "energy", "Current energy level 1-5 (default 3)")
	cmd.Flags().IntVar(&days, "days", 7, "Days of upcoming classes to draw study tasks from")

	return cmd
}
