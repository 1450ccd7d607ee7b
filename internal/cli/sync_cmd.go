package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/alexanderramin/nextup/internal/contract"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	var link, token string
	var semester int

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch your timetable from NUSMods and assignments from Canvas",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No link anywhere: ask for one interactively rather than failing.
			if link == "" && app.Config.ShareLink == "" && app.interactive() {
				if err := wizardConnect(&link, &token).Run(); err != nil {
					return err
				}
			}

			req := contract.SyncRequest{ShareLink: link, CanvasToken: token}
			if cmd.Flags().Changed("semester") {
				req.Semester = semester
			}

			stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Fetching modules and assignments...")
			resp, err := app.Sync.Sync(context.Background(), req)
			stop()
			if err != nil {
				out, rerr := renderedError(err)
				if rerr != nil {
					return rerr
				}
				fmt.Print(out)
				return nil
			}

			fmt.Print(formatter.FormatSync(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&link, "link", "", "NUSMods timetable share link")
	cmd.Flags().IntVar(&semester, "semester", 0, "Semester to sync (1-4)")
	cmd.Flags().StringVar(&token, "token", "", "Canvas API access token")

	return cmd
}
