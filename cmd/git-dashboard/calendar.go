package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/just-nibble/git-dashboard/internal/cli"
	"github.com/just-nibble/git-dashboard/internal/http/handlers"
	"github.com/just-nibble/git-dashboard/internal/usecases"
	"github.com/just-nibble/git-dashboard/internal/view"
	"github.com/just-nibble/git-dashboard/pkg/errcodes"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print your contribution grid for the last 30 days",
	RunE:  runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	client, err := envClient()
	if err != nil {
		return err
	}

	uc := usecases.NewContributionUsecase(logger, nil)
	days, err := uc.RecentDays(cmd.Context(), client)
	if err != nil {
		if errors.Is(err, errcodes.ErrUpstreamUnavailable) {
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderError(handlers.MsgContribUnavailable))
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderGrid(view.LayoutGrid(days)))
	return nil
}
