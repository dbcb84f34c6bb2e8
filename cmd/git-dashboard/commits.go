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

var commitsPage int

var commitsCmd = &cobra.Command{
	Use:   "commits",
	Short: "Print one page of your commits from the last 30 days",
	Long:  `Aggregates commits across your repositories using GITHUB_TOKEN and prints the requested page, newest first.`,
	RunE:  runCommits,
}

func init() {
	commitsCmd.Flags().IntVar(&commitsPage, "page", view.DEFAULTPAGE, "page to show, clamped into range")
	rootCmd.AddCommand(commitsCmd)
}

func runCommits(cmd *cobra.Command, args []string) error {
	client, err := envClient()
	if err != nil {
		return err
	}

	uc := usecases.NewCommitHistoryUsecase(logger, nil)
	commits, err := uc.RecentCommits(cmd.Context(), client)
	if err != nil {
		if errors.Is(err, errcodes.ErrUpstreamUnavailable) {
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderError(handlers.MsgCommitsUnavailable))
		}
		return err
	}

	pager := view.NewCommitPager(commits)
	pager.Goto(commitsPage)
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderCommitPage(pager))
	return nil
}
