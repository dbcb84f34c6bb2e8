package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/just-nibble/git-dashboard/internal/adapters/api"
	"github.com/just-nibble/git-dashboard/pkg/config"
	"github.com/just-nibble/git-dashboard/pkg/git"
	pkglog "github.com/just-nibble/git-dashboard/pkg/log"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "git-dashboard",
	Short:         "Personal GitHub activity dashboard",
	Long:          `Shows a user's latest repositories, their commits from the last 30 days and a 30 day contribution grid.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		logger = pkglog.New(cfg.Log.Level, cfg.Log.Pretty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
}

func apiConfig(c *config.Config) api.Config {
	return api.Config{
		BaseURL:   c.GitHub.BaseURL,
		UserAgent: c.GitHub.UserAgent,
		Timeout:   c.GitHub.Timeout,
	}
}

// envClient builds a client from GITHUB_TOKEN for the terminal commands
func envClient() (git.GitClient, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN is not set")
	}
	client, err := api.NewGitHubClient(apiConfig(cfg), token)
	if err != nil {
		return nil, err
	}
	return client, nil
}
