package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"solace/internal/app"
	"solace/internal/tui"
)

const version = "1.0.0"

func main() {
	var (
		baseURL  string
		nickname string
		theme    string
		noColor  bool
	)

	root := &cobra.Command{
		Use:     "solace",
		Short:   "A private terminal companion for mental-health check-ins",
		Long:    "Solace is a terminal client for a peer-support chat service.\n\nIt keeps a conversation, a mood log and sentiment insights for one\nanonymous session, and surfaces crisis resources when a conversation\nsignals risk.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(app.DefaultConfigPath())
			if err != nil {
				return err
			}
			cfg = cfg.Overlay(baseURL, nickname, theme, noColor)

			dataDir := app.DefaultDataDir()
			logger := app.NewLogger(dataDir)
			defer func() { _ = logger.Sync() }()

			client := app.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
			store := app.NewIdentityStore(dataDir)
			application := app.New(cfg, client, store, logger)

			p := tea.NewProgram(tui.New(application), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}

	root.Flags().StringVar(&baseURL, "base-url", "", "backend base URL (default http://localhost:8000/api)")
	root.Flags().StringVar(&nickname, "nickname", "", "optional nickname for new sessions")
	root.Flags().StringVar(&theme, "theme", "", "color theme: dawn|dusk")
	root.Flags().BoolVar(&noColor, "no-color", false, "disable colors")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the config file location and current values",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.DefaultConfigPath()
			cfg, err := app.LoadConfig(path)
			if err != nil {
				return err
			}
			fmt.Printf("config: %s\n", path)
			fmt.Printf("base_url: %s\n", cfg.BaseURL)
			fmt.Printf("nickname: %s\n", cfg.Nickname)
			fmt.Printf("timeout_seconds: %d\n", cfg.TimeoutSeconds)
			fmt.Printf("theme: %s\n", cfg.Theme)
			return nil
		},
	}
	root.AddCommand(configCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
