package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "summarizer-console",
		Short:         "Console for a remote text summarization service",
		Long:          `summarizer-console submits text to a summarization backend and presents the result in a browser page or the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return nil
			}
			return os.Setenv("CONFIG_PATH", configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config file (overrides CONFIG_PATH)")

	root.AddCommand(newServeCmd(), newTUICmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the console API for the browser page",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initializeServer()
			if err != nil {
				return fmt.Errorf("wire server: %w", err)
			}
			return app.Run(cmd.Context())
		},
	}
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the console in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			console, cleanup, err := initializeConsole(cmd.Context())
			if err != nil {
				return fmt.Errorf("wire console: %w", err)
			}
			defer cleanup()
			return console.Run(cmd.Context())
		},
	}
}
