package cmd

import (
	"fmt"
	"os"

	"github.com/devtunnel/devtunnel-go-client/internal/di"
	"github.com/spf13/cobra"
)

var (
	// Container is the dependency injection container
	Container *di.Container

	// ConfigPath is the path to the configuration file
	ConfigPath string

	// LogLevel is the logging level
	LogLevel string

	// RootCmd is the root command for CLI
	RootCmd = &cobra.Command{
		Use:   "devtunnel",
		Short: "Devtunnel Client - expose a local dev server through a public tunnel",
		Long: `Devtunnel Client drives an external tunnel agent to expose a local
web server through a public HTTPS address during development.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Container = di.NewContainer()

			if err := Container.Initialize(ConfigPath); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}

			// Flag overrides the configured level
			if RootCmd.PersistentFlags().Changed("log-level") {
				Container.Logger.SetLevel(LogLevel)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if Container != nil {
				Container.Close()
			}
		},
	}
)

// Execute runs the root command
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&ConfigPath, "config", "c", "", "Path to configuration file (default: ~/.devtunnel/config.yaml)")
	RootCmd.PersistentFlags().StringVar(&LogLevel, "log-level", "info", "Set logging level (debug, info, warn, error)")
}
