package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Config command flags
	configAgentBinary   string
	configAddresses     []string
	configControlAPIURL string
	configPollAttempts  int
	configPollInterval  string
	configProbeTimeout  string
	configProbeInterval string
	configLogLevel      string
	configLogFile       string
)

// configCmd is the command to manage configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Manage Devtunnel Client configuration.`,
}

// configShowCmd is the command to display configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configuration",
	Long:  `Display Devtunnel Client configuration.`,
	Run: func(cmd *cobra.Command, args []string) {
		configFile := ConfigPath
		if configFile == "" {
			configFile = Container.Config.GetConfigFilePath()
		}

		fmt.Println("Devtunnel Client Configuration:")
		fmt.Printf("Config File: %s\n", configFile)
		fmt.Printf("Agent Binary: %s\n", Container.Config.AgentBinary)
		if len(Container.Config.Addresses) > 0 {
			fmt.Printf("Addresses: %s\n", strings.Join(Container.Config.Addresses, ", "))
		} else {
			fmt.Printf("Addresses: (none, passed to expose as arguments)\n")
		}
		fmt.Printf("Control API URL: %s\n", Container.Config.ControlAPIURL)
		fmt.Printf("Poll Attempts: %d\n", Container.Config.PollAttempts)
		fmt.Printf("Poll Interval: %s\n", Container.Config.PollInterval)
		fmt.Printf("Probe Timeout: %s\n", Container.Config.ProbeTimeout)
		fmt.Printf("Probe Interval: %s\n", Container.Config.ProbeInterval)
		fmt.Printf("Log Level: %s\n", Container.Config.LogLevel)
		fmt.Printf("Log File: %s\n", Container.Config.LogFile)
	},
}

// configSetCmd is the command to change configuration
var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	Long:  `Set Devtunnel Client configuration values and save them to the configuration file.`,
	Run: func(cmd *cobra.Command, args []string) {
		changed := false

		if cmd.Flags().Changed("agent-binary") {
			Container.ConfigService.SetAgentBinary(Container.Config, configAgentBinary)
			changed = true
		}
		if cmd.Flags().Changed("addresses") {
			Container.ConfigService.SetAddresses(Container.Config, configAddresses)
			changed = true
		}
		if cmd.Flags().Changed("control-api-url") {
			Container.ConfigService.SetControlAPIURL(Container.Config, configControlAPIURL)
			changed = true
		}
		if cmd.Flags().Changed("poll-attempts") {
			Container.ConfigService.SetPollAttempts(Container.Config, configPollAttempts)
			changed = true
		}
		if cmd.Flags().Changed("poll-interval") {
			interval, err := time.ParseDuration(configPollInterval)
			if err != nil {
				fmt.Printf("Error: Invalid poll interval: %v\n", err)
				os.Exit(1)
			}
			Container.ConfigService.SetPollInterval(Container.Config, interval)
			changed = true
		}
		if cmd.Flags().Changed("probe-timeout") {
			timeout, err := time.ParseDuration(configProbeTimeout)
			if err != nil {
				fmt.Printf("Error: Invalid probe timeout: %v\n", err)
				os.Exit(1)
			}
			Container.ConfigService.SetProbeTimeout(Container.Config, timeout)
			changed = true
		}
		if cmd.Flags().Changed("probe-interval") {
			interval, err := time.ParseDuration(configProbeInterval)
			if err != nil {
				fmt.Printf("Error: Invalid probe interval: %v\n", err)
				os.Exit(1)
			}
			Container.ConfigService.SetProbeInterval(Container.Config, interval)
			changed = true
		}
		if cmd.Flags().Changed("log-level") {
			Container.ConfigService.SetLogLevel(Container.Config, configLogLevel)
			changed = true
		}
		if cmd.Flags().Changed("log-file") {
			Container.ConfigService.SetLogFile(Container.Config, configLogFile)
			changed = true
		}

		if !changed {
			fmt.Println("Nothing to set, see --help for available options")
			return
		}

		if err := Container.ConfigService.SaveConfig(Container.Config, ConfigPath); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Configuration saved")
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)

	configSetCmd.Flags().StringVar(&configAgentBinary, "agent-binary", "", "Tunnel agent executable name")
	configSetCmd.Flags().StringSliceVar(&configAddresses, "addresses", nil, "Host server addresses, one http:// and one https://")
	configSetCmd.Flags().StringVar(&configControlAPIURL, "control-api-url", "", "Agent control API URL")
	configSetCmd.Flags().IntVar(&configPollAttempts, "poll-attempts", 0, "Retry budget for public URL discovery")
	configSetCmd.Flags().StringVar(&configPollInterval, "poll-interval", "", "Delay between discovery attempts (e.g. 200ms)")
	configSetCmd.Flags().StringVar(&configProbeTimeout, "probe-timeout", "", "How long to wait for the local server (e.g. 30s)")
	configSetCmd.Flags().StringVar(&configProbeInterval, "probe-interval", "", "Delay between local server probes (e.g. 250ms)")
	configSetCmd.Flags().StringVar(&configLogLevel, "log-level", "", "Logging level (debug, info, warn, error)")
	configSetCmd.Flags().StringVar(&configLogFile, "log-file", "", "Path to log file")
}
