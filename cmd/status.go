package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// statusCmd queries the agent's local control API once and lists tunnels
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List the agent's current tunnels",
	Long:  `Query the tunnel agent's local control API and list all current tunnels.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		resp, err := Container.StatusClient.Tunnels(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			fmt.Println("Is the tunnel agent running?")
			os.Exit(1)
		}

		if len(resp.Tunnels) == 0 {
			fmt.Println("No active tunnels")
			return
		}

		fmt.Printf("Active tunnels (%d):\n", len(resp.Tunnels))
		for i, t := range resp.Tunnels {
			fmt.Printf("  %d. %s\n", i+1, t.PublicURL)
			if t.Name != "" {
				fmt.Printf("     Name:  %s\n", t.Name)
			}
			if t.Proto != "" {
				fmt.Printf("     Proto: %s\n", t.Proto)
			}
			if t.Config.Addr != "" {
				fmt.Printf("     Local: %s\n", t.Config.Addr)
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
