package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// exposeCmd runs the tunnel lifecycle against a local dev server
var exposeCmd = &cobra.Command{
	Use:   "expose [http-url] [https-url]",
	Short: "Expose a local server through the tunnel agent",
	Long: `Expose a running local web server through the external tunnel agent.
The server's bound addresses are given as arguments, one http:// and one
https:// address, or taken from the configuration file's "addresses" key
when no arguments are given. The https address is forwarded.

Examples:
  devtunnel expose http://localhost:5000 https://localhost:5001
  devtunnel expose`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return fmt.Errorf("expected one http:// and one https:// address, or no arguments to use the configured addresses")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		addresses := args
		if len(addresses) == 0 {
			addresses = Container.Config.Addresses
		}
		if len(addresses) == 0 {
			fmt.Println("Error: No addresses given and none configured")
			fmt.Println("Pass the server's addresses as arguments or set them with:")
			fmt.Println("  devtunnel config set --addresses http://localhost:5000,https://localhost:5001")
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		coordinator, probedHost := Container.NewCoordinator(addresses)
		probedHost.Start(ctx)

		errCh := make(chan error, 1)
		go func() {
			errCh <- coordinator.Run(ctx)
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				fmt.Printf("Error: Tunnel unavailable: %v\n", err)
				os.Exit(1)
			}
			return
		case <-probedHost.Failed():
			fmt.Printf("Error: Local server did not answer on %v\n", addresses)
			os.Exit(1)
		case <-coordinator.Ready():
		}

		session := coordinator.Session()
		fmt.Fprintf(os.Stderr, "=================================================\n")
		fmt.Fprintf(os.Stderr, "TUNNEL READY\n")
		fmt.Fprintf(os.Stderr, "=================================================\n")
		fmt.Fprintf(os.Stderr, "Public URL:  %s\n", coordinator.PublicURL())
		fmt.Fprintf(os.Stderr, "Forwarding:  %s\n", session.TargetURL)
		fmt.Fprintf(os.Stderr, "Host header: %s\n", session.HostHeader)
		fmt.Fprintf(os.Stderr, "Session:     %s\n", session.ID)
		fmt.Fprintf(os.Stderr, "=================================================\n")
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop the tunnel\n")

		// The run ends when the signal context is cancelled or the agent dies
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Tunnel closed")
	},
}

func init() {
	RootCmd.AddCommand(exposeCmd)
}
