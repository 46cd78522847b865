// Flexscan is a LAN discovery utility for FlexRadio transceivers.
//
// FlexRadio 6000-series radios announce themselves with a UDP broadcast
// on port 4992. Flexscan listens for those broadcasts and shows every
// radio it hears, either as a one-shot scan, a plain-text listen loop,
// or a live terminal dashboard.
//
// Usage:
//
//	flexscan [command] [flags]
//
// Running without arguments launches the live watch dashboard when
// stdout is a terminal, and a one-shot scan otherwise.
// See 'flexscan --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ckode/flexscan/internal/logging"
	"github.com/ckode/flexscan/internal/version"
)

func main() {
	logging.InitializeFromEnv()
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flexscan",
	Short: "FlexRadio LAN Discovery Utility",
	Long: `A standalone utility for discovering FlexRadio transceivers on the
local network.

FlexRadio 6000-series radios broadcast a discovery announcement over UDP
port 4992. Flexscan decodes those announcements and shows each radio's
model, serial, address, status and callsign.

If no command is specified, the live watch dashboard launches when stdout
is a terminal; otherwise a one-shot scan runs.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: watch dashboard on a terminal, plain scan
		// when output is piped or redirected.
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return runWatch(cmd, args)
		}
		return runScan(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("flexscan %s (commit: %s)\n", version.Version, version.Commit)
	},
}
