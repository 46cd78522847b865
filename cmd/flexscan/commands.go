package main

import (
	"encoding/json"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ckode/flexscan/internal/config"
	"github.com/ckode/flexscan/internal/discovery"
	"github.com/ckode/flexscan/internal/protocol"
	"github.com/ckode/flexscan/internal/tui"
)

// Command flags
var (
	bindAddress    string
	discoveryPort  int
	receiveTimeout int
	outputFormat   string
	scanWindow     int
	noSave         bool
	listenCount    int
	listenInterval int
)

func init() {
	// Common flags for all discovery commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&bindAddress, "bind", discovery.DefaultBindAddress, "Address to bind the UDP listener to")
	rootCmd.PersistentFlags().IntVar(&discoveryPort, "port", discovery.DefaultPort, "UDP discovery port")
	rootCmd.PersistentFlags().IntVar(&receiveTimeout, "timeout", 3, "Per-receive timeout in seconds")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")

	// Stored preferences act as defaults for any flag the user left
	// untouched; explicit flags always win.
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if reg, err := config.LoadRegistry(); err == nil {
			applyPreferences(cmd.Flags(), reg.Preferences)
		}
	}

	// Add subcommands directly to root
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(listenCmd)
	rootCmd.AddCommand(watchCmd)
}

// applyPreferences overlays registry preferences onto any flag the
// user did not set on the command line. A flag that is absent from the
// running command's flag set is skipped.
func applyPreferences(flags *pflag.FlagSet, prefs *config.Preferences) {
	if prefs == nil {
		return
	}

	if f := flags.Lookup("bind"); f != nil && !f.Changed && prefs.BindAddress != "" {
		bindAddress = prefs.BindAddress
	}
	if f := flags.Lookup("port"); f != nil && !f.Changed && prefs.Port > 0 {
		discoveryPort = prefs.Port
	}
	if f := flags.Lookup("window"); f != nil && !f.Changed && prefs.ScanWindow > 0 {
		scanWindow = prefs.ScanWindow
	}
	if f := flags.Lookup("no-save"); f != nil && !f.Changed {
		noSave = !prefs.AutoSave
	}
}

// newListener builds a listener from the shared flags.
func newListener() (*discovery.Listener, error) {
	return discovery.NewListenerOn(bindAddress, discoveryPort,
		time.Duration(receiveTimeout)*time.Second)
}

// scanCmd listens for a fixed window and prints every radio heard
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for FlexRadio transceivers on the network",
	Long: `Scan for FlexRadio transceivers by listening for their UDP discovery
broadcasts.

The command listens for a fixed window, collects the announcements heard,
and prints one entry per radio (deduplicated by serial number, keeping the
most recent announcement). Sightings are recorded in the flexscan registry
unless --no-save is given.`,
	Example: `  # Scan for 10 seconds (default)
  flexscan scan

  # Quick 3-second scan
  flexscan scan --window 3

  # JSON output for scripting
  flexscan scan --format json

  # Scan without touching the registry
  flexscan scan --no-save`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanWindow, "window", 10, "Scan window in seconds")
	scanCmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record sightings in the registry")
}

func runScan(cmd *cobra.Command, args []string) error {
	listener, err := newListener()
	if err != nil {
		return err
	}
	defer listener.Close()

	if outputFormat != "json" {
		fmt.Printf("Scanning for FlexRadio transceivers on %s (window: %ds)...\n\n",
			listener.LocalAddr(), scanWindow)
	}

	deadline := time.Now().Add(time.Duration(scanWindow) * time.Second)

	// Keep the latest announcement per serial; announcements without a
	// serial are keyed by sender address so they still show up.
	radios := make(map[string]*protocol.Announcement)
	var order []string
	badDatagrams := 0

	for time.Now().Before(deadline) {
		ann, err := listener.ReceiveOne()
		if err != nil {
			badDatagrams++
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", err)
			continue
		}
		if ann == nil {
			continue
		}

		key := ann.Serial
		if key == "" && ann.Source != nil {
			key = ann.Source.IP.String()
		}
		if key == "" {
			continue
		}
		if _, seen := radios[key]; !seen {
			order = append(order, key)
		}
		radios[key] = ann
	}

	if !noSave {
		if err := saveSightings(radios); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to save registry: %v\n", err)
		}
	}

	if outputFormat == "json" {
		anns := make([]*protocol.Announcement, 0, len(order))
		for _, key := range order {
			anns = append(anns, radios[key])
		}
		data, err := json.MarshalIndent(anns, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(radios) == 0 {
		fmt.Println("No radios found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Ensure the radio is powered on and connected to the LAN")
		fmt.Println("  - Verify your computer is on the same subnet as the radio")
		fmt.Println("  - Check that no firewall is blocking UDP port", discoveryPort)
		fmt.Println("  - Try increasing --window on busy or slow networks")
		return nil
	}

	reg, _ := config.LoadRegistry()

	fmt.Printf("Found %d radio(s):\n\n", len(radios))
	for i, key := range order {
		ann := radios[key]
		switch outputFormat {
		case "compact":
			fmt.Printf("%d. %s\n", i+1, ann)
		default:
			printDetailed(i+1, ann, reg)
		}
	}
	if badDatagrams > 0 {
		fmt.Printf("Ignored %d malformed datagram(s).\n\n", badDatagrams)
	}

	fmt.Println("Use 'flexscan watch' for a live dashboard")
	fmt.Println("Use 'flexscan listen' to print announcements as they arrive")

	return nil
}

// displayName picks the name to show for an announcement. A nickname
// the user stored in the registry overrides the broadcast one.
func displayName(reg *config.Registry, ann *protocol.Announcement) string {
	if reg != nil && ann.Serial != "" {
		if radio := reg.GetRadio(ann.Serial); radio != nil && radio.Nickname != "" {
			return radio.DisplayName(ann.Serial)
		}
	}
	if ann.Nickname != "" {
		return ann.Nickname
	}
	if ann.Model != "" {
		return ann.Model
	}
	return ann.Serial
}

// printDetailed renders one radio in the multi-line scan format.
func printDetailed(index int, ann *protocol.Announcement, reg *config.Registry) {
	fmt.Printf("%d. %s\n", index, displayName(reg, ann))
	fmt.Printf("   Model:    %s\n", ann.Model)
	fmt.Printf("   Serial:   %s\n", ann.Serial)
	fmt.Printf("   Address:  %s\n", ann.ControlAddr())
	if ann.Available() {
		fmt.Printf("   Status:   %s\n", ann.Status)
	} else {
		fmt.Printf("   Status:   %s (client: %s %s)\n", ann.Status, ann.InUseHost, ann.InUseIP)
	}
	if ann.Callsign != "" {
		fmt.Printf("   Callsign: %s\n", ann.Callsign)
	}
	if ann.Version != "" {
		fmt.Printf("   Firmware: %s\n", ann.Version)
	}
	for _, w := range ann.Warnings {
		fmt.Printf("   Warning:  %s\n", w)
	}
	fmt.Println()
}

// saveSightings records scan results in the on-disk registry.
func saveSightings(radios map[string]*protocol.Announcement) error {
	if len(radios) == 0 {
		return nil
	}

	reg, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	for _, ann := range radios {
		if ann.Serial == "" {
			continue
		}
		reg.RecordSighting(ann.Serial, config.Sighting{
			IP:       ann.IP,
			Port:     ann.Port,
			Status:   ann.Status,
			Model:    ann.Model,
			Callsign: ann.Callsign,
			Version:  ann.Version,
		})
		// Seed the nickname from the broadcast, but never overwrite a
		// name the user chose in config.yaml.
		if ann.Nickname != "" && reg.EnsureRadio(ann.Serial).Nickname == "" {
			reg.SetRadioNickname(ann.Serial, ann.Nickname)
		}
	}

	return reg.Save()
}

// listenCmd prints announcements as they arrive
var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Print discovery announcements as they arrive",
	Long: `Poll for discovery broadcasts and print each announcement as it
arrives.

Each poll waits up to --timeout seconds for a datagram; when nothing is
heard the poll reports that and the loop continues. Use --count to stop
after a fixed number of polls, and --interval to pause between polls.`,
	Example: `  # Listen forever, printing every announcement
  flexscan listen

  # Ten polls, one second apart
  flexscan listen --count 10 --interval 1

  # Listen on a specific interface
  flexscan listen --bind 192.168.1.20`,
	RunE: runListen,
}

func init() {
	listenCmd.Flags().IntVar(&listenCount, "count", 0, "Number of polls before exiting (0 = forever)")
	listenCmd.Flags().IntVar(&listenInterval, "interval", 0, "Seconds to pause between polls")
}

func runListen(cmd *cobra.Command, args []string) error {
	listener, err := newListener()
	if err != nil {
		return err
	}
	defer listener.Close()

	fmt.Printf("Listening for FlexRadio broadcasts on %s (Ctrl+C to stop)...\n\n",
		listener.LocalAddr())

	for i := 0; listenCount == 0 || i < listenCount; i++ {
		if i > 0 && listenInterval > 0 {
			time.Sleep(time.Duration(listenInterval) * time.Second)
		}

		ann, err := listener.ReceiveOne()
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", err)
			continue
		}
		if ann == nil {
			fmt.Println("No radio heard.")
			continue
		}

		if ann.Available() {
			fmt.Printf("%s — available\n", ann)
		} else {
			fmt.Printf("%s — in use by %s (%s)\n", ann, ann.InUseHost, ann.InUseIP)
		}
		for _, w := range ann.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
	}

	return nil
}

// watchCmd launches the live TUI dashboard
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Launch the live discovery dashboard",
	Long: `Launch an interactive terminal dashboard that shows every radio heard
so far as a card, refreshing in place as new announcements arrive.

Radios are grouped by serial number, so a radio that announces every few
seconds occupies one card whose contents update live.`,
	Example: `  # Launch the dashboard
  flexscan watch
  # Or simply (watch is default on a terminal):
  flexscan

  # Watch on a non-standard port
  flexscan watch --port 14992`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	listener, err := newListener()
	if err != nil {
		return err
	}
	defer listener.Close()

	p := tea.NewProgram(tui.NewWatchModel(listener), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch error: %w", err)
	}

	return nil
}
