/*
Copyright © 2025 Brian Rzycki <brzycki@gmail.com>
*/
package cli

import (
	"fmt"
	"os"
	"sort"

	lcus "github.com/bmrzycki/lcus-relay"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Read back the state of every relay",
	Long: `Read back the current ON/OFF state of every relay on the device.

The device can only report the whole bank at once, so the output always
covers every relay. The driver queries twice and keeps the second reply,
working around the hardware's tendency to report stale state on the first
query after a change.

Example usage:
  lcus-relay status --port /dev/ttyUSB0`,
	Run: func(cmd *cobra.Command, args []string) {
		ctl, err := openController()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("✗"), err)
			os.Exit(1)
		}
		defer ctl.Close()

		states, err := ctl.Status(lcus.All())
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("✗"), err)
			os.Exit(1)
		}

		renderStatus(states, ctl.Relays())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// renderStatus prints one line per relay in a small styled table.
func renderStatus(states lcus.StatusMap, count int) {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240"))

	onStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true)
	offStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	relays := make([]int, 0, len(states))
	for relay := range states {
		relays = append(relays, relay)
	}
	sort.Ints(relays)

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-8s %-5s", "Relay", "State")))
	for _, relay := range relays {
		state := offStyle.Render("OFF")
		if states[relay] {
			state = onStyle.Render("ON")
		}
		fmt.Printf("%-8d %s\n", relay, state)
	}

	// A truncated reply leaves relays out of the map; say so rather than
	// silently printing a shorter table.
	if len(relays) < count {
		fmt.Printf("%s %d of %d relays missing from device reply\n",
			errorStyle.Render("!"), count-len(relays), count)
	}
}
