/*
Copyright © 2025 Brian Rzycki <brzycki@gmail.com>
*/
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/bmrzycki/lcus-relay/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Interactive live view of the relay bank",
	Long: `Watch and control the relay bank in an interactive terminal interface.

The view polls the device's status on an interval and shows every relay's
state in a table. The selected relay can be switched or pulsed directly
from the keyboard:

  up/down, j/k   select a relay
  space          flip the selected relay
  t              pulse the selected relay (on, hold, off)
  a / z          every relay on / off
  ?              toggle help
  q              quit

Example usage:
  lcus-relay watch --port /dev/ttyUSB0
  lcus-relay watch --interval 250ms`,
	Run: func(cmd *cobra.Command, args []string) {
		interval, _ := cmd.Flags().GetDuration("interval")

		ctl, err := openController()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("✗"), err)
			os.Exit(1)
		}
		defer ctl.Close()

		p := tea.NewProgram(tui.NewModel(ctl, interval), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("✗"), err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationP("interval", "i", 500*time.Millisecond, "status poll interval")
}
