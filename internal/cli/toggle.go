/*
Copyright © 2025 Brian Rzycki <brzycki@gmail.com>
*/
package cli

import (
	"fmt"
	"os"

	lcus "github.com/bmrzycki/lcus-relay"
	"github.com/spf13/cobra"
)

// toggleCmd represents the toggle command
var toggleCmd = &cobra.Command{
	Use:   "toggle [relay]",
	Short: "Pulse a relay on then off",
	Long: `Pulse a relay: turn it ON, hold for the pause duration, turn it OFF.

With no argument, or with relay 0, every relay on the device is pulsed
together. The command blocks for the full pause. The relay is expected to
be off beforehand; a relay already on is simply held and released.

Example usage:
  lcus-relay toggle 1 --port /dev/ttyUSB0
  lcus-relay toggle 2 --pause 250ms
  lcus-relay toggle --pause 2s           # every relay`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pause, _ := cmd.Flags().GetDuration("pause")

		target, label, err := parseTarget(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("✗"), err)
			os.Exit(1)
		}

		ctl, err := openController()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("✗"), err)
			os.Exit(1)
		}
		defer ctl.Close()

		fmt.Printf("%s Pulsing %s for %v...\n", infoStyle.Render("⚡"), label, pause)

		ok, err := ctl.Toggle(target, pause)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("✗"), err)
			os.Exit(1)
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "%s %s is outside the device's 1..%d range\n",
				errorStyle.Render("✗"), label, ctl.Relays())
			os.Exit(1)
		}

		fmt.Printf("%s Pulsed %s\n", successStyle.Render("✓"), label)
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)

	toggleCmd.Flags().DurationP("pause", "d", lcus.DefaultPause, "how long to hold the relay on")
}
