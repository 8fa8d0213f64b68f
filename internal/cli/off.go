/*
Copyright © 2025 Brian Rzycki <brzycki@gmail.com>
*/
package cli

import (
	"github.com/spf13/cobra"
)

// offCmd represents the off command
var offCmd = &cobra.Command{
	Use:   "off [relay]",
	Short: "Turn a relay off",
	Long: `Turn a relay OFF (de-energized/open).

With no argument, or with relay 0, every relay on the device is turned off.

Example usage:
  lcus-relay off --port /dev/ttyUSB0     # every relay
  lcus-relay off 1 --port /dev/ttyUSB0   # relay 1 only`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSwitch(args, false)
	},
}

func init() {
	rootCmd.AddCommand(offCmd)
}
