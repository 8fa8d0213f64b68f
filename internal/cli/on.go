/*
Copyright © 2025 Brian Rzycki <brzycki@gmail.com>
*/
package cli

import (
	"github.com/spf13/cobra"
)

// onCmd represents the on command
var onCmd = &cobra.Command{
	Use:   "on [relay]",
	Short: "Turn a relay on",
	Long: `Turn a relay ON (energized/closed).

With no argument, or with relay 0, every relay on the device is turned on.
The device sends no acknowledgement for switching commands; use the status
command to read the result back.

Example usage:
  lcus-relay on --port /dev/ttyUSB0      # every relay
  lcus-relay on 2 --port /dev/ttyUSB0    # relay 2 only`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSwitch(args, true)
	},
}

func init() {
	rootCmd.AddCommand(onCmd)
}
