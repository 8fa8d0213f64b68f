/*
Copyright © 2025 Brian Rzycki <brzycki@gmail.com>
*/
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lcus-relay",
	Short: "Control LCUS USB relay modules",
	Long: `Control the LCUS series of USB relay modules.

These modules appear to the host as a serial device (tty on Linux/Mac,
COM on Windows) and are driven over a small fixed binary protocol.
Relay numbering starts at 1 to match the silkscreen on the hardware;
relay 0 or no relay argument means every relay.

The serial port and relay count can be given as flags, through the
LCUS_PORT and LCUS_RELAYS environment variables, or in a config file:

  # ~/.lcus-relay.yaml
  port: /dev/ttyUSB0
  relays: 2

Example usage:
  lcus-relay list
  lcus-relay on 1 --port /dev/ttyUSB0
  lcus-relay toggle 2 --pause 250ms
  lcus-relay status
  lcus-relay watch`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lcus-relay.yaml)")
	rootCmd.PersistentFlags().StringP("port", "p", "", "serial port of the relay module (e.g. /dev/ttyUSB0)")
	rootCmd.PersistentFlags().IntP("relays", "r", 0, "number of relays on the device (0 queries the device)")

	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("relays", rootCmd.PersistentFlags().Lookup("relays"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lcus-relay")
	}

	viper.SetEnvPrefix("lcus")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env cover everything.
	viper.ReadInConfig()
}
