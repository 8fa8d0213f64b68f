/*
Copyright © 2025 Brian Rzycki <brzycki@gmail.com>
*/
package cli

import (
	"fmt"
	"os"
	"strconv"

	lcus "github.com/bmrzycki/lcus-relay"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// openController connects to the configured relay module. The CLI opens a
// fresh connection per invocation, so the library's initialize-off step is
// always skipped here; otherwise every command would knock the relays back
// to OFF before doing its job.
func openController() (*lcus.Controller, error) {
	port := viper.GetString("port")
	if port == "" {
		return nil, fmt.Errorf("no serial port specified (use --port, LCUS_PORT or the config file)")
	}

	opts := []lcus.Option{lcus.WithNoInit()}
	if relays := viper.GetInt("relays"); relays > 0 {
		opts = append(opts, lcus.WithRelayCount(relays))
	}

	return lcus.Open(port, opts...)
}

// parseTarget maps an optional relay argument onto a Target. No argument
// or relay 0 means every relay.
func parseTarget(args []string) (lcus.Target, string, error) {
	if len(args) == 0 {
		return lcus.All(), "all relays", nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return lcus.Target{}, "", fmt.Errorf("invalid relay number %q", args[0])
	}
	if n == 0 {
		return lcus.All(), "all relays", nil
	}
	return lcus.Relay(n), fmt.Sprintf("relay %d", n), nil
}

// runSwitch implements the shared body of the on and off commands.
func runSwitch(args []string, on bool) {
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

	ok, err := ctl.Set(target, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("✗"), err)
		os.Exit(1)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "%s %s is outside the device's 1..%d range\n",
			errorStyle.Render("✗"), label, ctl.Relays())
		os.Exit(1)
	}

	state := "OFF"
	if on {
		state = "ON"
	}
	fmt.Printf("%s Turned %s %s\n", successStyle.Render("✓"), label, state)
}
