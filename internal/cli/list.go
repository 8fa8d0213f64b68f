/*
Copyright © 2025 Brian Rzycki <brzycki@gmail.com>
*/
package cli

import (
	"fmt"
	"os"

	lcus "github.com/bmrzycki/lcus-relay"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available serial ports",
	Long: `List the serial ports on this system with their USB metadata.

Ports behind the CH340 USB bridge the LCUS boards ship with are marked as
relay candidates. Other hardware uses the same bridge, so treat the mark
as a hint, not an identification.

Example usage:
  lcus-relay list
  lcus-relay list --usb`,
	Run: func(cmd *cobra.Command, args []string) {
		usbOnly, _ := cmd.Flags().GetBool("usb")

		ports, err := lcus.ListPorts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s error listing ports: %v\n", errorStyle.Render("✗"), err)
			os.Exit(1)
		}

		if usbOnly {
			filtered := ports[:0]
			for _, p := range ports {
				if p.IsUSB {
					filtered = append(filtered, p)
				}
			}
			ports = filtered
		}

		if len(ports) == 0 {
			fmt.Println("No serial ports found")
			return
		}

		renderPorts(ports)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("usb", "u", false, "only show USB serial ports")
}

// renderPorts prints the port list in a styled static table format.
func renderPorts(ports []lcus.PortInfo) {
	fmt.Printf("Found %d serial port(s):\n\n", len(ports))

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240"))

	relayStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true)

	header := fmt.Sprintf("%-16s %-6s %-6s %-14s %s",
		"Port", "VID", "PID", "Serial", "Relay?")
	fmt.Println(headerStyle.Render(header))

	for _, p := range ports {
		mark := ""
		if p.IsLikelyRelay() {
			mark = relayStyle.Render("yes")
		}
		fmt.Printf("%-16s %-6s %-6s %-14s %s\n",
			p.Path, p.VendorID, p.ProductID, p.SerialNumber, mark)
	}
}
