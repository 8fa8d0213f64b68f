package lcus

import (
	"sort"
	"strings"

	"go.bug.st/serial/enumerator"
)

// ch340VendorID is the USB vendor id of the WCH CH340 serial bridge the
// LCUS boards ship with.
const ch340VendorID = "1a86"

// PortInfo describes one serial port on the system.
type PortInfo struct {
	Path         string // device path, e.g. /dev/ttyUSB0 or COM3
	IsUSB        bool
	VendorID     string
	ProductID    string
	SerialNumber string
}

// IsLikelyRelay reports whether the port sits behind the CH340 USB bridge
// used by the LCUS boards. Plenty of other hardware uses the same bridge,
// so this is a hint for narrowing candidates, not an identification.
func (p PortInfo) IsLikelyRelay() bool {
	return p.IsUSB && strings.EqualFold(p.VendorID, ch340VendorID)
}

// ListPorts returns the serial ports available on the system with USB
// metadata where the platform exposes it, sorted by path.
func ListPorts() ([]PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}

	ports := make([]PortInfo, 0, len(details))
	for _, d := range details {
		ports = append(ports, PortInfo{
			Path:         d.Name,
			IsUSB:        d.IsUSB,
			VendorID:     d.VID,
			ProductID:    d.PID,
			SerialNumber: d.SerialNumber,
		})
	}

	sort.Slice(ports, func(i, j int) bool {
		return ports[i].Path < ports[j].Path
	})
	return ports, nil
}
