// Package lcus drives the LCUS series of USB relay modules. These boards
// expose themselves to the host as a serial device (tty on Linux/Mac, COM
// on Windows) behind a CH340 USB bridge, and speak a tiny fixed-format
// binary protocol at 9600 bps, 8 data bits, 1 stop bit, no parity, no flow
// control.
//
// Relay numbering starts at 1 to match the silkscreen on the hardware.
//
// # Basic Usage
//
// Open a module, pulse relay 1 for half a second, then read back the state
// of every relay:
//
//	ctl, err := lcus.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctl.Close()
//
//	ok, err := ctl.Toggle(lcus.Relay(1), 500*time.Millisecond)
//
//	states, err := ctl.Status(lcus.All())
//	for relay, on := range states {
//	    fmt.Printf("relay %d on=%v\n", relay, on)
//	}
//
// When the relay count is not supplied, Open queries the device's status
// block once and counts the reported channels. Supply it up front to skip
// the probe:
//
//	ctl, err := lcus.Open("/dev/ttyUSB0", lcus.WithRelayCount(4))
//
// By default Open places every relay in the OFF (open) state so a session
// always starts from a known-safe position. Disable with WithNoInit.
//
// # Targets
//
// Every switching operation takes a Target: either a single relay or the
// whole bank.
//
//	ctl.On(lcus.Relay(2))  // energize relay 2
//	ctl.Off(lcus.All())    // release every relay
//
// A target outside the device's 1..N range is rejected before any bytes
// are written; the operation reports ok=false rather than an error, since
// probing relay ranges is routine for callers.
//
// # Wire Protocol
//
// Switching commands are a fixed 4 byte frame:
//
//	START RELAY COMMAND CHECKSUM
//	0xA0  0x01  0x01    0xA2      // relay 1 on
//
// CHECKSUM is the additive sum of the first three bytes truncated to one
// byte. The device sends no acknowledgement. A single 0xFF byte requests
// the status block, an ASCII reply of one CRLF-terminated line per relay:
//
//	CH1: ON \r\nCH2: OFF\r\n
//
// Note the trailing space after "ON" padding both states to equal width.
//
// # Status Staleness
//
// The hardware frequently reports a stale status block on the first query
// after a state change. Status therefore always performs two query/read
// round trips and keeps only the second reply. This is a fixed protocol
// step, not a retry loop.
//
// # Port Discovery
//
// List candidate serial ports with USB metadata:
//
//	ports, err := lcus.ListPorts()
//	for _, p := range ports {
//	    fmt.Printf("%s VID=%s PID=%s relay=%v\n",
//	        p.Path, p.VendorID, p.ProductID, p.IsLikelyRelay())
//	}
//
// # Concurrency
//
// A Controller owns its transport exclusively and serializes all transport
// access internally, so its methods may be called from multiple goroutines.
// Toggle releases the transport between its on and off halves; see Toggle
// for the exact guarantees.
//
// # Testing Without Hardware
//
// The Transport interface is the seam for dependency injection: New builds
// a Controller on any byte-stream implementation, so simulated devices are
// a small fake away. See the package tests for an example.
package lcus
