package lcus

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// ReadTimeout bounds every read against the device. The LCUS_X2 showed
// 50ms as a stable value; reads returning before the full expected length
// are normal and the caller parses whatever arrived. Writes block until
// accepted.
const ReadTimeout = 50 * time.Millisecond

// Transport is the byte-stream connection a Controller drives. Read may
// return fewer bytes than requested once the read timeout expires, with a
// zero count and nil error meaning nothing arrived in time. The concrete
// implementation is a serial port; tests substitute an in-memory fake.
type Transport interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// openTransport opens device with the fixed LCUS line settings: 9600 bps,
// 8 data bits, 1 stop bit, no parity, no flow control.
func openTransport(device string) (Transport, error) {
	mode := &serial.Mode{
		BaudRate: 9600,
		DataBits: 8,
		StopBits: serial.OneStopBit,
		Parity:   serial.NoParity,
	}

	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", device, err)
	}

	if err := port.SetReadTimeout(ReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to set read timeout on %s: %w", device, err)
	}

	return port, nil
}
