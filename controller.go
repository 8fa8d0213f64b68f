package lcus

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// DefaultPause is the hold duration Toggle uses when callers have no
// reason to pick another.
const DefaultPause = 500 * time.Millisecond

// Controller drives one LCUS relay module over an exclusively owned
// transport. All transport access is serialized behind a single mutex, so
// a Controller is safe for use by multiple goroutines.
type Controller struct {
	mu     sync.Mutex
	tr     Transport
	relays int // valid ids are 1..relays
	// Exact byte length of a full status block, derived from the relay
	// count. Must be known before any status read so reads stop at the
	// right byte instead of waiting out the timeout.
	statusLen int
	closed    bool
}

// Open connects to the relay module on the named serial device and returns
// a Controller for it. Unless configured otherwise the relay count is
// queried from the device and every relay is placed in the OFF state.
func Open(device string, opts ...Option) (*Controller, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	tr, err := openTransport(device)
	if err != nil {
		return nil, err
	}

	c, err := newController(tr, config)
	if err != nil {
		tr.Close()
		return nil, err
	}
	return c, nil
}

// New builds a Controller on an already open transport. It performs the
// same discovery and initialization as Open, making simulated devices a
// matter of substituting the transport.
func New(tr Transport, opts ...Option) (*Controller, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	return newController(tr, config)
}

func newController(tr Transport, config Config) (*Controller, error) {
	c := &Controller{tr: tr}

	count := config.RelayCount
	if count <= 0 {
		// Relay count unknown. Query status once against a bound big
		// enough for any device's full block and count the channels it
		// reports. The exact reply length can only be computed after.
		c.statusLen = config.ProbeLimit
		states, err := c.Status(All())
		if err != nil {
			return nil, fmt.Errorf("relay discovery: %w", err)
		}
		if len(states) == 0 {
			return nil, ErrNoRelays
		}
		count = len(states)
	}

	c.relays = count
	c.statusLen = replyLength(count)

	if config.InitOff {
		if _, err := c.Off(All()); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Relays returns the number of relays on the device. Valid relay numbers
// are 1 through Relays inclusive.
func (c *Controller) Relays() int {
	return c.relays
}

// Set switches the targeted relay(s) on or off, writing one command frame
// per relay in ascending order. The device sends no acknowledgement, so
// frames are fire-and-forget. An invalid target is reported as ok=false
// with nothing written; a transport failure is returned as an error.
func (c *Controller) Set(t Target, on bool) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false, ErrClosed
	}

	ids, ok := t.resolve(c.relays)
	if !ok {
		return false, nil
	}

	for _, id := range ids {
		frame := command(id, on)
		if _, err := c.tr.Write(frame[:]); err != nil {
			return false, fmt.Errorf("relay %d: write command: %w", id, err)
		}
	}
	return true, nil
}

// On energizes (closes) the targeted relay(s).
func (c *Controller) On(t Target) (bool, error) {
	return c.Set(t, true)
}

// Off de-energizes (opens) the targeted relay(s).
func (c *Controller) Off(t Target) (bool, error) {
	return c.Set(t, false)
}

// Status reads back the state of every relay. The target argument exists
// for symmetry with Set, but the device can only report the whole bank at
// once, so the result always covers every relay regardless of t.
//
// The first reply after a state change is often stale, so Status performs
// the query/read round trip twice and keeps only the second reply. A reply
// cut short by the read timeout is parsed as far as it goes; relays lost
// to truncation are simply absent from the map.
func (c *Controller) Status(t Target) (StatusMap, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}

	var reply []byte
	for i := 0; i < 2; i++ {
		if _, err := c.tr.Write([]byte{statusQuery}); err != nil {
			return nil, fmt.Errorf("write status query: %w", err)
		}
		buf, err := c.readReply()
		if err != nil {
			return nil, fmt.Errorf("read status: %w", err)
		}
		reply = buf
	}
	return parseStatus(reply), nil
}

// readReply reads up to the expected status length, stopping early when a
// read times out with nothing received.
func (c *Controller) readReply() ([]byte, error) {
	buf := make([]byte, c.statusLen)
	total := 0
	for total < len(buf) {
		n, err := c.tr.Read(buf[total:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			// Read timeout expired; take what arrived.
			break
		}
		total += n
	}
	return buf[:total], nil
}

// Toggle pulses the targeted relay(s): on, hold for pause, off. It reports
// ok=false immediately, without pausing, when the target is invalid. The
// caller is expected to have the relay off beforehand; a relay already on
// simply gets held and released, with no detection of that case.
//
// The on and off halves each take the transport lock independently and the
// pause sleeps with the lock released, so status polls keep working during
// a long pulse. The cost is that another goroutine can slip a command in
// between the two halves. A started pause always runs to completion.
func (c *Controller) Toggle(t Target, pause time.Duration) (bool, error) {
	ok, err := c.On(t)
	if err != nil || !ok {
		return false, err
	}
	time.Sleep(pause)
	return c.Off(t)
}

// Close releases the transport. Any further operation on the Controller
// returns ErrClosed.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.closed = true
	return c.tr.Close()
}
