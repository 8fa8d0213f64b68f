package lcus

// Wire protocol constants. A switching command is the fixed 4 byte frame
// START RELAY COMMAND CHECKSUM; a lone 0xFF asks for the status block.
const (
	frameStart  = 0xA0
	cmdOff      = 0x00
	cmdOn       = 0x01
	statusQuery = 0xFF
)

// Target selects the relay(s) an operation applies to: a single relay by
// its 1-based number, or the device's whole bank. The zero Target is not
// valid; use Relay or All.
type Target struct {
	relay int
	all   bool
}

// Relay targets the single relay n, counting from 1 as printed on the
// hardware.
func Relay(n int) Target {
	return Target{relay: n}
}

// All targets every relay on the device.
func All() Target {
	return Target{all: true}
}

// resolve expands t against the known relay set into ascending ids. The
// second return is false when t names a relay outside 1..count.
func (t Target) resolve(count int) ([]int, bool) {
	if t.all {
		ids := make([]int, count)
		for i := range ids {
			ids[i] = i + 1
		}
		return ids, true
	}
	if t.relay < 1 || t.relay > count {
		return nil, false
	}
	return []int{t.relay}, true
}

// command builds the 4 byte frame switching one relay. The checksum is the
// additive sum of the first three bytes truncated to one byte; past relay
// 95 the sum wraps, which is the device's own validator behaving as
// documented, not something to correct here.
func command(relay int, on bool) [4]byte {
	cmd := byte(cmdOff)
	if on {
		cmd = cmdOn
	}
	r := byte(relay)
	return [4]byte{frameStart, r, cmd, frameStart + r + cmd}
}
