package lcus

import (
	"fmt"
	"strconv"
	"strings"
)

// StatusMap reports the state of each relay by its 1-based number:
// true means energized (closed), false de-energized (open).
type StatusMap map[int]bool

// Each status line reads "CH<n>: ON \r\n" or "CH<n>: OFF\r\n". The space
// after ON pads both states to the same width, so every line for a given
// relay number has one fixed length.
const (
	statusSeparator = ": "
	statusOn        = "ON "
	statusPrefixLen = len("CH")
	minStatusLine   = len("CH1: OFF\r\n")
)

// statusLineLen returns the byte length of the status line for one relay.
func statusLineLen(relay int) int {
	return len(fmt.Sprintf("CH%d: OFF\r\n", relay))
}

// replyLength returns the exact byte length of a full status block for a
// device with count relays. Knowing it up front lets status reads stop at
// the right byte instead of waiting out the read timeout.
func replyLength(count int) int {
	total := 0
	for r := 1; r <= count; r++ {
		total += statusLineLen(r)
	}
	return total
}

// parseStatus decodes a status block into a StatusMap. Lines that do not
// split cleanly are skipped rather than failing the whole reply, so a
// truncated read yields a partial map.
func parseStatus(buf []byte) StatusMap {
	states := make(StatusMap)
	for _, line := range strings.Split(string(buf), "\r\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, statusSeparator)
		if len(parts) != 2 {
			continue
		}
		if len(parts[0]) <= statusPrefixLen {
			continue
		}
		relay, err := strconv.Atoi(parts[0][statusPrefixLen:])
		if err != nil {
			continue
		}
		states[relay] = parts[1] == statusOn
	}
	return states
}
