package lcus

import (
	"reflect"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  StatusMap
	}{
		{
			"two relays",
			"CH1: ON \r\nCH2: OFF\r\n",
			StatusMap{1: true, 2: false},
		},
		{
			"truncated second line",
			"CH1: ON \r\nCH2: OF",
			StatusMap{1: true},
		},
		{
			"empty reply",
			"",
			StatusMap{},
		},
		{
			"garbage line skipped",
			"CH1: ON \r\nnoise\r\nCH3: OFF\r\n",
			StatusMap{1: true, 3: false},
		},
		{
			"non-numeric channel skipped",
			"CHx: ON \r\nCH2: ON \r\n",
			StatusMap{2: true},
		},
		{
			"missing padding space reads as off",
			"CH1: ON\r\n",
			StatusMap{1: false},
		},
		{
			"double digit relay",
			"CH9: OFF\r\nCH10: ON \r\n",
			StatusMap{9: false, 10: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseStatus([]byte(tt.reply))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseStatus(%q) = %v, want %v", tt.reply, got, tt.want)
			}
		})
	}
}

func TestReplyLength(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{1, len("CH1: OFF\r\n")},
		{2, 2 * len("CH1: OFF\r\n")},
		{4, 4 * len("CH1: OFF\r\n")},
		// Relays 10..12 take one more byte per line.
		{12, 9*len("CH1: OFF\r\n") + 3*len("CH10: OFF\r\n")},
	}

	for _, tt := range tests {
		if got := replyLength(tt.count); got != tt.want {
			t.Errorf("replyLength(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestStatusLineLenMatchesDeviceFormat(t *testing.T) {
	// Both states occupy the same width; the reply length computation
	// depends on it.
	if len("CH1: ON \r\n") != len("CH1: OFF\r\n") {
		t.Fatal("ON and OFF status lines differ in length")
	}
	if got := statusLineLen(1); got != len("CH1: OFF\r\n") {
		t.Errorf("statusLineLen(1) = %d", got)
	}
	if got := statusLineLen(10); got != len("CH10: OFF\r\n") {
		t.Errorf("statusLineLen(10) = %d", got)
	}
}
