package lcus

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.RelayCount != 0 {
		t.Errorf("Expected RelayCount 0 (discover), got %d", config.RelayCount)
	}
	if !config.InitOff {
		t.Error("Expected InitOff true")
	}
	if config.ProbeLimit != 16384 {
		t.Errorf("Expected ProbeLimit 16384, got %d", config.ProbeLimit)
	}
}

func TestWithRelayCount(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr bool
	}{
		{"one relay", 1, false},
		{"eight relays", 8, false},
		{"zero", 0, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			err := WithRelayCount(tt.count)(&config)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithRelayCount(%d) error = %v, wantErr %v", tt.count, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
			if err == nil && config.RelayCount != tt.count {
				t.Errorf("RelayCount = %d, want %d", config.RelayCount, tt.count)
			}
		})
	}
}

func TestWithNoInit(t *testing.T) {
	config := DefaultConfig()
	if err := WithNoInit()(&config); err != nil {
		t.Fatalf("WithNoInit failed: %v", err)
	}
	if config.InitOff {
		t.Error("InitOff still true after WithNoInit")
	}
}

func TestWithProbeLimit(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{"default bound", 16384, false},
		{"single line", minStatusLine, false},
		{"below one line", minStatusLine - 1, true},
		{"zero", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			err := WithProbeLimit(tt.limit)(&config)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithProbeLimit(%d) error = %v, wantErr %v", tt.limit, err, tt.wantErr)
			}
		})
	}
}

func TestNewRejectsBadOption(t *testing.T) {
	_, err := New(&fakeTransport{}, WithRelayCount(-1))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
