package lcus

// Config holds the construction settings for a Controller.
type Config struct {
	RelayCount int  // number of relays on the device; 0 queries the device
	InitOff    bool // place every relay in the OFF state during construction
	ProbeLimit int  // status read bound, in bytes, while the relay count is unknown
}

// Option is a functional option for configuring a Controller
type Option func(*Config) error

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		RelayCount: 0,
		InitOff:    true,
		// Large enough to contain the full status text of any plausible
		// device. The LCUS_X2 showed 16384 as a stable safe bound.
		ProbeLimit: 16384,
	}
}

// WithRelayCount fixes the number of relays on the device, skipping the
// status probe during construction.
func WithRelayCount(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return ErrInvalidConfig
		}
		c.RelayCount = n
		return nil
	}
}

// WithNoInit skips the all-relays-off command normally issued during
// construction. The relays keep whatever state they had.
func WithNoInit() Option {
	return func(c *Config) error {
		c.InitOff = false
		return nil
	}
}

// WithProbeLimit overrides the byte bound used for the one status read
// performed while the relay count is still unknown. The bound must hold at
// least one status line.
func WithProbeLimit(n int) Option {
	return func(c *Config) error {
		if n < minStatusLine {
			return ErrInvalidConfig
		}
		c.ProbeLimit = n
		return nil
	}
}
