package fpconv

// FormatOption is a formatting option.
type FormatOption func(c *formatConfig) error

type formatConfig struct {
	fastPath   bool
	zeroDigits bool
}

func newFormatConfig(opts []FormatOption) (formatConfig, error) {
	c := formatConfig{fastPath: true}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return c, err
		}
	}
	return c, nil
}

// WithFastPath controls whether the Grisu3 fast path is attempted before
// the exact Dragon4 algorithm. Both produce identical digits; disabling the
// fast path is mainly useful for testing and benchmarking.
// Default: true - Grisu3 is tried first.
func WithFastPath(b bool) FormatOption {
	return func(c *formatConfig) error {
		c.fastPath = b
		return nil
	}
}

// WithZeroDigits makes zero produce precision '0' digits instead of none.
// Default: false - zero has no digits.
func WithZeroDigits(b bool) FormatOption {
	return func(c *formatConfig) error {
		c.zeroDigits = b
		return nil
	}
}
