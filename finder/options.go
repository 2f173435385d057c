package finder

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrNilStore indicates an adapter was constructed without a store.
	ErrNilStore = errors.New("finder: store is nil")

	// ErrBadCoordinates indicates an empty coordinate list or an empty attribute name.
	ErrBadCoordinates = errors.New("finder: coordinate attributes must be non-empty")
)

// Default coordinate attribute names.
var (
	planar  = []string{"x", "y"}
	spatial = []string{"x", "y", "z"}
)

// Option configures an adapter at construction time.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	coordinates []string
}

// WithLogger routes adapter diagnostics to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCoordinates overrides the ordered list of attribute names read by
// PositionOf. It has no effect on a plain Network.
func WithCoordinates(names ...string) Option {
	return func(o *options) {
		o.coordinates = append([]string(nil), names...)
	}
}

func buildOptions(defaults []string, opts []Option) options {
	o := options{
		logger:      zap.NewNop(),
		coordinates: append([]string(nil), defaults...),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o options) validateCoordinates() error {
	if len(o.coordinates) == 0 {
		return ErrBadCoordinates
	}
	for _, name := range o.coordinates {
		if name == "" {
			return ErrBadCoordinates
		}
	}

	return nil
}
