package patchwork

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every [ConfigError] via [errors.Is].
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports a configuration that cannot produce a composition, such
// as a margin that leaves no room to sample points in. It is the only error
// the core returns; everything that can go wrong during a tick is reported as
// an [Outcome] instead.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("patchwork: invalid %s %v: %s", err.Field, err.Value, err.Reason)
}

func (err *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
