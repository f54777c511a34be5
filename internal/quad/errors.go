package quad

import (
	"errors"
	"fmt"
)

// Domain errors for integration runs.
var (
	// ErrInvalidParameter indicates a malformed strategy configuration.
	ErrInvalidParameter = errors.New("quad: invalid parameter")

	// ErrUnsupported indicates a configuration that is valid but not implemented.
	ErrUnsupported = errors.New("quad: unsupported configuration")

	// ErrNoStrategySet indicates Integrate was called before any strategy was configured.
	ErrNoStrategySet = errors.New("quad: no strategy set")

	// ErrInvalidInterval indicates a nil integrand, non-finite bounds or a >= b.
	ErrInvalidInterval = errors.New("quad: invalid integration interval")
)

// ParamError wraps an error with the strategy parameter that caused it.
type ParamError struct {
	Method  string
	Param   string
	Value   any
	Reason  string
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s %s=%v: %s (%v)", e.Method, e.Param, e.Value, e.Reason, e.Wrapped)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}

// InvalidParam is a shorthand for a ParamError wrapping ErrInvalidParameter.
func InvalidParam(method, param string, value any, reason string) error {
	return &ParamError{Method: method, Param: param, Value: value, Reason: reason, Wrapped: ErrInvalidParameter}
}
