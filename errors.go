package objectutil

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/reoring/objectutil/internal/jsonify"
)

var (
	// ErrUnsupportedType is matched (errors.Is) by every *UnsupportedTypeError.
	ErrUnsupportedType = errors.New("objectutil: unsupported type")

	// ErrCyclicValue reports a sequence that references itself and therefore
	// has no JSON text form.
	ErrCyclicValue = jsonify.ErrCycle
)

// UnsupportedTypeError is returned by Clone for values whose kind has no
// copy strategy.
type UnsupportedTypeError struct {
	Kind Kind
	Type reflect.Type // nil when the value was nil
}

func (e *UnsupportedTypeError) Error() string {
	if e.Type == nil {
		return fmt.Sprintf("objectutil: unable to copy value of kind %s: its type isn't supported", e.Kind)
	}
	return fmt.Sprintf("objectutil: unable to copy value of kind %s (%s): its type isn't supported", e.Kind, e.Type)
}

// Is makes errors.Is(err, ErrUnsupportedType) hold.
func (e *UnsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }

// AsUnsupportedType extracts an *UnsupportedTypeError using errors.As internally.
func AsUnsupportedType(err error) (*UnsupportedTypeError, bool) {
	if err == nil {
		return nil, false
	}
	var ute *UnsupportedTypeError
	if errors.As(err, &ute) {
		return ute, true
	}
	return nil, false
}
