package flags

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrCapacityExceeded = errors.New("maximum length exceeded")
)

// IndexError reports an access outside the valid index range of a list.
type IndexError struct {
	Index uint
	Len   uint
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("attempted to access out of bounds index %d of flag list of length %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

// CapacityError reports an attempt to grow a list past its maximum length.
type CapacityError struct {
	Max     uint
	Attempt uint
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("flag list has maximum length %d, attempted to increase this to %d", e.Max, e.Attempt)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

func indexError(index, length uint) error {
	return &IndexError{Index: index, Len: length}
}

// growthError reports a failed attempt to add n flags to a list of the given length.
func growthError(max, length, n uint) error {
	attempt := length + n
	if attempt < length {
		attempt = ^uint(0)
	}
	return &CapacityError{Max: max, Attempt: attempt}
}
