// SPDX-License-Identifier: EPL-2.0

package al

import (
	"errors"
	"fmt"

	"github.com/unknownbruhhaha/linear-model-allen/driver"
)

var (
	// ErrAllocation reports that the native layer could not allocate a
	// resource handle.
	ErrAllocation = errors.New("native resource allocation failed")

	// ErrMissingExtension reports that an operation needs an extension the
	// current context does not have. No native call was attempted.
	ErrMissingExtension = errors.New("required extension not present")

	// ErrUnsupportedOperation reports an operation the native API does not
	// allow at all, such as writing a read-only parameter.
	ErrUnsupportedOperation = errors.New("operation not supported by the native API")

	// ErrInvariantViolation reports a value from the native layer outside
	// the set this package knows how to decode.
	ErrInvariantViolation = errors.New("native layer returned a value outside the enumerated set")
)

// Translations of the native error register.
var (
	ErrInvalidName      = errors.New("invalid name")
	ErrInvalidEnum      = errors.New("invalid enum")
	ErrInvalidValue     = errors.New("invalid value")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrOutOfMemory      = errors.New("out of memory")
)

// translateError maps a drained error register value to a typed error, or
// nil when the register was clear.
func translateError(code driver.ErrorCode) error {
	switch code {
	case driver.NoError:
		return nil
	case driver.InvalidName:
		return ErrInvalidName
	case driver.InvalidEnum:
		return ErrInvalidEnum
	case driver.InvalidValue:
		return ErrInvalidValue
	case driver.InvalidOperation:
		return ErrInvalidOperation
	case driver.OutOfMemory:
		return ErrOutOfMemory
	}
	return fmt.Errorf("unknown native error code 0x%X", int32(code))
}
