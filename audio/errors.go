// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

// Failure categories shared by every package in the module. Concrete
// failures wrap one of these with fmt.Errorf("...: %w", ...) so callers
// can classify with errors.Is without depending on message text.
var (
	// ErrMissingResource reports an absent directory or file.
	ErrMissingResource = errors.New("missing resource")

	// ErrMalformedInput reports input that exists but cannot be decoded:
	// truncated chunk streams, unsupported bit depths, wrong grid shapes.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidArgument reports a caller contract violation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState reports an operation on a buffer that has not been
	// populated yet.
	ErrInvalidState = errors.New("invalid state")
)
