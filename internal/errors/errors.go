// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfRange indicates a square identifier outside 1..64.
	ErrOutOfRange = errors.New("square out of range")

	// ErrInvalidSquare indicates a board operation against an out-of-range square.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPiece indicates a placement whose colour or kind is not a real piece.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrEmptySquare indicates a move requested from a square with no piece.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrNoKing indicates the board has no king of the requested colour.
	ErrNoKing = errors.New("no king on board")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrNothingToUndo indicates an undo with an empty move history.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrSnapshotNotFound indicates a named snapshot is not in the store.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrInvalidName indicates an empty or malformed snapshot name.
	ErrInvalidName = errors.New("invalid snapshot name")

	// ErrCorruptSnapshot indicates a stored snapshot failed verification.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SquareError wraps errors with board context: the operation that failed
// and the square(s) involved. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type SquareError struct {
	Err    error  // The underlying error
	Op     string // Operation name, e.g. "move" or "place"
	Square int    // The offending square identifier
	To     int    // Destination square for two-square operations (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *SquareError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}

	if e.To > 0 {
		parts = append(parts, fmt.Sprintf("square %d->%d", e.Square, e.To))
	} else {
		parts = append(parts, fmt.Sprintf("square %d", e.Square))
	}

	context := strings.Join(parts, " ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SquareError wrapper.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It re-exports the standard library function so callers importing this
// package under the name errors keep access to it.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
