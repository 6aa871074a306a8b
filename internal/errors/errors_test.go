package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOutOfRange", ErrOutOfRange, ErrOutOfRange},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidPiece", ErrInvalidPiece, ErrInvalidPiece},
		{"ErrEmptySquare", ErrEmptySquare, ErrEmptySquare},
		{"ErrNoKing", ErrNoKing, ErrNoKing},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrNothingToUndo", ErrNothingToUndo, ErrNothingToUndo},
		{"ErrSnapshotNotFound", ErrSnapshotNotFound, ErrSnapshotNotFound},
		{"ErrInvalidName", ErrInvalidName, ErrInvalidName},
		{"ErrCorruptSnapshot", ErrCorruptSnapshot, ErrCorruptSnapshot},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct guards against two sentinels sharing identity.
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrOutOfRange, ErrInvalidSquare) {
		t.Error("errors.Is(ErrOutOfRange, ErrInvalidSquare) = true, want false")
	}
}

// TestSquareError_Error verifies the error message format
func TestSquareError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SquareError
		contains []string
	}{
		{
			name: "two squares",
			err: &SquareError{
				Err:    ErrInvalidSquare,
				Op:     "move",
				Square: 12,
				To:     70,
			},
			contains: []string{"move", "12->70", "invalid square"},
		},
		{
			name: "single square",
			err: &SquareError{
				Err:    ErrOutOfRange,
				Op:     "row column",
				Square: 0,
			},
			contains: []string{"row column", "square 0", "out of range"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("SquareError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestSquareError_Unwrap verifies that SquareError properly implements Unwrap
func TestSquareError_Unwrap(t *testing.T) {
	sqErr := &SquareError{Err: ErrNoKing, Op: "king square"}

	unwrapped := errors.Unwrap(sqErr)
	if !errors.Is(unwrapped, ErrNoKing) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrNoKing)
	}

	if !Is(sqErr, ErrNoKing) {
		t.Error("Is(sqErr, ErrNoKing) = false, want true")
	}
}

// TestSquareError_As verifies that errors.As works with SquareError
func TestSquareError_As(t *testing.T) {
	sqErr := &SquareError{Err: ErrInvalidSquare, Op: "place", Square: 65}
	wrapped := fmt.Errorf("custom setup failed: %w", sqErr)

	var extracted *SquareError
	if !As(wrapped, &extracted) {
		t.Fatal("As() could not extract SquareError")
	}
	if extracted.Square != 65 {
		t.Errorf("extracted.Square = %d, want 65", extracted.Square)
	}
	if extracted.Op != "place" {
		t.Errorf("extracted.Op = %q, want %q", extracted.Op, "place")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "loading position") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrSnapshotNotFound, "snapshot %q", "opening")

	if !errors.Is(wrapped, ErrSnapshotNotFound) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, `snapshot "opening"`) {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
