package cube

import "errors"

// Sentinel errors for the cube package.
var (
	// ErrMalformedState marks a structural invariant violation: the
	// slot-to-original-slot mapping is not a bijection, or a sticker's color
	// disagrees with the solved coloring of its original slot.
	ErrMalformedState = errors.New("cube: malformed state")

	// ErrUnsolvableState marks a structurally valid state whose parity or
	// orientation invariants fail. Not a defect: a mathematical fact about
	// the input.
	ErrUnsolvableState = errors.New("cube: unsolvable state")

	// ErrInvalidNotation marks an unparseable move token.
	ErrInvalidNotation = errors.New("cube: invalid move notation")

	// ErrPhaseUnreachable signals that a solve phase could not reach its
	// sub-goal within its search bound. For validated input this indicates a
	// solver or engine defect and never a property of the cube.
	ErrPhaseUnreachable = errors.New("cube: solve phase unreachable")
)
