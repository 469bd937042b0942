package shared

// Index represents a position in a displayed list. It is stored zero-based
// internally but is always entered and shown one-based, matching what the
// user sees on screen.
type Index int

// NewIndexFromOneBased creates an Index from a one-based position.
func NewIndexFromOneBased(oneBased int) (Index, error) {
	if oneBased <= 0 {
		return 0, NewDomainError("shared", "NewIndexFromOneBased", ErrInvalidFormat, "index must be a positive integer")
	}
	return Index(oneBased - 1), nil
}

// NewIndexFromZeroBased creates an Index from a zero-based position.
func NewIndexFromZeroBased(zeroBased int) (Index, error) {
	if zeroBased < 0 {
		return 0, NewDomainError("shared", "NewIndexFromZeroBased", ErrInvalidFormat, "index must be non-negative")
	}
	return Index(zeroBased), nil
}

// ZeroBased returns the zero-based value, for slice access.
func (i Index) ZeroBased() int {
	return int(i)
}

// OneBased returns the one-based value, for display.
func (i Index) OneBased() int {
	return int(i) + 1
}
