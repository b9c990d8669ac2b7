package daterange

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the ISO calendar date format. Lexicographic comparison of
// dates in this format is equivalent to chronological comparison.
const Layout = "2006-01-02"

var ErrInvalidRange = errors.New("invalid date range")

// Range is a half-open date interval [From, To).
type Range struct {
	From string
	To   string
}

// New validates both endpoints and requires From < To.
// Zero-width ranges are invalid.
func New(from, to string) (Range, error) {
	if _, err := time.Parse(Layout, from); err != nil {
		return Range{}, fmt.Errorf("%w: from %q is not a valid date", ErrInvalidRange, from)
	}
	if _, err := time.Parse(Layout, to); err != nil {
		return Range{}, fmt.Errorf("%w: to %q is not a valid date", ErrInvalidRange, to)
	}
	if from >= to {
		return Range{}, fmt.Errorf("%w: from %q must be before to %q", ErrInvalidRange, from, to)
	}
	return Range{From: from, To: to}, nil
}

// Overlaps reports whether two half-open intervals intersect.
// Touching intervals ([a,b) and [b,c)) do not overlap.
func (r Range) Overlaps(o Range) bool {
	return r.From < o.To && r.To > o.From
}
