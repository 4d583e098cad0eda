package constraint

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Infinity is the sentinel for an unbounded maximum. Pass it as maxWidth
// or maxHeight to Make (or receive it back from Unpack) to mean "no upper
// bound". It compares greater than any finite bound.
const Infinity = math.MaxInt32

var (
	// ErrInvalidBounds is returned when a min is negative or a finite max
	// is less than its min.
	ErrInvalidBounds = errors.New("constraint: negative min or max less than min")

	// ErrMagnitudeOverflow is returned when a finite bound exceeds
	// MaxDimension.
	ErrMagnitudeOverflow = errors.New("constraint: bound too large")

	// ErrSchemeUnsatisfiable is returned when both dimensions need the
	// largest bit tier at once, which the packed word cannot hold.
	ErrSchemeUnsatisfiable = errors.New("constraint: width and height ranges cannot both be represented")
)

// Constraints packs min/max width and height bounds into a single uint64.
// It is an immutable value: operations return new values, and two
// Constraints with the same logical bounds are '==' comparable because
// construction always normalises to the same packed form.
type Constraints struct {
	bits uint64
}

// Make creates a Constraints from four bounds. maxWidth and maxHeight may
// be Infinity. Make fails with ErrInvalidBounds, ErrMagnitudeOverflow or
// ErrSchemeUnsatisfiable; on failure no partial value is produced.
func Make(minWidth, maxWidth, minHeight, maxHeight int) (Constraints, error) {
	if err := validate(minWidth, maxWidth, minHeight, maxHeight); err != nil {
		return Constraints{}, err
	}
	return encode(minWidth, maxWidth, minHeight, maxHeight)
}

// FromRaw reconstructs a Constraints from a packed word previously
// obtained from Raw. It performs no validation; only words produced by
// this package are meaningful. See Raw.
func FromRaw(bits uint64) Constraints { return Constraints{bits: bits} }

// Raw returns the packed word. See FromRaw for the counterpart.
func (c Constraints) Raw() uint64 { return c.bits }

func validate(minWidth, maxWidth, minHeight, maxHeight int) error {
	if minWidth < 0 || minHeight < 0 {
		return fmt.Errorf("%w: min %d,%d", ErrInvalidBounds, minWidth, minHeight)
	}
	if maxWidth != Infinity && maxWidth < minWidth {
		return fmt.Errorf("%w: maxWidth %d < minWidth %d", ErrInvalidBounds, maxWidth, minWidth)
	}
	if maxHeight != Infinity && maxHeight < minHeight {
		return fmt.Errorf("%w: maxHeight %d < minHeight %d", ErrInvalidBounds, maxHeight, minHeight)
	}
	return nil
}

// encode expects validated bounds.
func encode(minWidth, maxWidth, minHeight, maxHeight int) (Constraints, error) {
	tag, sc, err := selectScheme(
		magnitude(minWidth, maxWidth),
		magnitude(minHeight, maxHeight))
	if err != nil {
		return Constraints{}, err
	}

	// Max fields store value+1 so that a stored zero can mean Infinity.
	var maxWidthRaw, maxHeightRaw uint64
	if maxWidth != Infinity {
		maxWidthRaw = uint64(maxWidth) + 1
	}
	if maxHeight != Infinity {
		maxHeightRaw = uint64(maxHeight) + 1
	}

	bits := tag |
		uint64(minWidth)<<minWidthShift |
		uint64(minHeight)<<sc.minHeightShift |
		maxWidthRaw<<maxWidthShift |
		maxHeightRaw<<sc.maxHeightShift
	return Constraints{bits: bits}, nil
}

// Unpack returns the four bounds. An unbounded max comes back as
// Infinity. Unpack is the exact inverse of Make for any value Make
// produced.
func (c Constraints) Unpack() (minWidth, maxWidth, minHeight, maxHeight int) {
	sc := schemes[c.bits&tagMask]

	minWidth = int(c.bits >> minWidthShift & sc.widthMask)
	minHeight = int(c.bits >> sc.minHeightShift & sc.heightMask)

	maxWidth = Infinity
	if raw := c.bits >> maxWidthShift & sc.widthMask; raw != 0 {
		maxWidth = int(raw) - 1
	}
	maxHeight = Infinity
	if raw := c.bits >> sc.maxHeightShift & sc.heightMask; raw != 0 {
		maxHeight = int(raw) - 1
	}
	return minWidth, maxWidth, minHeight, maxHeight
}

func (c Constraints) MinWidth() int {
	sc := schemes[c.bits&tagMask]
	return int(c.bits >> minWidthShift & sc.widthMask)
}

func (c Constraints) MinHeight() int {
	sc := schemes[c.bits&tagMask]
	return int(c.bits >> sc.minHeightShift & sc.heightMask)
}

// MaxWidth returns the upper width bound, or Infinity if unbounded.
func (c Constraints) MaxWidth() int {
	sc := schemes[c.bits&tagMask]
	raw := c.bits >> maxWidthShift & sc.widthMask
	if raw == 0 {
		return Infinity
	}
	return int(raw) - 1
}

// MaxHeight returns the upper height bound, or Infinity if unbounded.
func (c Constraints) MaxHeight() int {
	sc := schemes[c.bits&tagMask]
	raw := c.bits >> sc.maxHeightShift & sc.heightMask
	if raw == 0 {
		return Infinity
	}
	return int(raw) - 1
}

// HasBoundedWidth reports whether the width has a finite upper bound.
func (c Constraints) HasBoundedWidth() bool {
	sc := schemes[c.bits&tagMask]
	return c.bits>>maxWidthShift&sc.widthMask != 0
}

// HasBoundedHeight reports whether the height has a finite upper bound.
func (c Constraints) HasBoundedHeight() bool {
	sc := schemes[c.bits&tagMask]
	return c.bits>>sc.maxHeightShift&sc.heightMask != 0
}

// HasFixedWidth reports whether the width bounds admit exactly one value.
func (c Constraints) HasFixedWidth() bool {
	return c.HasBoundedWidth() && c.MinWidth() == c.MaxWidth()
}

// HasFixedHeight reports whether the height bounds admit exactly one value.
func (c Constraints) HasFixedHeight() bool {
	return c.HasBoundedHeight() && c.MinHeight() == c.MaxHeight()
}

// IsZero reports whether only the zero size satisfies c.
func (c Constraints) IsZero() bool {
	return c.HasBoundedWidth() && c.MaxWidth() == 0 &&
		c.HasBoundedHeight() && c.MaxHeight() == 0
}

func (c Constraints) String() string {
	minW, maxW, minH, maxH := c.Unpack()
	return "Constraints(" +
		strconv.Itoa(minW) + " <= w <= " + boundString(maxW) + ", " +
		strconv.Itoa(minH) + " <= h <= " + boundString(maxH) + ")"
}

func boundString(max int) string {
	if max == Infinity {
		return "Infinity"
	}
	return strconv.Itoa(max)
}
