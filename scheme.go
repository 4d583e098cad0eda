package constraint

import "fmt"

// The packed word spends 2 bits on a scheme tag and splits the remaining
// 62 bits between the two dimensions: each dimension gets two fields of W
// (width) or H (height) bits, with W + H == 31. Four schemes cover the
// supported splits; whichever dimension needs the larger numeric range
// gets the larger share.
//
//	field      bits        note
//	tag        [0,2)       scheme index
//	minWidth   [2,2+W)     raw value
//	minHeight  [2+W,33)    raw value, H bits
//	maxWidth   [33,33+W)   value+1, 0 means Infinity
//	maxHeight  [33+W,64)   value+1, 0 means Infinity
//
// The maxWidth offset is fixed at 33 regardless of scheme: the two min
// fields always fill [2,33) exactly, and even the widest W=18 maxWidth
// field at [33,51) leaves the complementary H=13 bits for maxHeight.
const (
	tagMask       = 0x3
	minWidthShift = 2
	maxWidthShift = 33

	bits13 = 13
	bits15 = 15
	bits16 = 16
	bits18 = 18

	maxBound13 = 1<<bits13 - 2
	maxBound15 = 1<<bits15 - 2
	maxBound16 = 1<<bits16 - 2

	// MaxDimension is the largest finite bound a Constraints can hold.
	// One field value is reserved per tier for the Infinity sentinel,
	// hence -2 rather than -1.
	MaxDimension = 1<<bits18 - 2
)

const (
	tagA = iota // W=16 H=15
	tagB        // W=18 H=13
	tagC        // W=15 H=16
	tagD        // W=13 H=18
)

type scheme struct {
	widthBits  uint
	heightBits uint

	// Shifts for the two height fields. The height fields move as W
	// changes, so these are table values rather than derived at each
	// access.
	minHeightShift uint
	maxHeightShift uint

	widthMask  uint64
	heightMask uint64
}

var schemes = [4]scheme{
	tagA: {bits16, bits15, 18, 49, 1<<bits16 - 1, 1<<bits15 - 1},
	tagB: {bits18, bits13, 20, 51, 1<<bits18 - 1, 1<<bits13 - 1},
	tagC: {bits15, bits16, 17, 48, 1<<bits15 - 1, 1<<bits16 - 1},
	tagD: {bits13, bits18, 15, 46, 1<<bits13 - 1, 1<<bits18 - 1},
}

// bitsFor returns the smallest supported field width that can hold
// magnitude with one value left over for the Infinity sentinel.
func bitsFor(magnitude int) (uint, error) {
	switch {
	case magnitude <= maxBound13:
		return bits13, nil
	case magnitude <= maxBound15:
		return bits15, nil
	case magnitude <= maxBound16:
		return bits16, nil
	case magnitude <= MaxDimension:
		return bits18, nil
	default:
		return 0, fmt.Errorf("%w: %d > %d", ErrMagnitudeOverflow, magnitude, MaxDimension)
	}
}

// magnitude returns the largest finite value a dimension's fields must
// hold. An Infinity max costs nothing; the min alone drives the tier.
func magnitude(min, max int) int {
	if max == Infinity {
		return min
	}
	return max
}

// selectScheme picks the scheme tag from the width magnitude alone: width
// requiring few bits hands the larger share to height, and vice versa.
// The height magnitude is then checked against the complementary
// allocation. Ties at a tier boundary resolve in width's favour;
// intentional, keep it.
func selectScheme(widthMag, heightMag int) (tag uint64, sc scheme, err error) {
	widthBits, err := bitsFor(widthMag)
	if err != nil {
		return 0, sc, err
	}
	heightBits, err := bitsFor(heightMag)
	if err != nil {
		return 0, sc, err
	}

	switch widthBits {
	case bits13:
		tag = tagD
	case bits15:
		tag = tagC
	case bits16:
		tag = tagA
	case bits18:
		tag = tagB
	}

	sc = schemes[tag]
	if sc.heightBits < heightBits {
		return 0, sc, fmt.Errorf("%w: width needs %d bits, height needs %d, budget is 31",
			ErrSchemeUnsatisfiable, widthBits, heightBits)
	}
	return tag, sc, nil
}
