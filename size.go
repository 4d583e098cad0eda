package constraint

import "strconv"

// Size is a candidate measurement a layout pass tests or coerces against
// a Constraints.
type Size struct {
	Width  int
	Height int
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size { return Size{Width: w, Height: h} }

func (s Size) String() string {
	return strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)
}
