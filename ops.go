package constraint

// Fixed creates a Constraints satisfied only by exactly (w, h). It panics
// if the pair cannot be represented; use Make for caller-supplied data.
func Fixed(w, h int) Constraints {
	c, err := Make(w, w, h, h)
	if err != nil {
		panic(err)
	}
	return c
}

// FixedWidth creates a Constraints with an exact width and an unbounded
// height. It panics if w cannot be represented.
func FixedWidth(w int) Constraints {
	c, err := Make(w, w, 0, Infinity)
	if err != nil {
		panic(err)
	}
	return c
}

// FixedHeight creates a Constraints with an exact height and an unbounded
// width. It panics if h cannot be represented.
func FixedHeight(h int) Constraints {
	c, err := Make(0, Infinity, h, h)
	if err != nil {
		panic(err)
	}
	return c
}

// Override replaces one bound during Copy.
type Override func(*overrides)

type overrides struct {
	minWidth, maxWidth, minHeight, maxHeight int
}

func WithMinWidth(v int) Override  { return func(o *overrides) { o.minWidth = v } }
func WithMaxWidth(v int) Override  { return func(o *overrides) { o.maxWidth = v } }
func WithMinHeight(v int) Override { return func(o *overrides) { o.minHeight = v } }
func WithMaxHeight(v int) Override { return func(o *overrides) { o.maxHeight = v } }

// Copy returns a new Constraints with any subset of the four bounds
// replaced. The result is validated and re-encoded from scratch, so the
// same errors as Make apply.
func (c Constraints) Copy(ovs ...Override) (Constraints, error) {
	var o overrides
	o.minWidth, o.maxWidth, o.minHeight, o.maxHeight = c.Unpack()
	for _, ov := range ovs {
		ov(&o)
	}
	return Make(o.minWidth, o.maxWidth, o.minHeight, o.maxHeight)
}

// Enforce clamps c's four bounds into other's bounds. The result always
// satisfies other.
//
// Enforce panics in the one unrepresentable corner: when the clamped
// width and height ranges both land in the largest bit tier, which
// requires c and other to hold their large bounds on opposite dimensions.
func (c Constraints) Enforce(other Constraints) Constraints {
	minW, maxW, minH, maxH := c.Unpack()
	ominW, omaxW, ominH, omaxH := other.Unpack()

	out, err := encode(
		clampBound(minW, ominW, omaxW),
		clampBound(maxW, ominW, omaxW),
		clampBound(minH, ominH, omaxH),
		clampBound(maxH, ominH, omaxH))
	if err != nil {
		panic(err)
	}
	return out
}

// clampBound coerces v into [lo, hi], where v == Infinity means
// unbounded and hi == Infinity means no upper clamp.
func clampBound(v, lo, hi int) int {
	if v == Infinity {
		return hi // hi may itself be Infinity
	}
	if v < lo {
		return lo
	}
	if hi != Infinity && v > hi {
		return hi
	}
	return v
}

// Constrain coerces s elementwise into c's bounds.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  c.ConstrainWidth(s.Width),
		Height: c.ConstrainHeight(s.Height),
	}
}

// ConstrainWidth coerces w into [MinWidth, MaxWidth].
func (c Constraints) ConstrainWidth(w int) int {
	return clampBound(w, c.MinWidth(), c.MaxWidth())
}

// ConstrainHeight coerces h into [MinHeight, MaxHeight].
func (c Constraints) ConstrainHeight(h int) int {
	return clampBound(h, c.MinHeight(), c.MaxHeight())
}

// SatisfiedBy reports whether s lies within c's bounds.
func (c Constraints) SatisfiedBy(s Size) bool {
	minW, maxW, minH, maxH := c.Unpack()
	return s.Width >= minW && (maxW == Infinity || s.Width <= maxW) &&
		s.Height >= minH && (maxH == Infinity || s.Height <= maxH)
}

// Offset translates all four bounds by (dx, dy), flooring each at zero.
// Unbounded maxes stay unbounded. Offset panics if a translated bound
// exceeds MaxDimension; negative offsets never fail.
func (c Constraints) Offset(dx, dy int) Constraints {
	minW, maxW, minH, maxH := c.Unpack()

	out, err := encode(
		offsetBound(minW, dx),
		offsetBound(maxW, dx),
		offsetBound(minH, dy),
		offsetBound(maxH, dy))
	if err != nil {
		panic(err)
	}
	return out
}

func offsetBound(v, d int) int {
	if v == Infinity {
		return Infinity
	}
	if v += d; v < 0 {
		return 0
	}
	return v
}
