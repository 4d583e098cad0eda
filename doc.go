/*
Package constraint provides a layout constraints value type (Constraints)
packed into a single machine word.

A Constraints holds four bounds: a minimum and maximum width, and a minimum
and maximum height. Either maximum may be Infinity, meaning the dimension
has no upper bound. All four bounds are packed into one uint64, so
Constraints is cheap to create, copy, compare and use as a map key in the
hot path of a layout pass.

Constraints is a value type; all operations return new values.

Simple example:

	c := constraint.Fixed(100, 50)
	fmt.Println(c.SatisfiedBy(constraint.Size{Width: 100, Height: 50}))
	// Output: true

Constraints can be created from a variety of sources:

	Make(minWidth, maxWidth, minHeight, maxHeight int) (Constraints, error)
	Fixed(w, h int) Constraints
	FixedWidth(w int) Constraints
	FixedHeight(h int) Constraints
	FromRaw(bits uint64) Constraints

Construction validates its inputs and normalises the packed form: equal
logical bounds always produce bit-identical words, so Constraints values
may be compared directly with '=='.

The zero Constraints is not produced by any constructor and is not in
canonical form; always construct values with Make or the Fixed helpers.

Finite bounds are limited to MaxDimension (1<<18 - 2). The packed word
adaptively allocates bits between the two dimensions, so one dimension may
use the full 18-bit range only while the other fits in 13 bits; Make
returns an error for combinations that cannot be represented.
*/
package constraint
