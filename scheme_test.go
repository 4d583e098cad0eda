package constraint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestBitsFor(t *testing.T) {
	for _, tc := range []struct {
		magnitude int
		bits      uint
	}{
		{0, 13},
		{1, 13},
		{8190, 13},
		{8191, 15},
		{32766, 15},
		{32767, 16},
		{65534, 16},
		{65535, 18},
		{MaxDimension, 18},
	} {
		t.Run(fmt.Sprintf("%d=%d", tc.magnitude, tc.bits), func(t *testing.T) {
			tt := assert.WrapTB(t)
			bits, err := bitsFor(tc.magnitude)
			tt.MustOK(err)
			tt.MustEqual(tc.bits, bits)
		})
	}
}

func TestBitsForOverflow(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, magnitude := range []int{MaxDimension + 1, 300000, Infinity} {
		_, err := bitsFor(magnitude)
		tt.MustAssert(errors.Is(err, ErrMagnitudeOverflow), "magnitude %d: %v", magnitude, err)
	}
}

func TestSchemeTagSelection(t *testing.T) {
	for idx, tc := range []struct {
		minW, maxW, minH, maxH int
		tag                    uint64
	}{
		// Width's own tier picks the tag; small width hands height the
		// larger share.
		{0, 8190, 0, 0, tagD},
		{0, 8191, 0, 0, tagC},
		{0, 32766, 0, 0, tagC},
		{0, 32767, 0, 0, tagA},
		{0, 65534, 0, 0, tagA},
		{0, 65535, 0, 0, tagB},
		{0, MaxDimension, 0, 0, tagB},

		// Height's requirement never changes the tag, only validates it.
		{0, 0, 0, MaxDimension, tagD},
		{0, 8190, 0, 65535, tagD},
		{0, 32766, 0, 65534, tagC},
		{0, 65534, 0, 32766, tagA},
		{0, MaxDimension, 0, 8190, tagB},

		// Infinity maxes cost nothing; the min drives the tier.
		{0, Infinity, 0, Infinity, tagD},
		{65535, Infinity, 0, Infinity, tagB},
		{0, Infinity, 65535, Infinity, tagD},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d,%d,%d", idx, tc.minW, tc.maxW, tc.minH, tc.maxH), func(t *testing.T) {
			tt := assert.WrapTB(t)
			c := mk(tc.minW, tc.maxW, tc.minH, tc.maxH)
			tt.MustEqual(tc.tag, c.Raw()&tagMask)
		})
	}
}

func TestSchemeWidthPriority(t *testing.T) {
	// Two values with mirrored magnitudes land in different schemes: the
	// tag is a function of the width tier alone.
	tt := assert.WrapTB(t)

	a := mk(0, 32766, 0, 65534) // width 15 bits, height gets 16
	b := mk(0, 65534, 0, 32766) // width 16 bits, height gets 15
	tt.MustEqual(uint64(tagC), a.Raw()&tagMask)
	tt.MustEqual(uint64(tagA), b.Raw()&tagMask)
}

func TestSchemeMonotonicity(t *testing.T) {
	// Crossing a tier threshold changes the tag but never the decoded
	// bounds.
	for _, threshold := range []int{8191, 32767, 65535} {
		t.Run(fmt.Sprintf("width/%d", threshold), func(t *testing.T) {
			tt := assert.WrapTB(t)

			below := mk(0, threshold-1, 0, 10)
			above := mk(0, threshold, 0, 10)
			tt.MustAssert(below.Raw()&tagMask != above.Raw()&tagMask)

			tt.MustEqual(threshold-1, below.MaxWidth())
			tt.MustEqual(threshold, above.MaxWidth())
			tt.MustEqual(10, below.MaxHeight())
			tt.MustEqual(10, above.MaxHeight())
		})

		t.Run(fmt.Sprintf("height/%d", threshold), func(t *testing.T) {
			tt := assert.WrapTB(t)

			below := mk(0, 10, 0, threshold-1)
			above := mk(0, 10, 0, threshold)

			tt.MustEqual(threshold-1, below.MaxHeight())
			tt.MustEqual(threshold, above.MaxHeight())
			tt.MustEqual(10, below.MaxWidth())
			tt.MustEqual(10, above.MaxWidth())
		})
	}
}

func TestSchemeFieldIsolation(t *testing.T) {
	// Each scheme's fields must not overlap: max out every field at once
	// in all four schemes and check nothing bleeds.
	for idx, tc := range []struct {
		minW, maxW, minH, maxH int
		tag                    uint64
	}{
		{65534, 65534, 32766, 32766, tagA},
		{MaxDimension, MaxDimension, 8190, 8190, tagB},
		{32766, 32766, 65534, 65534, tagC},
		{8190, 8190, MaxDimension, MaxDimension, tagD},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			c := mk(tc.minW, tc.maxW, tc.minH, tc.maxH)
			tt.MustEqual(tc.tag, c.Raw()&tagMask)

			minW, maxW, minH, maxH := c.Unpack()
			tt.MustEqual(tc.minW, minW)
			tt.MustEqual(tc.maxW, maxW)
			tt.MustEqual(tc.minH, minH)
			tt.MustEqual(tc.maxH, maxH)
		})
	}
}
