package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmylchreest/tincture/internal/colour"
)

func TestTransposeStart(t *testing.T) {
	values := []float64{1, 0.9, 0.8, 0.7, 0.6}

	got := transposeStart(0.95, values, LightEasing)
	assert.InDelta(t, 0.95, got[0], 1e-12, "first value lands on the target")
	assert.Equal(t, values[4], got[4], "last value is untouched")

	linear := transposeStart(0.5, values, colour.Easing{})
	for i, v := range linear {
		shift := 0.5 * (1 - float64(i)/4)
		assert.InDelta(t, values[i]-shift, v, 1e-12)
	}

	assert.Empty(t, transposeStart(0.5, nil, LightEasing))
	assert.Equal(t, []float64{0.5}, transposeStart(0.5, []float64{0.8}, LightEasing))
}

func lightTestScale() Scale {
	var s Scale
	for i := range s {
		s[i] = colour.OKLCH(0.99-float64(i)*0.06, 0.05, 250)
	}
	return s
}

func TestTransposeLightTaper(t *testing.T) {
	s := lightTestScale()
	got := transposeLight(s, 0.9, LightEasing)

	first := math.Abs(got[0].L() - s[0].L())
	last := math.Abs(got[11].L() - s[11].L())
	assert.Greater(t, first, 0.0)
	assert.LessOrEqual(t, last, first)
	assert.InDelta(t, 0, last, 1e-12, "ease(0) leaves step 12 alone")

	for i := range got {
		assert.Equal(t, s[i].C(), got[i].C())
		assert.Equal(t, s[i].H(), got[i].H())
	}
}

func TestTransposeLightWhiteBackground(t *testing.T) {
	s := lightTestScale()
	got := transposeLight(s, 1, LightEasing)
	for i := range got {
		assert.InDelta(t, s[i].L(), got[i].L(), 1e-12)
	}
}

func TestFadeDarkEasing(t *testing.T) {
	tests := []struct {
		name   string
		ratioL float64
		want   colour.Easing
	}{
		{"darker background", 0.8, DarkEasing},
		{"equal", 1, DarkEasing},
		{"quarter way", 1.25, colour.Easing{X1: 0.25, Y1: 0, X2: 0.25, Y2: 0}},
		{"at max", 1.5, colour.Easing{}},
		{"beyond max", 2, colour.Easing{}},
		{"infinite", math.Inf(1), colour.Easing{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fadeDarkEasing(DarkEasing, tt.ratioL)
			assert.InDelta(t, tt.want.X1, got.X1, 1e-12)
			assert.InDelta(t, tt.want.Y1, got.Y1, 1e-12)
			assert.InDelta(t, tt.want.X2, got.X2, 1e-12)
			assert.InDelta(t, tt.want.Y2, got.Y2, 1e-12)
		})
	}
}

func darkTestScale(first float64) Scale {
	var s Scale
	for i := range s {
		s[i] = colour.OKLCH(first+float64(i)*0.065, 0.05, 250)
	}
	return s
}

func TestTransposeDark(t *testing.T) {
	s := darkTestScale(0.18)
	got := transposeDark(s, 0.2, DarkEasing)

	assert.InDelta(t, 0.2, got[0].L(), 1e-12)
	assert.InDelta(t, s[11].L(), got[11].L(), 1e-12)

	// Beyond the maximum ratio the whole scale shifts linearly.
	got = transposeDark(s, 0.5, DarkEasing)
	diff := 0.18 - 0.5
	for i := range got {
		want := s[i].L() - diff*(1-float64(i)/11)
		assert.InDelta(t, want, got[i].L(), 1e-12, "step %d", i+1)
	}
}

func TestTransposeDarkBlackFirstStep(t *testing.T) {
	s := darkTestScale(0)

	for _, bgL := range []float64{0, 0.2} {
		got := transposeDark(s, bgL, DarkEasing)
		for i, c := range got {
			assert.False(t, math.IsNaN(c.L()), "bg %v step %d", bgL, i+1)
		}
		assert.InDelta(t, bgL, got[0].L(), 1e-12)
	}
}

func TestDarkRatio(t *testing.T) {
	assert.Equal(t, 2.0, darkRatio(0.4, 0.2))
	assert.True(t, math.IsInf(darkRatio(0.1, 0), 1))
	assert.Equal(t, 1.0, darkRatio(0, 0))
}
