package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKLCHString(t *testing.T) {
	assert.Equal(t, "oklch(62.8% 0.2577 29.23)", OKLCHString(OKLCH(0.62796, 0.25768, 29.2339)))
	assert.Equal(t, "oklch(50% 0 none)", OKLCHString(Achromatic(0.5, 0)))
	assert.Equal(t, "oklch(0% 0 none)", Achromatic(-0.000001, 0).String())
}

func TestDisplayP3String(t *testing.T) {
	assert.Equal(t, "color(display-p3 1 0.5 0)", DisplayP3String([3]float64{1, 0.5, 0}))
	assert.Equal(t, "color(display-p3 0.1235 0 1 / 0.8)", DisplayP3AlphaString([4]float64{0.12345, 0, 1, 0.8}))
	assert.Equal(t, "color(display-p3 0 0 0 / 0.05)", DisplayP3AlphaString([4]float64{0, 0, 0, 0.05}))
}

func TestParseDisplayP3(t *testing.T) {
	c, err := ParseDisplayP3("color(display-p3 1 0 0)")
	require.NoError(t, err)
	p3 := c.DisplayP3()
	assert.InDelta(t, 1, p3[0], 1e-4)
	assert.InDelta(t, 0, p3[1], 1e-4)
	assert.InDelta(t, 0, p3[2], 1e-4)

	gray, err := ParseDisplayP3(" color(display-p3 0.5 0.5 0.5 / 0.3) ")
	require.NoError(t, err)
	assert.False(t, gray.HasHue())
}

func TestParseDisplayP3Invalid(t *testing.T) {
	for _, in := range []string{"", "rgb(1, 2, 3)", "color(display-p3 1 0)", "color(display-p3 a b c)", "color(display-p3 1 0 0"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDisplayP3(in)
			assert.ErrorIs(t, err, ErrInvalidColorFormat)
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v    float64
		prec int
		want string
	}{
		{1, 4, "1"},
		{0.25, 4, "0.25"},
		{0.123456, 4, "0.1235"},
		{-0.00001, 4, "0"},
		{100, 2, "100"},
		{29.2339, 2, "29.23"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFloat(tt.v, tt.prec), "formatFloat(%g, %d)", tt.v, tt.prec)
	}
}
