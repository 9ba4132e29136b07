package scale

import (
	"cmp"
	"math"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tincture/internal/colour"
)

const (
	// chromaCapFactor bounds a retinted step's chroma relative to the source.
	chromaCapFactor = 1.5
	// degenerateEpsilon is the length below which a triangle side or a
	// chroma is treated as zero.
	degenerateEpsilon = 1e-9
)

// candidate is the closest step of one reference scale to a source colour.
type candidate struct {
	name     string
	distance float64
	color    colour.Color
	scale    *Scale
}

// rankCandidates returns one candidate per reference scale, nearest first.
// Ties keep library order.
func rankCandidates(src colour.Color, scales []NamedScale) []candidate {
	cands := make([]candidate, 0, len(scales))
	for i := range scales {
		ns := &scales[i]
		best := candidate{name: ns.Name, distance: math.Inf(1), scale: &ns.Scale}
		for _, c := range ns.Scale {
			if d := colour.Distance(src, c); d < best.distance {
				best.distance = d
				best.color = c
			}
		}
		cands = append(cands, best)
	}

	slices.SortStableFunc(cands, func(a, b candidate) int {
		return cmp.Compare(a.distance, b.distance)
	})

	// A gray nearest match blends with the closest hue family, not another gray.
	if len(cands) > 1 && IsGrayFamily(cands[0].name) {
		allGray := !slices.ContainsFunc(cands, func(c candidate) bool { return !IsGrayFamily(c.name) })
		if !allGray {
			for IsGrayFamily(cands[1].name) {
				cands = slices.Delete(cands, 1, 2)
			}
		}
	}

	return cands
}

// blendRatio returns how much of b's scale to mix into a's, from the
// triangle formed by the source and the two matched colours. The result is
// 0 whenever the triangle is degenerate.
func blendRatio(a, b candidate) float64 {
	sideA := b.distance
	sideB := a.distance
	sideC := colour.Distance(a.color, b.color)

	if sideA < degenerateEpsilon || sideB < degenerateEpsilon || sideC < degenerateEpsilon {
		return 0
	}

	cosA := clampUnit((sideB*sideB + sideC*sideC - sideA*sideA) / (2 * sideB * sideC))
	cosB := clampUnit((sideA*sideA + sideC*sideC - sideB*sideB) / (2 * sideA * sideC))

	cotA := cosA / math.Sin(math.Acos(cosA))
	cotB := cosB / math.Sin(math.Acos(cosB))

	ratio := math.Max(0, cotA/cotB) * 0.5
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0
	}
	return ratio
}

// matchScale blends the two reference scales closest to src. It returns the
// blended scale before any retinting.
func matchScale(src colour.Color, scales []NamedScale, log hclog.Logger) Scale {
	cands := rankCandidates(src, scales)

	a := cands[0]
	b := a
	ratio := 0.0
	if len(cands) > 1 {
		b = cands[1]
		ratio = blendRatio(a, b)
	}

	log.Trace("matched reference scales",
		"closest", a.name, "closest_distance", a.distance,
		"second", b.name, "second_distance", b.distance,
		"ratio", ratio)

	var blended Scale
	for i := range blended {
		blended[i] = colour.Mix(a.scale[i], b.scale[i], ratio)
	}
	return blended
}

// retint pulls the chroma and hue of every step towards src, anchored on the
// step nearest to it.
func retint(src colour.Color, s Scale, log hclog.Logger) Scale {
	base := s[0]
	baseDist := colour.Distance(src, base)
	for _, c := range s[1:] {
		if d := colour.Distance(src, c); d < baseDist {
			base, baseDist = c, d
		}
	}

	ratioC := 1.0
	if base.C() > degenerateEpsilon {
		ratioC = src.C() / base.C()
	}

	log.Trace("retinting scale", "base", base.String(), "chroma_ratio", ratioC)

	maxC := src.C() * chromaCapFactor
	var out Scale
	for i, c := range s {
		out[i] = c.WithC(math.Min(maxC, c.C()*ratioC)).WithHueOf(src)
	}
	return out
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
