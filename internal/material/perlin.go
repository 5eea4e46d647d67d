package material

import (
	"math"
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

const perlinPointCount = 256

// Perlin holds the permutation tables and random gradient vectors for
// Perlin-noise textures. Constructed once, read-only thereafter; safe to
// share across every worker goroutine.
type Perlin struct {
	randVec  [perlinPointCount]core.Vec3
	permX    [perlinPointCount]int
	permY    [perlinPointCount]int
	permZ    [perlinPointCount]int
}

// NewPerlin builds a Perlin noise generator from rnd.
func NewPerlin(rnd *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := 0; i < perlinPointCount; i++ {
		p.randVec[i] = core.RandomVec3(rnd, -1, 1).Unit()
	}
	p.permX = generatePermutation(rnd)
	p.permY = generatePermutation(rnd)
	p.permZ = generatePermutation(rnd)
	return p
}

// generatePermutation fills 0..255 and Fisher-Yates shuffles it.
func generatePermutation(rnd *rand.Rand) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := rnd.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}

// Noise samples smoothed, trilinearly-interpolated gradient noise at p.
func (pn *Perlin) Noise(p core.Point3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.randVec[idx]
			}
		}
	}

	return perlinInterpolate(c, u, v, w)
}

// perlinInterpolate applies Hermitian cubic smoothing to the trilinear
// gradient-dot-offset interpolation.
func perlinInterpolate(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := core.Vec3{X: u - float64(i), Y: v - float64(j), Z: w - float64(k)}
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums Noise over `depth` octaves at halving amplitude and
// doubling frequency, and takes the absolute value.
func (pn *Perlin) Turbulence(p core.Point3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * pn.Noise(temp)
		weight *= 0.5
		temp = temp.Mul(2)
	}
	return math.Abs(accum)
}

// NoiseTexture is a marble-like texture driven by Perlin turbulence:
// colour = base * 0.5 * (1 + sin(scale*z + 10*turbulence(p))), matching
// the classic "Ray Tracing the Next Week" marble look.
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
	Base  core.Colour
}

// NewNoiseTexture creates a turbulence-marbled texture.
func NewNoiseTexture(noise *Perlin, scale float64, base core.Colour) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale, Base: base}
}

// Value implements core.Texture.
func (n *NoiseTexture) Value(u, v float64, p core.Point3) core.Colour {
	marble := 0.5 * (1 + math.Sin(n.Scale*p.Z+10*n.Noise.Turbulence(p, 7)))
	return n.Base.Mul(marble)
}
