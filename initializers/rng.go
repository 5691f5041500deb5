package initializers

import "math/rand"

// RNG needs no explanation
type RNG interface {
	Gen() float64
}

// source is embedded by each RNG. Without a *rand.Rand, the global source from math/rand is used,
// which is safe for concurrent use; a *rand.Rand is not, so each goroutine needs its own.
type source struct {
	r *rand.Rand
}

func (s source) uniformFloat() float64 {
	if s.r == nil {
		return rand.Float64()
	}
	return s.r.Float64()
}

func (s source) normFloat() float64 {
	if s.r == nil {
		return rand.NormFloat64()
	}
	return s.r.NormFloat64()
}

type uniform struct {
	source
	lower, upper float64
}

// Uniform returns an RNG that gives values uniformly spread in [lower, upper), which can be set by
// Bounds. The default bounds are -1 and 1.
func Uniform() *uniform {
	return &uniform{lower: getDefault("uniform-lower"), upper: getDefault("uniform-upper")}
}

// Bounds sets the range of a Uniform RNG, returning it.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Rand sets the source of randomness, returning the RNG.
func (u *uniform) Rand(r *rand.Rand) *uniform {
	u.r = r
	return u
}

// Gen is the implementation of RNG for Uniform. It returns a random number.
func (u *uniform) Gen() float64 {
	return u.uniformFloat()*(u.upper-u.lower) + u.lower
}

type normal struct {
	source
	µ, σ float64
}

// Normal returns an RNG that gives values within a normal distribution. The center
// and standard deviation can be set by Mean and SD, respectively.
//
// Default centers and standard deviations can be set by SetDefault for
// "normal-mean" and "normal-sd".
func Normal() *normal {
	return &normal{µ: getDefault("normal-mean"), σ: getDefault("normal-sd")}
}

// SD sets the value of the standard deviation of the normal distribution.
func (n *normal) SD(sd float64) *normal {
	n.σ = sd
	return n
}

// Mean sets the center of the normal distribution.
func (n *normal) Mean(mean float64) *normal {
	n.µ = mean
	return n
}

// Rand sets the source of randomness, returning the RNG.
func (n *normal) Rand(r *rand.Rand) *normal {
	n.r = r
	return n
}

// Gen is the implementation of RNG for Normal. It returns a random number.
func (n *normal) Gen() float64 {
	return n.normFloat()*n.σ + n.µ
}

type truncNormal struct {
	*normal
	trunc float64
}

const defaultTrunc float64 = 2.0

// TruncNormal returns an RNG that gives values within an truncated normal
// distribution. The distribution is truncated at 2 standard deviations. The center
// and standard deviation can be set in the same way as Normal, because Normal is
// embedded in the TruncNormal type.
//
// Additionally, the number of standard deviations to truncate at can be set by
// Trunc.
func TruncNormal() *truncNormal {
	return &truncNormal{Normal(), defaultTrunc}
}

// Trunc sets the number of standard deviations to keep on either side. Trunc will
// panic if given sds <= 0.
func (t *truncNormal) Trunc(sds float64) *truncNormal {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

// Gen is the implementation of RNG for TruncNormal. It returns a random number.
func (t *truncNormal) Gen() float64 {
	for {
		v := t.normFloat()
		if v < -t.trunc || v > t.trunc {
			continue
		}

		return v*t.σ + t.µ
	}
}

// Rand sets the source of randomness, returning the RNG.
func (t *truncNormal) Rand(r *rand.Rand) *truncNormal {
	t.r = r
	return t
}
