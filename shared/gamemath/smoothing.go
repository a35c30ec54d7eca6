package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ReferenceFrameRate is the frame rate exponential smoothing rates are normalized against.
const ReferenceFrameRate = 60.0

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSymmetric clamps a value to [-limit, limit].
func ClampSymmetric(v, limit float64) float64 {
	return Clamp(v, -limit, limit)
}

// Lerp interpolates from a to b by t without clamping t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec3 interpolates each component from a to b by t, with t clamped to [0, 1].
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}

// ExpSmoothingFactor returns the blend factor 1 - exp(-rate·dt·60).
// Applying it twice for dt/2 gives the same result as once for dt.
func ExpSmoothingFactor(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt*ReferenceFrameRate)
}

// SmoothToward moves current toward target using frame-rate independent exponential smoothing.
func SmoothToward(current, target, rate, dt float64) float64 {
	return Lerp(current, target, ExpSmoothingFactor(rate, dt))
}

// LinearSmoothFactor returns dt·rate clamped to [0, 1], the factor used by
// the hand return animation.
func LinearSmoothFactor(rate, dt float64) float64 {
	return Clamp(dt*rate, 0, 1)
}

// SanitizeDelta treats negative, NaN and infinite frame deltas as zero.
func SanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}
