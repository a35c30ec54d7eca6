package gamemath

import "github.com/go-gl/mathgl/mgl64"

// ChargeRatio returns chargeElapsed / maxChargeTime clamped to [0, 1].
func ChargeRatio(chargeElapsed, maxChargeTime float64) float64 {
	if maxChargeTime <= 0 {
		return 0
	}
	return Clamp(chargeElapsed/maxChargeTime, 0, 1)
}

// LaunchForce returns the throw force scaled by charge ratio.
func LaunchForce(minForce, maxForce, chargeRatio float64) float64 {
	return Lerp(minForce, maxForce, Clamp(chargeRatio, 0, 1))
}

// AimDirection returns the normalized direction from origin to target.
// Returns fallback when the two points coincide.
func AimDirection(origin, target, fallback mgl64.Vec3) mgl64.Vec3 {
	d := target.Sub(origin)
	if d.Len() < 1e-9 {
		return fallback
	}
	return d.Normalize()
}

// LookRotation builds the camera local rotation from pitch and yaw in degrees.
// Yaw turns around +Y, pitch around +X, no roll; yaw is applied last.
func LookRotation(pitchDeg, yawDeg float64) mgl64.Quat {
	yaw := mgl64.QuatRotate(mgl64.DegToRad(yawDeg), mgl64.Vec3{0, 1, 0})
	pitch := mgl64.QuatRotate(mgl64.DegToRad(pitchDeg), mgl64.Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}

// Forward is the local forward axis.
var Forward = mgl64.Vec3{0, 0, 1}
