package systems

import (
	"math"

	"github.com/automoto/throwball/components"
	"github.com/automoto/throwball/shared/gamemath"
	"github.com/automoto/throwball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLook applies the mouse delta to the clamped raw angles, smooths them
// and writes the result to the camera.
func UpdateLook(e *ecs.ECS) {
	frame, ok := currentFrame(e)
	if !ok {
		return
	}
	h := currentHost(e)

	dx, dy := finite(frame.LookDX), finite(frame.LookDY)
	dt := frame.DeltaTime

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		look := components.Look.Get(entry)
		lc := components.Tuning.Get(entry).Look

		look.Yaw = gamemath.ClampSymmetric(look.Yaw+dx*lc.MouseSensitivity*dt, lc.MaxYaw)
		look.Pitch = gamemath.ClampSymmetric(look.Pitch-dy*lc.MouseSensitivity*dt, lc.MaxPitch)

		look.SmoothYaw = gamemath.SmoothToward(look.SmoothYaw, look.Yaw, lc.SmoothTime, dt)
		look.SmoothPitch = gamemath.SmoothToward(look.SmoothPitch, look.Pitch, lc.SmoothTime, dt)

		if h != nil && h.Camera != nil {
			h.Camera.SetLocalRotation(gamemath.LookRotation(look.SmoothPitch, look.SmoothYaw))
		}
	})
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
