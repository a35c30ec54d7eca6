package systems

import (
	"github.com/automoto/throwball/components"
	"github.com/automoto/throwball/shared/gamemath"
	"github.com/automoto/throwball/shared/throwfsm"
	"github.com/automoto/throwball/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHand pulls the hand anchor back along local -Z while charging and
// returns it to rest otherwise.
func UpdateHand(e *ecs.ECS) {
	frame, ok := currentFrame(e)
	if !ok {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		hand := components.Hand.Get(entry)
		if hand.Anchor == nil {
			return
		}
		throw := components.Throw.Get(entry)
		tuning := components.Tuning.Get(entry)

		target := HandTarget(hand.Rest, &throw.Machine, tuning)
		t := gamemath.LinearSmoothFactor(tuning.Hand.MoveSmooth, frame.DeltaTime)
		hand.Anchor.SetLocalPosition(gamemath.LerpVec3(hand.Anchor.LocalPosition(), target, t))
	})
}

// HandTarget returns the local position the hand is moving toward.
func HandTarget(rest mgl64.Vec3, m *throwfsm.Machine, tuning *components.TuningData) mgl64.Vec3 {
	if m.State != throwfsm.Charging {
		return rest
	}
	drawback := tuning.Hand.MaxDrawback * m.ChargeRatio(tuning.Throw.MaxChargeTime)
	return rest.Sub(gamemath.Forward.Mul(drawback))
}
