package factory

import (
	"github.com/automoto/throwball/archetypes"
	"github.com/automoto/throwball/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SpawnHeldBall instantiates a ball at the player's hand anchor, makes it
// kinematic and parents it to the anchor. It returns nil when there is no
// world, no anchor or the host refused to instantiate the template.
func SpawnHeldBall(ecs *ecs.ECS, player *donburi.Entry) *donburi.Entry {
	hostEntry, ok := components.Host.First(ecs.World)
	if !ok {
		return nil
	}
	h := components.Host.Get(hostEntry)
	hand := components.Hand.Get(player)
	throw := components.Throw.Get(player)
	tuning := components.Tuning.Get(player)

	if h.World == nil || hand.Anchor == nil {
		h.Log.Debug("ball spawn skipped", zap.Bool("world", h.World != nil), zap.Bool("anchor", hand.Anchor != nil))
		return nil
	}

	obj := h.World.Instantiate(tuning.Throw.BallTemplate, hand.Anchor.WorldPosition(), mgl64.QuatIdent())
	if obj == nil {
		h.Log.Debug("ball template could not be instantiated", zap.String("template", tuning.Throw.BallTemplate))
		return nil
	}
	if body := obj.Body(); body != nil {
		body.SetKinematic(true)
	}
	obj.SetParent(hand.Anchor)

	ball := archetypes.HeldBall.Spawn(ecs)
	components.Projectile.SetValue(ball, components.ProjectileData{Object: obj})
	throw.Held = ball

	return ball
}
