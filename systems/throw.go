package systems

import (
	"github.com/automoto/throwball/components"
	"github.com/automoto/throwball/host"
	"github.com/automoto/throwball/shared/gamemath"
	"github.com/automoto/throwball/shared/throwfsm"
	"github.com/automoto/throwball/systems/factory"
	"github.com/automoto/throwball/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateThrow runs the throw state machine for every player: cooldown and
// respawn, then press, hold and release of the throw button.
func UpdateThrow(e *ecs.ECS) {
	frame, ok := currentFrame(e)
	if !ok {
		return
	}
	h := currentHost(e)
	if h == nil {
		return
	}

	tags.Player.Each(e.World, func(player *donburi.Entry) {
		throw := components.Throw.Get(player)
		tuning := components.Tuning.Get(player)
		params := tuning.ThrowParams()

		// The host may have destroyed the ball behind our back.
		if throw.Held != nil && !throw.Held.Valid() {
			throw.Held = nil
		}

		expired := throw.Machine.Tick(frame.DeltaTime)

		// Idle without a ball: spawn, and keep retrying on later frames
		// until the host can instantiate one again.
		if throw.Machine.State == throwfsm.Idle && !throw.Holding() {
			if factory.SpawnHeldBall(e, player) != nil {
				h.Log.Debug("ball respawned")
				frame.Events = append(frame.Events, components.ThrowEvent{Kind: components.EventRespawned})
			} else if expired {
				h.Log.Warn("ball respawn failed, retrying", zap.String("template", tuning.Throw.BallTemplate))
			}
		}

		out := throw.Machine.Input(frame.DeltaTime, frame.Throw, throw.Holding(), params)

		if out.ChargeStarted {
			h.Log.Debug("charge started")
			frame.Events = append(frame.Events, components.ThrowEvent{Kind: components.EventChargeStarted})
		}

		switch {
		case out.Thrown:
			ev := executeThrow(e, h, player, out.ChargeElapsed)
			h.Log.Debug("ball thrown",
				zap.Float64("charge", ev.ChargeElapsed),
				zap.Float64("force", ev.Force),
				zap.Bool("hit", ev.Hit),
			)
			frame.Events = append(frame.Events, ev)
		case out.Aborted:
			h.Log.Debug("charge aborted",
				zap.Float64("charge", out.ChargeElapsed),
				zap.Float64("min", tuning.Throw.MinChargeTime),
			)
			frame.Events = append(frame.Events, components.ThrowEvent{
				Kind:          components.EventAborted,
				ChargeElapsed: out.ChargeElapsed,
			})
		}
	})
}

// executeThrow launches the held ball toward the camera aim point and hands
// it over to the host physics world.
func executeThrow(e *ecs.ECS, h *components.HostData, player *donburi.Entry, chargeElapsed float64) components.ThrowEvent {
	throw := components.Throw.Get(player)
	hand := components.Hand.Get(player)
	tuning := components.Tuning.Get(player)

	ratio := gamemath.ChargeRatio(chargeElapsed, tuning.Throw.MaxChargeTime)
	force := gamemath.LaunchForce(tuning.Throw.MinLaunchForce, tuning.Throw.MaxLaunchForce, ratio)

	var origin mgl64.Vec3
	if hand.Anchor != nil {
		origin = hand.Anchor.WorldPosition()
	}
	ray := aimRay(h, origin)
	target, hit := AimPoint(h.World, ray, tuning.Throw.FarAimDistance)
	dir := gamemath.AimDirection(origin, target, ray.Direction)

	ball := throw.Held
	if ball != nil && ball.Valid() {
		if obj := components.Projectile.Get(ball).Object; obj != nil {
			obj.Detach()
			if body := obj.Body(); body != nil {
				body.SetKinematic(false)
				body.AddImpulse(dir.Mul(force))
			}
		}
		e.World.Remove(ball.Entity())
	}
	throw.Held = nil

	return components.ThrowEvent{
		Kind:          components.EventThrown,
		ChargeElapsed: chargeElapsed,
		Force:         force,
		Direction:     dir,
		Target:        target,
		Hit:           hit,
	}
}

// aimRay is the camera center ray, or a forward ray from origin without a camera.
func aimRay(h *components.HostData, origin mgl64.Vec3) host.Ray {
	if h.Camera != nil {
		return h.Camera.CenterRay()
	}
	return host.Ray{Origin: origin, Direction: gamemath.Forward}
}

// AimPoint returns the raycast hit point, or the point farDistance along the
// ray when nothing is hit or there is no world to query.
func AimPoint(world host.World, ray host.Ray, farDistance float64) (mgl64.Vec3, bool) {
	if world != nil {
		if p, ok := world.Raycast(ray); ok {
			return p, true
		}
	}
	return ray.Point(farDistance), false
}

func currentFrame(e *ecs.ECS) (*components.FrameData, bool) {
	entry, ok := components.Frame.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Frame.Get(entry), true
}

func currentHost(e *ecs.ECS) *components.HostData {
	entry, ok := components.Host.First(e.World)
	if !ok {
		return nil
	}
	return components.Host.Get(entry)
}
