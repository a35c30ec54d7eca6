package sim

import (
	"math"

	"github.com/automoto/throwball/host"
	"github.com/automoto/throwball/shared/gamemath"
	"github.com/automoto/throwball/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

// Ball is a sphere that implements both host.Object and host.RigidBody.
type Ball struct {
	ID       uuid.UUID
	Template string
	Radius   float64
	Bounces  int

	world     *World
	pos       mgl64.Vec3
	vel       mgl64.Vec3
	rot       mgl64.Quat
	mass      float64
	kinematic bool
	parent    host.Anchor
	released  bool
	age       float64
	touched   map[*Box]struct{}
	obj       *resolv.Object
}

func (b *Ball) Body() host.RigidBody { return b }

func (b *Ball) SetParent(a host.Anchor) {
	b.parent = a
	if a != nil {
		b.pos = a.WorldPosition()
		b.vel = mgl64.Vec3{}
	}
}

// Detach keeps the current world position and starts the lifetime clock.
func (b *Ball) Detach() {
	if b.parent == nil {
		return
	}
	b.pos = b.parent.WorldPosition()
	b.parent = nil
	b.released = true
	b.sync()
}

func (b *Ball) SetKinematic(kinematic bool) {
	b.kinematic = kinematic
	if kinematic {
		b.vel = mgl64.Vec3{}
	}
}

// AddImpulse changes the velocity by impulse/mass. Kinematic balls ignore it.
func (b *Ball) AddImpulse(impulse mgl64.Vec3) {
	if b.kinematic {
		return
	}
	b.vel = b.vel.Add(impulse.Mul(1 / b.mass))
}

// Position returns the world position, following the parent while held.
func (b *Ball) Position() mgl64.Vec3 {
	if b.parent != nil {
		return b.parent.WorldPosition()
	}
	return b.pos
}

func (b *Ball) Velocity() mgl64.Vec3 { return b.vel }
func (b *Ball) Held() bool           { return b.parent != nil }
func (b *Ball) Kinematic() bool      { return b.kinematic }

// step integrates one tick. It returns false once the ball should be removed.
func (b *Ball) step(dt float64) bool {
	conf := b.world.conf

	if b.parent != nil {
		b.pos = b.parent.WorldPosition()
		b.sync()
		return true
	}
	if b.released {
		b.age += dt
		if b.age >= conf.BallLifetime {
			return false
		}
	}
	if b.kinematic {
		return true
	}

	b.vel = b.vel.Sub(mgl64.Vec3{0, conf.Gravity * dt, 0})
	b.pos = b.pos.Add(b.vel.Mul(dt))

	if b.pos.Y() < b.Radius {
		b.pos[1] = b.Radius
		if b.vel.Y() < 0 {
			b.vel[1] = -b.vel.Y() * conf.Restitution
			b.Bounces++
		}
	}

	b.sync()
	b.collide()
	return true
}

func (b *Ball) sync() {
	b.obj.X = (b.pos.X() - b.Radius) * resolvScale
	b.obj.Y = (b.pos.Z() - b.Radius) * resolvScale
	b.obj.Update()
}

// collide resolves contacts with the boxes sharing a broad-phase cell.
func (b *Ball) collide() {
	check := b.obj.Check(0, 0, tags.ResolvSolid, tags.ResolvTarget)
	if check == nil {
		return
	}
	for _, o := range check.ObjectsByTags(tags.ResolvSolid, tags.ResolvTarget) {
		box, ok := o.Data.(*Box)
		if !ok {
			continue
		}
		lo, hi := box.Bounds()
		closest := mgl64.Vec3{
			gamemath.Clamp(b.pos.X(), lo.X(), hi.X()),
			gamemath.Clamp(b.pos.Y(), lo.Y(), hi.Y()),
			gamemath.Clamp(b.pos.Z(), lo.Z(), hi.Z()),
		}
		delta := b.pos.Sub(closest)
		dist := delta.Len()
		if dist >= b.Radius {
			continue
		}

		var normal mgl64.Vec3
		if dist > 1e-9 {
			normal = delta.Mul(1 / dist)
			b.pos = closest.Add(normal.Mul(b.Radius))
		} else {
			normal, b.pos = pushOut(b.pos, lo, hi, b.Radius)
		}
		if vn := b.vel.Dot(normal); vn < 0 {
			b.vel = b.vel.Sub(normal.Mul((1 + b.world.conf.Restitution) * vn))
			b.Bounces++
		}

		if _, seen := b.touched[box]; !seen && b.released {
			b.touched[box] = struct{}{}
			b.world.recordImpact(b, box, closest)
		}
		b.sync()
	}
}

// pushOut moves a point inside a box out through the nearest face.
func pushOut(p, lo, hi mgl64.Vec3, radius float64) (mgl64.Vec3, mgl64.Vec3) {
	best := math.Inf(1)
	var normal mgl64.Vec3
	for i := 0; i < 3; i++ {
		// Boxes stand on the floor, never push down through it.
		if d := p[i] - lo[i]; i != 1 && d < best {
			best = d
			normal = mgl64.Vec3{}
			normal[i] = -1
		}
		if d := hi[i] - p[i]; d < best {
			best = d
			normal = mgl64.Vec3{}
			normal[i] = 1
		}
	}
	out := p
	for i := 0; i < 3; i++ {
		switch normal[i] {
		case -1:
			out[i] = lo[i] - radius
		case 1:
			out[i] = hi[i] + radius
		}
	}
	return normal, out
}
