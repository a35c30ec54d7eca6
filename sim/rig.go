package sim

import (
	"github.com/automoto/throwball/config"
	"github.com/automoto/throwball/host"
	"github.com/automoto/throwball/shared/gamemath"
	"github.com/automoto/throwball/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
)

// Rig is a first-person camera standing at Eye and facing a fixed body yaw.
// It implements host.Camera; its Hand implements host.Anchor.
type Rig struct {
	Eye    mgl64.Vec3
	facing mgl64.Quat
	local  mgl64.Quat
	hand   *Hand
}

// Hand is the hold anchor, parented to the camera.
type Hand struct {
	rig   *Rig
	local mgl64.Vec3
}

func NewRig(eye mgl64.Vec3, yawDeg float64, handRest mgl64.Vec3) *Rig {
	r := &Rig{
		Eye:    eye,
		facing: gamemath.LookRotation(0, yawDeg),
		local:  mgl64.QuatIdent(),
	}
	r.hand = &Hand{rig: r, local: handRest}
	return r
}

// NewRigAtSpawn places a rig at a spawn point using the eye height and hand
// offset from conf.
func NewRigAtSpawn(s leveldata.Spawn, conf config.SimConfig) *Rig {
	eye := mgl64.Vec3{s.X, conf.EyeHeight, s.Z}
	hand := mgl64.Vec3{conf.HandOffsetX, conf.HandOffsetY, conf.HandOffsetZ}
	return NewRig(eye, s.Yaw, hand)
}

func (r *Rig) SetLocalRotation(q mgl64.Quat) { r.local = q }

// Rotation returns the camera world rotation.
func (r *Rig) Rotation() mgl64.Quat { return r.facing.Mul(r.local) }

func (r *Rig) CenterRay() host.Ray {
	return host.Ray{
		Origin:    r.Eye,
		Direction: r.Rotation().Rotate(gamemath.Forward).Normalize(),
	}
}

func (r *Rig) Hand() *Hand { return r.hand }

func (h *Hand) LocalPosition() mgl64.Vec3     { return h.local }
func (h *Hand) SetLocalPosition(p mgl64.Vec3) { h.local = p }

func (h *Hand) WorldPosition() mgl64.Vec3 {
	return h.rig.Eye.Add(h.rig.Rotation().Rotate(h.local))
}
