package sim

import (
	"github.com/automoto/throwball/shared/leveldata"
	"github.com/automoto/throwball/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Box is an axis-aligned solid standing on the floor.
type Box struct {
	ID     uuid.UUID
	Target bool
	Hits   int

	min, max mgl64.Vec3 // rest bounds
	offset   float64    // current sway along X
	sway     *gween.Sequence
	obj      *resolv.Object
}

func newBox(space *resolv.Space, s leveldata.Solid) *Box {
	b := &Box{
		ID:     uuid.New(),
		Target: s.Target,
		min:    mgl64.Vec3{s.X, 0, s.Z},
		max:    mgl64.Vec3{s.X + s.W, s.Height, s.Z + s.D},
	}

	tag := tags.ResolvSolid
	if s.Target {
		tag = tags.ResolvTarget
	}
	w, d := s.W*resolvScale, s.D*resolvScale
	b.obj = resolv.NewObject(s.X*resolvScale, s.Z*resolvScale, w, d, tag)
	b.obj.SetShape(resolv.NewRectangle(0, 0, w, d))
	b.obj.Data = b
	space.Add(b.obj)

	// Swaying boxes move back and forth along X using a sequence of tweens.
	if s.Sway != 0 {
		half := float32(s.SwayPeriod / 2)
		b.sway = gween.NewSequence()
		b.sway.Add(
			gween.New(0, float32(s.Sway), half, ease.InOutSine),
			gween.New(float32(s.Sway), 0, half, ease.InOutSine),
		)
	}
	return b
}

// Bounds returns the current world-space corners.
func (b *Box) Bounds() (mgl64.Vec3, mgl64.Vec3) {
	off := mgl64.Vec3{b.offset, 0, 0}
	return b.min.Add(off), b.max.Add(off)
}

func (b *Box) step(dt float64) {
	if b.sway == nil {
		return
	}
	v, _, done := b.sway.Update(float32(dt))
	if done {
		b.sway.Reset()
	}
	b.offset = float64(v)
	b.obj.X = (b.min.X() + b.offset) * resolvScale
	b.obj.Update()
}
