// Package sim is a small headless host for the throw controller: an arena of
// boxes on a floor plane, ballistic balls and a first-person camera rig.
package sim

import (
	"github.com/automoto/throwball/config"
	"github.com/automoto/throwball/host"
	"github.com/automoto/throwball/shared/leveldata"
	"github.com/automoto/throwball/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
	"go.uber.org/zap"
)

// Template describes the balls Instantiate can create.
type Template struct {
	Radius float64
	Mass   float64
}

// Impact is the first contact of a released ball with a box.
type Impact struct {
	Ball   uuid.UUID
	Box    uuid.UUID
	Target bool
	Point  mgl64.Vec3
	Time   float64
}

// resolvScale converts world units to resolv space units. resolv sizes its
// cell footprints assuming pixel units, so objects must span several units.
const resolvScale = 16.0

// World implements host.World. The resolv space indexes the XZ footprint of
// every box and ball; resolv X is world X and resolv Y is world Z, both
// multiplied by resolvScale.
type World struct {
	conf      config.SimConfig
	log       *zap.Logger
	space     *resolv.Space
	probe     *resolv.Object
	width     float64
	depth     float64
	boxes     []*Box
	balls     []*Ball
	templates map[string]Template
	impacts   []Impact
	clock     float64
}

// NewWorld builds a world from an arena. The "ball" template is registered
// from conf.
func NewWorld(arena *leveldata.Arena, conf config.SimConfig, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	cell := conf.CellSize * int(resolvScale)
	w := &World{
		conf:      conf,
		log:       log,
		width:     arena.Width,
		depth:     arena.Depth,
		space:     resolv.NewSpace(int((arena.Width+1)*resolvScale), int((arena.Depth+1)*resolvScale), cell, cell),
		templates: map[string]Template{},
	}
	w.RegisterTemplate("ball", Template{Radius: conf.BallRadius, Mass: conf.BallMass})

	step := conf.RaySampleStep * resolvScale
	w.probe = resolv.NewObject(0, 0, step, step, tags.ResolvProbe)
	w.probe.SetShape(resolv.NewRectangle(0, 0, step, step))
	w.space.Add(w.probe)

	for _, s := range arena.Solids {
		w.boxes = append(w.boxes, newBox(w.space, s))
	}

	log.Debug("sim world created",
		zap.String("arena", arena.Name),
		zap.Int("boxes", len(w.boxes)),
		zap.Float64("width", w.width),
		zap.Float64("depth", w.depth),
	)
	return w
}

// RegisterTemplate adds or replaces a ball template.
func (w *World) RegisterTemplate(name string, t Template) {
	w.templates[name] = t
}

// Instantiate implements host.World. Unknown templates return nil.
func (w *World) Instantiate(template string, pos mgl64.Vec3, rot mgl64.Quat) host.Object {
	t, ok := w.templates[template]
	if !ok {
		w.log.Warn("unknown template", zap.String("template", template))
		return nil
	}

	b := &Ball{
		ID:       uuid.New(),
		Template: template,
		Radius:   t.Radius,
		world:    w,
		pos:      pos,
		rot:      rot,
		mass:     t.Mass,
		touched:  map[*Box]struct{}{},
	}
	d := 2 * t.Radius * resolvScale
	b.obj = resolv.NewObject(0, 0, d, d, tags.ResolvBall)
	b.obj.SetShape(resolv.NewRectangle(0, 0, d, d))
	b.obj.Data = b
	w.space.Add(b.obj)
	b.sync()

	w.balls = append(w.balls, b)
	return b
}

// Step advances swaying boxes and free balls by dt seconds.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.clock += dt

	for _, b := range w.boxes {
		b.step(dt)
	}

	live := w.balls[:0]
	for _, b := range w.balls {
		if b.step(dt) {
			live = append(live, b)
			continue
		}
		w.space.Remove(b.obj)
		w.log.Debug("ball expired", zap.Stringer("ball", b.ID), zap.Int("bounces", b.Bounces))
	}
	for i := len(live); i < len(w.balls); i++ {
		w.balls[i] = nil
	}
	w.balls = live
}

// DrainImpacts returns the impacts recorded since the last call.
func (w *World) DrainImpacts() []Impact {
	out := w.impacts
	w.impacts = nil
	return out
}

func (w *World) Balls() []*Ball { return w.balls }
func (w *World) Boxes() []*Box  { return w.boxes }

// Size returns the arena extent along X and Z.
func (w *World) Size() (float64, float64) { return w.width, w.depth }

// Clock returns the simulated time in seconds.
func (w *World) Clock() float64 { return w.clock }

func (w *World) recordImpact(b *Ball, box *Box, p mgl64.Vec3) {
	box.Hits++
	w.impacts = append(w.impacts, Impact{
		Ball:   b.ID,
		Box:    box.ID,
		Target: box.Target,
		Point:  p,
		Time:   w.clock,
	})
	w.log.Debug("ball impact",
		zap.Stringer("ball", b.ID),
		zap.Stringer("box", box.ID),
		zap.Bool("target", box.Target),
	)
}
