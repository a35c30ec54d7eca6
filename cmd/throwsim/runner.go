package main

import (
	cfg "github.com/automoto/throwball/config"
	"github.com/automoto/throwball/components"
	"github.com/automoto/throwball/scenes"
	"github.com/automoto/throwball/shared/leveldata"
	"github.com/automoto/throwball/sim"
	"go.uber.org/zap"
)

// Result tallies one scripted run.
type Result struct {
	Run        int
	Frames     int
	Charges    int
	Throws     int
	Aborts     int
	Respawns   int
	Impacts    int
	TargetHits int
	MaxForce   float64
	SimTime    float64
}

// Runner builds independent sessions sharing an arena and a script.
type Runner struct {
	Arena  *leveldata.Arena
	Script *Script
	Look   cfg.LookConfig
	Throw  cfg.ThrowConfig
	Hand   cfg.HandConfig
	Sim    cfg.SimConfig
	Settle float64 // seconds simulated without input after the script
	Log    *zap.Logger
}

// Session is one run in progress. It is not safe for concurrent use.
type Session struct {
	world  *sim.World
	scene  *scenes.ThrowingScene
	frames []Frame
	next   int
	settle int
	dt     float64
	result Result
}

func (r *Runner) NewSession(id int) *Session {
	log := r.Log.With(zap.Int("run", id))
	world := sim.NewWorld(r.Arena, r.Sim, log)
	rig := sim.NewRigAtSpawn(r.Arena.Spawns[id%len(r.Arena.Spawns)], r.Sim)

	scene := scenes.NewThrowingScene(world, rig, rig.Hand(),
		scenes.WithLogger(log),
		scenes.WithLookConfig(r.Look),
		scenes.WithThrowConfig(r.Throw),
		scenes.WithHandConfig(r.Hand),
	)

	dt := 1 / float64(r.Sim.TickRate)
	return &Session{
		world:  world,
		scene:  scene,
		frames: r.Script.Expand(dt),
		settle: int(r.Settle / dt),
		dt:     dt,
		result: Result{Run: id},
	}
}

// Run executes a session to completion.
func (r *Runner) Run(id int) Result {
	s := r.NewSession(id)
	for s.Step() {
	}
	return s.Result()
}

// Step advances one frame. It returns false once the script and the settle
// time are exhausted.
func (s *Session) Step() bool {
	var f Frame
	switch {
	case s.next < len(s.frames):
		f = s.frames[s.next]
	case s.next < len(s.frames)+s.settle:
		f = Frame{DT: s.dt}
	default:
		return false
	}
	s.next++

	snap := s.scene.Advance(f.DT, f.Input())
	s.world.Step(f.DT)
	s.tally(snap)
	return true
}

func (s *Session) tally(snap scenes.Snapshot) {
	s.result.Frames++
	for _, ev := range snap.Events {
		switch ev.Kind {
		case components.EventChargeStarted:
			s.result.Charges++
		case components.EventThrown:
			s.result.Throws++
			s.result.MaxForce = max(s.result.MaxForce, ev.Force)
		case components.EventAborted:
			s.result.Aborts++
		case components.EventRespawned:
			s.result.Respawns++
		}
	}
	for _, imp := range s.world.DrainImpacts() {
		s.result.Impacts++
		if imp.Target {
			s.result.TargetHits++
		}
	}
	s.result.SimTime = s.world.Clock()
}

func (s *Session) Result() Result { return s.result }
