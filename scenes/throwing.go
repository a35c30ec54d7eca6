package scenes

import (
	"sync"

	cfg "github.com/automoto/throwball/config"
	"github.com/automoto/throwball/components"
	"github.com/automoto/throwball/host"
	"github.com/automoto/throwball/logging"
	"github.com/automoto/throwball/shared/gamemath"
	"github.com/automoto/throwball/shared/throwfsm"
	"github.com/automoto/throwball/systems"
	"github.com/automoto/throwball/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Input is the host's per-frame feed.
type Input struct {
	LookDX float64
	LookDY float64
	Throw  components.ButtonState
}

// Snapshot is the controller state after one Advance.
type Snapshot struct {
	Look              components.LookData
	ThrowState        throwfsm.State
	ChargeElapsed     float64
	ChargeRatio       float64
	CooldownRemaining float64
	Holding           bool
	HandLocal         mgl64.Vec3
	Events            []components.ThrowEvent
}

// Option configures a ThrowingScene.
type Option func(*ThrowingScene)

func WithLogger(l *zap.Logger) Option {
	return func(s *ThrowingScene) {
		if l != nil {
			s.log = l
		}
	}
}

func WithLookConfig(c cfg.LookConfig) Option {
	return func(s *ThrowingScene) { s.tuning.Look = c }
}

func WithThrowConfig(c cfg.ThrowConfig) Option {
	return func(s *ThrowingScene) { s.tuning.Throw = c }
}

func WithHandConfig(c cfg.HandConfig) Option {
	return func(s *ThrowingScene) { s.tuning.Hand = c }
}

// ThrowingScene is the first-person look and throw controller. The host
// calls Advance once per frame; nothing runs between calls.
type ThrowingScene struct {
	ecs    *ecs.ECS
	world  host.World
	camera host.Camera
	anchor host.Anchor
	log    *zap.Logger
	tuning components.TuningData

	player *donburi.Entry
	frame  *donburi.Entry
	once   sync.Once
}

// NewThrowingScene creates a scene using the global configuration unless
// overridden by opts. Any collaborator may be nil.
func NewThrowingScene(world host.World, camera host.Camera, anchor host.Anchor, opts ...Option) *ThrowingScene {
	s := &ThrowingScene{
		world:  world,
		camera: camera,
		anchor: anchor,
		log:    logging.L(),
		tuning: components.TuningData{
			Look:  cfg.Look,
			Throw: cfg.Throw,
			Hand:  cfg.Hand,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Advance runs one frame. Negative or non-finite dt counts as zero.
func (s *ThrowingScene) Advance(dt float64, in Input) Snapshot {
	s.once.Do(s.configure)

	frame := components.Frame.Get(s.frame)
	frame.DeltaTime = gamemath.SanitizeDelta(dt)
	frame.LookDX = in.LookDX
	frame.LookDY = in.LookDY
	frame.Throw = in.Throw
	frame.Events = nil

	s.ecs.Update()

	return s.Snapshot()
}

// Snapshot returns the current controller state without advancing it.
func (s *ThrowingScene) Snapshot() Snapshot {
	s.once.Do(s.configure)

	look := components.Look.Get(s.player)
	throw := components.Throw.Get(s.player)
	frame := components.Frame.Get(s.frame)

	snap := Snapshot{
		Look:              *look,
		ThrowState:        throw.Machine.State,
		ChargeElapsed:     throw.Machine.ChargeElapsed,
		ChargeRatio:       throw.Machine.ChargeRatio(s.tuning.Throw.MaxChargeTime),
		CooldownRemaining: throw.Machine.CooldownRemaining,
		Holding:           throw.Holding(),
		Events:            frame.Events,
	}
	if s.anchor != nil {
		snap.HandLocal = s.anchor.LocalPosition()
	}
	return snap
}

// SetLookConfig replaces the look settings used from the next frame on.
func (s *ThrowingScene) SetLookConfig(c cfg.LookConfig) {
	s.once.Do(s.configure)
	s.tuning.Look = c
	components.Tuning.Get(s.player).Look = c
}

func (s *ThrowingScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Hand reads the state left by the previous frame, before the throw update.
	ecs.AddSystem(systems.UpdateHand)
	ecs.AddSystem(systems.UpdateThrow)
	ecs.AddSystem(systems.UpdateLook)

	s.ecs = ecs

	factory.CreateHost(s.ecs, s.world, s.camera, s.log)
	s.frame = factory.CreateFrame(s.ecs)
	s.player = factory.CreatePlayer(s.ecs, s.anchor, s.tuning)

	if factory.SpawnHeldBall(s.ecs, s.player) != nil {
		s.log.Debug("initial ball spawned", zap.String("template", s.tuning.Throw.BallTemplate))
	}
}
