package scenes

import (
	"math"
	"math/rand"
	"testing"

	cfg "github.com/automoto/throwball/config"
	"github.com/automoto/throwball/components"
	"github.com/automoto/throwball/host"
	"github.com/automoto/throwball/shared/throwfsm"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeBody struct {
	kinematic bool
	impulses  []mgl64.Vec3
}

func (b *fakeBody) SetKinematic(k bool)          { b.kinematic = k }
func (b *fakeBody) AddImpulse(impulse mgl64.Vec3) { b.impulses = append(b.impulses, impulse) }

type fakeObject struct {
	pos      mgl64.Vec3
	body     *fakeBody
	parent   host.Anchor
	detached bool
}

func (o *fakeObject) Body() host.RigidBody {
	if o.body == nil {
		return nil
	}
	return o.body
}
func (o *fakeObject) SetParent(a host.Anchor) { o.parent = a }
func (o *fakeObject) Detach()                 { o.parent = nil; o.detached = true }

type fakeWorld struct {
	hit      *mgl64.Vec3
	noBody   bool
	failNext int // Instantiate calls that return nil
	rays     []host.Ray
	spawned  []*fakeObject
}

func (w *fakeWorld) Raycast(r host.Ray) (mgl64.Vec3, bool) {
	w.rays = append(w.rays, r)
	if w.hit != nil {
		return *w.hit, true
	}
	return mgl64.Vec3{}, false
}

func (w *fakeWorld) Instantiate(template string, pos mgl64.Vec3, rot mgl64.Quat) host.Object {
	if w.failNext > 0 {
		w.failNext--
		return nil
	}
	o := &fakeObject{pos: pos}
	if !w.noBody {
		o.body = &fakeBody{}
	}
	w.spawned = append(w.spawned, o)
	return o
}

type fakeAnchor struct {
	origin mgl64.Vec3
	local  mgl64.Vec3
}

func (a *fakeAnchor) LocalPosition() mgl64.Vec3     { return a.local }
func (a *fakeAnchor) SetLocalPosition(p mgl64.Vec3) { a.local = p }
func (a *fakeAnchor) WorldPosition() mgl64.Vec3     { return a.origin.Add(a.local) }

type fakeCamera struct {
	rot     mgl64.Quat
	ray     host.Ray
	rotated int
}

func (c *fakeCamera) SetLocalRotation(q mgl64.Quat) { c.rot = q; c.rotated++ }
func (c *fakeCamera) CenterRay() host.Ray           { return c.ray }

var (
	none    = Input{}
	press   = Input{Throw: components.ButtonState{Pressed: true, JustPressed: true}}
	hold    = Input{Throw: components.ButtonState{Pressed: true}}
	release = Input{Throw: components.ButtonState{JustReleased: true}}
)

type rig struct {
	world  *fakeWorld
	camera *fakeCamera
	anchor *fakeAnchor
	scene  *ThrowingScene
}

func newRig(opts ...Option) *rig {
	eye := mgl64.Vec3{0, 1.6, 0}
	r := &rig{
		world:  &fakeWorld{},
		camera: &fakeCamera{ray: host.Ray{Origin: eye, Direction: mgl64.Vec3{0, 0, 1}}},
		anchor: &fakeAnchor{origin: eye, local: mgl64.Vec3{0.35, -0.3, 0.6}},
	}
	opts = append([]Option{
		WithLookConfig(cfg.DefaultLook()),
		WithThrowConfig(cfg.DefaultThrow()),
		WithHandConfig(cfg.DefaultHand()),
	}, opts...)
	r.scene = NewThrowingScene(r.world, r.camera, r.anchor, opts...)
	return r
}

func findEvent(events []components.ThrowEvent, kind components.ThrowEventKind) (components.ThrowEvent, bool) {
	for _, ev := range events {
		if ev.Kind == kind {
			return ev, true
		}
	}
	return components.ThrowEvent{}, false
}

func TestInitialBallIsHeldKinematic(t *testing.T) {
	r := newRig()
	snap := r.scene.Advance(1.0/60, none)

	if !snap.Holding || snap.ThrowState != throwfsm.Idle {
		t.Fatalf("expected idle with a held ball, got %+v", snap)
	}
	if len(r.world.spawned) != 1 {
		t.Fatalf("spawned %d balls, want 1", len(r.world.spawned))
	}
	ball := r.world.spawned[0]
	if !ball.body.kinematic {
		t.Errorf("held ball must be kinematic")
	}
	if ball.parent != r.anchor {
		t.Errorf("held ball must be parented to the hand anchor")
	}
	if !near(ball.pos, r.anchor.WorldPosition(), 1e-9) {
		t.Errorf("ball spawned at %v, want anchor %v", ball.pos, r.anchor.WorldPosition())
	}
}

func TestThrowAtMinChargeTowardsHit(t *testing.T) {
	r := newRig()
	hit := mgl64.Vec3{0, 1.6, 10}
	r.world.hit = &hit

	th := cfg.DefaultThrow()
	r.scene.Advance(th.MinChargeTime, press)
	snap := r.scene.Advance(1.0/60, release)

	if snap.ThrowState != throwfsm.Cooldown {
		t.Fatalf("state after throw = %v, want cooldown", snap.ThrowState)
	}
	if snap.Holding {
		t.Fatalf("ball still held after throw")
	}
	if snap.CooldownRemaining != th.ThrowCooldown {
		t.Errorf("cooldown = %v, want %v", snap.CooldownRemaining, th.ThrowCooldown)
	}

	ball := r.world.spawned[0]
	if !ball.detached || ball.body.kinematic {
		t.Errorf("thrown ball must be detached and dynamic: %+v", ball)
	}
	if len(ball.body.impulses) != 1 {
		t.Fatalf("impulses = %d, want 1", len(ball.body.impulses))
	}

	impulse := ball.body.impulses[0]
	wantForce := th.MinLaunchForce + (th.MaxLaunchForce-th.MinLaunchForce)*(th.MinChargeTime/th.MaxChargeTime)
	if math.Abs(impulse.Len()-wantForce) > 1e-9 {
		t.Errorf("impulse magnitude = %v, want %v", impulse.Len(), wantForce)
	}
	wantDir := hit.Sub(r.anchor.WorldPosition()).Normalize()
	if !near(impulse.Normalize(), wantDir, 1e-9) {
		t.Errorf("impulse direction = %v, want %v", impulse.Normalize(), wantDir)
	}

	ev, ok := findEvent(snap.Events, components.EventThrown)
	if !ok {
		t.Fatalf("no thrown event in %+v", snap.Events)
	}
	if !ev.Hit || !near(ev.Target, hit, 1e-9) {
		t.Errorf("thrown event target = %v hit %v", ev.Target, ev.Hit)
	}
}

func TestThrowMissAimsFarAlongCameraRay(t *testing.T) {
	r := newRig()

	r.scene.Advance(0.5, press)
	snap := r.scene.Advance(1.0/60, release)

	ev, ok := findEvent(snap.Events, components.EventThrown)
	if !ok {
		t.Fatalf("expected a throw")
	}
	if ev.Hit {
		t.Errorf("miss reported as hit")
	}
	want := r.camera.ray.Origin.Add(r.camera.ray.Direction.Mul(100))
	if !near(ev.Target, want, 1e-9) {
		t.Errorf("miss target = %v, want %v", ev.Target, want)
	}
	wantDir := want.Sub(r.anchor.WorldPosition()).Normalize()
	got := r.world.spawned[0].body.impulses[0].Normalize()
	if !near(got, wantDir, 1e-9) {
		t.Errorf("direction = %v, want %v", got, wantDir)
	}
	if len(r.world.rays) != 1 || r.world.rays[0] != r.camera.ray {
		t.Errorf("raycast should use the camera center ray, got %v", r.world.rays)
	}
}

func TestReleaseBelowThresholdKeepsBall(t *testing.T) {
	r := newRig()

	r.scene.Advance(0.02, press)
	r.scene.Advance(0.02, hold)
	snap := r.scene.Advance(0.02, release)

	if snap.ThrowState != throwfsm.Idle || !snap.Holding {
		t.Fatalf("abort should leave an idle held ball: %+v", snap)
	}
	if len(r.world.spawned) != 1 {
		t.Errorf("abort spawned a new ball")
	}
	ball := r.world.spawned[0]
	if len(ball.body.impulses) != 0 || ball.detached {
		t.Errorf("aborted release touched the ball: %+v", ball)
	}
	if _, ok := findEvent(snap.Events, components.EventAborted); !ok {
		t.Errorf("expected an aborted event, got %+v", snap.Events)
	}

	// The same ball can still be thrown.
	r.scene.Advance(0.5, press)
	r.scene.Advance(0.02, release)
	if len(ball.body.impulses) != 1 {
		t.Errorf("retry throw impulses = %d, want 1", len(ball.body.impulses))
	}
}

func TestSingleCooldownThenRespawn(t *testing.T) {
	r := newRig()
	const dt = 0.0625

	r.scene.Advance(0.5, press)
	r.scene.Advance(dt, release)

	respawns, frames := 0, 0
	prev := math.Inf(1)
	for {
		snap := r.scene.Advance(dt, none)
		frames++
		if snap.CooldownRemaining > prev {
			t.Fatalf("cooldown increased")
		}
		prev = snap.CooldownRemaining
		if _, ok := findEvent(snap.Events, components.EventRespawned); ok {
			respawns++
		}
		if snap.Holding {
			break
		}
		if frames > 100 {
			t.Fatalf("ball never respawned")
		}
	}
	if respawns != 1 || len(r.world.spawned) != 2 {
		t.Errorf("respawns = %d, spawned = %d", respawns, len(r.world.spawned))
	}
	if frames != 16 {
		t.Errorf("respawn after %d frames, want 16", frames)
	}
	if !r.world.spawned[1].body.kinematic || r.world.spawned[1].parent != r.anchor {
		t.Errorf("respawned ball is not held")
	}
}

func TestFailedRespawnIsRetried(t *testing.T) {
	r := newRig()
	const dt = 0.0625

	r.scene.Advance(0.5, press)
	r.scene.Advance(dt, release)

	// The first attempt after the cooldown fails.
	r.world.failNext = 1
	var respawned, frames int
	for !r.scene.Snapshot().Holding {
		snap := r.scene.Advance(dt, none)
		if _, ok := findEvent(snap.Events, components.EventRespawned); ok {
			respawned++
		}
		if frames++; frames > 100 {
			t.Fatalf("ball never came back, state %v", snap.ThrowState)
		}
	}
	if respawned != 1 || len(r.world.spawned) != 2 {
		t.Errorf("respawned %d, spawned %d", respawned, len(r.world.spawned))
	}
	if r.world.failNext != 0 {
		t.Errorf("failing spawn was never attempted")
	}

	r.scene.Advance(0.5, press)
	snap := r.scene.Advance(dt, release)
	if _, ok := findEvent(snap.Events, components.EventThrown); !ok {
		t.Errorf("no throw after the retried spawn: %+v", snap.Events)
	}
}

func TestBallLostWhileHeldIsReplaced(t *testing.T) {
	r := newRig()
	r.scene.Snapshot()
	r.world.failNext = 1
	r.scene.ecs.World.Remove(components.Throw.Get(r.scene.player).Held.Entity())

	if snap := r.scene.Advance(0.01, none); snap.Holding {
		t.Fatalf("spawn should fail on the first frame")
	}
	snap := r.scene.Advance(0.01, none)
	if _, ok := findEvent(snap.Events, components.EventRespawned); !ok || !snap.Holding {
		t.Errorf("lost ball not replaced: %+v", snap)
	}
}

func TestReleaseWithoutBallIsNoop(t *testing.T) {
	r := newRig()
	r.scene.Advance(0.5, press)
	r.scene.Advance(0.02, release)

	before := r.scene.Snapshot()
	snap := r.scene.Advance(0, release)
	if snap.ThrowState != before.ThrowState || snap.CooldownRemaining != before.CooldownRemaining {
		t.Errorf("release during cooldown changed state: %+v -> %+v", before, snap)
	}
	if len(snap.Events) != 0 {
		t.Errorf("unexpected events %+v", snap.Events)
	}
	if n := len(r.world.spawned[0].body.impulses); n != 1 {
		t.Errorf("impulses = %d, want 1", n)
	}

	// Press during cooldown does not charge either.
	if snap := r.scene.Advance(0.01, press); snap.ThrowState != throwfsm.Cooldown {
		t.Errorf("press during cooldown: state %v", snap.ThrowState)
	}
}

func TestLookAnglesStayClamped(t *testing.T) {
	r := newRig()
	look := cfg.DefaultLook()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		in := Input{
			LookDX: (rng.Float64()*2 - 1) * 1e4,
			LookDY: (rng.Float64()*2 - 1) * 1e4,
		}
		snap := r.scene.Advance(rng.Float64()*0.1, in)
		if math.Abs(snap.Look.Pitch) > look.MaxPitch || math.Abs(snap.Look.Yaw) > look.MaxYaw {
			t.Fatalf("frame %d: pitch %v yaw %v outside limits", i, snap.Look.Pitch, snap.Look.Yaw)
		}
		if math.Abs(snap.Look.SmoothPitch) > look.MaxPitch+1e-9 || math.Abs(snap.Look.SmoothYaw) > look.MaxYaw+1e-9 {
			t.Fatalf("frame %d: smoothed angles escaped limits", i)
		}
	}
	if r.camera.rotated != 2000 {
		t.Errorf("camera rotated %d times, want every frame", r.camera.rotated)
	}
}

func TestLookConvergesAndDrivesCamera(t *testing.T) {
	r := newRig()
	// +dx turns right, +dy looks down (pitch decreases).
	snap := r.scene.Advance(0.1, Input{LookDX: 3, LookDY: -2})
	if math.Abs(snap.Look.Yaw-30) > 1e-9 || math.Abs(snap.Look.Pitch-20) > 1e-9 {
		t.Fatalf("raw angles = %v/%v, want 30/20", snap.Look.Yaw, snap.Look.Pitch)
	}
	for i := 0; i < 600; i++ {
		snap = r.scene.Advance(1.0/60, none)
	}
	if math.Abs(snap.Look.SmoothYaw-30) > 1e-6 || math.Abs(snap.Look.SmoothPitch-20) > 1e-6 {
		t.Fatalf("smoothed angles = %v/%v", snap.Look.SmoothYaw, snap.Look.SmoothPitch)
	}

	want := mgl64.QuatRotate(mgl64.DegToRad(30), mgl64.Vec3{0, 1, 0}).
		Mul(mgl64.QuatRotate(mgl64.DegToRad(20), mgl64.Vec3{1, 0, 0}))
	got := r.camera.rot.Rotate(mgl64.Vec3{0, 0, 1})
	if !near(got, want.Rotate(mgl64.Vec3{0, 0, 1}), 1e-6) {
		t.Errorf("camera forward = %v, want %v", got, want.Rotate(mgl64.Vec3{0, 0, 1}))
	}
}

func TestHandDrawbackAndReturn(t *testing.T) {
	r := newRig()
	rest := r.anchor.local
	hand := cfg.DefaultHand()

	r.scene.Advance(1.0/60, press)
	var snap Snapshot
	for i := 0; i < 300; i++ {
		snap = r.scene.Advance(1.0/60, hold)
	}
	if snap.ChargeRatio != 1 {
		t.Fatalf("charge ratio = %v, want saturated", snap.ChargeRatio)
	}
	pulled := rest.Sub(mgl64.Vec3{0, 0, hand.MaxDrawback})
	if !near(snap.HandLocal, pulled, 1e-6) {
		t.Fatalf("hand = %v, want %v", snap.HandLocal, pulled)
	}

	r.scene.Advance(1.0/60, release)
	for i := 0; i < 300; i++ {
		snap = r.scene.Advance(1.0/60, none)
	}
	if !near(snap.HandLocal, rest, 1e-6) {
		t.Errorf("hand did not return to rest: %v", snap.HandLocal)
	}
}

func TestMissingCollaboratorsAreTolerated(t *testing.T) {
	s := NewThrowingScene(nil, nil, nil)
	for _, in := range []Input{none, press, hold, release, none} {
		snap := s.Advance(0.5, in)
		if snap.Holding || snap.ThrowState != throwfsm.Idle {
			t.Fatalf("no world means nothing to hold: %+v", snap)
		}
	}

	// A ball without a rigid body is still detached on throw.
	r := newRig()
	r.world.noBody = true
	r.scene.Advance(0.5, press)
	snap := r.scene.Advance(0.02, release)
	if snap.ThrowState != throwfsm.Cooldown || !r.world.spawned[0].detached {
		t.Errorf("bodiless throw: %+v", snap)
	}
}

func TestAbortCooldownOption(t *testing.T) {
	th := cfg.DefaultThrow()
	th.AbortCooldown = 0.25
	r := newRig(WithThrowConfig(th))

	r.scene.Advance(0.01, press)
	r.scene.Advance(0.01, release)
	if snap := r.scene.Advance(0.1, press); snap.ThrowState != throwfsm.Idle {
		t.Fatalf("press during abort lockout charged")
	}
	r.scene.Advance(0.2, release)
	if snap := r.scene.Advance(0.01, press); snap.ThrowState != throwfsm.Charging || !snap.Holding {
		t.Errorf("press after lockout: %+v", snap)
	}
}

func TestThrowIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := newRig(WithLogger(zap.New(core)))

	r.scene.Advance(2, press)
	r.scene.Advance(0.01, release)

	entries := logs.FilterMessage("ball thrown").All()
	if len(entries) != 1 {
		t.Fatalf("ball thrown logged %d times", len(entries))
	}
	if force := entries[0].ContextMap()["force"]; force != cfg.DefaultThrow().MaxLaunchForce {
		t.Errorf("logged force = %v", force)
	}
}

// near compares by distance; mgl64's ApproxEqual is relative and rejects tiny
// residues next to an exact zero.
func near(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() < eps
}
