// Package throwfsm is the charge/release/cooldown state machine of the held ball.
// It has no dependencies on donburi or the host; callers apply the returned
// Outcome to the world.
package throwfsm

import "github.com/automoto/throwball/shared/gamemath"

type State int

const (
	Idle State = iota
	Charging
	Cooldown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Charging:
		return "charging"
	case Cooldown:
		return "cooldown"
	}
	return "unknown"
}

// Button is the per-frame state of the throw input.
type Button struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// Params are the timing values the machine needs.
type Params struct {
	MinChargeTime float64
	MaxChargeTime float64
	ThrowCooldown float64
	AbortCooldown float64
}

// Outcome reports what happened during one Step.
type Outcome struct {
	Respawn       bool    // cooldown expired, a new ball must be spawned
	ChargeStarted bool    // Idle → Charging
	Thrown        bool    // release above threshold, the held ball must be launched
	Aborted       bool    // release below threshold, the ball stays held
	ChargeElapsed float64 // charge at the moment of release when Thrown or Aborted
}

// Machine holds the throw state. The zero value is Idle with nothing charged.
type Machine struct {
	State             State
	ChargeElapsed     float64
	CooldownRemaining float64
	// LockoutRemaining blocks new charges after an aborted release.
	LockoutRemaining float64
}

// ChargeRatio returns the charge fraction in [0, 1].
func (m *Machine) ChargeRatio(maxChargeTime float64) float64 {
	return gamemath.ChargeRatio(m.ChargeElapsed, maxChargeTime)
}

// Step advances the machine by dt. holding reports whether a ball is
// currently held; it gates the press and release transitions.
func (m *Machine) Step(dt float64, b Button, holding bool, p Params) Outcome {
	respawn := m.Tick(dt)
	out := m.Input(dt, b, holding, p)
	out.Respawn = respawn
	return out
}

// Tick runs the cooldown and lockout timers. It returns true on the frame the
// cooldown expires; the caller must spawn a new ball before calling Input.
func (m *Machine) Tick(dt float64) bool {
	respawn := false
	if m.State == Cooldown {
		m.CooldownRemaining -= dt
		if m.CooldownRemaining <= 0 {
			m.CooldownRemaining = 0
			m.State = Idle
			respawn = true
		}
	}

	if m.LockoutRemaining > 0 {
		m.LockoutRemaining -= dt
		if m.LockoutRemaining < 0 {
			m.LockoutRemaining = 0
		}
	}
	return respawn
}

// Input applies the throw button for this frame.
func (m *Machine) Input(dt float64, b Button, holding bool, p Params) Outcome {
	var out Outcome

	// Press: begin charging
	if b.JustPressed && m.State == Idle && holding && m.LockoutRemaining <= 0 {
		m.State = Charging
		m.ChargeElapsed = 0
		out.ChargeStarted = true
	}

	// While held: accumulate charge, saturating at MaxChargeTime
	if m.State == Charging && b.Pressed {
		m.ChargeElapsed += dt
		if m.ChargeElapsed > p.MaxChargeTime {
			m.ChargeElapsed = p.MaxChargeTime
		}
	}

	// Release: throw or abort
	if m.State == Charging && b.JustReleased {
		out.ChargeElapsed = m.ChargeElapsed
		if !holding {
			// Ball vanished while charging; nothing to throw.
			m.reset()
			return out
		}
		if m.ChargeElapsed >= p.MinChargeTime {
			out.Thrown = true
			m.State = Cooldown
			m.CooldownRemaining = p.ThrowCooldown
		} else {
			out.Aborted = true
			m.State = Idle
			m.LockoutRemaining = p.AbortCooldown
		}
		m.ChargeElapsed = 0
	}

	return out
}

func (m *Machine) reset() {
	m.State = Idle
	m.ChargeElapsed = 0
}
