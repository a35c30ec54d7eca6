package main

import (
	"github.com/automoto/throwball/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical demo action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionThrow
	ActionSensitivityUp
	ActionSensitivityDown
	ActionReleaseCursor
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Raw cursor deltas are multiplied by this before reaching the look controller
	MouseDeltaScale float64
	// Sensitivity change per ActionSensitivityUp/Down press
	SensitivityStep float64
}

var defaultInput = InputConfig{
	MouseDeltaScale: 0.1,
	SensitivityStep: 10.0,
	Bindings: map[ActionID]InputBinding{
		ActionThrow: {
			Keys:         []ebiten.Key{ebiten.KeySpace},
			MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
		},
		ActionSensitivityUp: {
			Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd},
		},
		ActionSensitivityDown: {
			Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
		},
		ActionReleaseCursor: {
			Keys: []ebiten.Key{ebiten.KeyTab},
		},
		ActionQuit: {
			Keys: []ebiten.Key{ebiten.KeyEscape},
		},
	},
}

// ActionBuffer holds the pressed state of every action for the current and
// previous frame.
type ActionBuffer struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

// Poll swaps buffers and reads the bound keys and mouse buttons.
// Must run once per ebiten Update, before the scene advances.
func (b *ActionBuffer) Poll(conf InputConfig) {
	b.Previous = b.Current
	b.Current = [ActionCount]bool{}

	for id, binding := range conf.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				b.Current[id] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				b.Current[id] = true
			}
		}
	}
}

// Action returns the edge state of an action, derived from current vs previous frame.
func (b *ActionBuffer) Action(id ActionID) components.ButtonState {
	curr := b.Current[id]
	prev := b.Previous[id]
	return components.ButtonState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// cursorTracker turns absolute cursor positions into per-frame deltas.
type cursorTracker struct {
	x, y  int
	valid bool
}

// Delta returns the movement since the last call. The first call after a
// reset reports zero.
func (c *cursorTracker) Delta(x, y int) (float64, float64) {
	if !c.valid {
		c.x, c.y, c.valid = x, y, true
		return 0, 0
	}
	dx, dy := x-c.x, y-c.y
	c.x, c.y = x, y
	return float64(dx), float64(dy)
}

func (c *cursorTracker) Reset() { c.valid = false }
