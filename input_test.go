package main

import (
	"testing"

	"github.com/automoto/throwball/components"
)

func TestActionEdges(t *testing.T) {
	var b ActionBuffer
	frames := []struct {
		pressed bool
		want    components.ButtonState
	}{
		{true, components.ButtonState{Pressed: true, JustPressed: true}},
		{true, components.ButtonState{Pressed: true}},
		{false, components.ButtonState{JustReleased: true}},
		{false, components.ButtonState{}},
	}
	for i, f := range frames {
		b.Previous = b.Current
		b.Current[ActionThrow] = f.pressed
		if got := b.Action(ActionThrow); got != f.want {
			t.Errorf("frame %d: %+v, want %+v", i, got, f.want)
		}
	}
}

func TestCursorTracker(t *testing.T) {
	var c cursorTracker
	if dx, dy := c.Delta(100, 50); dx != 0 || dy != 0 {
		t.Errorf("first delta = %v,%v, want 0,0", dx, dy)
	}
	if dx, dy := c.Delta(104, 47); dx != 4 || dy != -3 {
		t.Errorf("delta = %v,%v, want 4,-3", dx, dy)
	}
	c.Reset()
	if dx, dy := c.Delta(0, 0); dx != 0 || dy != 0 {
		t.Errorf("delta after reset = %v,%v", dx, dy)
	}
}
