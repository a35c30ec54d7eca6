package components

import (
	"github.com/automoto/throwball/shared/throwfsm"
	"github.com/yohamta/donburi"
)

// ButtonState represents the temporal state of the throw button.
type ButtonState = throwfsm.Button

// FrameData carries the host's per-frame feed into the systems.
type FrameData struct {
	DeltaTime float64
	LookDX    float64 // raw mouse X delta
	LookDY    float64 // raw mouse Y delta
	Throw     ButtonState

	// Events is cleared at the start of every frame.
	Events []ThrowEvent
}

var Frame = donburi.NewComponentType[FrameData]()
