package components

import "github.com/yohamta/donburi"

// LookData is the camera orientation in degrees.
// Pitch and Yaw are the raw clamped targets; the Smooth fields chase them.
type LookData struct {
	Pitch       float64
	Yaw         float64
	SmoothPitch float64
	SmoothYaw   float64
}

var Look = donburi.NewComponentType[LookData]()
