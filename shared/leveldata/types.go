// Package leveldata provides TMX arena parsing for the reference host.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// Arena holds the layout parsed from a TMX arena file, in world units.
// TMX x maps to world X and TMX y maps to world Z.
type Arena struct {
	Name   string
	Width  float64
	Depth  float64
	Solids []Solid
	Spawns []Spawn
}

// Solid is an axis-aligned box standing on the floor.
type Solid struct {
	X, Z   float64 // minimum corner
	W, D   float64 // extent along X and Z
	Height float64

	// Sway moves the box back and forth along X by this many units.
	// 0 means the box is static.
	Sway       float64
	SwayPeriod float64 // seconds for a full back-and-forth

	Target bool // counted as a target by impact reports
}

// Spawn is a player start position.
type Spawn struct {
	X, Z  float64
	Yaw   float64 // facing in degrees, 0 looks along +Z
	Index int
}
