package config

// LookConfig contains mouse-look configuration values
type LookConfig struct {
	MouseSensitivity float64 `yaml:"mouseSensitivity"` // degrees per second per unit of mouse delta
	MaxPitch         float64 `yaml:"maxPitch"`         // degrees, symmetric
	MaxYaw           float64 `yaml:"maxYaw"`           // degrees, symmetric
	SmoothTime       float64 `yaml:"smoothTime"`       // exponential smoothing rate, normalized to 60Hz
}

// ThrowConfig contains charge and launch configuration values
type ThrowConfig struct {
	MinChargeTime  float64 `yaml:"minChargeTime"` // seconds held before a release counts as a throw
	MaxChargeTime  float64 `yaml:"maxChargeTime"` // seconds at which force saturates
	MinLaunchForce float64 `yaml:"minLaunchForce"`
	MaxLaunchForce float64 `yaml:"maxLaunchForce"`
	ThrowCooldown  float64 `yaml:"throwCooldown"` // seconds before a new ball is spawned

	// AbortCooldown blocks new charges for this many seconds after a
	// release below MinChargeTime. The ball stays held. 0 disables it.
	AbortCooldown float64 `yaml:"abortCooldown"`

	FarAimDistance float64 `yaml:"farAimDistance"` // aim distance along the camera ray when nothing is hit
	BallTemplate   string  `yaml:"ballTemplate"`   // template name handed to the host on spawn
}

// HandConfig contains hand drawback animation values
type HandConfig struct {
	MaxDrawback float64 `yaml:"maxDrawback"` // local units pulled back at full charge
	MoveSmooth  float64 `yaml:"moveSmooth"`  // lerp rate per second
}

// LogConfig contains logger configuration
type LogConfig struct {
	Level       string `yaml:"level"`  // debug, info, warn, error
	Format      string `yaml:"format"` // json or console
	Development bool   `yaml:"development"`
}

// SimConfig contains reference host world values
type SimConfig struct {
	Gravity        float64 `yaml:"gravity"`        // units/s^2, applied along -Y
	BallMass       float64 `yaml:"ballMass"`       // impulse is divided by mass
	BallRadius     float64 `yaml:"ballRadius"`     // used for floor contact
	Restitution    float64 `yaml:"restitution"`    // floor bounce factor
	BallLifetime   float64 `yaml:"ballLifetime"`   // seconds a released ball lives
	EyeHeight      float64 `yaml:"eyeHeight"`      // camera height above the floor
	HandOffsetX    float64 `yaml:"handOffsetX"`    // hand anchor rest position in camera space
	HandOffsetY    float64 `yaml:"handOffsetY"`    //
	HandOffsetZ    float64 `yaml:"handOffsetZ"`    //
	CellSize       int     `yaml:"cellSize"`       // resolv broad-phase cell size in world units
	RaySampleStep  float64 `yaml:"raySampleStep"`  // ray march step used for broad-phase queries
	MaxRayDistance float64 `yaml:"maxRayDistance"` // raycasts beyond this report a miss
	TickRate       int     `yaml:"tickRate"`       // simulation ticks per second
}

// File mirrors the YAML layout accepted by LoadFile
type File struct {
	Look  *LookConfig  `yaml:"look"`
	Throw *ThrowConfig `yaml:"throw"`
	Hand  *HandConfig  `yaml:"hand"`
	Log   *LogConfig   `yaml:"log"`
	Sim   *SimConfig   `yaml:"sim"`
}

// Global configuration instances
var Look LookConfig
var Throw ThrowConfig
var Hand HandConfig
var Log LogConfig
var Sim SimConfig

func init() {
	Reset()
}

// Reset restores every configuration instance to its default values.
func Reset() {
	Look = DefaultLook()
	Throw = DefaultThrow()
	Hand = DefaultHand()
	Log = DefaultLog()
	Sim = DefaultSim()
}

func DefaultLook() LookConfig {
	return LookConfig{
		MouseSensitivity: 100.0,
		MaxPitch:         80.0,
		MaxYaw:           80.0,
		SmoothTime:       0.1,
	}
}

func DefaultThrow() ThrowConfig {
	return ThrowConfig{
		MinChargeTime:  0.1,
		MaxChargeTime:  2.0,
		MinLaunchForce: 5.0,
		MaxLaunchForce: 25.0,
		ThrowCooldown:  1.0,
		AbortCooldown:  0,
		FarAimDistance: 100.0,
		BallTemplate:   "ball",
	}
}

func DefaultHand() HandConfig {
	return HandConfig{
		MaxDrawback: 0.5,
		MoveSmooth:  10.0,
	}
}

func DefaultLog() LogConfig {
	return LogConfig{
		Level:       "info",
		Format:      "console",
		Development: true,
	}
}

func DefaultSim() SimConfig {
	return SimConfig{
		Gravity:        9.81,
		BallMass:       1.0,
		BallRadius:     0.15,
		Restitution:    0.4,
		BallLifetime:   8.0,
		EyeHeight:      1.6,
		HandOffsetX:    0.35,
		HandOffsetY:    -0.3,
		HandOffsetZ:    0.6,
		CellSize:       4,
		RaySampleStep:  0.5,
		MaxRayDistance: 1000.0,
		TickRate:       60,
	}
}
