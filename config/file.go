package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile overlays the sections present in a YAML file onto the global
// configuration. Sections absent from the file keep their current values,
// fields absent from a present section keep their defaults.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply overlays YAML-encoded configuration onto the global configuration
// and validates the result. Globals are left untouched on error.
func Apply(data []byte) error {
	f := File{
		Look:  ptr(Look),
		Throw: ptr(Throw),
		Hand:  ptr(Hand),
		Log:   ptr(Log),
		Sim:   ptr(Sim),
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	// An explicit null section decodes to nil; keep the current values.
	f.Look = coalesce(f.Look, Look)
	f.Throw = coalesce(f.Throw, Throw)
	f.Hand = coalesce(f.Hand, Hand)
	f.Log = coalesce(f.Log, Log)
	f.Sim = coalesce(f.Sim, Sim)

	if err := validate(*f.Look, *f.Throw, *f.Hand, *f.Sim); err != nil {
		return err
	}

	Look = *f.Look
	Throw = *f.Throw
	Hand = *f.Hand
	Log = *f.Log
	Sim = *f.Sim
	return nil
}

// Validate checks the global configuration for values the controller cannot run with.
func Validate() error {
	return validate(Look, Throw, Hand, Sim)
}

func validate(look LookConfig, throw ThrowConfig, hand HandConfig, sim SimConfig) error {
	var errs []error

	if look.MaxPitch < 0 || look.MaxYaw < 0 {
		errs = append(errs, fmt.Errorf("look limits must be non-negative (pitch %v, yaw %v)", look.MaxPitch, look.MaxYaw))
	}
	if look.SmoothTime < 0 {
		errs = append(errs, fmt.Errorf("look.smoothTime must be non-negative, got %v", look.SmoothTime))
	}

	if throw.MaxChargeTime <= 0 {
		errs = append(errs, fmt.Errorf("throw.maxChargeTime must be positive, got %v", throw.MaxChargeTime))
	}
	if throw.MinChargeTime < 0 || throw.MinChargeTime > throw.MaxChargeTime {
		errs = append(errs, fmt.Errorf("throw.minChargeTime %v must lie within [0, maxChargeTime %v]", throw.MinChargeTime, throw.MaxChargeTime))
	}
	if throw.MinLaunchForce < 0 || throw.MinLaunchForce > throw.MaxLaunchForce {
		errs = append(errs, fmt.Errorf("launch force range [%v, %v] is invalid", throw.MinLaunchForce, throw.MaxLaunchForce))
	}
	if throw.ThrowCooldown < 0 || throw.AbortCooldown < 0 {
		errs = append(errs, errors.New("throw cooldowns must be non-negative"))
	}
	if throw.FarAimDistance <= 0 {
		errs = append(errs, fmt.Errorf("throw.farAimDistance must be positive, got %v", throw.FarAimDistance))
	}

	if hand.MaxDrawback < 0 || hand.MoveSmooth < 0 {
		errs = append(errs, errors.New("hand drawback and smoothing must be non-negative"))
	}

	if sim.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("sim.cellSize must be positive, got %d", sim.CellSize))
	}
	if sim.RaySampleStep <= 0 {
		errs = append(errs, fmt.Errorf("sim.raySampleStep must be positive, got %v", sim.RaySampleStep))
	}
	if sim.BallMass <= 0 {
		errs = append(errs, fmt.Errorf("sim.ballMass must be positive, got %v", sim.BallMass))
	}
	if sim.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("sim.tickRate must be positive, got %d", sim.TickRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

func coalesce[T any](p *T, fallback T) *T {
	if p == nil {
		return &fallback
	}
	return p
}
