package components

import (
	cfg "github.com/automoto/throwball/config"
	"github.com/automoto/throwball/shared/throwfsm"
	"github.com/yohamta/donburi"
)

// TuningData is the per-player copy of the controller configuration.
// Scenes running side by side can use different values.
type TuningData struct {
	Look  cfg.LookConfig
	Throw cfg.ThrowConfig
	Hand  cfg.HandConfig
}

// ThrowParams returns the timing values the throw state machine needs.
func (t *TuningData) ThrowParams() throwfsm.Params {
	return throwfsm.Params{
		MinChargeTime: t.Throw.MinChargeTime,
		MaxChargeTime: t.Throw.MaxChargeTime,
		ThrowCooldown: t.Throw.ThrowCooldown,
		AbortCooldown: t.Throw.AbortCooldown,
	}
}

var Tuning = donburi.NewComponentType[TuningData]()
