package components

import (
	"github.com/automoto/throwball/shared/throwfsm"
	"github.com/yohamta/donburi"
)

type ThrowData struct {
	Machine throwfsm.Machine
	Held    *donburi.Entry // HeldBall entity, nil while cooling down or when a spawn failed
}

// Holding reports whether a live ball entity is held.
func (t *ThrowData) Holding() bool {
	return t.Held != nil && t.Held.Valid()
}

var Throw = donburi.NewComponentType[ThrowData]()
