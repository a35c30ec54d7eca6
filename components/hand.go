package components

import (
	"github.com/automoto/throwball/host"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type HandData struct {
	Anchor host.Anchor // may be nil
	Rest   mgl64.Vec3  // anchor local position captured at setup
}

var Hand = donburi.NewComponentType[HandData]()
