package components

import (
	"github.com/automoto/throwball/host"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// HostData holds the engine collaborators shared by all systems.
// World and Camera may be nil.
type HostData struct {
	World  host.World
	Camera host.Camera
	Log    *zap.Logger
}

var Host = donburi.NewComponentType[HostData]()
