package factory

import (
	"github.com/automoto/throwball/archetypes"
	"github.com/automoto/throwball/components"
	"github.com/automoto/throwball/host"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

func CreateHost(ecs *ecs.ECS, world host.World, camera host.Camera, log *zap.Logger) *donburi.Entry {
	e := archetypes.Host.Spawn(ecs)
	if log == nil {
		log = zap.NewNop()
	}
	components.Host.SetValue(e, components.HostData{
		World:  world,
		Camera: camera,
		Log:    log,
	})
	return e
}

func CreateFrame(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Frame.Spawn(ecs)
	components.Frame.SetValue(e, components.FrameData{})
	return e
}
