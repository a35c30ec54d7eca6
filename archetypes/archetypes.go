package archetypes

import (
	"github.com/automoto/throwball/components"
	cfg "github.com/automoto/throwball/config"
	"github.com/automoto/throwball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Look,
		components.Throw,
		components.Hand,
		components.Tuning,
	)
	HeldBall = newArchetype(
		tags.Ball,
		components.Projectile,
	)
	Host = newArchetype(
		tags.Host,
		components.Host,
	)
	Frame = newArchetype(
		tags.Frame,
		components.Frame,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
