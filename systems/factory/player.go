package factory

import (
	"github.com/automoto/throwball/archetypes"
	"github.com/automoto/throwball/components"
	"github.com/automoto/throwball/host"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player entity. The hand rest pose is the anchor's
// local position at creation time.
func CreatePlayer(ecs *ecs.ECS, anchor host.Anchor, tuning components.TuningData) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Look.SetValue(player, components.LookData{})
	components.Throw.SetValue(player, components.ThrowData{})
	components.Tuning.SetValue(player, tuning)

	hand := components.HandData{Anchor: anchor}
	if anchor != nil {
		hand.Rest = anchor.LocalPosition()
	}
	components.Hand.SetValue(player, hand)

	return player
}
