package components

import (
	"github.com/automoto/throwball/host"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Object host.Object
}

var Projectile = donburi.NewComponentType[ProjectileData]()
