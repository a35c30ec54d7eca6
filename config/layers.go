package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer used by the controller.
const Default ecs.LayerID = 0
