package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Ball   = donburi.NewTag().SetName("Ball")
	Host   = donburi.NewTag().SetName("Host")
	Frame  = donburi.NewTag().SetName("Frame")
)

// Resolv tags used by the reference host for arena collision
const (
	ResolvSolid  = "solid"
	ResolvTarget = "target"
	ResolvProbe  = "probe"
	ResolvBall   = "ball"
)
