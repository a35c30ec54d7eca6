package main

import (
	"fmt"
	"image/color"

	"github.com/automoto/throwball/components"
	cfg "github.com/automoto/throwball/config"
	"github.com/automoto/throwball/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	mapScale     = 16.0 // pixels per world unit
	mapMargin    = 24.0
	aimLength    = 3.0 // world units
	hudBarWidth  = 160
	hudBarHeight = 10
)

var (
	colorFloor  = color.RGBA{30, 34, 40, 255}
	colorSolid  = color.RGBA{110, 110, 120, 255}
	colorTarget = color.RGBA{220, 60, 60, 255}
	colorBall   = color.RGBA{240, 240, 240, 255}
	colorHeld   = color.RGBA{250, 200, 40, 255}
	colorPlayer = color.RGBA{60, 160, 240, 255}
	colorBarBg  = color.RGBA{40, 40, 40, 255}
	colorCharge = color.RGBA{40, 220, 40, 255}
)

// Draw renders the arena top-down: X to the right, Z downward.
func (g *Game) Draw(screen *ebiten.Image) {
	w, d := g.world.Size()
	vector.DrawFilledRect(screen, px(0), px(0), float32(w*mapScale), float32(d*mapScale), colorFloor, false)

	for _, box := range g.world.Boxes() {
		lo, hi := box.Bounds()
		c := colorSolid
		if box.Target {
			c = colorTarget
		}
		vector.DrawFilledRect(screen,
			px(lo.X()), px(lo.Z()),
			float32((hi.X()-lo.X())*mapScale), float32((hi.Z()-lo.Z())*mapScale),
			c, false)
	}

	radius := float32(max(3, cfg.Sim.BallRadius*mapScale))
	for _, ball := range g.world.Balls() {
		p := ball.Position()
		c := colorBall
		if ball.Held() {
			c = colorHeld
		}
		vector.DrawFilledCircle(screen, px(p.X()), px(p.Z()), radius, c, true)
	}

	eye := g.rig.Eye
	dir := g.rig.CenterRay().Direction
	vector.DrawFilledCircle(screen, px(eye.X()), px(eye.Z()), 5, colorPlayer, true)
	vector.StrokeLine(screen,
		px(eye.X()), px(eye.Z()),
		px(eye.X()+dir.X()*aimLength), px(eye.Z()+dir.Z()*aimLength),
		2, colorPlayer, true)

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.last
	x := float32(screenWidth - hudBarWidth - mapMargin)
	y := float32(mapMargin)

	// Charge bar
	vector.DrawFilledRect(screen, x, y, hudBarWidth, hudBarHeight, colorBarBg, false)
	vector.DrawFilledRect(screen, x, y, hudBarWidth*float32(s.ChargeRatio), hudBarHeight, colorCharge, false)

	msg := fmt.Sprintf("%s\ncharge %.2fs\ncooldown %.2fs\npitch %.1f yaw %.1f\nsensitivity %.0f\nthrows %d hits %d",
		s.ThrowState, s.ChargeElapsed, s.CooldownRemaining,
		s.Look.SmoothPitch, s.Look.SmoothYaw,
		g.look.MouseSensitivity, g.throws, g.hits)
	ebitenutil.DebugPrintAt(screen, msg, int(x), int(y)+hudBarHeight+6)

	help := "LMB/Space throw   +/- sensitivity   Tab cursor   Esc quit"
	ebitenutil.DebugPrintAt(screen, help, int(mapMargin), screenHeight-20)
}

func countThrows(s scenes.Snapshot) int {
	n := 0
	for _, ev := range s.Events {
		if ev.Kind == components.EventThrown {
			n++
		}
	}
	return n
}

func px(v float64) float32 { return float32(mapMargin + v*mapScale) }
