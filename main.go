// Command throwball is an interactive top-down view of the throw controller
// running against the reference sim host.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/throwball/assets"
	cfg "github.com/automoto/throwball/config"
	"github.com/automoto/throwball/logging"
	"github.com/automoto/throwball/scenes"
	"github.com/automoto/throwball/shared/leveldata"
	"github.com/automoto/throwball/sim"
	"github.com/automoto/throwball/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const (
	appName      = "throwball"
	screenWidth  = 960
	screenHeight = 720
)

type Game struct {
	world    *sim.World
	rig      *sim.Rig
	scene    *scenes.ThrowingScene
	look     cfg.LookConfig
	input    InputConfig
	actions  ActionBuffer
	cursor   cursorTracker
	captured bool
	last     scenes.Snapshot
	throws   int
	hits     int
	log      *zap.Logger
}

func NewGame(arena *leveldata.Arena, log *zap.Logger) *Game {
	world := sim.NewWorld(arena, cfg.Sim, log)
	rig := sim.NewRigAtSpawn(arena.Spawns[0], cfg.Sim)

	g := &Game{
		world: world,
		rig:   rig,
		look:  cfg.Look,
		input: defaultInput,
		log:   log,
	}
	g.scene = scenes.NewThrowingScene(world, rig, rig.Hand(),
		scenes.WithLogger(log),
		scenes.WithLookConfig(g.look),
	)
	g.setCaptured(true)
	return g
}

func (g *Game) Update() error {
	g.actions.Poll(g.input)

	if g.actions.Action(ActionQuit).JustPressed {
		return ebiten.Termination
	}
	if g.actions.Action(ActionReleaseCursor).JustPressed {
		g.setCaptured(!g.captured)
	}
	if g.actions.Action(ActionSensitivityUp).JustPressed {
		g.adjustSensitivity(g.input.SensitivityStep)
	}
	if g.actions.Action(ActionSensitivityDown).JustPressed {
		g.adjustSensitivity(-g.input.SensitivityStep)
	}

	in := scenes.Input{Throw: g.actions.Action(ActionThrow)}
	if g.captured {
		dx, dy := g.cursor.Delta(ebiten.CursorPosition())
		// Screen Y grows downward; the look controller treats positive Y as up.
		in.LookDX = dx * g.input.MouseDeltaScale
		in.LookDY = -dy * g.input.MouseDeltaScale
	}

	dt := 1 / float64(ebiten.TPS())
	g.last = g.scene.Advance(dt, in)
	g.world.Step(dt)

	g.throws += countThrows(g.last)
	for _, imp := range g.world.DrainImpacts() {
		if imp.Target {
			g.hits++
		}
		g.log.Debug("impact",
			zap.Stringer("ball", imp.Ball),
			zap.Stringer("box", imp.Box),
			zap.Bool("target", imp.Target),
		)
	}
	return nil
}

func (g *Game) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) setCaptured(captured bool) {
	g.captured = captured
	g.cursor.Reset()
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// adjustSensitivity changes the look sensitivity and persists it.
func (g *Game) adjustSensitivity(delta float64) {
	g.look.MouseSensitivity = max(g.input.SensitivityStep, g.look.MouseSensitivity+delta)
	g.scene.SetLookConfig(g.look)
	if err := systems.SaveSettings(systems.CurrentSettings(g.look)); err != nil {
		g.log.Warn("sensitivity not saved", zap.Error(err))
	}
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	arenaName := flag.String("arena", "yard", "Embedded arena name or path to a .tmx file")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	logging.SetGlobal(logger)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(appName); err == nil {
		if err := applySavedSettings(&cfg.Look); err != nil {
			logger.Warn("saved settings ignored", zap.Error(err))
		}
	}

	arena, err := loadArena(*arenaName)
	if err != nil {
		logger.Fatal("load arena", zap.Error(err))
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(appName)

	if err := ebiten.RunGame(NewGame(arena, logger)); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}

// applySavedSettings overlays persisted look settings onto look. Unreadable
// settings leave look untouched.
func applySavedSettings(look *cfg.LookConfig) error {
	saved, err := systems.LoadSettings()
	if err != nil {
		return err
	}
	systems.ApplySavedSettings(look, saved)
	return nil
}

func loadArena(name string) (*leveldata.Arena, error) {
	if strings.HasSuffix(name, ".tmx") {
		return leveldata.LoadArena(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	return assets.LoadArena(name)
}
