// Command throwsim drives the throw controller headlessly against the
// reference sim host using a scripted input sequence.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"

	"github.com/automoto/throwball/assets"
	cfg "github.com/automoto/throwball/config"
	"github.com/automoto/throwball/logging"
	"github.com/automoto/throwball/shared/leveldata"
	"github.com/automoto/throwball/sim"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	arenaName := flag.String("arena", "yard", "Embedded arena name or path to a .tmx file")
	scriptPath := flag.String("script", "", "YAML input script (required)")
	runs := flag.Int("runs", 1, "Number of independent runs")
	workers := flag.Int("workers", runtime.NumCPU(), "Concurrent runs")
	logLevel := flag.String("log-level", "", "Log level override (debug, info, warn, error)")
	settle := flag.Float64("settle", 3.0, "Seconds simulated after the script ends")
	realtime := flag.Bool("realtime", false, "Pace a single run at the sim tick rate")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			fatal(err)
		}
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fatal(err)
	}
	defer func() { _ = log.Sync() }()
	logging.SetGlobal(log)

	if *scriptPath == "" {
		log.Fatal("missing -script")
	}
	script, err := LoadScript(*scriptPath)
	if err != nil {
		log.Fatal("load script", zap.Error(err))
	}
	arena, err := loadArena(*arenaName)
	if err != nil {
		log.Fatal("load arena", zap.Error(err))
	}

	runner := &Runner{
		Arena:  arena,
		Script: script,
		Look:   cfg.Look,
		Throw:  cfg.Throw,
		Hand:   cfg.Hand,
		Sim:    cfg.Sim,
		Settle: *settle,
		Log:    log,
	}

	log.Info("starting throwsim",
		zap.String("arena", arena.Name),
		zap.String("script", script.Name),
		zap.Int("runs", *runs),
		zap.Int("workers", *workers),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var results []Result
	if *realtime {
		results, err = runRealtime(ctx, runner)
	} else {
		results, err = runPooled(runner, *runs, *workers)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("run failed", zap.Error(err))
	}

	for _, r := range results {
		log.Info("run finished",
			zap.Int("run", r.Run),
			zap.Int("frames", r.Frames),
			zap.Float64("simTime", r.SimTime),
			zap.Int("charges", r.Charges),
			zap.Int("throws", r.Throws),
			zap.Int("aborts", r.Aborts),
			zap.Int("respawns", r.Respawns),
			zap.Int("impacts", r.Impacts),
			zap.Int("targetHits", r.TargetHits),
			zap.Float64("maxForce", r.MaxForce),
		)
	}
}

// runPooled executes runs on an ants pool. Each run owns its world and scene.
func runPooled(runner *Runner, runs, workers int) ([]Result, error) {
	pool, err := ants.NewPool(max(workers, 1), ants.WithPanicHandler(func(p interface{}) {
		runner.Log.Error("run panicked", zap.Any("panic", p))
	}))
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]Result, runs)
	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[i] = runner.Run(i)
		}); err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()
	return results, nil
}

// runRealtime paces one run with the sim loop until it ends or ctx is cancelled.
func runRealtime(ctx context.Context, runner *Runner) ([]Result, error) {
	session := runner.NewSession(0)
	loop := sim.NewLoop(runner.Sim.TickRate, runner.Log, func(float64) bool {
		return session.Step()
	})
	err := loop.Run(ctx)
	return []Result{session.Result()}, err
}

func loadArena(name string) (*leveldata.Arena, error) {
	if strings.HasSuffix(name, ".tmx") {
		return leveldata.LoadArena(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	return assets.LoadArena(name)
}

func fatal(err error) {
	os.Stderr.WriteString("throwsim: " + err.Error() + "\n")
	os.Exit(1)
}
