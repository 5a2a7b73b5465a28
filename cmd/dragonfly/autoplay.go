package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/slevin48/dragon-flame-fly/internal/session"
	"github.com/slevin48/dragon-flame-fly/internal/sim"
	"github.com/slevin48/dragon-flame-fly/internal/storage"
)

var (
	flagTicks    int
	flagRealtime bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Run a headless scripted session",
	Long: `Run the game without a terminal UI, driven by a simple flap policy:
the pilot aims the dragon at the center of the nearest upcoming gap.

Useful for soak-testing the simulation and the persistence path. Scores
are recorded exactly like interactive runs.

Examples:
  dragonfly autoplay                    # 3600 ticks as fast as possible
  dragonfly autoplay --ticks 36000
  dragonfly autoplay --seed 42
  dragonfly autoplay --realtime         # Pace ticks at the configured fps`,
	Args: cobra.NoArgs,
	Run:  runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	autoplayCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks with a real clock instead of running flat out")
}

func runAutoplay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "autoplay",
	})

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	var scoreStore session.ScoreStore
	if store != nil {
		scoreStore = store
	}
	ctrl := session.New(scoreStore, flagSeed)
	ctrl.Start()

	runs := 0
	bestScore := 0
	ticksLeft := flagTicks

	step := func() {
		if snap, ok := ctrl.Snapshot(); ok && shouldFlap(snap) {
			ctrl.Jump()
		}
		ctrl.Tick()

		if ctrl.Phase() == session.PhaseGameOver {
			runs++
			if ctrl.Score() > bestScore {
				bestScore = ctrl.Score()
			}
			logger.Info("run ended", "run", runs, "score", ctrl.Score())
			ctrl.Reset()
			ctrl.Start()
		}
		ticksLeft--
	}

	if flagRealtime {
		ctx, cancel := context.WithCancel(context.Background())
		driver := session.NewDriver(cfg.TickRate, func() {
			step()
			if ticksLeft <= 0 {
				cancel()
			}
		})
		driver.Run(ctx)
		driver.Stop()
	} else {
		for ticksLeft > 0 {
			step()
		}
	}

	// A live run at the end still counts; Reset persists it.
	finalScore := ctrl.Score()
	if ctrl.Phase() == session.PhasePlaying {
		if finalScore > bestScore {
			bestScore = finalScore
		}
		runs++
	}
	ctrl.Reset()

	if store != nil {
		store.Close()
	}

	logger.Info("autoplay finished",
		"ticks", flagTicks,
		"runs", runs,
		"best", bestScore,
		"high_score", ctrl.HighScore(),
	)
}

// shouldFlap aims for the vertical center of the nearest gap ahead of the
// dragon, or mid-canvas when no towers are on screen yet.
func shouldFlap(snap sim.Snapshot) bool {
	target := sim.CanvasHeight / 2
	for _, p := range snap.Pipes {
		if p.X+sim.PipeWidth < sim.DragonX {
			continue
		}
		target = p.TopHeight + sim.PipeGap/2
		break
	}

	center := snap.Dragon.Y + sim.DragonHeight/2
	return center > target && snap.Dragon.Vel >= 0
}
