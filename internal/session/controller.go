// Package session owns the game-state machine around the simulation engine:
// menu -> playing -> gameOver -> menu, plus score and high-score bookkeeping.
package session

import (
	"time"

	"github.com/slevin48/dragon-flame-fly/internal/sim"
)

// GameID keys every persisted value for this game.
const GameID = "dragon"

// Phase is the session's position in the game-state machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// ScoreStore is the persistence collaborator for scores. A nil store is
// valid: persistence is skipped and the session works normally.
type ScoreStore interface {
	// HighScore returns the stored best score for the game, 0 if none.
	HighScore(gameID string) (int, error)
	// SetHighScore replaces the stored best score for the game.
	SetHighScore(gameID string, score int) error
	// SaveRun records the final score of one completed run.
	SaveRun(gameID string, score int) (int64, error)
}

// Controller drives the engine once per frame while playing, applies its
// events to the score, and owns all phase transitions. It is not safe for
// concurrent use; the frame driver must be its only ticker.
type Controller struct {
	phase       Phase
	score       int
	highScore   int
	paused      bool
	world       *sim.World
	pendingJump bool

	seed  int64 // 0 means time-based seed per run
	store ScoreStore
}

// New creates a controller in the menu phase. The stored high score is read
// once here, at session start. A seed of 0 picks a time-based seed for each
// run; any other value makes every run identical.
func New(store ScoreStore, seed int64) *Controller {
	c := &Controller{
		phase: PhaseMenu,
		seed:  seed,
		store: store,
	}
	if store != nil {
		if hs, err := store.HighScore(GameID); err == nil {
			c.highScore = hs
		}
	}
	return c
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Score returns the current run's score (the previous run's final score
// while in the menu or game-over phase).
func (c *Controller) Score() int {
	return c.score
}

// HighScore returns the best score seen this session, seeded from storage.
func (c *Controller) HighScore() int {
	return c.highScore
}

// Paused reports whether the run is paused.
func (c *Controller) Paused() bool {
	return c.paused
}

// Start transitions menu -> playing: fresh world, zero score, cleared input.
// It is a no-op in any other phase.
func (c *Controller) Start() {
	if c.phase != PhaseMenu {
		return
	}

	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c.world = sim.NewWorld(seed)
	c.score = 0
	c.paused = false
	c.pendingJump = false
	c.phase = PhasePlaying
}

// Jump buffers a one-shot impulse for the next tick. Input arriving outside
// the playing phase (or while paused) is silently discarded; multiple jumps
// before the next tick collapse into one.
func (c *Controller) Jump() {
	if c.phase != PhasePlaying || c.paused {
		return
	}
	c.pendingJump = true
}

// TogglePause flips the pause flag while playing.
func (c *Controller) TogglePause() {
	if c.phase != PhasePlaying {
		return
	}
	c.paused = !c.paused
}

// Tick advances the simulation by one frame while playing. The buffered jump
// is consumed exactly once. A collided event transitions playing -> gameOver.
func (c *Controller) Tick() sim.Events {
	if c.phase != PhasePlaying || c.paused {
		return sim.Events{}
	}

	in := sim.Input{Jump: c.pendingJump}
	c.pendingJump = false

	ev := sim.Advance(c.world, in)
	c.score += ev.Scored

	if ev.Collided {
		c.phase = PhaseGameOver
	}
	return ev
}

// Reset transitions playing/gameOver -> menu and finalizes persistence: the
// run is recorded, and the stored high score is rewritten only when the run
// beat it. This is the sole high-score write path. No-op in the menu phase.
func (c *Controller) Reset() {
	if c.phase == PhaseMenu {
		return
	}

	if c.store != nil && c.score > 0 {
		// Persistence errors never surface into the session.
		_, _ = c.store.SaveRun(GameID, c.score)
	}
	if c.score > c.highScore {
		c.highScore = c.score
		if c.store != nil {
			_ = c.store.SetHighScore(GameID, c.score)
		}
	}

	c.world = nil
	c.paused = false
	c.pendingJump = false
	c.phase = PhaseMenu
}

// Snapshot returns a read-only copy of the world for rendering. The second
// return is false in the menu phase, where no world exists.
func (c *Controller) Snapshot() (sim.Snapshot, bool) {
	if c.world == nil {
		return sim.Snapshot{}, false
	}
	return c.world.Snapshot(), true
}
