package sim

import (
	"math/rand"

	"github.com/slevin48/dragon-flame-fly/internal/core"
)

// Dragon is the player-controlled actor. Only its vertical position and
// velocity evolve; the horizontal position and hitbox size are session
// constants.
type Dragon struct {
	Y   float64
	Vel float64
}

// Box returns the dragon's collision box.
func (d Dragon) Box() core.Box {
	return core.NewBox(DragonX, d.Y, DragonWidth, DragonHeight)
}

// Pipe is a scrolling obstacle: a top barrier and a bottom barrier separated
// by a fixed gap. TopHeight is sampled at spawn and immutable afterwards; the
// bottom barrier is derived from it at use time.
type Pipe struct {
	X         float64
	TopHeight float64
	Passed    bool // Set once the dragon has cleared this pipe, for scoring
}

// TopBox returns the collision box of the top barrier.
func (p Pipe) TopBox() core.Box {
	return core.NewBox(p.X, 0, PipeWidth, p.TopHeight)
}

// BottomBox returns the collision box of the bottom barrier.
func (p Pipe) BottomBox() core.Box {
	bottomY := p.TopHeight + PipeGap
	return core.NewBox(p.X, bottomY, PipeWidth, CanvasHeight-bottomY)
}

// World is the complete simulation state for one play session. Pipes are
// kept in spawn order, so the oldest (leftmost) pipe is always first.
type World struct {
	Dragon      Dragon
	Pipes       []Pipe
	SpawnCursor float64 // Horizontal distance scrolled since the last spawn
	Tick        uint64

	rng *rand.Rand
}

// NewWorld creates a fresh world in its initial pose: dragon at rest at the
// start position, no pipes, zero spawn cursor.
func NewWorld(seed int64) *World {
	return &World{
		Dragon: Dragon{Y: DragonStartY},
		Pipes:  make([]Pipe, 0, 8),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Snapshot is a read-only copy of the world for renderers. Mutating a
// snapshot never affects the live simulation.
type Snapshot struct {
	Dragon Dragon
	Pipes  []Pipe
	Tick   uint64
}

// Snapshot returns a copy of the current world state.
func (w *World) Snapshot() Snapshot {
	pipes := make([]Pipe, len(w.Pipes))
	copy(pipes, w.Pipes)
	return Snapshot{
		Dragon: w.Dragon,
		Pipes:  pipes,
		Tick:   w.Tick,
	}
}
