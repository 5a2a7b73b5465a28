package sim

// Input is the player intent for a single tick. Jump is a one-shot flag: the
// platform sets it on the tick following a key press and it is consumed once.
type Input struct {
	Jump bool
}

// Events reports what happened during one tick. The session controller
// applies Scored to the score and treats Collided as the terminal transition.
type Events struct {
	Scored   int  // Pipes cleared this tick, exactly one event per pipe ever
	Collided bool // Dragon hit a barrier or left the screen bounds
}

// Advance runs one fixed simulation tick. It is the sole mutator of the
// world; callers must not invoke it concurrently.
//
// Integration is semi-implicit Euler: the jump override is applied first,
// then gravity accumulates, then position integrates the updated velocity.
func Advance(w *World, in Input) Events {
	w.Tick++

	if in.Jump {
		w.Dragon.Vel = JumpForce
	}
	w.Dragon.Vel += Gravity
	w.Dragon.Y += w.Dragon.Vel

	// Pipes scroll left. The spawn cursor advances by the same distance,
	// once per tick regardless of how many pipes are live.
	for i := range w.Pipes {
		w.Pipes[i].X -= PipeSpeed
	}
	w.SpawnCursor += PipeSpeed

	var ev Events

	// Pass events: a pipe scores the first tick its right edge crosses
	// behind the dragon, and never again.
	for i := range w.Pipes {
		if !w.Pipes[i].Passed && w.Pipes[i].X+PipeWidth < DragonX {
			w.Pipes[i].Passed = true
			ev.Scored++
		}
	}

	// Bounds check runs independently of pipes and can fire on an empty
	// field. The first colliding pipe ends the scan.
	if w.Dragon.Y > CanvasHeight-DragonHeight || w.Dragon.Y < 0 {
		ev.Collided = true
	}
	if !ev.Collided {
		dragon := w.Dragon.Box()
		for i := range w.Pipes {
			if HitsPipe(dragon, w.Pipes[i]) {
				ev.Collided = true
				break
			}
		}
	}

	// Drop pipes that are fully past the left edge.
	live := w.Pipes[:0]
	for _, p := range w.Pipes {
		if p.X+PipeWidth > 0 {
			live = append(live, p)
		}
	}
	w.Pipes = live

	// Spawn when the field is empty or enough distance has scrolled by.
	if len(w.Pipes) == 0 || w.SpawnCursor > SpawnSpacing {
		w.spawnPipe()
	}

	return ev
}

// spawnPipe adds a pipe at the right edge with a freshly sampled top height
// and resets the spawn cursor.
func (w *World) spawnPipe() {
	w.SpawnCursor = 0
	w.Pipes = append(w.Pipes, Pipe{
		X:         CanvasWidth,
		TopHeight: w.rng.Float64()*TopHeightSpan + MinTopHeight,
	})
}
