// Package sim implements the dragon flight simulation: per-tick physics
// integration, pipe spawning and lifecycle, and collision detection.
// The package is pure and deterministic; it knows nothing about terminals,
// timers, or persistence.
package sim

// World geometry and physics constants. These are fixed design parameters,
// tuned together - they are deliberately not runtime-configurable.
const (
	CanvasWidth  = 400.0
	CanvasHeight = 600.0

	DragonX      = 100.0 // Fixed horizontal position, never changes in a session
	DragonStartY = 300.0
	DragonWidth  = 50.0
	DragonHeight = 40.0

	JumpForce = -8.0 // Instantaneous upward velocity override (negative = up)
	Gravity   = 0.5  // Downward acceleration per tick

	PipeWidth = 60.0
	PipeGap   = 150.0 // Vertical opening between the two barriers
	PipeSpeed = 2.0   // Horizontal scroll per tick

	// Top barrier height is sampled uniformly from
	// [MinTopHeight, MinTopHeight+TopHeightSpan). The range is not validated
	// against the gap or canvas height; extreme samples stay as sampled.
	MinTopHeight  = 100.0
	TopHeightSpan = 200.0

	// A new pipe spawns once this much horizontal distance has scrolled by
	// since the last spawn (or immediately when the field is empty).
	SpawnSpacing = CanvasWidth / 2
)
