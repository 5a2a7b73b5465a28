package sim

import "github.com/slevin48/dragon-flame-fly/internal/core"

// HitsPipe reports whether the dragon's box overlaps either barrier of the
// pipe. Pure function: neither argument is mutated. Overlap is strict on all
// edges, so a dragon exactly touching a barrier is a near-miss, not a hit.
func HitsPipe(dragon core.Box, p Pipe) bool {
	return dragon.Overlaps(p.TopBox()) || dragon.Overlaps(p.BottomBox())
}
