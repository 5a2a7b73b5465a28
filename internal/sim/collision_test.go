package sim

import (
	"testing"

	"github.com/slevin48/dragon-flame-fly/internal/core"
)

func TestHitsPipe(t *testing.T) {
	pipe := Pipe{X: 120, TopHeight: 200}
	// Gap spans y in [200, 350); bottom barrier starts at 350.

	tests := []struct {
		name   string
		dragon core.Box
		want   bool
	}{
		{
			name:   "inside the gap",
			dragon: core.NewBox(120, 250, DragonWidth, DragonHeight),
			want:   false,
		},
		{
			name:   "overlapping top barrier",
			dragon: core.NewBox(120, 180, DragonWidth, DragonHeight),
			want:   true,
		},
		{
			name:   "fully inside top barrier",
			dragon: core.NewBox(125, 50, DragonWidth, DragonHeight),
			want:   true,
		},
		{
			name:   "overlapping bottom barrier",
			dragon: core.NewBox(120, 330, DragonWidth, DragonHeight),
			want:   true,
		},
		{
			name:   "left of the pipe",
			dragon: core.NewBox(20, 100, DragonWidth, DragonHeight),
			want:   false,
		},
		{
			name:   "right of the pipe",
			dragon: core.NewBox(200, 100, DragonWidth, DragonHeight),
			want:   false,
		},
		{
			name: "trailing edge exactly at pipe's left edge",
			// dragon right edge == pipe.X: touching, not overlapping
			dragon: core.NewBox(120-DragonWidth, 100, DragonWidth, DragonHeight),
			want:   false,
		},
		{
			name: "leading edge exactly at pipe's right edge",
			// dragon.X == pipe right edge: touching, not overlapping
			dragon: core.NewBox(120+PipeWidth, 100, DragonWidth, DragonHeight),
			want:   false,
		},
		{
			name: "top of dragon exactly at gap top",
			// dragon.Y == TopHeight: sits flush under the top barrier
			dragon: core.NewBox(130, 200, DragonWidth, DragonHeight),
			want:   false,
		},
		{
			name: "bottom of dragon exactly at gap bottom",
			// dragon bottom == TopHeight+PipeGap: flush above the bottom barrier
			dragon: core.NewBox(130, 350-DragonHeight, DragonWidth, DragonHeight),
			want:   false,
		},
		{
			name:   "one unit into the top barrier",
			dragon: core.NewBox(130, 199, DragonWidth, DragonHeight),
			want:   true,
		},
		{
			name:   "one unit into the bottom barrier",
			dragon: core.NewBox(130, 350-DragonHeight+1, DragonWidth, DragonHeight),
			want:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HitsPipe(tc.dragon, pipe); got != tc.want {
				t.Errorf("HitsPipe() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestHitsPipeDoesNotMutate(t *testing.T) {
	pipe := Pipe{X: 120, TopHeight: 200}
	dragon := core.NewBox(120, 180, DragonWidth, DragonHeight)

	HitsPipe(dragon, pipe)

	if pipe.X != 120 || pipe.TopHeight != 200 || pipe.Passed {
		t.Errorf("pipe mutated: %+v", pipe)
	}
	if dragon != core.NewBox(120, 180, DragonWidth, DragonHeight) {
		t.Errorf("dragon box mutated: %+v", dragon)
	}
}
