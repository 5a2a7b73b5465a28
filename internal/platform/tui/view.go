package tui

import (
	"fmt"

	"github.com/slevin48/dragon-flame-fly/internal/core"
	"github.com/slevin48/dragon-flame-fly/internal/sim"
)

// Visual characters for rendering
const (
	dragonChar = '▶'
	dragonBody = '●'
	pipeChar   = '█'
	pipeCapTop = '▄'
	pipeCapBot = '▀'
	borderChar = '═'
)

// cellX maps a world x-coordinate onto the screen buffer.
func cellX(x float64, s *core.Screen) int {
	return int(x * float64(s.Width()) / sim.CanvasWidth)
}

// cellY maps a world y-coordinate onto the screen buffer.
func cellY(y float64, s *core.Screen) int {
	return int(y * float64(s.Height()) / sim.CanvasHeight)
}

// drawWorld renders a simulation snapshot scaled into the screen buffer.
func drawWorld(dst *core.Screen, snap sim.Snapshot) {
	dst.Clear()

	for _, p := range snap.Pipes {
		drawPipe(dst, p)
	}
	drawDragon(dst, snap.Dragon)

	// Screen bounds are lethal; mark them.
	dst.DrawHLine(0, 0, dst.Width(), borderChar)
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), borderChar)
}

// drawPipe renders both barriers of a single pipe.
func drawPipe(dst *core.Screen, p sim.Pipe) {
	x0 := cellX(p.X, dst)
	x1 := cellX(p.X+sim.PipeWidth, dst)
	topEnd := cellY(p.TopHeight, dst)
	botStart := cellY(p.TopHeight+sim.PipeGap, dst)

	for x := x0; x < x1; x++ {
		for y := 0; y < topEnd; y++ {
			dst.SetColored(x, y, pipeChar, core.ColorGreen)
		}
		if topEnd > 0 {
			dst.SetColored(x, topEnd-1, pipeCapTop, core.ColorGreen)
		}

		for y := botStart; y < dst.Height(); y++ {
			dst.SetColored(x, y, pipeChar, core.ColorGreen)
		}
		if botStart < dst.Height() {
			dst.SetColored(x, botStart, pipeCapBot, core.ColorGreen)
		}
	}
}

// drawDragon renders the dragon's hitbox as a block with a beak.
func drawDragon(dst *core.Screen, d sim.Dragon) {
	x0 := cellX(sim.DragonX, dst)
	x1 := cellX(sim.DragonX+sim.DragonWidth, dst)
	y0 := cellY(d.Y, dst)
	y1 := cellY(d.Y+sim.DragonHeight, dst)

	// Always at least one visible cell, even on tiny terminals.
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if x == x1-1 && y == y0 {
				dst.SetColored(x, y, dragonChar, core.ColorOrange)
			} else {
				dst.SetColored(x, y, dragonBody, core.ColorOrange)
			}
		}
	}
}

// drawHUD writes the score line over the playfield.
func drawHUD(dst *core.Screen, score, highScore int, paused bool) {
	text := fmt.Sprintf(" Score: %d   Best: %d ", score, highScore)
	dst.DrawTextColored(2, 0, text, core.ColorBrightYellow)

	if paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawMenu renders the title screen.
func drawMenu(dst *core.Screen, highScore int) {
	dst.Clear()

	h := dst.Height()
	dst.DrawTextCentered(h/2-3, "D R A G O N   F L A M E   F L Y")
	dst.DrawTextCentered(h/2-1, fmt.Sprintf("Best: %d", highScore))
	dst.DrawTextCentered(h/2+1, "Space - fly   |   P - pause   |   Q - quit")
	dst.DrawTextCentered(h/2+3, "Press Space to start")
}

// drawGameOver renders the terminal overlay on top of the final playfield.
func drawGameOver(dst *core.Screen, score int) {
	drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R for menu", score))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
