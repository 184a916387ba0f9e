package arena

import (
	"fmt"
	"math"

	"github.com/vovakirdan/coin-frenzy/internal/core"
)

const (
	hudHeight  = 2
	minRenderW = 24
	minRenderH = 10
)

// headingGlyphs are indexed by yaw in 45 degree sectors, starting at -Z (up).
var headingGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// viewport maps arena coordinates onto a box of screen cells.
// Terminal cells are about twice as tall as wide, so the box is twice as
// wide as it is high.
type viewport struct {
	box  core.Rect
	half float64
}

func newViewport(w, h, top int, half float64) viewport {
	boxH := h
	boxW := 2 * boxH
	if boxW > w {
		boxW = w
		boxH = boxW / 2
	}
	return viewport{
		box:  core.NewRect((w-boxW)/2, top, boxW, boxH),
		half: half,
	}
}

// project returns the cell inside the box for a world position.
// +X maps to the right and +Z downward.
func (v viewport) project(p core.Vec3) (int, int) {
	innerW, innerH := v.box.W-2, v.box.H-2
	u := (p.X() + v.half) / (2 * v.half)
	w := (p.Z() + v.half) / (2 * v.half)
	col := core.Clamp(int(u*float64(innerW)), 0, innerW-1)
	row := core.Clamp(int(w*float64(innerH)), 0, innerH-1)
	return v.box.X + 1 + col, v.box.Y + 1 + row
}

// Render draws the arena top-down into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	s.renderHUD(dst)

	if dst.Width() < minRenderW || dst.Height() < minRenderH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		return
	}

	v := newViewport(dst.Width(), dst.Height()-hudHeight, hudHeight, s.cfg.Arena.HalfExtent)
	dst.DrawBox(v.box, core.ColorGray)

	for _, c := range s.coins {
		if c.Taken {
			continue
		}
		x, y := v.project(c.Pos)
		dst.SetColored(x, y, 'o', core.ColorBrightYellow)
	}
	for _, e := range s.enemies {
		if !e.Alive {
			continue
		}
		x, y := v.project(e.Pos)
		if e.Behavior == Pursuing {
			dst.SetColored(x, y, 'E', core.ColorBrightRed)
		} else {
			dst.SetColored(x, y, 'e', core.ColorRed)
		}
	}
	for _, b := range s.bullets {
		if !b.Alive {
			continue
		}
		x, y := v.project(b.Pos)
		dst.SetColored(x, y, '•', core.ColorBrightWhite)
	}

	x, y := v.project(s.player.Pos)
	color := core.ColorCyan
	if s.player.Cheat {
		color = core.ColorGreen
	}
	dst.SetColored(x, y, HeadingGlyph(s.player.Yaw), color)

	if s.paused {
		s.renderOverlay(dst, "PAUSED", "Press P to continue")
	}
}

// HeadingGlyph returns an arrow for the nearest of the eight compass headings.
func HeadingGlyph(yaw float64) rune {
	deg := math.Mod(yaw, 360)
	if deg < 0 {
		deg += 360
	}
	return headingGlyphs[int(math.Round(deg/45))%len(headingGlyphs)]
}

// renderHUD draws the top status bar.
func (s *Session) renderHUD(dst *core.Screen) {
	cheat := ""
	if s.player.Cheat {
		cheat = "  [CHEAT]"
	}
	magnet := "OFF"
	if s.magnet {
		magnet = "ON"
	}
	hud := fmt.Sprintf(" Score: %d  Level: %d  Health: %d  Lives: %d%s  Magnet: %s",
		s.score, s.level, s.player.Health, s.player.Lives, cheat, magnet)
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (s *Session) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
