// Package hud draws the 2D overlay: drawing details, recent status lines and an optional FPS
// counter.
package hud

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"strokeview/internal/logger"
	"strokeview/internal/viewer"
	"strokeview/internal/viewport"
)

const (
	fontSize      = 18
	textSpacing   = 1
	padding       = 10
	lineHeight    = fontSize + 4
	statusLines   = 5
	maxLineLength = 160
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

var (
	panelColor = rl.NewColor(20, 20, 24, 190)
	textColor  = rl.NewColor(235, 235, 235, 255)
	dimColor   = rl.NewColor(170, 170, 170, 255)
	errorColor = rl.NewColor(255, 110, 100, 255)
	fpsColor   = rl.Green
)

// HUD draws the overlay. All fields except the logger may be changed between frames.
type HUD struct {
	ShowFPS  bool
	ShowHelp bool
	log      *logger.Logger
	font     *textFont

	frameCount  uint32
	lastFpsText string
	memStats    runtime.MemStats
}

// New returns a HUD showing the newest lines of log. fontPath names a TTF/OTF to draw text
// with; when empty or missing a font with Japanese glyphs is searched for, and raylib's default
// font is used if none is found.
func New(log *logger.Logger, showFPS bool, fontPath string) *HUD {
	return &HUD{log: log, ShowFPS: showFPS, ShowHelp: true, font: newTextFont(fontPath, log)}
}

// Draw renders the overlay for s. Call after the 3D pass.
func (h *HUD) Draw(s *viewport.Scene, sel viewer.Selection) {
	lines := viewer.InfoLines(s, sel)
	if h.ShowHelp {
		lines = append(lines, viewer.HelpLine)
	}
	status := h.statusEntries()
	texts := append([]string(nil), lines...)
	for _, e := range status {
		texts = append(texts, e.Text)
	}
	h.font.prepare(texts)

	h.drawPanel(padding, padding, lines, textColor)
	h.drawStatus(status)
	h.drawFPS()
}

// Unload frees the loaded font.
func (h *HUD) Unload() {
	h.font.unload()
}

func (h *HUD) drawPanel(x, y int32, lines []string, color rl.Color) {
	if len(lines) == 0 {
		return
	}
	w := int32(0)
	for _, l := range lines {
		if lw := h.font.measure(l); lw > w {
			w = lw
		}
	}
	rl.DrawRectangle(x-4, y-4, w+8, int32(len(lines)*lineHeight)+4, panelColor)
	for i, l := range lines {
		h.font.draw(l, x, y+int32(i*lineHeight), color)
	}
}

// statusEntries returns the newest log lines, already shortened for display.
func (h *HUD) statusEntries() []logger.Entry {
	entries := h.log.Entries()
	if len(entries) > statusLines {
		entries = entries[len(entries)-statusLines:]
	}
	for i := range entries {
		entries[i].Text = viewer.Truncate(entries[i].Text, maxLineLength)
	}
	return entries
}

// drawStatus draws the status lines along the bottom edge, errors in red.
func (h *HUD) drawStatus(entries []logger.Entry) {
	screenH := int32(rl.GetScreenHeight())
	y := screenH - padding - int32(len(entries)*lineHeight)
	for i, e := range entries {
		c := dimColor
		if e.Level == logger.Error {
			c = errorColor
		}
		h.font.draw(e.Text, padding, y+int32(i*lineHeight), c)
	}
}

// drawFPS draws FPS and heap usage in the top-right corner when enabled.
func (h *HUD) drawFPS() {
	if !h.ShowFPS {
		return
	}
	h.frameCount++
	if h.lastFpsText == "" || h.frameCount%updateInterval == 0 {
		runtime.ReadMemStats(&h.memStats)
		h.lastFpsText = fmt.Sprintf("FPS: %d  Mem: %.1f MiB", rl.GetFPS(), float64(h.memStats.Alloc)/(1024*1024))
	}
	w := h.font.measure(h.lastFpsText)
	h.font.draw(h.lastFpsText, int32(rl.GetScreenWidth())-w-padding, padding, fpsColor)
}
