package hud

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"strokeview/internal/fonts"
	"strokeview/internal/logger"
)

// textFont draws HUD text with a TTF that covers the runes on screen, falling back to raylib's
// default font when no file is found. The TTF is rasterised only for the codepoints seen so far
// and reloaded when a line brings new ones.
type textFont struct {
	path     string
	searched bool
	font     rl.Font
	loaded   bool
	runes    []rune
	log      *logger.Logger
}

func newTextFont(path string, log *logger.Logger) *textFont {
	return &textFont{path: path, log: log}
}

// prepare makes sure every rune of lines can be drawn. Call once per frame, before drawing,
// with everything that frame shows; the GL context must exist.
func (f *textFont) prepare(lines []string) {
	if !f.searched {
		f.searched = true
		p, err := fonts.Resolve(f.path)
		if err != nil {
			f.path = ""
			f.log.Log("no CJK font found, using the default font")
			return
		}
		f.path = p
		f.log.Logf("hud font %s", p)
	}
	if f.path == "" || (f.loaded && !fonts.Missing(f.runes, lines...)) {
		return
	}
	runes := fonts.Codepoints(append([]string{string(f.runes)}, lines...)...)
	font := rl.LoadFontEx(f.path, fontSize*2, runes)
	if font.Texture.ID == 0 {
		f.log.Errorf("load font %s failed, using the default font", f.path)
		f.path = ""
		return
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	if f.loaded {
		rl.UnloadFont(f.font)
	}
	f.font, f.runes, f.loaded = font, runes, true
}

func (f *textFont) current() rl.Font {
	if f.loaded {
		return f.font
	}
	return rl.GetFontDefault()
}

func (f *textFont) measure(text string) int32 {
	return int32(rl.MeasureTextEx(f.current(), text, fontSize, textSpacing).X)
}

func (f *textFont) draw(text string, x, y int32, color rl.Color) {
	rl.DrawTextEx(f.current(), text, rl.NewVector2(float32(x), float32(y)), fontSize, textSpacing, color)
}

func (f *textFont) unload() {
	if f.loaded {
		rl.UnloadFont(f.font)
		f.loaded = false
	}
}
