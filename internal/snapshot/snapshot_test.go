package snapshot

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strokeview/internal/drawing"
	"strokeview/internal/geom"
	"strokeview/internal/mesh"
	"strokeview/internal/viewport"
)

func loadedScene(t *testing.T) *viewport.Scene {
	t.Helper()
	s := viewport.New(viewport.Config{})
	require.NoError(t, s.LoadDrawing(&drawing.Drawing{
		DrawingID: "bar",
		Strokes: drawing.Strokes{{
			Positions: []drawing.Point{geom.V3(-1, 0, 0), geom.V3(1, 0, 0)},
			Width:     0.2,
			Color:     drawing.Color{R: 1},
		}},
	}))
	return s
}

func TestRenderDrawsStrokeAtCenter(t *testing.T) {
	s := loadedScene(t)
	opts := DefaultOptions()
	opts.Caption = "bar"
	img, err := Render(s.Segments(), s.View(), opts)
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())

	r, g, b, _ := img.At(256, 256).RGBA()
	assert.Greater(t, r>>8, uint32(200))
	assert.Less(t, g>>8, uint32(60))
	assert.Less(t, b>>8, uint32(60))

	assertBackground(t, img, 256, 100)
}

func TestRenderFollowsGroupRotation(t *testing.T) {
	s := loadedScene(t)
	v := s.View()
	v.Yaw = 1.5707964 // a quarter turn points the bar at the camera
	opts := DefaultOptions()
	opts.Supersample = 1
	img, err := Render(s.Segments(), v, opts)
	require.NoError(t, err)
	assertBackground(t, img, 300, 256)

	img, err = Render(s.Segments(), s.View(), opts)
	require.NoError(t, err)
	r, _, _, _ := img.At(300, 256).RGBA()
	assert.Greater(t, r>>8, uint32(200))
}

func TestRenderRejectsBadOptions(t *testing.T) {
	s := loadedScene(t)
	_, err := Render(s.Segments(), s.View(), Options{Width: 0, Height: 10, FOV: 60})
	assert.Error(t, err)
	_, err = Render(s.Segments(), s.View(), Options{Width: 10, Height: 10, FOV: 180})
	assert.Error(t, err)
}

func TestProjectOrdersAndClips(t *testing.T) {
	v := viewport.New(viewport.Config{}).View() // camera at z=5 looking at the origin
	segs := []mesh.Segment{
		{Start: geom.V3(0, 0, 1), End: geom.V3(0, 1, 1), Radius: 0.01},
		{Start: geom.V3(0, 0, -3), End: geom.V3(0, 1, -3), Radius: 0.01},
		{Start: geom.V3(0, 0, 6), End: geom.V3(0, 1, 6), Radius: 0.01}, // behind the camera
	}
	lines := project(segs, v, 100, 100, 90)
	require.Len(t, lines, 2)
	assert.InDelta(t, 8, lines[0].depth, 1e-5)
	assert.InDelta(t, 4, lines[1].depth, 1e-5)
	assert.InDelta(t, 50, lines[1].x1, 1e-3)
	assert.InDelta(t, 50, lines[1].y1, 1e-3)
	assert.Less(t, lines[1].y2, lines[1].y1) // render +Y is up the image
	assert.Equal(t, 1.0, lines[1].width)
}

func TestSaveFormats(t *testing.T) {
	s := loadedScene(t)
	opts := DefaultOptions()
	opts.Width, opts.Height = 64, 64
	img, err := Render(s.Segments(), s.View(), opts)
	require.NoError(t, err)
	dir := t.TempDir()

	png := filepath.Join(dir, "a.png")
	require.NoError(t, Save(png, img))
	data, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	webp := filepath.Join(dir, "a.WEBP")
	require.NoError(t, Save(webp, img))
	data, err = os.ReadFile(webp)
	require.NoError(t, err)
	require.Greater(t, len(data), 12)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))

	err = Save(filepath.Join(dir, "a.gif"), img)
	assert.True(t, errors.Is(err, ErrFormat))
}

func assertBackground(t *testing.T, img image.Image, x, y int) {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	for _, c := range []uint32{r >> 8, g >> 8, b >> 8} {
		assert.InDelta(t, 240, c, 1)
	}
}
