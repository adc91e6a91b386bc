// Package snapshot renders a framed drawing to an image without a GPU, for thumbnails and
// batch export. Tubes are projected through a pinhole camera matching the viewer's and drawn
// as round-capped lines, farthest first.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/anthonynsimon/bild/transform"
	"github.com/chewxy/math32"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"strokeview/internal/geom"
	"strokeview/internal/mesh"
	"strokeview/internal/viewport"
)

// nearPlane drops geometry closer to the camera than this.
const nearPlane = 0.01

// Options controls the output image.
type Options struct {
	Width       int
	Height      int
	FOV         float32 // vertical, degrees
	Background  color.Color
	Caption     string
	Supersample int // render at this multiple and downscale; 0 or 1 disables
}

// DefaultOptions returns a 512x512 image on a light background, 2x supersampled.
func DefaultOptions() Options {
	return Options{
		Width:       512,
		Height:      512,
		FOV:         75,
		Background:  color.RGBA{240, 240, 240, 255},
		Supersample: 2,
	}
}

// line is one projected segment in pixel space.
type line struct {
	x1, y1, x2, y2 float64
	width          float64
	depth          float32
	r, g, b, a     float64
}

// Render draws segs as seen from view.
func Render(segs []mesh.Segment, view viewport.ViewState, opts Options) (image.Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("snapshot: invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.FOV <= 0 || opts.FOV >= 180 {
		return nil, fmt.Errorf("snapshot: invalid fov %v", opts.FOV)
	}
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	w, h := opts.Width*ss, opts.Height*ss
	lines := project(segs, view, w, h, opts.FOV)

	dc := gg.NewContext(w, h)
	if opts.Background != nil {
		dc.SetColor(opts.Background)
		dc.Clear()
	}
	dc.SetLineCapRound()
	for _, l := range lines {
		dc.SetRGBA(l.r, l.g, l.b, l.a)
		dc.SetLineWidth(l.width)
		dc.DrawLine(l.x1, l.y1, l.x2, l.y2)
		dc.Stroke()
	}

	var img image.Image = dc.Image()
	if ss > 1 {
		img = transform.Resize(img, opts.Width, opts.Height, transform.Linear)
	}
	if opts.Caption != "" {
		// Captions are drawn after downscaling so the bitmap font stays crisp.
		cc := gg.NewContextForImage(img)
		cc.SetFontFace(basicfont.Face7x13)
		cc.SetRGB(0.2, 0.2, 0.2)
		cc.DrawString(opts.Caption, 6, float64(opts.Height)-6)
		img = cc.Image()
	}
	return img, nil
}

// project maps segments into pixel space for a w x h image, sorted back to front.
func project(segs []mesh.Segment, view viewport.ViewState, w, h int, fov float32) []line {
	cam := view.Camera
	fwd := cam.Target.Sub(cam.Position).Normal()
	right := fwd.Cross(cam.Up).Normal()
	up := right.Cross(fwd)
	focal := float32(h) / 2 / math32.Tan(fov*math32.Pi/360)
	cx, cy := float32(w)/2, float32(h)/2

	toCamera := func(p geom.Vec3) geom.Vec3 {
		world := geom.RotateEuler(p, view.Pitch, view.Yaw).Add(view.GroupPosition)
		d := world.Sub(cam.Position)
		return geom.V3(d.Dot(right), d.Dot(up), d.Dot(fwd))
	}

	out := make([]line, 0, len(segs))
	for _, s := range segs {
		a, b := toCamera(s.Start), toCamera(s.End)
		if a.Z < nearPlane || b.Z < nearPlane {
			continue
		}
		depth := (a.Z + b.Z) / 2
		out = append(out, line{
			x1:    float64(cx + a.X*focal/a.Z),
			y1:    float64(cy - a.Y*focal/a.Z),
			x2:    float64(cx + b.X*focal/b.Z),
			y2:    float64(cy - b.Y*focal/b.Z),
			width: float64(math32.Max(2*s.Radius*focal/depth, 1)),
			depth: depth,
			r:     float64(s.Color.R),
			g:     float64(s.Color.G),
			b:     float64(s.Color.B),
			a:     float64(s.Color.Alpha()),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].depth > out[j].depth })
	return out
}

// ErrFormat is returned by Save for an unsupported file extension.
var ErrFormat = errors.New("unsupported image format")

// Save writes img to path as PNG or WebP depending on the extension.
func Save(path string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		if err := gg.SavePNG(path, img); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		return nil
	case ".webp":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		if err := nativewebp.Encode(f, img, nil); err != nil {
			f.Close()
			return fmt.Errorf("snapshot: encode webp: %w", err)
		}
		return f.Close()
	default:
		return fmt.Errorf("snapshot: %s: %w", path, ErrFormat)
	}
}
