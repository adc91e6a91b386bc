package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"

	"strokeview/internal/commands"
	"strokeview/internal/drawing"
	"strokeview/internal/logger"
	"strokeview/internal/snapshot"
	"strokeview/internal/viewer"
	"strokeview/internal/viewport"
)

func registerSnapshot(reg *commands.Registry) {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	var src sourceFlags
	src.register(fs)
	id := fs.String("drawing", "", "drawing id (default: first listed)")
	out := fs.String("out", "", "output file, .png or .webp (default: <id>.png)")
	width := fs.Int("width", 512, "image width")
	height := fs.Int("height", 512, "image height")
	reg.Register("snapshot", "render a framed drawing to an image file", fs, func(args []string) error {
		cfg, err := src.load(0, 0)
		if err != nil {
			return err
		}
		log := logger.New(cfg.LogPath, 0)
		s, err := openSource(cfg, log)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
		defer cancel()

		d, err := fetchForSnapshot(ctx, s, *id)
		if err != nil {
			return err
		}
		scene := viewport.New(viewport.Config{MinDistance: cfg.MinDistance, Width: *width, Height: *height})
		if err := scene.LoadDrawing(d); err != nil {
			return err
		}

		opts := snapshot.DefaultOptions()
		opts.Width, opts.Height = *width, *height
		opts.FOV = cfg.FOV
		opts.Background = color.RGBA{cfg.Background[0], cfg.Background[1], cfg.Background[2], 255}
		opts.Caption = d.DrawingID
		img, err := snapshot.Render(scene.Segments(), scene.View(), opts)
		if err != nil {
			return err
		}
		path := *out
		if path == "" {
			path = d.DrawingID + ".png"
		}
		if err := snapshot.Save(path, img); err != nil {
			return err
		}
		log.Logf("snapshot of %s saved to %s", d.DrawingID, path)
		fmt.Println(path)
		return nil
	})
}

// fetchForSnapshot gets id, or the first listed drawing when id is empty.
func fetchForSnapshot(ctx context.Context, s drawing.Source, id string) (*drawing.Drawing, error) {
	if id == "" {
		items, err := s.List(ctx)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, errors.New(viewer.MsgNoDrawings)
		}
		id = items[0].DrawingID
	}
	return s.Get(ctx, id)
}
