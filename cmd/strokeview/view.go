package main

import (
	"flag"

	"github.com/atotto/clipboard"
	rl "github.com/gen2brain/raylib-go/raylib"

	"strokeview/internal/commands"
	"strokeview/internal/config"
	"strokeview/internal/control"
	"strokeview/internal/graphics"
	"strokeview/internal/hud"
	"strokeview/internal/logger"
	"strokeview/internal/render"
	"strokeview/internal/viewer"
	"strokeview/internal/viewport"
)

const windowTitle = "strokeview"

func registerView(reg *commands.Registry) {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	var src sourceFlags
	src.register(fs)
	id := fs.String("drawing", "", "drawing id to show first")
	width := fs.Int("width", 0, "window width")
	height := fs.Int("height", 0, "window height")
	reg.Register("view", "open the 3D viewer (default)", fs, func(args []string) error {
		cfg, err := src.load(*width, *height)
		if err != nil {
			return err
		}
		return runView(cfg, *id)
	})
}

// runView opens the viewer window and blocks until it is closed. want, if set, is shown first.
func runView(cfg config.Config, want string) error {
	log := logger.New(cfg.LogPath, 0)
	src, err := openSource(cfg, log)
	if err != nil {
		return err
	}

	scene := viewport.New(viewport.Config{
		MinDistance: cfg.MinDistance,
		Width:       cfg.WindowWidth,
		Height:      cfg.WindowHeight,
	})
	ctrl := control.New(cfg.Speeds())
	loader := viewer.NewLoader(src, log, want)
	defer loader.Close()
	loader.Refresh()

	renderer := render.New(cfg)
	overlay := hud.New(log, cfg.ShowFPS, cfg.FontPath)
	shown := ""

	update := func() {
		if rl.IsWindowResized() {
			scene.OnResize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		for _, ev := range render.PollInput() {
			scene.HandleEvent(ctrl, ev)
		}
		handleKeys(scene, loader, renderer, overlay, log)

		loader.Poll(scene.LoadDrawing)
		if cur := loader.Current(); cur != shown {
			shown = cur
			graphics.SetTitle(windowTitle + " - " + cur)
		}
	}
	draw := func() {
		renderer.Draw(scene)
		overlay.Draw(scene, viewer.Selection{Index: loader.Index(), Total: len(loader.Summaries())})
	}

	graphics.Run(graphics.Window{
		Title:      windowTitle,
		Width:      cfg.WindowWidth,
		Height:     cfg.WindowHeight,
		Background: renderer.Background,
		Close:      func() {
			overlay.Unload()
			renderer.Unload()
		},
	}, update, draw)
	return nil
}

func handleKeys(scene *viewport.Scene, loader *viewer.Loader, r *render.Renderer, h *hud.HUD, log *logger.Logger) {
	switch {
	case rl.IsKeyPressed(rl.KeyR):
		scene.ResetView()
	case rl.IsKeyPressed(rl.KeyN), rl.IsKeyPressed(rl.KeyRight):
		loader.Next()
	case rl.IsKeyPressed(rl.KeyP), rl.IsKeyPressed(rl.KeyLeft):
		loader.Prev()
	case rl.IsKeyPressed(rl.KeyG):
		r.SetGridVisible(!r.GridVisible)
	case rl.IsKeyPressed(rl.KeyF3):
		h.ShowFPS = !h.ShowFPS
	case rl.IsKeyPressed(rl.KeyH):
		h.ShowHelp = !h.ShowHelp
	case rl.IsKeyPressed(rl.KeyC):
		if scene.Drawing() == nil {
			return
		}
		if err := clipboard.WriteAll(viewer.PoseText(scene)); err != nil {
			log.Errorf("copy pose: %v", err)
			return
		}
		log.Log("pose copied to clipboard")
	}
}
