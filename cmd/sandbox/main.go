package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hubastard/glide/engine/colors"
	"github.com/hubastard/glide/engine/core"
	glbackend "github.com/hubastard/glide/engine/gfx/gl"
	"github.com/hubastard/glide/engine/platform"
	"github.com/hubastard/glide/engine/ui/scroll"
)

type App struct {
	configPath string
	layer      *ScrollLayer
}

func (a *App) OnStart(e *core.Engine) {
	a.layer = NewScrollLayer(a.configPath)
	e.PushLayer(a.layer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnFixedUpdate(e *core.Engine)           {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		e.Window.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {}

func main() {
	configPath := flag.String("config", "", "scroll tuning TOML file, reloaded when it changes")
	debug := flag.Bool("debug", false, "log gesture transitions")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	cfg := core.Config{
		Title:      "glide sandbox",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.DarkGray,
		FixedRate:  scroll.FixedTickRate,
		Log:        log,
	}
	app := &App{configPath: *configPath}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Error("sandbox failed", "err", err)
		os.Exit(1)
	}
}
