// Command termscroll pages through a text file in the terminal with the
// same inertial scrolling as the GL sandbox.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hubastard/glide/engine/assets"
	"github.com/hubastard/glide/engine/ui/scroll"
)

// Timer events are posted into the tcell queue so every viewport
// mutation happens on the PollEvent goroutine.
type frameEvent struct{ tcell.EventTime }

type fixedEvent struct{ tcell.EventTime }

type reloadEvent struct {
	tcell.EventTime
	cfg scroll.Config
}

const frameRate = 60

func main() {
	file := flag.String("file", "", "text file to scroll (default: generated sample)")
	configPath := flag.String("config", "", "scroll tuning TOML file, reloaded when it changes")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	log := slog.New(slog.DiscardHandler)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	text := sampleText()
	if *file != "" {
		b, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		text = string(b)
	}

	if err := run(splitLines(text), *configPath, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// termConfig adapts the defaults to cell units.
func termConfig() scroll.Config {
	cfg := scroll.DefaultConfig()
	cfg.MinThumbSize = 1
	cfg.ThumbThickness = 1
	return cfg
}

func loadConfig(path string) (scroll.Config, error) {
	cfg := termConfig()
	if path == "" {
		return cfg, nil
	}
	if err := assets.LoadTOML(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func run(lines []string, configPath string, log *slog.Logger) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	view, err := newTextView(lines, cfg)
	if err != nil {
		return err
	}
	view.vp.SetLogger(log)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	defer screen.DisableMouse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go tick(ctx, screen, time.Second/frameRate, func() tcell.Event { return &frameEvent{} })
	go tick(ctx, screen, time.Second/scroll.FixedTickRate, func() tcell.Event { return &fixedEvent{} })

	if configPath != "" {
		err := assets.Watch(ctx, configPath, log, func() {
			cfg, err := loadConfig(configPath)
			if err != nil {
				log.Warn("scroll config reload failed", "err", err)
				return
			}
			ev := &reloadEvent{cfg: cfg}
			ev.SetEventNow()
			_ = screen.PostEvent(ev)
		})
		if err != nil {
			log.Warn("scroll config not watched", "err", err)
		}
	}

	view.resize(screen.Size())
	log.Info("termscroll start", "lines", len(lines), "view", view.vp.String())

	last := time.Now()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			view.resize(ev.Size())
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
			view.key(ev)
		case *tcell.EventMouse:
			view.mouse(ev, ev.When())
		case *frameEvent:
			view.frame(ev.When().Sub(last).Seconds())
			last = ev.When()
		case *fixedEvent:
			view.vp.FixedTick()
		case *reloadEvent:
			if err := view.vp.SetConfig(ev.cfg); err != nil {
				log.Warn("scroll config rejected", "err", err)
			} else {
				log.Info("scroll config applied", "friction", ev.cfg.FrictionRate)
			}
		}
		if view.dirty {
			view.draw(screen)
			screen.Show()
			view.dirty = false
		}
	}
}

// tick posts a fresh event from mk every period until ctx is done. A full
// queue drops the tick.
func tick(ctx context.Context, s tcell.Screen, period time.Duration, mk func() tcell.Event) {
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			ev := mk()
			if te, ok := ev.(interface{ SetEventTime(time.Time) }); ok {
				te.SetEventTime(now)
			}
			_ = s.PostEvent(ev)
		}
	}
}

func sampleText() string {
	words := []string{"inertia", "viewport", "friction", "overflow", "thumb", "snap", "wheel", "coast", "世界", "drag"}
	var b strings.Builder
	for i := 0; i < 400; i++ {
		fmt.Fprintf(&b, "%04d ", i)
		for j := 0; j < 4+(i*7)%40; j++ {
			b.WriteString(words[(i+j*3)%len(words)])
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
