package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hubastard/glide/engine/assets"
	"github.com/hubastard/glide/engine/colors"
	"github.com/hubastard/glide/engine/core"
	"github.com/hubastard/glide/engine/ui"
	"github.com/hubastard/glide/engine/ui/scroll"
)

// ------- Scroll demo layer -------

// ScrollLayer shows a long list next to a grid that scrolls both ways.
type ScrollLayer struct {
	configPath string
	root       *ui.UIView
	list       *ui.UIScrollView
	grid       *ui.UIScrollView
	active     *ui.UIScrollView // holds the pointer between press and release
	reload     chan scroll.Config
	cancel     context.CancelFunc
	state      scroll.GestureState
	log        *slog.Logger
}

func NewScrollLayer(configPath string) *ScrollLayer {
	return &ScrollLayer{configPath: configPath, reload: make(chan scroll.Config, 1)}
}

func (l *ScrollLayer) views() []*ui.UIScrollView { return []*ui.UIScrollView{l.list, l.grid} }

func (l *ScrollLayer) OnAttach(e *core.Engine) {
	l.log = e.Log

	rows := make([]ui.UIElement, 200)
	for i := range rows {
		rows[i] = ui.Box(480, 44).Color(colors.HSV(float32(i)/float32(len(rows)), 0.45, 0.85))
	}
	l.list = ui.ScrollView(ui.View(rows...).FlowDirection(ui.LayoutVertical).Gap(4).Padding(8)).
		Color(colors.Slate)

	cols := make([]ui.UIElement, 40)
	for c := range cols {
		tiles := make([]ui.UIElement, 40)
		for r := range tiles {
			h := float32((c+r)%40) / 40
			tiles[r] = ui.Box(88, 88).Color(colors.HSV(h, 0.6, 0.9))
		}
		cols[c] = ui.View(tiles...).FlowDirection(ui.LayoutVertical).Gap(6)
	}
	l.grid = ui.ScrollView(ui.View(cols...).Gap(6).Padding(6)).Color(colors.Slate)

	l.root = ui.View(l.list, l.grid).Gap(20).Padding(20).WidthExpand().HeightExpand().AlignCross(ui.AlignStretch)

	l.list.Viewport().SetLogger(e.Log.With("view", "list"))
	l.grid.Viewport().SetLogger(e.Log.With("view", "grid"))

	if l.configPath != "" {
		l.watchConfig()
	}
}

// watchConfig applies the tuning file now and again whenever it changes.
// Reloads are handed to the main thread through l.reload.
func (l *ScrollLayer) watchConfig() {
	cfg, err := loadConfig(l.configPath)
	if err != nil {
		l.log.Warn("scroll config not applied", "path", l.configPath, "err", err)
	} else {
		l.applyConfig(cfg)
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	err = assets.Watch(ctx, l.configPath, l.log, func() {
		cfg, err := loadConfig(l.configPath)
		if err != nil {
			l.log.Warn("scroll config reload failed", "path", l.configPath, "err", err)
			return
		}
		// keep only the newest
		select {
		case <-l.reload:
		default:
		}
		l.reload <- cfg
	})
	if err != nil {
		l.log.Warn("scroll config not watched", "err", err)
	}
}

func loadConfig(path string) (scroll.Config, error) {
	cfg := scroll.DefaultConfig()
	if err := assets.LoadTOML(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (l *ScrollLayer) applyConfig(cfg scroll.Config) {
	for _, v := range l.views() {
		if err := v.SetConfig(cfg); err != nil {
			l.log.Warn("scroll config rejected", "err", err)
			return
		}
	}
	l.log.Info("scroll config applied", "friction", cfg.FrictionRate, "autohide", cfg.Autohide)
}

// saveConfig writes the live tuning so it can be edited and reloaded.
func (l *ScrollLayer) saveConfig() {
	path := l.configPath
	if path == "" {
		path = "scroll.toml"
	}
	cfg := l.list.Viewport().Config()
	if err := assets.SaveTOML(path, cfg); err != nil {
		l.log.Warn("scroll config not saved", "err", err)
		return
	}
	l.log.Info("scroll config saved", "path", path)
}

func (l *ScrollLayer) cancelPointer() {
	if l.active != nil {
		l.active.CancelPointer()
		l.active = nil
	}
}

func (l *ScrollLayer) OnDetach(e *core.Engine) {
	l.cancelPointer()
	if l.cancel != nil {
		l.cancel()
	}
}

func (l *ScrollLayer) OnUpdate(e *core.Engine, dt float64) {
	select {
	case cfg := <-l.reload:
		l.applyConfig(cfg)
	default:
	}

	state := scroll.StateIdle
	for _, v := range l.views() {
		v.Update(dt)
		if s := v.Viewport().State(); s == scroll.StateDragging || (s == scroll.StateCoasting && state == scroll.StateIdle) {
			state = s
		}
	}
	if state != l.state {
		l.state = state
		e.Window.SetTitle(fmt.Sprintf("glide sandbox - %s", state))
	}
}

func (l *ScrollLayer) OnFixedUpdate(e *core.Engine) {
	for _, v := range l.views() {
		v.FixedUpdate()
	}
}

func (l *ScrollLayer) OnRender(e *core.Engine, alpha float64) {
	w, h := e.Window.FramebufferSize()
	ctx := &ui.Context{
		Viewport: [4]float32{0, 0, float32(w), float32(h)},
		Renderer: e.Renderer,
	}
	l.root.Draw(ctx)
}

func (l *ScrollLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	now := time.Now()
	switch ev := ev.(type) {
	case core.EventResize:
		// view geometry moves under the pointer
		l.cancelPointer()

	case core.EventMouseButton:
		if ev.Button != core.MouseLeft {
			return false
		}
		if ev.Down {
			for _, v := range l.views() {
				if v.PointerDown(ev.X, ev.Y, now) {
					l.active = v
					return true
				}
			}
			return false
		}
		if l.active == nil {
			return false
		}
		v := l.active
		l.active = nil
		return v.PointerUp(ev.X, ev.Y, now)

	case core.EventMouseMove:
		if l.active == nil {
			return false
		}
		return l.active.PointerMove(ev.X, ev.Y, now)

	case core.EventScroll:
		x, y := e.Input.Mouse()
		alt := ev.Mods&(core.ModShift|core.ModAlt) != 0
		// GLFW reports positive offsets for scrolling up
		for _, v := range l.views() {
			if v.Wheel(x, y, -ev.Xoff, -ev.Yoff, alt) {
				return true
			}
		}

	case core.EventKey:
		if !ev.Down {
			return false
		}
		switch ev.Key {
		case core.KeyR:
			l.applyConfig(scroll.DefaultConfig())
			return true
		case core.KeyS:
			l.saveConfig()
			return true
		}
		if v := l.hovered(e); v != nil {
			return keyScroll(v.Viewport(), ev.Key)
		}
	}
	return false
}

func (l *ScrollLayer) hovered(e *core.Engine) *ui.UIScrollView {
	x, y := e.Input.Mouse()
	for _, v := range l.views() {
		if v.HitTest(x, y) != scroll.TargetNone {
			return v
		}
	}
	return nil
}

// keyScroll maps navigation keys onto vp.
func keyScroll(vp *scroll.Viewport, k core.Key) bool {
	page := vp.Vertical().ViewportSize()
	switch k {
	case core.KeyHome:
		vp.Vertical().ScrollTo(0)
	case core.KeyEnd:
		vp.Vertical().ScrollTo(vp.Vertical().ScrollRange())
	case core.KeyPageUp:
		vp.ScrollBy(0, -page)
	case core.KeyPageDown, core.KeySpace:
		vp.ScrollBy(0, page)
	case core.KeyUp:
		vp.Wheel(0, -1, false)
	case core.KeyDown:
		vp.Wheel(0, 1, false)
	case core.KeyLeft:
		vp.Wheel(-1, 0, true)
	case core.KeyRight:
		vp.Wheel(1, 0, true)
	default:
		return false
	}
	return true
}
