package core

import (
	"log/slog"
	"time"

	"github.com/hubastard/glide/engine/colors"
)

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called once per frame with the frame time
	OnFixedUpdate(e *Engine)           // called at Config.FixedRate, independent of frames
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events not handled by a layer
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	Log      *slog.Logger
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// PushLayer attaches l on top of the stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Renderer abstraction. Coordinates are framebuffer pixels, origin
// top-left, y down.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	FillRect(x, y, w, h float32, c colors.Color)
	PushClip(x, y, w, h float32)
	PopClip()
	Shutdown()
}

// Event model (can expand over time).
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X, Y   float64
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

// EventScroll is a wheel or trackpad scroll. Positive Yoff scrolls up,
// matching GLFW.
type EventScroll struct {
	Xoff, Yoff float64
	Mods       Mod
}

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyR
	KeyS
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA
	// FixedRate is the OnFixedUpdate cadence in Hz. Zero means 10.
	FixedRate float64
	// MaxFixedSteps caps fixed updates per frame. Zero means 10.
	MaxFixedSteps int
	Log           *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.FixedRate <= 0 {
		c.FixedRate = 10
	}
	if c.MaxFixedSteps <= 0 {
		c.MaxFixedSteps = 10
	}
	if c.Log == nil {
		c.Log = slog.Default()
	}
	return c
}
