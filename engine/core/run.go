package core

import (
	"fmt"
	"runtime"
	"time"
)

// FixedStepper turns variable frame times into a count of fixed-length
// ticks. A frame may yield zero, one or several ticks.
type FixedStepper struct {
	Step     time.Duration
	MaxSteps int // prevent spiral of death
	accum    time.Duration
}

// NewFixedStepper returns a stepper ticking at rate Hz.
func NewFixedStepper(rate float64, maxSteps int) *FixedStepper {
	return &FixedStepper{
		Step:     time.Duration(float64(time.Second) / rate),
		MaxSteps: maxSteps,
	}
}

// Advance adds frame to the accumulator and returns how many ticks are
// due. Time beyond MaxSteps ticks is dropped rather than carried over.
func (s *FixedStepper) Advance(frame time.Duration) int {
	if frame > 0 {
		s.accum += frame
	}
	n := 0
	for s.accum >= s.Step && n < s.MaxSteps {
		s.accum -= s.Step
		n++
	}
	if s.accum >= s.Step {
		s.accum %= s.Step
	}
	return n
}

// Alpha is the fraction of a tick accumulated so far, in [0, 1).
func (s *FixedStepper) Alpha() float64 {
	return float64(s.accum) / float64(s.Step)
}

// Run wires the platform window + renderer and executes the main loop.
//
// Two clocks drive the app: OnUpdate once per frame with the measured
// frame time, and OnFixedUpdate at cfg.FixedRate regardless of frame
// rate.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cfg = cfg.withDefaults()
	log := cfg.Log

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), Log: log, start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		switch e := ev.(type) {
		case EventResize:
			if e.W >= 1 && e.H >= 1 {
				rend.Resize(e.W, e.H)
			}
		case EventCloseRequested:
			win.RequestClose()
		}
		if !eng.Layers.Dispatch(eng, ev) {
			app.OnEvent(eng, ev)
		}
	})

	app.OnStart(eng)
	log.Info("engine start", "title", cfg.Title, "fixed_rate", cfg.FixedRate, "layers", eng.Layers.Len())

	var (
		stepper = NewFixedStepper(cfg.FixedRate, cfg.MaxFixedSteps)
		prev    = time.Now()
		clear   = cfg.ClearColor
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		dt := frame.Seconds()
		app.OnUpdate(eng, dt)
		eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })

		for n := stepper.Advance(frame); n > 0; n-- {
			app.OnFixedUpdate(eng)
			eng.Layers.ForEach(func(l Layer) { l.OnFixedUpdate(eng) })
		}
		alpha := stepper.Alpha()

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })

		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	for {
		l, ok := eng.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(eng)
	}
	log.Info("engine exit", "uptime", eng.Uptime().Round(time.Millisecond))
	return nil
}
