package ui

import (
	"math"
	"time"
)

const (
	defaultDragDeadZone = 4.0 // pixels
	defaultDragStall    = 100 * time.Millisecond
)

type DragPhase int

const (
	DragBegin DragPhase = iota
	DragUpdate
	DragFinish
)

// DragSample describes one step of a pointer drag.
type DragSample struct {
	Phase DragPhase
	// DX, DY is the displacement since the press.
	DX, DY float64
	// LastDX, LastDY and Elapsed (seconds) describe the most recent
	// movement sample, for release velocity.
	LastDX, LastDY float64
	Elapsed        float64
}

// DragTracker turns press/move/release into drag samples. Movement
// inside the dead zone does not start a drag, so a press and release in
// place stays a click.
type DragTracker struct {
	DeadZone float64
	// Stall is how long the pointer may rest before release; past it the
	// release carries no velocity.
	Stall time.Duration

	pressed  bool
	dragging bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	lastT    time.Time
	sampleDX float64
	sampleDY float64
	sampleDT float64
}

func NewDragTracker() *DragTracker {
	return &DragTracker{DeadZone: defaultDragDeadZone, Stall: defaultDragStall}
}

func (d *DragTracker) Pressed() bool  { return d.pressed }
func (d *DragTracker) Dragging() bool { return d.dragging }

func (d *DragTracker) Press(x, y float64, t time.Time) {
	*d = DragTracker{DeadZone: d.DeadZone, Stall: d.Stall}
	d.pressed = true
	d.startX, d.startY = x, y
	d.lastX, d.lastY = x, y
	d.lastT = t
}

// Begin starts the drag immediately, skipping the dead zone.
func (d *DragTracker) Begin() {
	if d.pressed {
		d.dragging = true
	}
}

// Move reports the drag step for a pointer move, if a drag is in progress
// or this move starts one.
func (d *DragTracker) Move(x, y float64, t time.Time) (DragSample, bool) {
	if !d.pressed {
		return DragSample{}, false
	}
	phase := DragUpdate
	if !d.dragging {
		if math.Hypot(x-d.startX, y-d.startY) <= d.DeadZone {
			return DragSample{}, false
		}
		d.dragging = true
		phase = DragBegin
	}
	d.record(x, y, t)
	return d.sample(phase, x, y), true
}

// Release ends the press. It reports a DragFinish sample only when a drag
// was in progress.
func (d *DragTracker) Release(x, y float64, t time.Time) (DragSample, bool) {
	if !d.pressed {
		return DragSample{}, false
	}
	d.pressed = false
	if !d.dragging {
		return DragSample{}, false
	}
	d.dragging = false
	if x != d.lastX || y != d.lastY {
		d.record(x, y, t)
	} else if t.Sub(d.lastT) > d.Stall {
		d.sampleDX, d.sampleDY = 0, 0
	}
	return d.sample(DragFinish, x, y), true
}

// Cancel drops the press without a finish sample.
func (d *DragTracker) Cancel() {
	d.pressed = false
	d.dragging = false
}

func (d *DragTracker) record(x, y float64, t time.Time) {
	d.sampleDX, d.sampleDY = x-d.lastX, y-d.lastY
	d.sampleDT = t.Sub(d.lastT).Seconds()
	d.lastX, d.lastY = x, y
	d.lastT = t
}

func (d *DragTracker) sample(p DragPhase, x, y float64) DragSample {
	return DragSample{
		Phase:   p,
		DX:      x - d.startX,
		DY:      y - d.startY,
		LastDX:  d.sampleDX,
		LastDY:  d.sampleDY,
		Elapsed: d.sampleDT,
	}
}
