package scroll

// GestureState is the state of the content gesture machine.
type GestureState uint8

const (
	// StateIdle is the default state: nothing is moving.
	StateIdle GestureState = iota
	// StateDragging is reported while a pointer holds the content or a
	// thumb.
	StateDragging
	// StateCoasting is reported while the content moves on its own,
	// either from release velocity or from snap-back.
	StateCoasting
)

func (s GestureState) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StateDragging:
		return "StateDragging"
	case StateCoasting:
		return "StateCoasting"
	default:
		panic("invalid GestureState")
	}
}

// DragStart begins a content drag. It cancels any coast and, because the
// drag now owns the position, any pending snap-back.
func (a *Axis) DragStart() {
	if !a.Active() {
		return
	}
	a.dragging = true
	a.dragOrigin = a.position
	a.velocity = 0
	a.touch()
}

// DragMove follows the pointer: content moves with the finger, so a
// positive delta scrolls towards the start.
func (a *Axis) DragMove(deltaSinceStart float64) {
	if !a.dragging {
		return
	}
	a.touch()
	a.SetPosition(a.dragOrigin - deltaSinceStart)
}

// DragEnd releases the content with a velocity derived from the last
// pointer sample. A zero elapsed time releases with no velocity.
func (a *Axis) DragEnd(deltaSinceLastSample, elapsedSinceLastSample float64) {
	if !a.dragging {
		return
	}
	a.dragging = false
	a.touch()
	if !(elapsedSinceLastSample > 0) || !isFinite(deltaSinceLastSample) {
		a.velocity = 0
		return
	}
	a.velocity = -(deltaSinceLastSample * a.cfg.ReleaseGain) / elapsedSinceLastSample
}

// ThumbDragStart grabs the scrollbar thumb.
func (a *Axis) ThumbDragStart() {
	if !a.Active() {
		return
	}
	a.thumbDragging = true
	a.thumbOrigin = a.position
	a.velocity = 0
	a.touch()
}

// ThumbDragMove moves the thumb by delta thumb units since the grab. The
// delta goes through the inverse map; thumb drags never coast.
func (a *Axis) ThumbDragMove(thumbDeltaSinceStart float64) {
	if !a.thumbDragging {
		return
	}
	a.touch()
	d := InverseMap(thumbDeltaSinceStart, a.ScrollRange(), a.viewport, a.thumbSize)
	a.SetPosition(a.thumbOrigin + d)
}

// ThumbDragEnd releases the thumb.
func (a *Axis) ThumbDragEnd() {
	if !a.thumbDragging {
		return
	}
	a.thumbDragging = false
	a.velocity = 0
	a.touch()
}

// Wheel scrolls by delta notches of viewport/WheelDivisor each. Wheel
// input stops coasting and is clamped hard to the rest range.
func (a *Axis) Wheel(delta float64) {
	if !a.Active() || a.dragging || a.thumbDragging || !isFinite(delta) {
		return
	}
	a.velocity = 0
	a.touch()
	step := a.viewport / a.cfg.WheelDivisor
	a.SetPosition(clamp(a.position+delta*step, 0, a.ScrollRange()))
}

// WheelTarget picks the axis a wheel event scrolls. With a single active
// axis that axis wins; with both, vertical wins unless alt is held. ok is
// false when neither axis can scroll.
func WheelTarget(h, v *Axis, alt bool) (o Orientation, ok bool) {
	ha, va := h.Active(), v.Active()
	switch {
	case ha && va:
		if alt {
			return Horizontal, true
		}
		return Vertical, true
	case ha:
		return Horizontal, true
	case va:
		return Vertical, true
	default:
		return Vertical, false
	}
}
