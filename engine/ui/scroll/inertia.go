package scroll

import "math"

// FrameTick advances the axis by one rendered frame of dt seconds: it
// integrates velocity, eases an out-of-range position back to its bound
// and fades an idle thumb.
//
// Friction is not applied here; see FixedTick.
func (a *Axis) FrameTick(dt float64) {
	if !(dt > 0) || !isFinite(dt) {
		dt = 0
	}
	a.updateThumb()

	if math.Abs(a.velocity) <= a.cfg.VelocityFloor {
		a.velocity = 0
	}

	switch {
	case a.velocity != 0:
		if dt > 0 {
			before := a.position
			a.SetPosition(a.position + a.velocity*dt)
			// Saturated against the overflow bound.
			if a.position == before {
				a.velocity = 0
			}
		}
	case !a.dragging && !a.thumbDragging && !a.InRange():
		a.snapBack(dt)
	}

	a.fade(dt)
}

// FixedTick applies one step of friction. Hosts call it at FixedTickRate
// regardless of frame rate, so deceleration feels the same at any fps.
func (a *Axis) FixedTick() {
	a.velocity *= a.cfg.FrictionRate
}

// snapBack moves the position towards the nearest rest bound without
// overshooting it.
func (a *Axis) snapBack(dt float64) {
	target := 0.0
	if a.position > 0 {
		target = a.ScrollRange()
	}
	if math.Abs(target-a.position) < a.cfg.SnapEpsilon {
		a.SetPosition(target)
		return
	}
	k := min(1, dt*a.cfg.SnapRate)
	if k >= 1 {
		a.SetPosition(target)
		return
	}
	a.SetPosition(a.position + (target-a.position)*k)
}

func (a *Axis) fade(dt float64) {
	if !a.AtRest() {
		a.touch()
		return
	}
	if !a.cfg.Autohide {
		return
	}
	a.idle += dt
	if a.idle > a.cfg.AutohideDelay {
		a.opacity *= a.cfg.FadeFactor
	}
}
