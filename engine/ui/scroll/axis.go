// Package scroll implements an inertial scroll viewport: content panned by
// drag or wheel, coasting with friction after release, pulled into a small
// overflow band and eased back to rest, with a proportional scrollbar
// thumb per axis.
//
// Everything here is single-threaded. Hosts deliver input events and the
// two clocks (FrameTick once per rendered frame, FixedTick at
// FixedTickRate) from the same goroutine.
package scroll

// Orientation names one scroll axis.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Orientation")
	}
}

// Axis is the scroll bookkeeping of a single orientation. Its methods are
// the only way to mutate it, so the position bounds are enforced in one
// place (SetPosition).
type Axis struct {
	orientation Orientation
	cfg         Config

	content  float64
	viewport float64

	position float64
	velocity float64

	dragging   bool
	dragOrigin float64

	thumbDragging bool
	thumbOrigin   float64 // content position when the thumb was grabbed

	thumbSize float64
	thumbPos  float64

	idle    float64
	opacity float64

	onChange func()
}

// NewAxis returns an empty axis. cfg is assumed valid.
func NewAxis(o Orientation, cfg Config) *Axis {
	return &Axis{orientation: o, cfg: cfg, opacity: 1}
}

func (a *Axis) Orientation() Orientation { return a.orientation }
func (a *Axis) ContentSize() float64     { return a.content }
func (a *Axis) ViewportSize() float64    { return a.viewport }
func (a *Axis) Position() float64        { return a.position }
func (a *Axis) Velocity() float64        { return a.velocity }
func (a *Axis) Dragging() bool           { return a.dragging }
func (a *Axis) ThumbDragging() bool      { return a.thumbDragging }

// ScrollRange is the span the position occupies at rest. Never negative.
func (a *Axis) ScrollRange() float64 { return max(0, a.content-a.viewport) }

// OverflowAllowance is how far past either end the position may go
// transiently.
func (a *Axis) OverflowAllowance() float64 { return a.viewport * a.cfg.OverflowRate }

// Active reports whether there is anything to scroll.
func (a *Axis) Active() bool { return a.ScrollRange() > 0 }

// InRange reports whether the position lies in [0, ScrollRange].
func (a *Axis) InRange() bool { return a.position >= 0 && a.position <= a.ScrollRange() }

// AtRest reports whether the axis is not held, not coasting and inside
// its range.
func (a *Axis) AtRest() bool {
	return !a.dragging && !a.thumbDragging && a.velocity == 0 && a.InRange()
}

// OnChange registers fn to be called whenever the position changes.
func (a *Axis) OnChange(fn func()) { a.onChange = fn }

// SetContentSize updates the content extent. Negative sizes count as 0.
// Writing the current size is a no-op.
func (a *Axis) SetContentSize(v float64) {
	if v = sanitizeSize(v); v == a.content {
		return
	}
	a.content = v
	a.resized()
}

// SetViewportSize updates the visible extent. Negative sizes count as 0.
func (a *Axis) SetViewportSize(v float64) {
	if v = sanitizeSize(v); v == a.viewport {
		return
	}
	a.viewport = v
	a.resized()
}

// resized pulls the position back into range. A drag or a coast keeps
// its position unless the overflow band itself moved past it.
func (a *Axis) resized() {
	if !a.dragging && !a.thumbDragging && a.velocity == 0 {
		a.SetPosition(clamp(a.position, 0, a.ScrollRange()))
	} else {
		a.SetPosition(a.position)
	}
	a.updateThumb()
}

// SetPosition hard-clamps v to the overflow band and assigns it. It
// reports whether the position changed; unchanged writes do not notify.
func (a *Axis) SetPosition(v float64) bool {
	if !isFinite(v) {
		return false
	}
	ov := a.OverflowAllowance()
	v = clamp(v, -ov, a.ScrollRange()+ov)
	if v == a.position {
		return false
	}
	a.position = v
	a.updateThumb()
	if a.onChange != nil {
		a.onChange()
	}
	return true
}

// Ratio is position/ScrollRange, or 0 when there is nothing to scroll.
func (a *Axis) Ratio() float64 {
	r := a.ScrollRange()
	if r == 0 {
		return 0
	}
	return a.position / r
}

// SetRatio moves to ratio*ScrollRange. No-op when there is nothing to
// scroll.
func (a *Axis) SetRatio(ratio float64) {
	r := a.ScrollRange()
	if r == 0 {
		return
	}
	a.SetPosition(ratio * r)
}

// ScrollTo stops any coast and moves to p, clamped to the rest range.
func (a *Axis) ScrollTo(p float64) bool {
	a.Stop()
	a.touch()
	return a.SetPosition(clamp(p, 0, a.ScrollRange()))
}

// ScrollBy is ScrollTo relative to the current position.
func (a *Axis) ScrollBy(d float64) bool { return a.ScrollTo(a.position + d) }

// Stop cancels coasting. Snap-back still runs on the next frame.
func (a *Axis) Stop() { a.velocity = 0 }

// Thumb returns the current thumb geometry. Inactive axes report a
// hidden thumb.
func (a *Axis) Thumb() ThumbRect {
	return ThumbRect{
		Pos:     a.thumbPos,
		Size:    a.thumbSize,
		Visible: a.Active(),
		Opacity: a.opacity,
	}
}

func (a *Axis) setConfig(cfg Config) {
	a.cfg = cfg
	a.resized()
}

func (a *Axis) updateThumb() {
	a.thumbSize = ThumbSize(a.viewport, a.content, a.cfg.MinThumbSize)
	a.thumbPos = ForwardMap(a.position, a.ScrollRange(), a.viewport, a.thumbSize)
}

// touch marks user interaction: the thumb becomes fully visible again.
func (a *Axis) touch() {
	a.idle = 0
	a.opacity = 1
}

func sanitizeSize(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	return v
}
