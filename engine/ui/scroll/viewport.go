package scroll

import (
	"fmt"
	"log/slog"
)

// Target is what a drag session holds on to.
type Target uint8

const (
	TargetNone Target = iota
	TargetContent
	TargetHorizontalThumb
	TargetVerticalThumb
)

func (t Target) String() string {
	switch t {
	case TargetNone:
		return "TargetNone"
	case TargetContent:
		return "TargetContent"
	case TargetHorizontalThumb:
		return "TargetHorizontalThumb"
	case TargetVerticalThumb:
		return "TargetVerticalThumb"
	default:
		panic("invalid Target")
	}
}

// Viewport clips a content region into a fixed window and scrolls it on
// two independent axes. It is the surface hosts talk to: input events
// and clock ticks go in, a content translation and two thumb rects come
// out.
type Viewport struct {
	cfg  Config
	axes [2]*Axis
	drag Target

	listeners []func(Orientation)
	log       *slog.Logger
}

// NewViewport returns an empty viewport using cfg.
func NewViewport(cfg Config) (*Viewport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	v := &Viewport{cfg: cfg, log: slog.New(slog.DiscardHandler)}
	for o := Horizontal; o <= Vertical; o++ {
		a := NewAxis(o, cfg)
		a.OnChange(func() { v.emit(o) })
		v.axes[o] = a
	}
	return v, nil
}

// NewDefaultViewport returns an empty viewport using DefaultConfig.
func NewDefaultViewport() *Viewport {
	v, err := NewViewport(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return v
}

// SetLogger routes gesture transitions to l at debug level.
func (v *Viewport) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	v.log = l
}

// Config returns the active tuning.
func (v *Viewport) Config() Config { return v.cfg }

// SetConfig swaps the tuning in place. State is kept; positions are
// re-clamped against the new overflow allowance.
func (v *Viewport) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	v.cfg = cfg
	for _, a := range v.axes {
		a.setConfig(cfg)
	}
	return nil
}

// Axis returns the axis for o.
func (v *Viewport) Axis(o Orientation) *Axis { return v.axes[o] }

func (v *Viewport) Horizontal() *Axis { return v.axes[Horizontal] }
func (v *Viewport) Vertical() *Axis   { return v.axes[Vertical] }

// OnScrollChanged registers fn to be called with the orientation whose
// position changed. No-op writes are not reported.
func (v *Viewport) OnScrollChanged(fn func(Orientation)) {
	v.listeners = append(v.listeners, fn)
}

func (v *Viewport) emit(o Orientation) {
	for _, fn := range v.listeners {
		fn(o)
	}
}

// Resize sets the visible window size.
func (v *Viewport) Resize(w, h float64) {
	v.axes[Horizontal].SetViewportSize(w)
	v.axes[Vertical].SetViewportSize(h)
}

// SetContentBounds sets the full content size.
func (v *Viewport) SetContentBounds(w, h float64) {
	v.axes[Horizontal].SetContentSize(w)
	v.axes[Vertical].SetContentSize(h)
}

// DragStart opens a drag session on t. A session already in progress is
// released without velocity first.
func (v *Viewport) DragStart(t Target) {
	if v.drag != TargetNone {
		v.cancelDrag()
	}
	switch t {
	case TargetContent:
		for _, a := range v.axes {
			a.DragStart()
		}
	case TargetHorizontalThumb:
		v.axes[Horizontal].ThumbDragStart()
	case TargetVerticalThumb:
		v.axes[Vertical].ThumbDragStart()
	default:
		return
	}
	v.drag = t
	v.log.Debug("drag start", "target", t)
}

// DragMove reports the pointer displacement since DragStart.
func (v *Viewport) DragMove(t Target, dx, dy float64) {
	if t != v.drag {
		return
	}
	switch t {
	case TargetContent:
		v.axes[Horizontal].DragMove(dx)
		v.axes[Vertical].DragMove(dy)
	case TargetHorizontalThumb:
		v.axes[Horizontal].ThumbDragMove(dx)
	case TargetVerticalThumb:
		v.axes[Vertical].ThumbDragMove(dy)
	}
}

// DragEnd closes the session. dx, dy and elapsed (seconds) describe the
// last pointer sample and set the release velocity of content drags.
func (v *Viewport) DragEnd(t Target, dx, dy, elapsed float64) {
	if t != v.drag || t == TargetNone {
		return
	}
	switch t {
	case TargetContent:
		v.axes[Horizontal].DragEnd(dx, elapsed)
		v.axes[Vertical].DragEnd(dy, elapsed)
	case TargetHorizontalThumb:
		v.axes[Horizontal].ThumbDragEnd()
	case TargetVerticalThumb:
		v.axes[Vertical].ThumbDragEnd()
	}
	v.drag = TargetNone
	v.log.Debug("drag end", "target", t,
		"vx", v.axes[Horizontal].Velocity(), "vy", v.axes[Vertical].Velocity())
}

func (v *Viewport) cancelDrag() {
	t := v.drag
	v.DragEnd(t, 0, 0, 0)
}

// Dragging reports the active drag target, if any.
func (v *Viewport) Dragging() Target { return v.drag }

// Wheel applies a wheel event to whichever axis WheelTarget selects. The
// delta along that axis is used. When the target was forced, by alt or by
// a single active axis, a wheel that only moves along the other axis is
// redirected; with both axes active and no alt, a purely sideways wheel
// does nothing.
func (v *Viewport) Wheel(dx, dy float64, alt bool) {
	h, vert := v.axes[Horizontal], v.axes[Vertical]
	o, ok := WheelTarget(h, vert, alt)
	if !ok {
		return
	}
	d := dy
	if o == Horizontal {
		d = dx
	}
	forced := alt || !(h.Active() && vert.Active())
	if d == 0 && forced {
		d = dx + dy
	}
	if d == 0 {
		return
	}
	v.axes[o].Wheel(d)
}

// FrameTick advances both axes by one frame of dt seconds.
func (v *Viewport) FrameTick(dt float64) {
	for _, a := range v.axes {
		a.FrameTick(dt)
	}
}

// FixedTick applies one friction step to both axes.
func (v *Viewport) FixedTick() {
	for _, a := range v.axes {
		a.FixedTick()
	}
}

// ContentTranslation is the offset renderers apply to the content.
func (v *Viewport) ContentTranslation() (x, y float64) {
	return -v.axes[Horizontal].Position(), -v.axes[Vertical].Position()
}

// Thumb returns the thumb geometry of axis o.
func (v *Viewport) Thumb(o Orientation) ThumbRect { return v.axes[o].Thumb() }

// State summarises both axes.
func (v *Viewport) State() GestureState {
	if v.drag != TargetNone {
		return StateDragging
	}
	for _, a := range v.axes {
		if !a.AtRest() {
			return StateCoasting
		}
	}
	return StateIdle
}

// ScrollTo moves both axes to (x, y) within their rest ranges.
func (v *Viewport) ScrollTo(x, y float64) {
	v.axes[Horizontal].ScrollTo(x)
	v.axes[Vertical].ScrollTo(y)
}

// ScrollBy moves both axes relative to their current positions.
func (v *Viewport) ScrollBy(dx, dy float64) {
	v.axes[Horizontal].ScrollBy(dx)
	v.axes[Vertical].ScrollBy(dy)
}

// Ratio returns position/ScrollRange of axis o.
func (v *Viewport) Ratio(o Orientation) float64 { return v.axes[o].Ratio() }

// SetRatio sets position/ScrollRange of axis o.
func (v *Viewport) SetRatio(o Orientation, r float64) { v.axes[o].SetRatio(r) }

// EnsureVisible scrolls as little as possible so the content rect
// (x, y, w, h) lies inside the viewport. Rects larger than the viewport
// are aligned to their start.
func (v *Viewport) EnsureVisible(x, y, w, h float64) {
	ensure(v.axes[Horizontal], x, w)
	ensure(v.axes[Vertical], y, h)
}

func ensure(a *Axis, start, size float64) {
	pos := a.Position()
	switch {
	case start < pos || size > a.ViewportSize():
		a.ScrollTo(start)
	case start+size > pos+a.ViewportSize():
		a.ScrollTo(start + size - a.ViewportSize())
	}
}

func (v *Viewport) String() string {
	h, vv := v.axes[Horizontal], v.axes[Vertical]
	return fmt.Sprintf("viewport{%s x=%.2f/%.2f vx=%.2f y=%.2f/%.2f vy=%.2f}",
		v.State(), h.Position(), h.ScrollRange(), h.Velocity(),
		vv.Position(), vv.ScrollRange(), vv.Velocity())
}
