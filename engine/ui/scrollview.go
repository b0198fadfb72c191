package ui

import (
	"time"

	"github.com/hubastard/glide/engine/colors"
	"github.com/hubastard/glide/engine/ui/scroll"
)

// UIScrollView clips a single content element to its inner rect and
// scrolls it with drag, wheel and scrollbar input. Content is laid out
// unbounded and then shifted by the viewport's translation.
//
// The view has two clocks: Update must be called every frame and
// FixedUpdate at scroll.FixedTickRate.
type UIScrollView struct {
	Common[*UIScrollView]
	vp      *scroll.Viewport
	content UIElement
	drag    *DragTracker
	target  scroll.Target

	trackColor colors.Color
	thumbColor colors.Color
}

func ScrollView(content UIElement) *UIScrollView {
	s := &UIScrollView{
		vp:         scroll.NewDefaultViewport(),
		content:    content,
		drag:       NewDragTracker(),
		trackColor: colors.Slate.WithAlpha(0.5),
		thumbColor: colors.White.WithAlpha(0.8),
	}
	s.Common = NewCommon(s)
	return s.WidthExpand().HeightExpand().Children(content)
}

func (s *UIScrollView) TrackColor(c colors.Color) *UIScrollView { s.trackColor = c; return s }
func (s *UIScrollView) ThumbColor(c colors.Color) *UIScrollView { s.thumbColor = c; return s }

// Viewport exposes the scroll state driving the view.
func (s *UIScrollView) Viewport() *scroll.Viewport { return s.vp }

// SetConfig swaps the tuning at runtime, keeping the scroll position.
func (s *UIScrollView) SetConfig(cfg scroll.Config) error { return s.vp.SetConfig(cfg) }

func (s *UIScrollView) Layout(ctx *Context, constraints Constraints) LayoutResult {
	b := &s.base
	b.SetSize(
		b.resolve(0, b.padSum(0), constraints.Min[0], constraints.Max[0]),
		b.resolve(1, b.padSum(1), constraints.Min[1], constraints.Max[1]),
	)
	res := s.content.Layout(ctx, Constraints{})
	s.vp.SetContentBounds(float64(res.Size[0]), float64(res.Size[1]))
	s.place()
	return LayoutResult{Size: b.size}
}

// place syncs the viewport to the inner rect, which the parent may have
// changed after Layout, and moves the content subtree to the current
// scroll translation.
func (s *UIScrollView) place() {
	w, h := s.base.innerSize()
	s.vp.Resize(float64(w), float64(h))

	ix, iy := s.base.innerPosition()
	tx, ty := s.vp.ContentTranslation()
	cb := s.content.Node()
	cb.Translate(ix+float32(tx)-cb.position[0], iy+float32(ty)-cb.position[1])
}

func (s *UIScrollView) Draw(ctx *Context) {
	if s.base.parent == nil {
		layoutRoot(ctx, s)
	}
	s.base.drawBackground(ctx)
	s.place()

	ix, iy := s.base.innerPosition()
	iw, ih := s.base.innerSize()
	ctx.Renderer.PushClip(ix, iy, iw, ih)
	s.content.Draw(ctx)
	for _, o := range []scroll.Orientation{scroll.Horizontal, scroll.Vertical} {
		track, thumb, op, ok := s.bar(o)
		if !ok || op <= 0 {
			continue
		}
		ctx.Renderer.FillRect(track[0], track[1], track[2], track[3], s.trackColor.WithAlpha(s.trackColor[3]*op))
		c := colors.Lerp(s.trackColor, s.thumbColor, op).WithAlpha(s.thumbColor[3] * op)
		ctx.Renderer.FillRect(thumb[0], thumb[1], thumb[2], thumb[3], c)
	}
	ctx.Renderer.PopClip()
}

// bar returns the track and thumb rects (x, y, w, h) for orientation o.
func (s *UIScrollView) bar(o scroll.Orientation) (track, thumb [4]float32, opacity float32, ok bool) {
	t := s.vp.Thumb(o)
	if !t.Visible {
		return track, thumb, 0, false
	}
	ix, iy := s.base.innerPosition()
	iw, ih := s.base.innerSize()
	th := float32(s.vp.Config().ThumbThickness)
	pos, size := float32(t.Pos), float32(t.Size)
	if o == scroll.Vertical {
		track = [4]float32{ix + iw - th, iy, th, ih}
		thumb = [4]float32{ix + iw - th, iy + pos, th, size}
	} else {
		track = [4]float32{ix, iy + ih - th, iw, th}
		thumb = [4]float32{ix + pos, iy + ih - th, size, th}
	}
	return track, thumb, float32(t.Opacity), true
}

// HitTest reports which part of the view is under the point.
func (s *UIScrollView) HitTest(x, y float64) scroll.Target {
	px, py := float32(x), float32(y)
	if !s.base.Contains(px, py) {
		return scroll.TargetNone
	}
	if _, r, _, ok := s.bar(scroll.Vertical); ok && inRect(r, px, py) {
		return scroll.TargetVerticalThumb
	}
	if _, r, _, ok := s.bar(scroll.Horizontal); ok && inRect(r, px, py) {
		return scroll.TargetHorizontalThumb
	}
	return scroll.TargetContent
}

func inRect(r [4]float32, x, y float32) bool {
	return x >= r[0] && x < r[0]+r[2] && y >= r[1] && y < r[1]+r[3]
}

// PointerDown starts tracking a press. Thumb presses start dragging
// immediately, content presses once the pointer leaves the dead zone.
func (s *UIScrollView) PointerDown(x, y float64, t time.Time) bool {
	target := s.HitTest(x, y)
	if target == scroll.TargetNone {
		return false
	}
	s.target = target
	s.drag.Press(x, y, t)
	if target != scroll.TargetContent {
		s.drag.Begin()
		s.vp.DragStart(target)
	}
	return true
}

func (s *UIScrollView) PointerMove(x, y float64, t time.Time) bool {
	sample, ok := s.drag.Move(x, y, t)
	if !ok {
		return false
	}
	if sample.Phase == DragBegin && s.target == scroll.TargetContent {
		s.vp.DragStart(scroll.TargetContent)
	}
	s.vp.DragMove(s.target, sample.DX, sample.DY)
	return true
}

func (s *UIScrollView) PointerUp(x, y float64, t time.Time) bool {
	target := s.target
	s.target = scroll.TargetNone
	sample, ok := s.drag.Release(x, y, t)
	if !ok {
		return target != scroll.TargetNone
	}
	s.vp.DragMove(target, sample.DX, sample.DY)
	s.vp.DragEnd(target, sample.LastDX, sample.LastDY, sample.Elapsed)
	return true
}

// CancelPointer abandons a press or drag in progress. The content stays
// where it is and does not coast.
func (s *UIScrollView) CancelPointer() {
	s.drag.Cancel()
	s.vp.DragEnd(s.target, 0, 0, 0)
	s.target = scroll.TargetNone
}

// Wheel scrolls when the pointer at (x, y) is over the view. dx, dy are
// in wheel notches, positive toward the end of the content.
func (s *UIScrollView) Wheel(x, y, dx, dy float64, alt bool) bool {
	if !s.base.Contains(float32(x), float32(y)) {
		return false
	}
	s.vp.Wheel(dx, dy, alt)
	return true
}

// Update advances the per-frame clock by dt seconds.
func (s *UIScrollView) Update(dt float64) { s.vp.FrameTick(dt) }

// FixedUpdate advances the fixed-rate friction clock.
func (s *UIScrollView) FixedUpdate() { s.vp.FixedTick() }

// ScrollIntoView scrolls the least distance that brings e, a descendant
// of the content, fully into view.
func (s *UIScrollView) ScrollIntoView(e UIElement) {
	cx, cy := s.content.Node().Pos()
	x, y := e.Node().Pos()
	w, h := e.Node().Size()
	s.vp.EnsureVisible(float64(x-cx), float64(y-cy), float64(w), float64(h))
}
