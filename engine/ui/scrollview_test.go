package ui

import (
	"testing"
	"time"

	"github.com/hubastard/glide/engine/colors"
	"github.com/hubastard/glide/engine/ui/scroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newList builds a 100x100 view over ten 100x50 rows.
func newList(t *testing.T) (*UIScrollView, []*UIBox, *Context, *recorder) {
	t.Helper()
	rows := make([]*UIBox, 10)
	kids := make([]UIElement, len(rows))
	for i := range rows {
		rows[i] = Box(100, 50).Color(colors.HSV(float32(i)/10, 0.6, 0.9))
		kids[i] = rows[i]
	}
	sv := ScrollView(View(kids...).FlowDirection(LayoutVertical).Gap(0))
	ctx, r := newCtx(100, 100)
	sv.Draw(ctx)
	return sv, rows, ctx, r
}

func TestScrollViewLayout(t *testing.T) {
	sv, _, _, r := newList(t)
	vp := sv.Viewport()
	assert.Equal(t, [2]float32{100, 100}, size(sv))
	assert.Equal(t, 400.0, vp.Vertical().ScrollRange())
	assert.False(t, vp.Horizontal().Active())

	require.Len(t, r.clips, 1)
	assert.Equal(t, [4]float32{0, 0, 100, 100}, r.clips[0])
	assert.Zero(t, r.depth)

	n := len(r.fills)
	require.GreaterOrEqual(t, n, 2)
	assert.Equal(t, [4]float32{90, 0, 10, 100}, r.fills[n-2].Rect, "track")
	assert.Equal(t, [4]float32{90, 0, 10, 20}, r.fills[n-1].Rect, "thumb")
}

func TestScrollViewHitTest(t *testing.T) {
	sv, _, _, _ := newList(t)
	assert.Equal(t, scroll.TargetVerticalThumb, sv.HitTest(95, 5))
	assert.Equal(t, scroll.TargetContent, sv.HitTest(95, 50), "track below the thumb")
	assert.Equal(t, scroll.TargetContent, sv.HitTest(50, 50))
	assert.Equal(t, scroll.TargetNone, sv.HitTest(150, 5))
}

func TestScrollViewContentDrag(t *testing.T) {
	sv, rows, ctx, _ := newList(t)
	vp := sv.Viewport()
	t0 := time.Unix(0, 0)

	require.True(t, sv.PointerDown(50, 80, t0))
	assert.False(t, sv.PointerMove(50, 78, t0.Add(10*time.Millisecond)), "inside the dead zone")
	assert.Equal(t, scroll.TargetNone, vp.Dragging())

	require.True(t, sv.PointerMove(50, 30, t0.Add(20*time.Millisecond)))
	assert.Equal(t, scroll.TargetContent, vp.Dragging())
	assert.Equal(t, 50.0, vp.Vertical().Position())
	assert.Equal(t, scroll.StateDragging, vp.State())

	sv.Draw(ctx)
	assert.Equal(t, [2]float32{0, -50}, pos(rows[0]))
	assert.Equal(t, [2]float32{0, 0}, pos(rows[1]))

	require.True(t, sv.PointerUp(50, 30, t0.Add(30*time.Millisecond)))
	assert.InDelta(t, 2750, vp.Vertical().Velocity(), 1e-6)
	assert.Equal(t, scroll.StateCoasting, vp.State())

	sv.Update(0.016)
	assert.Greater(t, vp.Vertical().Position(), 50.0)
	sv.FixedUpdate()
	assert.InDelta(t, 2750*vp.Config().FrictionRate, vp.Vertical().Velocity(), 1e-6)
}

func TestScrollViewThumbDrag(t *testing.T) {
	sv, _, _, _ := newList(t)
	vp := sv.Viewport()
	t0 := time.Unix(0, 0)

	require.True(t, sv.PointerDown(95, 5, t0))
	assert.Equal(t, scroll.TargetVerticalThumb, vp.Dragging())
	require.True(t, sv.PointerMove(95, 45, t0.Add(10*time.Millisecond)))
	// 40px of thumb over an 80px track maps to 200px of content
	assert.InDelta(t, 200, vp.Vertical().Position(), 1e-9)

	require.True(t, sv.PointerUp(95, 45, t0.Add(20*time.Millisecond)))
	assert.Zero(t, vp.Vertical().Velocity())
	assert.Equal(t, scroll.StateIdle, vp.State())
}

func TestScrollViewCancelPointer(t *testing.T) {
	sv, _, _, _ := newList(t)
	vp := sv.Viewport()
	t0 := time.Unix(0, 0)

	require.True(t, sv.PointerDown(50, 80, t0))
	require.True(t, sv.PointerMove(50, 30, t0.Add(10*time.Millisecond)))
	assert.Equal(t, 50.0, vp.Vertical().Position())

	sv.CancelPointer()
	assert.Equal(t, scroll.TargetNone, vp.Dragging())
	assert.Zero(t, vp.Vertical().Velocity())
	assert.Equal(t, scroll.StateIdle, vp.State())

	// the rest of the gesture is ignored
	assert.False(t, sv.PointerMove(50, 0, t0.Add(20*time.Millisecond)))
	assert.False(t, sv.PointerUp(50, 0, t0.Add(30*time.Millisecond)))
	assert.Equal(t, 50.0, vp.Vertical().Position())
	assert.Zero(t, vp.Vertical().Velocity())
}

func TestScrollViewClickDoesNotScroll(t *testing.T) {
	sv, _, _, _ := newList(t)
	t0 := time.Unix(0, 0)
	require.True(t, sv.PointerDown(50, 50, t0))
	assert.True(t, sv.PointerUp(51, 50, t0.Add(50*time.Millisecond)))
	assert.Zero(t, sv.Viewport().Vertical().Position())
	assert.Equal(t, scroll.StateIdle, sv.Viewport().State())

	assert.False(t, sv.PointerDown(150, 50, t0))
	assert.False(t, sv.PointerUp(150, 50, t0))
}

func TestScrollViewWheel(t *testing.T) {
	sv, _, _, _ := newList(t)
	vp := sv.Viewport()
	require.True(t, sv.Wheel(50, 50, 0, 1, false))
	assert.Equal(t, 6.25, vp.Vertical().Position())

	assert.False(t, sv.Wheel(150, 50, 0, 1, false))
	assert.Equal(t, 6.25, vp.Vertical().Position())
}

func TestScrollViewScrollIntoView(t *testing.T) {
	sv, rows, ctx, _ := newList(t)
	sv.ScrollIntoView(rows[9])
	assert.Equal(t, 400.0, sv.Viewport().Vertical().Position())

	sv.Draw(ctx)
	sv.ScrollIntoView(rows[2])
	assert.Equal(t, 100.0, sv.Viewport().Vertical().Position())
}

func TestScrollViewSetConfig(t *testing.T) {
	sv, _, ctx, r := newList(t)
	cfg := scroll.DefaultConfig()
	cfg.ThumbThickness = 4
	require.NoError(t, sv.SetConfig(cfg))

	r.fills = nil
	sv.Draw(ctx)
	n := len(r.fills)
	assert.Equal(t, [4]float32{96, 0, 4, 100}, r.fills[n-2].Rect)

	cfg.FrictionRate = 2
	assert.ErrorIs(t, sv.SetConfig(cfg), scroll.ErrInvalidConfig)
}
