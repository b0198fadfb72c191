package ui

import (
	"testing"
	"time"

	"github.com/hubastard/glide/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fill struct {
	Rect  [4]float32
	Color colors.Color
}

type recorder struct {
	fills []fill
	clips [][4]float32
	depth int
}

func (r *recorder) FillRect(x, y, w, h float32, c colors.Color) {
	r.fills = append(r.fills, fill{[4]float32{x, y, w, h}, c})
}

func (r *recorder) PushClip(x, y, w, h float32) {
	r.clips = append(r.clips, [4]float32{x, y, w, h})
	r.depth++
}

func (r *recorder) PopClip() { r.depth-- }

func newCtx(w, h float32) (*Context, *recorder) {
	r := &recorder{}
	return &Context{Viewport: [4]float32{0, 0, w, h}, Renderer: r}, r
}

func pos(e UIElement) [2]float32 {
	x, y := e.Node().Pos()
	return [2]float32{x, y}
}

func size(e UIElement) [2]float32 {
	w, h := e.Node().Size()
	return [2]float32{w, h}
}

func TestViewStacksVertically(t *testing.T) {
	a, b := Box(100, 20), Box(50, 30)
	v := View(a, b).FlowDirection(LayoutVertical)
	ctx, _ := newCtx(800, 600)
	v.Draw(ctx)

	assert.Equal(t, [2]float32{100, 60}, size(v))
	assert.Equal(t, [2]float32{0, 0}, pos(a))
	assert.Equal(t, [2]float32{0, 30}, pos(b))
	assert.Equal(t, [2]float32{50, 30}, size(b))
}

func TestViewAlignment(t *testing.T) {
	a := Box(20, 10)
	v := View(a).WidthFixed(100).HeightFixed(50).AlignMain(AlignEnd).AlignCross(AlignCenter)
	ctx, _ := newCtx(800, 600)
	v.Draw(ctx)
	assert.Equal(t, [2]float32{80, 20}, pos(a))

	v.AlignCross(AlignStretch)
	v.Draw(ctx)
	assert.Equal(t, [2]float32{80, 0}, pos(a))
	assert.Equal(t, [2]float32{20, 50}, size(a))
}

func TestViewExpandSharesSpace(t *testing.T) {
	a := Box(10, 10)
	b := Box(10, 10).WidthExpand()
	v := View(a, b).Gap(0).WidthFixed(100)
	ctx, _ := newCtx(800, 600)
	v.Draw(ctx)
	assert.Equal(t, [2]float32{90, 10}, size(b))
	assert.Equal(t, [2]float32{10, 0}, pos(b))
}

func TestNestedViewsMoveSubtree(t *testing.T) {
	leaf := Box(10, 10)
	inner := View(leaf).Padding(5)
	outer := View(inner).Padding(2)
	ctx, _ := newCtx(800, 600)
	outer.Draw(ctx)
	assert.Equal(t, [2]float32{2, 2}, pos(inner))
	assert.Equal(t, [2]float32{7, 7}, pos(leaf))

	// a second pass lands in the same place
	outer.Draw(ctx)
	assert.Equal(t, [2]float32{7, 7}, pos(leaf))
}

func TestBoxDrawsBackground(t *testing.T) {
	ctx, r := newCtx(800, 600)
	Box(10, 20).Color(colors.Red).Position(3, 4).Draw(ctx)
	require.Len(t, r.fills, 1)
	assert.Equal(t, fill{[4]float32{0, 0, 10, 20}, colors.Red}, r.fills[0])

	r.fills = nil
	Box(10, 20).Draw(ctx)
	assert.Empty(t, r.fills)
}

func TestDragTrackerDeadZone(t *testing.T) {
	d := NewDragTracker()
	t0 := time.Unix(0, 0)
	d.Press(0, 0, t0)

	_, ok := d.Move(3, 0, t0.Add(5*time.Millisecond))
	assert.False(t, ok)
	assert.False(t, d.Dragging())

	s, ok := d.Move(0, 10, t0.Add(20*time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, DragBegin, s.Phase)
	assert.Equal(t, 10.0, s.DY)
	assert.Equal(t, 10.0, s.LastDY)
	assert.InDelta(t, 0.02, s.Elapsed, 1e-9)

	s, ok = d.Move(0, 16, t0.Add(30*time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, DragUpdate, s.Phase)
	assert.Equal(t, 16.0, s.DY)
	assert.Equal(t, 6.0, s.LastDY)

	s, ok = d.Release(0, 16, t0.Add(40*time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, DragFinish, s.Phase)
	assert.Equal(t, 6.0, s.LastDY)
	assert.False(t, d.Pressed())
}

func TestDragTrackerClick(t *testing.T) {
	d := NewDragTracker()
	t0 := time.Unix(0, 0)
	d.Press(5, 5, t0)
	_, ok := d.Release(6, 5, t0.Add(50*time.Millisecond))
	assert.False(t, ok)

	_, ok = d.Move(50, 50, t0)
	assert.False(t, ok, "moves without a press are ignored")
}

func TestDragTrackerStallDropsVelocity(t *testing.T) {
	d := NewDragTracker()
	t0 := time.Unix(0, 0)
	d.Press(0, 0, t0)
	_, ok := d.Move(0, 30, t0.Add(10*time.Millisecond))
	require.True(t, ok)

	s, ok := d.Release(0, 30, t0.Add(500*time.Millisecond))
	require.True(t, ok)
	assert.Zero(t, s.LastDY)
	assert.Equal(t, 30.0, s.DY)
}

func TestDragTrackerBegin(t *testing.T) {
	d := NewDragTracker()
	t0 := time.Unix(0, 0)
	d.Begin()
	assert.False(t, d.Dragging(), "begin needs a press")

	d.Press(0, 0, t0)
	d.Begin()
	s, ok := d.Move(0, 1, t0.Add(time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, DragUpdate, s.Phase)

	d.Cancel()
	_, ok = d.Release(0, 1, t0)
	assert.False(t, ok)
}
