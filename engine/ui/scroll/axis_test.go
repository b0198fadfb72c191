package scroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAxis(content, viewport float64) *Axis {
	a := NewAxis(Vertical, DefaultConfig())
	a.SetViewportSize(viewport)
	a.SetContentSize(content)
	return a
}

func TestAxisDerivedSizes(t *testing.T) {
	a := newTestAxis(1000, 200)
	assert.Equal(t, 800.0, a.ScrollRange())
	assert.Equal(t, 20.0, a.OverflowAllowance())
	assert.True(t, a.Active())

	a.SetContentSize(100)
	assert.Equal(t, 0.0, a.ScrollRange())
	assert.False(t, a.Active())
}

func TestAxisNegativeSizesClampToZero(t *testing.T) {
	a := newTestAxis(-50, -10)
	assert.Equal(t, 0.0, a.ContentSize())
	assert.Equal(t, 0.0, a.ViewportSize())
	assert.Equal(t, 0.0, a.ScrollRange())

	a.SetContentSize(math.NaN())
	assert.Equal(t, 0.0, a.ContentSize())
}

func TestAxisSetPositionHardClamp(t *testing.T) {
	a := newTestAxis(1000, 200)

	a.SetPosition(5000)
	assert.Equal(t, 820.0, a.Position())

	a.SetPosition(-5000)
	assert.Equal(t, -20.0, a.Position())

	a.SetPosition(math.Inf(1))
	assert.Equal(t, -20.0, a.Position())
}

func TestAxisSetPositionNotifiesOnlyOnChange(t *testing.T) {
	a := newTestAxis(1000, 200)
	calls := 0
	a.OnChange(func() { calls++ })

	assert.True(t, a.SetPosition(100))
	assert.Equal(t, 1, calls)

	assert.False(t, a.SetPosition(a.Position()))
	assert.Equal(t, 1, calls)

	// Both writes clamp to the same bound.
	a.SetPosition(900)
	a.SetPosition(1000)
	assert.Equal(t, 2, calls)
}

func TestAxisResizeReclampsAtRest(t *testing.T) {
	a := newTestAxis(1000, 200)
	a.SetPosition(700)

	a.SetContentSize(500)
	assert.Equal(t, 300.0, a.Position())

	a.SetViewportSize(600)
	assert.Equal(t, 0.0, a.Position())
}

func TestAxisResizeLeavesDragAlone(t *testing.T) {
	a := newTestAxis(1000, 200)
	a.SetPosition(700)
	a.DragStart()

	a.SetContentSize(850)
	// Range is 650, overflow 20: 700 is past the band and gets pulled to 670
	// but not to the rest bound.
	assert.Equal(t, 670.0, a.Position())
	assert.True(t, a.Dragging())
}

func TestAxisResizeLeavesCoastAlone(t *testing.T) {
	a := newTestAxis(1000, 200)
	a.SetPosition(790)
	a.DragStart()
	a.DragEnd(-10, 0.1)
	a.SetPosition(810)
	assert.NotZero(t, a.Velocity())

	a.SetViewportSize(190)
	assert.Equal(t, 810.0, a.Position())
}

func TestAxisSameSizeKeepsSnapBack(t *testing.T) {
	a := newTestAxis(1000, 200)
	a.DragStart()
	a.DragMove(20)
	a.DragEnd(0, 0)
	require.Equal(t, -20.0, a.Position())

	// hosts re-run layout every frame with unchanged sizes
	a.SetViewportSize(200)
	a.SetContentSize(1000)
	assert.Equal(t, -20.0, a.Position())
}

func TestAxisRatio(t *testing.T) {
	a := newTestAxis(1000, 200)
	a.SetPosition(200)
	assert.Equal(t, 0.25, a.Ratio())

	a.SetRatio(0.5)
	assert.Equal(t, 400.0, a.Position())

	empty := newTestAxis(200, 200)
	assert.Equal(t, 0.0, empty.Ratio())
	empty.SetRatio(0.5)
	assert.Equal(t, 0.0, empty.Position())
}

func TestAxisScrollTo(t *testing.T) {
	a := newTestAxis(1000, 200)
	a.ScrollTo(900)
	assert.Equal(t, 800.0, a.Position())

	a.ScrollBy(-850)
	assert.Equal(t, 0.0, a.Position())
}

func TestAxisThumbHiddenWhenInactive(t *testing.T) {
	a := newTestAxis(200, 200)
	th := a.Thumb()
	assert.False(t, th.Visible)
	assert.Equal(t, 0.0, th.Pos)

	a.SetContentSize(400)
	th = a.Thumb()
	assert.True(t, th.Visible)
	assert.Equal(t, 100.0, th.Size)
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "Horizontal", Horizontal.String())
	assert.Equal(t, "Vertical", Vertical.String())
	assert.Panics(t, func() { _ = Orientation(7).String() })
}
