package scroll

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapBackFromOverflow(t *testing.T) {
	a := newTestAxis(1000, 200)
	a.SetPosition(820)

	prev := a.Position()
	frames := 0
	for a.Position() != 800 {
		a.FrameTick(0.016)
		require.Less(t, a.Position(), prev, "frame %d did not move towards the bound", frames)
		require.GreaterOrEqual(t, a.Position(), 800.0)
		prev = a.Position()
		frames++
		require.Less(t, frames, 100)
	}
	assert.Equal(t, 800.0, a.Position())
	assert.True(t, a.AtRest())

	a.FrameTick(0.016)
	assert.Equal(t, 800.0, a.Position())
}

func TestSnapBackFromBelowZero(t *testing.T) {
	a := newTestAxis(1000, 200)
	a.SetPosition(-15)
	for i := 0; i < 100 && !a.InRange(); i++ {
		a.FrameTick(0.016)
		require.LessOrEqual(t, a.Position(), 0.0)
	}
	assert.Equal(t, 0.0, a.Position())
}

func TestSnapBackLargeStepLandsOnBound(t *testing.T) {
	a := newTestAxis(1000, 200)
	a.SetPosition(815)
	a.FrameTick(0.2)
	assert.Equal(t, 800.0, a.Position())
}

func TestNoSnapBackWhileDragging(t *testing.T) {
	a := newTestAxis(1000, 200)
	a.DragStart()
	a.DragMove(-810)
	a.FrameTick(0.016)
	assert.Equal(t, 810.0, a.Position())
}

func TestCoastIntegratesVelocity(t *testing.T) {
	a := newTestAxis(1000, 200)
	a.DragStart()
	a.DragEnd(-40, 0.1)
	a.FrameTick(0.1)
	assert.InDelta(t, 44.0, a.Position(), 1e-9)
}

func TestCoastZeroDtKeepsVelocity(t *testing.T) {
	a := newTestAxis(1000, 200)
	a.DragStart()
	a.DragEnd(-40, 0.1)
	a.FrameTick(0)
	assert.InDelta(t, 440.0, a.Velocity(), 1e-9)
}

func TestCoastSaturatesAtOverflowBound(t *testing.T) {
	a := newTestAxis(1000, 200)
	a.SetPosition(790)
	a.DragStart()
	a.DragEnd(-100, 0.1) // 1100 units/s

	a.FrameTick(0.1)
	assert.Equal(t, 820.0, a.Position())
	assert.NotZero(t, a.Velocity())

	a.FrameTick(0.1)
	assert.Equal(t, 820.0, a.Position())
	assert.Zero(t, a.Velocity())

	for i := 0; i < 100 && !a.AtRest(); i++ {
		a.FrameTick(0.016)
	}
	assert.Equal(t, 800.0, a.Position())
}

func TestFrictionConvergence(t *testing.T) {
	a := newTestAxis(1000, 200)
	a.DragStart()
	a.DragEnd(-40, 0.1)
	v0 := a.Velocity()

	want := int(math.Ceil(math.Log(1/math.Abs(v0)) / math.Log(DefaultConfig().FrictionRate)))
	prev := math.Abs(v0)
	for i := 1; i < want; i++ {
		a.FixedTick()
		require.Less(t, math.Abs(a.Velocity()), prev)
		prev = math.Abs(a.Velocity())
		a.FrameTick(0)
		require.NotZero(t, a.Velocity(), "stopped early at tick %d", i)
	}
	a.FixedTick()
	a.FrameTick(0)
	assert.Zero(t, a.Velocity())
}

func TestFixedTickIndependentOfFrames(t *testing.T) {
	// Several fixed ticks between two frames, or none, are both fine.
	a := newTestAxis(10000, 200)
	a.DragStart()
	a.DragEnd(-100, 0.1)
	v := a.Velocity()

	a.FixedTick()
	a.FixedTick()
	a.FixedTick()
	assert.InDelta(t, v*0.75*0.75*0.75, a.Velocity(), 1e-9)

	pos := a.Position()
	a.FrameTick(0.016)
	a.FrameTick(0.016)
	assert.InDelta(t, pos+2*a.Velocity()*0.016, a.Position(), 1e-9)
}

func TestAutohideFade(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Autohide = true
	a := NewAxis(Vertical, cfg)
	a.SetViewportSize(200)
	a.SetContentSize(1000)

	a.FrameTick(0.5)
	a.FrameTick(0.5)
	assert.Equal(t, 1.0, a.Thumb().Opacity)

	a.FrameTick(0.5)
	assert.InDelta(t, 0.9, a.Thumb().Opacity, 1e-12)
	a.FrameTick(0.016)
	assert.InDelta(t, 0.81, a.Thumb().Opacity, 1e-12)

	a.Wheel(1)
	assert.Equal(t, 1.0, a.Thumb().Opacity)
	a.FrameTick(0.5)
	assert.Equal(t, 1.0, a.Thumb().Opacity)
}

func TestNoFadeWithoutAutohide(t *testing.T) {
	a := newTestAxis(1000, 200)
	for i := 0; i < 10; i++ {
		a.FrameTick(0.5)
	}
	assert.Equal(t, 1.0, a.Thumb().Opacity)
}

func TestBoundaryAndRestContainment(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for run := 0; run < 50; run++ {
		content := 200 + rng.Float64()*2000
		viewport := 50 + rng.Float64()*400
		a := newTestAxis(content, viewport)

		check := func(step string) {
			ov := a.OverflowAllowance()
			require.GreaterOrEqual(t, a.Position(), -ov, step)
			require.LessOrEqual(t, a.Position(), a.ScrollRange()+ov, step)
		}

		for op := 0; op < 200; op++ {
			switch rng.IntN(7) {
			case 0:
				a.DragStart()
			case 1:
				a.DragMove((rng.Float64() - 0.5) * 3000)
			case 2:
				a.DragEnd((rng.Float64()-0.5)*200, rng.Float64()*0.05)
			case 3:
				a.Wheel((rng.Float64() - 0.5) * 10)
			case 4:
				a.FrameTick(rng.Float64() * 0.05)
			case 5:
				a.FixedTick()
			case 6:
				a.SetContentSize(200 + rng.Float64()*2000)
			}
			check("after op")
		}

		a.DragEnd(0, 0)
		for i := 0; i < 2000 && !a.AtRest(); i++ {
			if i%6 == 0 {
				a.FixedTick()
			}
			a.FrameTick(1.0 / 60)
			check("settling")
		}
		require.True(t, a.AtRest(), "run %d did not settle", run)
		assert.GreaterOrEqual(t, a.Position(), 0.0)
		assert.LessOrEqual(t, a.Position(), a.ScrollRange())
	}
}
