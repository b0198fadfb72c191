package scroll

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ThumbRect is the scrollbar thumb geometry along one axis, in viewport
// coordinates. Pos may leave [0, viewport-Size] while the content is
// pulled into its overflow allowance.
type ThumbRect struct {
	Pos     float64
	Size    float64
	Visible bool
	Opacity float64
}

// ThumbSize returns the thumb extent for a viewport showing part of
// content: proportional to the visible fraction, never below minSize and
// never above the viewport.
func ThumbSize(viewport, content, minSize float64) float64 {
	if viewport <= 0 {
		return 0
	}
	if content <= viewport {
		return viewport
	}
	return clamp(viewport*(viewport/content), minSize, viewport)
}

// ForwardMap converts a content position into a thumb position.
func ForwardMap(position, scrollRange, viewport, thumb float64) float64 {
	if scrollRange == 0 {
		return 0
	}
	return (position / scrollRange) * (viewport - thumb)
}

// InverseMap converts a thumb position back into a content position.
// It is the exact inverse of ForwardMap on [0, scrollRange].
func InverseMap(thumbPos, scrollRange, viewport, thumb float64) float64 {
	travel := viewport - thumb
	if travel == 0 {
		return 0
	}
	return (thumbPos / travel) * scrollRange
}

// clamp keeps v in [lo, hi]; hi wins when the bounds cross.
func clamp[T constraints.Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

func isFinite[T constraints.Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
