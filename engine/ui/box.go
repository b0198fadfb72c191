package ui

// UIBox is a colored leaf with a fixed preferred size.
type UIBox struct {
	Common[*UIBox]
}

func Box(w, h float32) *UIBox {
	b := &UIBox{}
	b.Common = NewCommon(b)
	return b.WidthFixed(w).HeightFixed(h)
}

func (b *UIBox) Layout(_ *Context, constraints Constraints) LayoutResult {
	n := &b.base
	n.SetSize(
		n.resolve(0, n.padSum(0), constraints.Min[0], constraints.Max[0]),
		n.resolve(1, n.padSum(1), constraints.Min[1], constraints.Max[1]),
	)
	return LayoutResult{Size: n.size}
}

func (b *UIBox) Draw(ctx *Context) {
	if b.base.parent == nil {
		layoutRoot(ctx, b)
	}
	b.base.drawBackground(ctx)
}
