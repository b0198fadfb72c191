package ui

import (
	"github.com/hubastard/glide/engine/colors"
)

type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

type LayoutDirection int

const (
	LayoutHorizontal LayoutDirection = iota
	LayoutVertical
)

// UIView stacks its children along one direction.
type UIView struct {
	Common[*UIView]
	gap        float32
	mainAlign  Align
	crossAlign Align
	flow       LayoutDirection
}

func View(children ...UIElement) *UIView {
	v := &UIView{
		gap:        10,
		mainAlign:  AlignStart,
		crossAlign: AlignStart,
	}
	v.Common = NewCommon(v)
	return v.Children(children...)
}

func (l *UIView) BgColor(color colors.Color) *UIView              { l.base.color = color; return l }
func (l *UIView) FlowDirection(direction LayoutDirection) *UIView { l.flow = direction; return l }
func (l *UIView) Gap(g float32) *UIView                           { l.gap = g; return l }
func (l *UIView) AlignMain(a Align) *UIView                       { l.mainAlign = a; return l }
func (l *UIView) AlignCross(a Align) *UIView                      { l.crossAlign = a; return l }

// dims returns the main and cross dimension indices.
func (l *UIView) dims() (int, int) {
	if l.flow == LayoutVertical {
		return 1, 0
	}
	return 0, 1
}

func (l *UIView) Layout(ctx *Context, constraints Constraints) LayoutResult {
	b := &l.base
	m, x := l.dims()

	var inner Constraints
	for d := 0; d < 2; d++ {
		if constraints.Max[d] > 0 {
			inner.Max[d] = max(0, constraints.Max[d]-b.padSum(d))
		}
	}

	kids := b.children
	sizes := make([][2]float32, len(kids))
	var fixedSum, cross float32
	expandCount := 0
	for i, k := range kids {
		sizes[i] = k.Layout(ctx, inner).Size
		if k.Node().mode[m] == SizeModeExpand {
			// expanding children only get what is left over
			sizes[i][m] = 0
			expandCount++
		} else {
			fixedSum += sizes[i][m]
		}
		cross = max(cross, sizes[i][x])
	}

	var gaps float32
	if len(kids) > 1 {
		gaps = l.gap * float32(len(kids)-1)
	}

	var outer [2]float32
	outer[m] = b.resolve(m, fixedSum+gaps+b.padSum(m), constraints.Min[m], constraints.Max[m])
	outer[x] = b.resolve(x, cross+b.padSum(x), constraints.Min[x], constraints.Max[x])
	b.SetSize(outer[0], outer[1])
	mainTarget := max(0, outer[m]-b.padSum(m))
	crossTarget := max(0, outer[x]-b.padSum(x))

	// Distribute extra space along main axis to expanding children.
	if expandCount > 0 {
		share := max(0, mainTarget-(fixedSum+gaps)) / float32(expandCount)
		for i, k := range kids {
			if k.Node().mode[m] == SizeModeExpand {
				sizes[i][m] += share
			}
		}
	}

	used := gaps
	for i := range sizes {
		used += sizes[i][m]
	}
	remaining := max(0, mainTarget-used)
	var cursor float32
	switch l.mainAlign {
	case AlignCenter:
		cursor = remaining * 0.5
	case AlignEnd:
		cursor = remaining
	}

	origin := [2]float32{b.position[0] + b.padStart(0), b.position[1] + b.padStart(1)}
	for i, k := range kids {
		kb := k.Node()
		size := sizes[i]
		if l.crossAlign == AlignStretch || kb.mode[x] == SizeModeExpand {
			size[x] = crossTarget
		}
		size[x] = clamp(size[x], 0, crossTarget)

		var pos [2]float32
		pos[m] = origin[m] + cursor
		pos[x] = origin[x]
		switch l.crossAlign {
		case AlignCenter:
			pos[x] += (crossTarget - size[x]) / 2
		case AlignEnd:
			pos[x] += crossTarget - size[x]
		}
		// the child's subtree was laid out at its old position
		kb.Translate(pos[0]-kb.position[0], pos[1]-kb.position[1])
		kb.SetSize(size[0], size[1])
		cursor += size[m] + l.gap
	}

	return LayoutResult{Size: b.size}
}

func (l *UIView) Draw(ctx *Context) {
	if l.base.parent == nil {
		layoutRoot(ctx, l)
	}
	l.base.drawBackground(ctx)
	for _, c := range l.base.children {
		c.Draw(ctx)
	}
}

// layoutRoot lays e out against the context viewport.
func layoutRoot(ctx *Context, e UIElement) {
	b := e.Node()
	b.SetPos(ctx.Viewport[0], ctx.Viewport[1])
	e.Layout(ctx, Constraints{Max: [2]float32{ctx.Viewport[2], ctx.Viewport[3]}})
}
