package ui

import (
	"math"

	"github.com/hubastard/glide/engine/colors"
)

type SizeMode int

const (
	SizeModeFit SizeMode = iota
	SizeModeFixed
	SizeModeExpand
)

// Constraints bound a layout pass. A zero Max means unbounded.
type Constraints struct {
	Min [2]float32
	Max [2]float32
}

type LayoutResult struct {
	Size [2]float32
}

// Renderer is the subset of the engine renderer the tree draws with.
// Coordinates are pixels, origin top-left.
type Renderer interface {
	FillRect(x, y, w, h float32, c colors.Color)
	PushClip(x, y, w, h float32)
	PopClip()
}

type Context struct {
	Viewport [4]float32 // x, y, w, h
	Renderer Renderer
}

type UIElement interface {
	Node() *Base
	Layout(ctx *Context, constraints Constraints) LayoutResult
	Draw(ctx *Context)
}

type Base struct {
	parent   UIElement
	children []UIElement
	position [2]float32
	size     [2]float32
	color    colors.Color
	mode     [2]SizeMode
	fixed    [2]float32
	padding  [4]float32 // left, top, right, bottom
}

func (b *Base) Parent() UIElement       { return b.parent }
func (b *Base) Children() []UIElement   { return b.children }
func (b *Base) Pos() (x, y float32)     { return b.position[0], b.position[1] }
func (b *Base) Size() (w, h float32)    { return b.size[0], b.size[1] }
func (b *Base) SetPos(x, y float32)     { b.position = [2]float32{x, y} }
func (b *Base) SetSize(w, h float32)    { b.size = [2]float32{w, h} }
func (b *Base) SetColor(c colors.Color) { b.color = c }
func (b *Base) Padding() [4]float32     { return b.padding }
func (b *Base) SetPadding(l, t, r, btm float32) {
	b.padding = [4]float32{l, t, r, btm}
}

// Contains reports whether the point lies inside the node's rect.
func (b *Base) Contains(x, y float32) bool {
	return x >= b.position[0] && x < b.position[0]+b.size[0] &&
		y >= b.position[1] && y < b.position[1]+b.size[1]
}

// Translate moves the node and its whole subtree.
func (b *Base) Translate(dx, dy float32) {
	b.position[0] += dx
	b.position[1] += dy
	for _, c := range b.children {
		c.Node().Translate(dx, dy)
	}
}

func clamp(v, lo, hi float32) float32 { return min(max(v, lo), hi) }

func resolveConstraint(limit float32) float32 {
	if limit == 0 {
		return float32(math.MaxFloat32)
	}
	return limit
}

// resolve picks the outer size along dim d given the content size.
func (b *Base) resolve(d int, content, lo, limit float32) float32 {
	hi := resolveConstraint(limit)
	switch b.mode[d] {
	case SizeModeFixed:
		if b.fixed[d] > 0 {
			return clamp(b.fixed[d], lo, hi)
		}
	case SizeModeExpand:
		return clamp(hi, lo, hi)
	}
	return clamp(content, lo, hi)
}

// padStart and padSum are the padding before and around dim d.
func (b *Base) padStart(d int) float32 { return b.padding[d] }
func (b *Base) padSum(d int) float32   { return b.padding[d] + b.padding[d+2] }

func (b *Base) innerPosition() (float32, float32) {
	return b.position[0] + b.padding[0], b.position[1] + b.padding[1]
}

func (b *Base) innerSize() (float32, float32) {
	return max(0, b.size[0]-b.padSum(0)), max(0, b.size[1]-b.padSum(1))
}

func (b *Base) drawBackground(ctx *Context) {
	if b.color[3] > 0 {
		ctx.Renderer.FillRect(b.position[0], b.position[1], b.size[0], b.size[1], b.color)
	}
}

// ------ Helper ------

// Common carries the fluent builder methods shared by every element.
type Common[T any] struct {
	owner T
	base  Base
}

func NewCommon[T any](owner T) Common[T] {
	return Common[T]{owner: owner}
}

func (c *Common[T]) Node() *Base              { return &c.base }
func (c *Common[T]) Position(x, y float32) T  { c.base.SetPos(x, y); return c.owner }
func (c *Common[T]) Size(w, h float32) T      { c.base.SetSize(w, h); return c.owner }
func (c *Common[T]) Color(col colors.Color) T { c.base.SetColor(col); return c.owner }

func (c *Common[T]) WidthFit() T    { return c.sizing(0, SizeModeFit, 0) }
func (c *Common[T]) WidthExpand() T { return c.sizing(0, SizeModeExpand, 0) }
func (c *Common[T]) WidthFixed(width float32) T {
	return c.sizing(0, SizeModeFixed, width)
}

func (c *Common[T]) HeightFit() T    { return c.sizing(1, SizeModeFit, 0) }
func (c *Common[T]) HeightExpand() T { return c.sizing(1, SizeModeExpand, 0) }
func (c *Common[T]) HeightFixed(height float32) T {
	return c.sizing(1, SizeModeFixed, height)
}

func (c *Common[T]) sizing(d int, m SizeMode, v float32) T {
	c.base.mode[d] = m
	c.base.fixed[d] = v
	return c.owner
}

func (c *Common[T]) Padding(all float32) T {
	c.base.SetPadding(all, all, all, all)
	return c.owner
}

func (c *Common[T]) Padding2(horizontal, vertical float32) T {
	c.base.SetPadding(horizontal, vertical, horizontal, vertical)
	return c.owner
}

func (c *Common[T]) Padding4(left, top, right, bottom float32) T {
	c.base.SetPadding(left, top, right, bottom)
	return c.owner
}

func (c *Common[T]) Children(kids ...UIElement) T {
	c.base.children = append(c.base.children, kids...)
	for _, k := range kids {
		k.Node().parent = any(c.owner).(UIElement)
	}
	return c.owner
}
