package main

import (
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hubastard/glide/engine/ui"
	"github.com/hubastard/glide/engine/ui/scroll"
	"github.com/mattn/go-runewidth"
)

var (
	textStyle   = tcell.StyleDefault
	trackStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	thumbStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// textView scrolls a block of text in the terminal. All sizes are in
// cells: the last column holds the vertical bar, the row above the status
// line the horizontal bar.
type textView struct {
	lines   []string
	vp      *scroll.Viewport
	drag    *ui.DragTracker
	target  scroll.Target
	buttons tcell.ButtonMask
	w, h    int
	dirty   bool
}

func newTextView(lines []string, cfg scroll.Config) (*textView, error) {
	vp, err := scroll.NewViewport(cfg)
	if err != nil {
		return nil, err
	}
	drag := ui.NewDragTracker()
	drag.DeadZone = 0.5

	v := &textView{lines: lines, vp: vp, drag: drag, dirty: true}
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	vp.SetContentBounds(float64(width), float64(len(lines)))
	vp.OnScrollChanged(func(scroll.Orientation) { v.dirty = true })
	return v, nil
}

// splitLines breaks text into lines with tabs expanded.
func splitLines(text string) []string {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.ReplaceAll(l, "\t", "    ")
	}
	return lines
}

func (v *textView) area() (int, int) { return max(0, v.w-1), max(0, v.h-2) }

func (v *textView) resize(w, h int) {
	v.cancelDrag()
	v.w, v.h = w, h
	aw, ah := v.area()
	v.vp.Resize(float64(aw), float64(ah))
	v.dirty = true
}

// frame advances the per-frame clock and marks the view dirty when
// anything visible moved.
func (v *textView) frame(dt float64) {
	before := [2]scroll.ThumbRect{v.vp.Thumb(scroll.Horizontal), v.vp.Thumb(scroll.Vertical)}
	v.vp.FrameTick(dt)
	after := [2]scroll.ThumbRect{v.vp.Thumb(scroll.Horizontal), v.vp.Thumb(scroll.Vertical)}
	if before != after {
		v.dirty = true
	}
}

func (v *textView) hitTest(x, y int) scroll.Target {
	aw, ah := v.area()
	switch {
	case x < aw && y < ah:
		return scroll.TargetContent
	case x == aw && y < ah:
		if onThumb(v.vp.Thumb(scroll.Vertical), y, ah) {
			return scroll.TargetVerticalThumb
		}
	case y == ah && x < aw:
		if onThumb(v.vp.Thumb(scroll.Horizontal), x, aw) {
			return scroll.TargetHorizontalThumb
		}
	}
	return scroll.TargetNone
}

func onThumb(t scroll.ThumbRect, i, length int) bool {
	if !t.Visible {
		return false
	}
	start, end := barCells(t.Pos, t.Size, length)
	return i >= start && i < end
}

func (v *textView) mouse(ev *tcell.EventMouse, now time.Time) {
	x, y := ev.Position()
	fx, fy := float64(x), float64(y)
	btn := ev.Buttons()

	if wheel := btn & (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight); wheel != 0 {
		var dx, dy float64
		if wheel&tcell.WheelUp != 0 {
			dy--
		}
		if wheel&tcell.WheelDown != 0 {
			dy++
		}
		if wheel&tcell.WheelLeft != 0 {
			dx--
		}
		if wheel&tcell.WheelRight != 0 {
			dx++
		}
		alt := ev.Modifiers()&(tcell.ModShift|tcell.ModAlt) != 0
		v.vp.Wheel(dx, dy, alt)
		// wheel reports carry no button state
		return
	}

	down := btn&tcell.Button1 != 0
	wasDown := v.buttons&tcell.Button1 != 0
	v.buttons = btn
	switch {
	case down && !wasDown:
		v.target = v.hitTest(x, y)
		if v.target == scroll.TargetNone {
			return
		}
		v.drag.Press(fx, fy, now)
		if v.target != scroll.TargetContent {
			v.drag.Begin()
			v.vp.DragStart(v.target)
		}
	case down && wasDown:
		s, ok := v.drag.Move(fx, fy, now)
		if !ok {
			return
		}
		if s.Phase == ui.DragBegin && v.target == scroll.TargetContent {
			v.vp.DragStart(scroll.TargetContent)
		}
		v.vp.DragMove(v.target, s.DX, s.DY)
	case !down && wasDown:
		t := v.target
		v.target = scroll.TargetNone
		if s, ok := v.drag.Release(fx, fy, now); ok {
			v.vp.DragMove(t, s.DX, s.DY)
			v.vp.DragEnd(t, s.LastDX, s.LastDY, s.Elapsed)
		}
	}
}

// cancelDrag drops a press or drag in progress without release velocity.
// Later moves of the same press are ignored.
func (v *textView) cancelDrag() {
	v.drag.Cancel()
	v.vp.DragEnd(v.target, 0, 0, 0)
	v.target = scroll.TargetNone
}

func (v *textView) key(ev *tcell.EventKey) {
	_, ah := v.area()
	page := float64(max(1, ah-1))
	switch ev.Key() {
	case tcell.KeyUp:
		v.vp.Wheel(0, -1, false)
	case tcell.KeyDown:
		v.vp.Wheel(0, 1, false)
	case tcell.KeyLeft:
		v.vp.Wheel(-1, 0, true)
	case tcell.KeyRight:
		v.vp.Wheel(1, 0, true)
	case tcell.KeyPgUp:
		v.vp.ScrollBy(0, -page)
	case tcell.KeyPgDn:
		v.vp.ScrollBy(0, page)
	case tcell.KeyHome:
		v.vp.ScrollTo(0, 0)
	case tcell.KeyEnd:
		v.vp.Vertical().ScrollTo(v.vp.Vertical().ScrollRange())
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			v.vp.ScrollBy(0, page)
		}
	}
}

func (v *textView) draw(s tcell.Screen) {
	s.Clear()
	aw, ah := v.area()
	tx, ty := v.vp.ContentTranslation()
	ox, oy := int(math.Floor(-tx)), int(math.Floor(-ty))
	for row := 0; row < ah; row++ {
		i := row + oy
		if i < 0 || i >= len(v.lines) {
			continue
		}
		putText(s, 0, row, visibleText(v.lines[i], ox, aw), textStyle)
	}

	v.drawBar(s, scroll.Vertical, ah, func(i int) (int, int) { return aw, i })
	v.drawBar(s, scroll.Horizontal, aw, func(i int) (int, int) { return i, ah })

	status := visibleText(" "+v.vp.String()+"  arrows/wheel/drag to scroll, q quits", 0, v.w)
	for x := 0; x < v.w; x++ {
		s.SetContent(x, v.h-1, ' ', nil, statusStyle)
	}
	putText(s, 0, v.h-1, status, statusStyle)
}

func (v *textView) drawBar(s tcell.Screen, o scroll.Orientation, length int, at func(int) (int, int)) {
	t := v.vp.Thumb(o)
	if !t.Visible {
		return
	}
	track := '│'
	if o == scroll.Horizontal {
		track = '─'
	}
	for i := 0; i < length; i++ {
		x, y := at(i)
		s.SetContent(x, y, track, nil, trackStyle)
	}
	r := thumbRune(t.Opacity)
	if r == 0 {
		return
	}
	start, end := barCells(t.Pos, t.Size, length)
	for i := start; i < end; i++ {
		x, y := at(i)
		s.SetContent(x, y, r, nil, thumbStyle)
	}
}

func putText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += max(1, runewidth.RuneWidth(r))
	}
}

// visibleText returns the part of s covering display columns
// [from, from+width). Wide runes cut by either edge become spaces; a
// negative from pads with spaces.
func visibleText(s string, from, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	col := 0
	if from < 0 {
		pad := min(-from, width)
		b.WriteString(strings.Repeat(" ", pad))
		col, from, width = 0, 0, width-pad
	}
	end := from + width
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		next := col + w
		switch {
		case next <= from:
		case col >= end:
			return b.String()
		case col < from || next > end:
			// straddles an edge
			b.WriteString(strings.Repeat(" ", min(next, end)-max(col, from)))
		default:
			b.WriteRune(r)
		}
		col = next
	}
	return b.String()
}

// barCells maps a thumb span to the cell range [start, end) on a bar of
// length cells.
func barCells(pos, size float64, length int) (int, int) {
	start := int(math.Floor(pos))
	end := int(math.Ceil(pos + size))
	start = min(max(start, 0), length)
	end = min(max(end, start), length)
	return start, end
}

// thumbRune shades the thumb by opacity; 0 means hidden.
func thumbRune(opacity float64) rune {
	switch {
	case opacity >= 0.66:
		return '█'
	case opacity >= 0.33:
		return '▓'
	case opacity > 0.05:
		return '▒'
	default:
		return 0
	}
}
