package colors

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
	Slate    = Color{0.16, 0.19, 0.23, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Lerp mixes a towards b by t in [0, 1], component-wise.
func Lerp(a, b Color, t float32) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	var out Color
	for i := range out {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	return out
}

// HSV builds an opaque color from hue (turns, wrapped), saturation and
// value in [0, 1].
func HSV(h, s, v float32) Color {
	h -= float32(int(h))
	if h < 0 {
		h++
	}
	h6 := h * 6
	i := int(h6)
	f := h6 - float32(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i % 6 {
	case 0:
		return Color{v, t, p, 1}
	case 1:
		return Color{q, v, p, 1}
	case 2:
		return Color{p, v, t, 1}
	case 3:
		return Color{p, q, v, 1}
	case 4:
		return Color{t, p, v, 1}
	default:
		return Color{v, p, q, 1}
	}
}
