package core

type Input struct {
	keys           map[Key]bool
	buttons        map[MouseButton]bool
	mods           Mod
	mouseX, mouseY float64
}

func NewInput() *Input {
	return &Input{keys: map[Key]bool{}, buttons: map[MouseButton]bool{}}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
		in.mods = e.Mods
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		in.buttons[e.Button] = e.Down
		in.mouseX, in.mouseY = e.X, e.Y
		in.mods = e.Mods
	case EventScroll:
		in.mods = e.Mods
	}
}

func (in *Input) IsKeyDown(k Key) bool            { return in.keys[k] }
func (in *Input) IsButtonDown(b MouseButton) bool { return in.buttons[b] }
func (in *Input) Mods() Mod                       { return in.mods }
func (in *Input) Mouse() (float64, float64)       { return in.mouseX, in.mouseY }
