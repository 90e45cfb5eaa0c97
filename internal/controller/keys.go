package controller

// Key is a host-independent key code. Hosts translate their native key events
// into these before calling OnKey.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyPageUp
	KeyPageDown
	KeyA
	KeyG
	Key1
	Key2
	Key3
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
)

var keyNames = [...]string{
	KeyUnknown:  "unknown",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyA:        "A",
	KeyG:        "G",
	Key1:        "1",
	Key2:        "2",
	Key3:        "3",
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeySpace:    "Space",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return keyNames[KeyUnknown]
}

// Binding documents what a key does, for help panels.
type Binding struct {
	Key   Key
	Free  string
	Stamp string
}

// Bindings is the key table shown by frontends.
var Bindings = []Binding{
	{Key: KeyPageUp, Free: "zoom in", Stamp: "zoom in"},
	{Key: KeyPageDown, Free: "zoom out", Stamp: "zoom out"},
	{Key: KeyA, Free: "toggle auto step", Stamp: "toggle auto step"},
	{Key: KeyG, Free: "toggle grid", Stamp: "toggle grid"},
	{Key: Key1, Free: "stamp blinker", Stamp: "replace with blinker"},
	{Key: Key2, Free: "stamp glider", Stamp: "replace with glider"},
	{Key: Key3, Free: "stamp glider gun", Stamp: "replace with glider gun"},
	{Key: KeyUp, Stamp: "move stamp"},
	{Key: KeyDown, Stamp: "move stamp"},
	{Key: KeyLeft, Stamp: "move stamp"},
	{Key: KeyRight, Stamp: "move stamp"},
	{Key: KeySpace, Free: "single step", Stamp: "commit stamp"},
}
