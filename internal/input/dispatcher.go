package input

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a discrete command produced from one frame's input events.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionShoot
	ActionExplode
)

// String returns a readable name for logging.
func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionShoot:
		return "shoot"
	case ActionExplode:
		return "explode"
	default:
		return "none"
	}
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Dispatcher translates keyboard, mouse and gamepad input into actions,
// one batch per frame.
type Dispatcher struct {
	keys      []ebiten.Key
	gamepads  []ebiten.GamepadID
	connected []ebiten.GamepadID
}

// NewDispatcher creates a new input dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// ClassifyKey maps a pressed key to its action: Escape and Q terminate
// the demo, any other key fires the explode sound.
func ClassifyKey(key ebiten.Key) Action {
	switch key {
	case ebiten.KeyEscape, ebiten.KeyQ:
		return ActionQuit
	default:
		return ActionExplode
	}
}

// Poll drains this frame's input events and returns the resulting actions
// in arrival order. Must be called exactly once per Update.
func (d *Dispatcher) Poll() []Action {
	var actions []Action

	d.connected = inpututil.AppendJustConnectedGamepadIDs(d.connected[:0])
	for _, id := range d.connected {
		log.Printf("Gamepad connected: %s", ebiten.GamepadName(id))
	}

	d.keys = inpututil.AppendJustPressedKeys(d.keys[:0])
	for _, key := range d.keys {
		actions = append(actions, ClassifyKey(key))
	}

	for _, button := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(button) {
			actions = append(actions, ActionShoot)
		}
	}

	d.gamepads = ebiten.AppendGamepadIDs(d.gamepads[:0])
	for _, id := range d.gamepads {
		for button := ebiten.GamepadButton0; int(button) < ebiten.GamepadButtonNum(id); button++ {
			if inpututil.IsGamepadButtonJustPressed(id, button) {
				actions = append(actions, ActionShoot)
			}
		}
	}

	return actions
}
