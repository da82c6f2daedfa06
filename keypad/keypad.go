package keypad

import (
	"fmt"
	"strings"
)

// Keys is the number of keys on the CHIP-8 hex keypad.
const Keys = 16

// State holds one flag per CHIP-8 key, true while the key is held.
type State = [Keys]bool

// Button is a bitmask of the handheld's physical buttons. A single value may
// carry several buttons when the host reports simultaneous edges.
type Button uint8

const ButtonNone Button = 0

const (
	ButtonLeft Button = 1 << iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonB
	ButtonA
)

var buttonNames = []struct {
	button Button
	name   string
}{
	{ButtonLeft, "Left"},
	{ButtonRight, "Right"},
	{ButtonUp, "Up"},
	{ButtonDown, "Down"},
	{ButtonB, "B"},
	{ButtonA, "A"},
}

func (b Button) Has(other Button) bool {
	return other != ButtonNone && b&other == other
}

func (b Button) String() string {
	if b == ButtonNone {
		return "None"
	}
	var names []string
	for _, n := range buttonNames {
		if b.Has(n.button) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("Button(%#02x)", uint8(b))
	}
	return strings.Join(names, "|")
}

func (b Button) single() bool {
	for _, n := range buttonNames {
		if b == n.button {
			return true
		}
	}
	return false
}

type Binding struct {
	Button Button
	Key    uint8
}

// Mapping binds physical buttons to keypad indices. It is injective both ways
// and applied in binding order.
type Mapping struct {
	bindings []Binding
}

// DefaultMapping mirrors the handheld layout: the D-pad sides steer with keys
// 4 and 6 and A fires key 5.
var DefaultMapping = MustMapping(
	Binding{ButtonLeft, 0x4},
	Binding{ButtonA, 0x5},
	Binding{ButtonRight, 0x6},
)

func NewMapping(bindings ...Binding) (Mapping, error) {
	seenButton := map[Button]bool{}
	seenKey := map[uint8]bool{}
	for _, b := range bindings {
		if !b.Button.single() {
			return Mapping{}, fmt.Errorf("keypad: binding %s: not a single button", b.Button)
		}
		if b.Key >= Keys {
			return Mapping{}, fmt.Errorf("keypad: binding %s: key %#x out of range", b.Button, b.Key)
		}
		if seenButton[b.Button] {
			return Mapping{}, fmt.Errorf("keypad: button %s bound twice", b.Button)
		}
		if seenKey[b.Key] {
			return Mapping{}, fmt.Errorf("keypad: key %#x bound twice", b.Key)
		}
		seenButton[b.Button] = true
		seenKey[b.Key] = true
	}
	return Mapping{bindings: append([]Binding(nil), bindings...)}, nil
}

func MustMapping(bindings ...Binding) Mapping {
	m, err := NewMapping(bindings...)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Mapping) Key(b Button) (uint8, bool) {
	for _, binding := range m.bindings {
		if binding.Button == b {
			return binding.Key, true
		}
	}
	return 0, false
}

func (m Mapping) Bindings() []Binding {
	return append([]Binding(nil), m.bindings...)
}

// Translator turns the host's pressed/released edges into keypad flag
// updates. Presses are applied before releases.
type Translator struct {
	mapping Mapping
}

func NewTranslator(m Mapping) Translator {
	return Translator{mapping: m}
}

func (t Translator) Apply(state *State, pressed, released Button) {
	for _, b := range t.mapping.bindings {
		if pressed.Has(b.Button) {
			state[b.Key] = true
		}
	}
	for _, b := range t.mapping.bindings {
		if released.Has(b.Button) {
			state[b.Key] = false
		}
	}
}
