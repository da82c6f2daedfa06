package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPressLeftSetsKeyFour(t *testing.T) {
	var state State
	NewTranslator(DefaultMapping).Apply(&state, ButtonLeft, ButtonNone)

	var want State
	want[4] = true
	assert.Equal(t, want, state)
}

func TestUnmappedButtonsAreIgnored(t *testing.T) {
	tr := NewTranslator(DefaultMapping)
	for _, b := range []Button{ButtonUp, ButtonDown, ButtonB, ButtonUp | ButtonB, Button(0x80)} {
		var state State
		state[0xA] = true
		before := state

		tr.Apply(&state, b, ButtonNone)
		assert.Equal(t, before, state, "press %s", b)
		tr.Apply(&state, ButtonNone, b)
		assert.Equal(t, before, state, "release %s", b)
	}
}

func TestPressReleaseRoundTrip(t *testing.T) {
	tr := NewTranslator(DefaultMapping)
	for _, binding := range DefaultMapping.Bindings() {
		var state State
		state[0x1] = true
		before := state

		tr.Apply(&state, binding.Button, ButtonNone)
		assert.True(t, state[binding.Key])
		tr.Apply(&state, ButtonNone, binding.Button)
		assert.Equal(t, before, state, "button %s", binding.Button)
	}
}

func TestSimultaneousEdgesApplyIndependently(t *testing.T) {
	var state State
	tr := NewTranslator(DefaultMapping)

	tr.Apply(&state, ButtonLeft|ButtonRight|ButtonUp, ButtonNone)
	assert.True(t, state[4])
	assert.True(t, state[6])
	assert.False(t, state[5])

	tr.Apply(&state, ButtonA, ButtonLeft)
	assert.False(t, state[4])
	assert.True(t, state[5])
	assert.True(t, state[6])
}

func TestPressAndReleaseInSameTickLeavesKeyUp(t *testing.T) {
	var state State
	NewTranslator(DefaultMapping).Apply(&state, ButtonA, ButtonA)
	assert.False(t, state[5])
}

func TestMappingLookup(t *testing.T) {
	key, ok := DefaultMapping.Key(ButtonRight)
	require.True(t, ok)
	assert.Equal(t, uint8(6), key)

	_, ok = DefaultMapping.Key(ButtonDown)
	assert.False(t, ok)
}

func TestNewMappingRejectsInvalidBindings(t *testing.T) {
	cases := map[string][]Binding{
		"combined button":  {{ButtonLeft | ButtonRight, 1}},
		"no button":        {{ButtonNone, 1}},
		"key out of range": {{ButtonA, 16}},
		"button twice":     {{ButtonA, 1}, {ButtonA, 2}},
		"key twice":        {{ButtonA, 1}, {ButtonB, 1}},
	}
	for name, bindings := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewMapping(bindings...)
			assert.Error(t, err)
		})
	}
}

func TestButtonString(t *testing.T) {
	assert.Equal(t, "None", ButtonNone.String())
	assert.Equal(t, "Left", ButtonLeft.String())
	assert.Equal(t, "Left|A", (ButtonLeft | ButtonA).String())
}
