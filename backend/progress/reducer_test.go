package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceToggleAlternates(t *testing.T) {
	s := NewState(3)
	s = Reduce(s, Toggle(1))
	assert.Equal(t, []bool{false, true, false}, s.Completions)
	s = Reduce(s, Toggle(1))
	assert.Equal(t, []bool{false, false, false}, s.Completions)
}

func TestReduceMarkIsIdempotent(t *testing.T) {
	s := Reduce(NewState(2), Mark(0))
	again := Reduce(s, Mark(0))
	assert.Equal(t, s, again)
}

func TestReduceDoesNotModifyInput(t *testing.T) {
	s := NewState(2)
	_ = Reduce(s, Mark(1))
	assert.Equal(t, []bool{false, false}, s.Completions)
}

func TestReduceIgnoresOutOfRange(t *testing.T) {
	s := NewState(2)
	assert.Equal(t, s, Reduce(s, Toggle(5)))
	assert.Equal(t, s, Reduce(s, Mark(-1)))
	assert.Equal(t, s, Reduce(s, SetModule(2)))
}

func TestReduceAdvanceClamps(t *testing.T) {
	s := NewState(3)
	s = Reduce(s, Advance(-1))
	assert.Equal(t, 0, s.CurrentIndex)
	s = Reduce(s, Advance(1))
	s = Reduce(s, Advance(1))
	s = Reduce(s, Advance(1))
	assert.Equal(t, 2, s.CurrentIndex)

	empty := Reduce(NewState(0), Advance(1))
	assert.Equal(t, 0, empty.CurrentIndex)
}

func TestReduceLoadResizes(t *testing.T) {
	s := Reduce(NewState(3), Load([]bool{true}))
	assert.Equal(t, []bool{true, false, false}, s.Completions)

	s = Reduce(NewState(2), Load([]bool{true, true, true, true}))
	assert.Equal(t, []bool{true, true}, s.Completions)
}

func TestReduceReset(t *testing.T) {
	s := Reduce(Reduce(NewState(2), Mark(1)), SetModule(1))
	s = Reduce(s, Reset())
	assert.Equal(t, NewState(2), s)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name string
		in   []bool
		want int
	}{
		{"empty", nil, 0},
		{"none", []bool{false, false}, 0},
		{"one of three", []bool{true, false, false}, 33},
		{"two of three", []bool{true, true, false}, 67},
		{"half", []bool{true, false}, 50},
		{"all", []bool{true, true, true}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.in))
		})
	}
}

func TestActionKindString(t *testing.T) {
	assert.Equal(t, "MARK_MODULE_COMPLETED", ActionMarkCompleted.String())
	assert.Equal(t, "UNKNOWN", ActionKind(99).String())
}
