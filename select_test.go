package enquire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectPrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prompt   Select
		input    string
		expected OptionAnswer
	}{
		{
			name:     "enter picks the first option",
			prompt:   Select{Message: "Color:", Options: []string{"red", "green", "blue"}},
			input:    "\r",
			expected: OptionAnswer{Index: 0, Value: "red"},
		},
		{
			name:     "two downs pick the third option",
			prompt:   Select{Message: "Color:", Options: []string{"red", "green", "blue"}, PageSize: 2},
			input:    seqDown + seqDown + "\r",
			expected: OptionAnswer{Index: 2, Value: "blue"},
		},
		{
			name:     "up from the first row wraps to the last",
			prompt:   Select{Message: "Color:", Options: []string{"red", "green", "blue"}},
			input:    seqUp + "\r",
			expected: OptionAnswer{Index: 2, Value: "blue"},
		},
		{
			name:     "down from the last row wraps to the first",
			prompt:   Select{Message: "Color:", Options: []string{"red", "green", "blue"}},
			input:    seqDown + seqDown + seqDown + "\r",
			expected: OptionAnswer{Index: 0, Value: "red"},
		},
		{
			name:     "starting index moves the initial cursor",
			prompt:   Select{Message: "Color:", Options: []string{"red", "green", "blue"}, StartingIndex: 1},
			input:    "\r",
			expected: OptionAnswer{Index: 1, Value: "green"},
		},
		{
			name:     "typing filters the list",
			prompt:   Select{Message: "Color:", Options: []string{"red", "green", "blue"}},
			input:    "gr\r",
			expected: OptionAnswer{Index: 1, Value: "green"},
		},
		{
			name:     "filter keeps original indices",
			prompt:   Select{Message: "Color:", Options: []string{"red", "green", "blue"}},
			input:    "e" + seqDown + "\r",
			expected: OptionAnswer{Index: 1, Value: "green"},
		},
		{
			name:     "end jumps to the last row",
			prompt:   Select{Message: "Color:", Options: []string{"red", "green", "blue"}},
			input:    seqEnd + "\r",
			expected: OptionAnswer{Index: 2, Value: "blue"},
		},
		{
			name: "page down clamps at the last row",
			prompt: Select{
				Message:  "Number:",
				Options:  []string{"one", "two", "three", "four", "five"},
				PageSize: 2,
			},
			input:    seqPageDown + seqPageDown + seqPageDown + "\r",
			expected: OptionAnswer{Index: 4, Value: "five"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, terminal, _ := newTestBackend(tt.input)
			prompt := tt.prompt
			answer, err := prompt.runWith(b)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, answer)
			assert.Equal(t, 1, terminal.rawRestores)
		})
	}
}

func TestSelectFilterPreservesOrder(t *testing.T) {
	t.Parallel()

	prompt := Select{
		Message: "Fruit:",
		Options: []string{"apple", "banana", "apricot", "cherry", "avocado"},
	}
	prompt.options = newOptionAnswers(prompt.Options)
	prompt.filter.buffer = []rune("ap")
	prompt.refilter()

	// Views always list original indices in increasing order.
	assert.Equal(t, []int{0, 2}, prompt.view)
	assert.Equal(t, 0, prompt.cursor)
}

func TestSelectEmptyFilterViewRejectsEnter(t *testing.T) {
	t.Parallel()

	// "zzz" matches nothing; Enter is refused until the filter is relaxed.
	b, _, out := newTestBackend("zzz\r\x15\r")
	prompt := Select{Message: "Color:", Options: []string{"red", "green", "blue"}}
	answer, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Equal(t, OptionAnswer{Index: 0, Value: "red"}, answer)
	assert.Contains(t, out.String(), "no options match the filter")
}

func TestSelectPageIndicator(t *testing.T) {
	t.Parallel()

	b, _, out := newTestBackend("\r")
	prompt := Select{
		Message:  "Number:",
		Options:  []string{"one", "two", "three", "four", "five"},
		PageSize: 2,
	}
	_, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "[1/3]")
}

func TestSelectCaretMovementKeepsListCursor(t *testing.T) {
	t.Parallel()

	// Left only moves the filter caret; the highlighted row must not jump
	// back to the top.
	b, _, _ := newTestBackend(seqDown + seqLeft + "\r")
	prompt := Select{Message: "Color:", Options: []string{"red", "green", "blue"}}
	answer, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Equal(t, OptionAnswer{Index: 1, Value: "green"}, answer)
}

func TestSelectPageSizeClampedToTerminalHeight(t *testing.T) {
	t.Parallel()

	b, terminal, out := newTestBackend(seqDown + seqDown + "\r")
	terminal.terminalSize = [2]int{80, 6}
	prompt := Select{
		Message: "Number:",
		Options: []string{"one", "two", "three", "four", "five"},
	}
	answer, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Equal(t, OptionAnswer{Index: 2, Value: "three"}, answer)
	assert.Contains(t, out.String(), "[1/3]", "a short terminal must force pagination")
}

func TestSelectDisabledFilterIgnoresTyping(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBackend("gr\r")
	prompt := Select{
		Message:       "Color:",
		Options:       []string{"red", "green", "blue"},
		DisableFilter: true,
	}
	answer, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Equal(t, OptionAnswer{Index: 0, Value: "red"}, answer)
}

func TestSelectConfigValidation(t *testing.T) {
	t.Parallel()

	t.Run("no options", func(t *testing.T) {
		t.Parallel()

		prompt := Select{Message: "Color:"}
		_, err := prompt.Run()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one option")
	})

	t.Run("starting index out of range", func(t *testing.T) {
		t.Parallel()

		prompt := Select{Message: "Color:", Options: []string{"red"}, StartingIndex: 3}
		_, err := prompt.Run()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})
}

func TestSelectIgnoresUnboundEscapeSequences(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBackend("\x1b[15~" + seqDown + "\r")
	prompt := Select{Message: "Color:", Options: []string{"red", "green", "blue"}}
	answer, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Equal(t, OptionAnswer{Index: 1, Value: "green"}, answer)
}

func TestSelectCancellation(t *testing.T) {
	t.Parallel()

	b, terminal, _ := newTestBackend("\x1b")
	prompt := Select{Message: "Color:", Options: []string{"red", "green"}}
	answer, err := prompt.runWith(b)

	assert.ErrorIs(t, err, ErrCanceled)
	assert.Equal(t, OptionAnswer{}, answer)
	assert.Equal(t, 1, terminal.rawRestores)
}
