package enquire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiSelectPrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prompt   MultiSelect
		input    string
		expected []OptionAnswer
	}{
		{
			name:     "enter with nothing checked returns empty",
			prompt:   MultiSelect{Message: "Colors:", Options: []string{"red", "green", "blue"}},
			input:    "\r",
			expected: []OptionAnswer{},
		},
		{
			name:   "space checks the first two rows",
			prompt: MultiSelect{Message: "Colors:", Options: []string{"red", "green", "blue"}},
			input:  " " + seqDown + " \r",
			expected: []OptionAnswer{
				{Index: 0, Value: "red"},
				{Index: 1, Value: "green"},
			},
		},
		{
			name:     "toggling twice leaves a row unchecked",
			prompt:   MultiSelect{Message: "Colors:", Options: []string{"red", "green", "blue"}},
			input:    "  " + seqDown + " \r",
			expected: []OptionAnswer{{Index: 1, Value: "green"}},
		},
		{
			name:   "selection is ordered by original index",
			prompt: MultiSelect{Message: "Colors:", Options: []string{"red", "green", "blue"}},
			input:  seqUp + " " + seqUp + seqUp + " \r",
			expected: []OptionAnswer{
				{Index: 0, Value: "red"},
				{Index: 2, Value: "blue"},
			},
		},
		{
			name:   "right checks every visible row",
			prompt: MultiSelect{Message: "Colors:", Options: []string{"red", "green", "blue"}},
			input:  seqRight + "\r",
			expected: []OptionAnswer{
				{Index: 0, Value: "red"},
				{Index: 1, Value: "green"},
				{Index: 2, Value: "blue"},
			},
		},
		{
			name:     "left clears every visible row",
			prompt:   MultiSelect{Message: "Colors:", Options: []string{"red", "green", "blue"}},
			input:    seqRight + seqLeft + "\r",
			expected: []OptionAnswer{},
		},
		{
			name: "pre-checked options survive untouched",
			prompt: MultiSelect{
				Message: "Colors:",
				Options: []string{"red", "green", "blue"},
				Checked: []int{2},
			},
			input: " \r",
			expected: []OptionAnswer{
				{Index: 0, Value: "red"},
				{Index: 2, Value: "blue"},
			},
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

func TestMultiSelectBulkKeysOperateOnFilteredView(t *testing.T) {
	t.Parallel()

	// "ap" narrows the view to apple and apricot; Right must check only those
	// two, and clearing the filter must not lose the checks.
	b, _, _ := newTestBackend("ap" + seqRight + "\x15\r")
	prompt := MultiSelect{
		Message: "Fruit:",
		Options: []string{"apple", "banana", "apricot", "cherry"},
	}
	answer, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Equal(t, []OptionAnswer{
		{Index: 0, Value: "apple"},
		{Index: 2, Value: "apricot"},
	}, answer)
}

func TestMultiSelectLeftClearsOnlyFilteredView(t *testing.T) {
	t.Parallel()

	// Everything starts checked; clearing under an "ap" filter must leave the
	// options outside the view untouched.
	b, _, _ := newTestBackend("ap" + seqLeft + "\x15\r")
	prompt := MultiSelect{
		Message: "Fruit:",
		Options: []string{"apple", "banana", "apricot", "cherry"},
		Checked: []int{0, 1, 2, 3},
	}
	answer, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Equal(t, []OptionAnswer{
		{Index: 1, Value: "banana"},
		{Index: 3, Value: "cherry"},
	}, answer)
}

func TestMultiSelectCaretMovementKeepsListCursor(t *testing.T) {
	t.Parallel()

	// Delete at the end of an empty filter changes nothing; the highlighted
	// row must stay put so Space toggles the row the user is on.
	b, _, _ := newTestBackend(seqDown + seqDelete + " \r")
	prompt := MultiSelect{Message: "Colors:", Options: []string{"red", "green", "blue"}}
	answer, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Equal(t, []OptionAnswer{{Index: 1, Value: "green"}}, answer)
}

func TestMultiSelectPageSizeClampedToTerminalHeight(t *testing.T) {
	t.Parallel()

	b, terminal, out := newTestBackend(seqRight + "\r")
	terminal.terminalSize = [2]int{80, 6}
	prompt := MultiSelect{
		Message: "Number:",
		Options: []string{"one", "two", "three", "four", "five"},
	}
	answer, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Len(t, answer, 5, "bulk select still covers the whole filtered view")
	assert.Contains(t, out.String(), "[1/3]", "a short terminal must force pagination")
}

func TestMultiSelectValidation(t *testing.T) {
	t.Parallel()

	// The empty submission fails MinSelected; checking a row satisfies it.
	b, _, out := newTestBackend("\r \r")
	prompt := MultiSelect{
		Message:    "Colors:",
		Options:    []string{"red", "green"},
		Validators: []OptionsValidator{MinSelected(1, "pick at least one color")},
	}
	answer, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Equal(t, []OptionAnswer{{Index: 0, Value: "red"}}, answer)
	assert.Contains(t, out.String(), "pick at least one color")
}

func TestMultiSelectEcho(t *testing.T) {
	t.Parallel()

	b, _, out := newTestBackend(seqRight + "\r")
	prompt := MultiSelect{Message: "Colors:", Options: []string{"red", "green"}}
	_, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "red, green")
}

func TestMultiSelectCheckedMarkers(t *testing.T) {
	t.Parallel()

	b, _, out := newTestBackend(" \r")
	prompt := MultiSelect{Message: "Colors:", Options: []string{"red", "green"}}
	_, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "[x] red")
	assert.Contains(t, out.String(), "[ ] green")
}

func TestMultiSelectConfigValidation(t *testing.T) {
	t.Parallel()

	t.Run("no options", func(t *testing.T) {
		t.Parallel()

		prompt := MultiSelect{Message: "Colors:"}
		_, err := prompt.Run()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one option")
	})

	t.Run("pre-checked index out of range", func(t *testing.T) {
		t.Parallel()

		prompt := MultiSelect{Message: "Colors:", Options: []string{"red"}, Checked: []int{5}}
		_, err := prompt.Run()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})
}

func TestMultiSelectCancellation(t *testing.T) {
	t.Parallel()

	b, terminal, _ := newTestBackend(" " + "\x1b")
	prompt := MultiSelect{Message: "Colors:", Options: []string{"red", "green"}}
	answer, err := prompt.runWith(b)

	assert.ErrorIs(t, err, ErrCanceled)
	assert.Nil(t, answer)
	assert.Equal(t, 1, terminal.rawRestores)
}
