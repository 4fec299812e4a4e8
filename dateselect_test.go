package enquire

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDateSelectPrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prompt   DateSelect
		input    string
		expected time.Time
	}{
		{
			name:     "enter submits the default",
			prompt:   DateSelect{Message: "When:", Default: date(2024, time.June, 15)},
			input:    "\r",
			expected: date(2024, time.June, 15),
		},
		{
			name:     "right moves one day forward",
			prompt:   DateSelect{Message: "When:", Default: date(2024, time.June, 15)},
			input:    seqRight + "\r",
			expected: date(2024, time.June, 16),
		},
		{
			name:     "left crosses a month boundary",
			prompt:   DateSelect{Message: "When:", Default: date(2024, time.June, 1)},
			input:    seqLeft + "\r",
			expected: date(2024, time.May, 31),
		},
		{
			name:     "up moves one week back",
			prompt:   DateSelect{Message: "When:", Default: date(2024, time.June, 15)},
			input:    seqUp + "\r",
			expected: date(2024, time.June, 8),
		},
		{
			name:     "down crosses into the next month",
			prompt:   DateSelect{Message: "When:", Default: date(2024, time.June, 28)},
			input:    seqDown + "\r",
			expected: date(2024, time.July, 5),
		},
		{
			name:     "page down adds one month",
			prompt:   DateSelect{Message: "When:", Default: date(2024, time.June, 15)},
			input:    seqPageDown + "\r",
			expected: date(2024, time.July, 15),
		},
		{
			name:     "month shift clamps the day",
			prompt:   DateSelect{Message: "When:", Default: date(2024, time.March, 31)},
			input:    seqPageUp + "\r",
			expected: date(2024, time.February, 29),
		},
		{
			name: "navigation stops at the minimum date",
			prompt: DateSelect{
				Message: "When:",
				Default: date(2024, time.June, 15),
				MinDate: date(2024, time.June, 14),
			},
			input:    seqLeft + seqLeft + seqLeft + "\r",
			expected: date(2024, time.June, 14),
		},
		{
			name: "navigation stops at the maximum date",
			prompt: DateSelect{
				Message: "When:",
				Default: date(2024, time.June, 15),
				MaxDate: date(2024, time.June, 20),
			},
			input:    seqDown + "\r",
			expected: date(2024, time.June, 20),
		},
		{
			name: "default outside the bounds is pulled in",
			prompt: DateSelect{
				Message: "When:",
				Default: date(2024, time.June, 15),
				MinDate: date(2024, time.July, 1),
			},
			input:    "\r",
			expected: date(2024, time.July, 1),
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

func TestDateSelectZeroDefaultIsToday(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBackend("\r")
	prompt := DateSelect{Message: "When:"}
	answer, err := prompt.runWith(b)

	require.NoError(t, err)
	now := time.Now()
	assert.Equal(t, truncateDate(now), answer)
}

func TestDateSelectValidatorLoop(t *testing.T) {
	t.Parallel()

	// Saturday June 15 is rejected; moving to Monday the 17th passes.
	noWeekends := func(d time.Time) error {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			return errors.New("pick a weekday")
		}
		return nil
	}

	b, _, out := newTestBackend("\r" + seqRight + seqRight + "\r")
	prompt := DateSelect{
		Message:    "When:",
		Default:    date(2024, time.June, 15),
		Validators: []DateValidator{noWeekends},
	}
	answer, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.June, 17), answer)
	assert.Contains(t, out.String(), "pick a weekday")
}

func TestDateSelectConfigValidation(t *testing.T) {
	t.Parallel()

	prompt := DateSelect{
		Message: "When:",
		MinDate: date(2024, time.June, 20),
		MaxDate: date(2024, time.June, 10),
	}
	_, err := prompt.Run()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after maximum date")
}

func TestDateSelectCalendarRender(t *testing.T) {
	t.Parallel()

	b, _, out := newTestBackend("\r")
	prompt := DateSelect{Message: "When:", Default: date(2024, time.June, 15)}
	_, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "June 2024")
	assert.Contains(t, out.String(), "Su Mo Tu We Th Fr Sa")
	assert.Contains(t, out.String(), "June 15, 2024")
}

func TestDateSelectWeekStartShiftsColumns(t *testing.T) {
	t.Parallel()

	b, _, out := newTestBackend("\r")
	prompt := DateSelect{
		Message:   "When:",
		Default:   date(2024, time.June, 15),
		WeekStart: time.Monday,
	}
	_, err := prompt.runWith(b)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Mo Tu We Th Fr Sa Su")
}

func TestDateSelectWeeksGrid(t *testing.T) {
	t.Parallel()

	// June 2024 starts on a Saturday and has 30 days.
	prompt := DateSelect{Default: date(2024, time.June, 15)}
	prompt.focus = date(2024, time.June, 15)
	grid := prompt.weeks()

	require.Len(t, grid, 6)
	assert.Equal(t, [7]int{0, 0, 0, 0, 0, 0, 1}, grid[0])
	assert.Equal(t, [7]int{2, 3, 4, 5, 6, 7, 8}, grid[1])
	assert.Equal(t, [7]int{30, 0, 0, 0, 0, 0, 0}, grid[5])
}

func TestDateSelectCancellation(t *testing.T) {
	t.Parallel()

	b, terminal, _ := newTestBackend(seqRight + "\x03")
	prompt := DateSelect{Message: "When:", Default: date(2024, time.June, 15)}
	answer, err := prompt.runWith(b)

	assert.ErrorIs(t, err, ErrCanceled)
	assert.True(t, answer.IsZero())
	assert.Equal(t, 1, terminal.rawRestores)
}
