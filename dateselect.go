package enquire

import (
	"fmt"
	"time"
)

// DateSelect prompts for a calendar date. Left/Right move the focus by one
// day, Up/Down by one week and PageUp/PageDown by one month, rolling over
// month boundaries; Enter submits the focused date.
type DateSelect struct {
	Message string
	Help    string
	// Default is the initially focused date; the zero value means today.
	Default time.Time
	// MinDate/MaxDate bound navigation and submission when non-zero.
	MinDate time.Time
	MaxDate time.Time
	// WeekStart is the first column of the grid; defaults to Sunday.
	WeekStart    time.Weekday
	Validators   []DateValidator
	RenderConfig *RenderConfig

	promptBase
	focus  time.Time
	marked time.Time // the default-marked cell (today or the initial value)
	answer time.Time
}

// Run executes the prompt on the process terminal.
func (d *DateSelect) Run() (time.Time, error) {
	if err := d.validateConfig(); err != nil {
		return time.Time{}, err
	}
	b, err := newDefaultBackend(d.RenderConfig)
	if err != nil {
		return time.Time{}, err
	}
	defer b.close()
	return d.runWith(b)
}

func (d *DateSelect) validateConfig() error {
	if !d.MinDate.IsZero() && !d.MaxDate.IsZero() && d.MinDate.After(d.MaxDate) {
		return configError("dateselect minimum date %s is after maximum date %s",
			d.MinDate.Format("2006-01-02"), d.MaxDate.Format("2006-01-02"))
	}
	return nil
}

func (d *DateSelect) runWith(b *backend) (time.Time, error) {
	if err := d.validateConfig(); err != nil {
		return time.Time{}, err
	}

	start := d.Default
	if start.IsZero() {
		start = time.Now()
	}
	d.focus = d.clamp(truncateDate(start))
	d.marked = d.focus

	if err := runLoop(b, d); err != nil {
		return time.Time{}, err
	}
	return d.answer, nil
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (d *DateSelect) clamp(t time.Time) time.Time {
	if !d.MinDate.IsZero() && t.Before(truncateDate(d.MinDate)) {
		return truncateDate(d.MinDate)
	}
	if !d.MaxDate.IsZero() && t.After(truncateDate(d.MaxDate)) {
		return truncateDate(d.MaxDate)
	}
	return t
}

// shiftDays moves the focus by whole days, clamped to the configured bounds.
func (d *DateSelect) shiftDays(days int) {
	d.focus = d.clamp(d.focus.AddDate(0, 0, days))
}

// shiftMonths moves the focus by whole months, clamping the day-of-month so
// e.g. March 31 minus one month lands on February 28 rather than rolling
// into early March.
func (d *DateSelect) shiftMonths(months int) {
	year, month, day := d.focus.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, d.focus.Location())
	target := first.AddDate(0, months, 0)
	if last := daysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	d.focus = d.clamp(time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, d.focus.Location()))
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d *DateSelect) handleKey(key Key) (loopAction, error) {
	switch {
	case isCancelKey(key):
		return actionCancel, nil
	case key.Code == KeyEnter:
		if err := d.validateDate(d.focus); err != nil {
			d.fail(err)
			return actionContinue, nil
		}
		d.answer = d.focus
		return actionSubmit, nil
	case key.Code == KeyLeft:
		d.shiftDays(-1)
	case key.Code == KeyRight:
		d.shiftDays(1)
	case key.Code == KeyUp:
		d.shiftDays(-7)
	case key.Code == KeyDown:
		d.shiftDays(7)
	case key.Code == KeyPageUp:
		d.shiftMonths(-1)
	case key.Code == KeyPageDown:
		d.shiftMonths(1)
	default:
		return actionContinue, nil
	}
	d.clearFailure()
	return actionContinue, nil
}

func (d *DateSelect) validateDate(t time.Time) error {
	if !d.MinDate.IsZero() && t.Before(truncateDate(d.MinDate)) {
		return fmt.Errorf("date must not be before %s", d.MinDate.Format("2006-01-02"))
	}
	if !d.MaxDate.IsZero() && t.After(truncateDate(d.MaxDate)) {
		return fmt.Errorf("date must not be after %s", d.MaxDate.Format("2006-01-02"))
	}
	return runDateValidators(d.Validators, t)
}

func (d *DateSelect) render(f *frame, rc *RenderConfig) {
	d.renderHeader(f, rc, d.Message)
	f.write(d.focus.Format("January 2, 2006"), rc.Answer)

	f.newline()
	f.write(d.focus.Format("January 2006"), rc.CalendarHeader)

	f.newline()
	for i := 0; i < 7; i++ {
		weekday := time.Weekday((int(d.WeekStart) + i) % 7)
		if i > 0 {
			f.write(" ", StyleSheet{})
		}
		f.write(weekday.String()[:2], rc.CalendarHeader)
	}

	for _, week := range d.weeks() {
		f.newline()
		for i, day := range week {
			if i > 0 {
				f.write(" ", StyleSheet{})
			}
			if day == 0 {
				f.write("  ", StyleSheet{})
				continue
			}
			cell := fmt.Sprintf("%2d", day)
			date := time.Date(d.focus.Year(), d.focus.Month(), day, 0, 0, 0, 0, d.focus.Location())
			switch {
			case date.Equal(d.focus):
				f.write(cell, rc.FocusedCell)
			case date.Equal(d.marked):
				f.write(cell, rc.TodayCell)
			case d.outOfBounds(date):
				f.write(cell, rc.Placeholder)
			default:
				f.write(cell, StyleSheet{})
			}
		}
	}

	d.renderFooter(f, rc, d.helpMessage())
}

func (d *DateSelect) outOfBounds(t time.Time) bool {
	return !d.clamp(t).Equal(t)
}

func (d *DateSelect) helpMessage() string {
	if d.Help != "" {
		return d.Help
	}
	return "arrows to move, pgup/pgdn to change month, enter to select"
}

// weeks lays the focus month out as a fixed 7-column grid, one slice entry
// per week row; zero marks a cell outside the month.
func (d *DateSelect) weeks() [][7]int {
	year, month, _ := d.focus.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, d.focus.Location())
	offset := (int(first.Weekday()) - int(d.WeekStart) + 7) % 7
	last := daysInMonth(year, month)

	var grid [][7]int
	var week [7]int
	col := offset
	for day := 1; day <= last; day++ {
		week[col] = day
		col++
		if col == 7 {
			grid = append(grid, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		grid = append(grid, week)
	}
	return grid
}

func (d *DateSelect) renderResult(f *frame, rc *RenderConfig) {
	d.renderAnswer(f, rc, d.Message, d.answer.Format("January 2, 2006"))
}
