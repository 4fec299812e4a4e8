package enquire

import (
	"fmt"
	"sort"
	"strings"
)

// MultiSelect prompts for any number of options out of a list. Space toggles
// the row under the cursor, Right checks and Left clears everything currently
// visible through the filter, and Enter submits the checked set ordered by
// original index.
type MultiSelect struct {
	Message string
	Options []string
	Help    string
	// PageSize caps how many rows are drawn at once; defaults to 7.
	PageSize int
	// Filter defaults to a case-insensitive substring match.
	Filter Filter
	// Checked pre-checks options by original index.
	Checked    []int
	Validators []OptionsValidator
	// Formatter maps the final selection to the text echoed after
	// submission; when nil the selected values are joined with ", ".
	Formatter    func(selection []OptionAnswer) string
	RenderConfig *RenderConfig

	promptBase
	options []OptionAnswer
	filter  lineEditor
	view    []int
	cursor  int
	maxRows int
	checked map[int]bool // keyed by original index, independent of filter/page
	answer  []OptionAnswer
}

// Run executes the prompt on the process terminal.
func (m *MultiSelect) Run() ([]OptionAnswer, error) {
	if err := m.validateConfig(); err != nil {
		return nil, err
	}
	b, err := newDefaultBackend(m.RenderConfig)
	if err != nil {
		return nil, err
	}
	defer b.close()
	return m.runWith(b)
}

func (m *MultiSelect) validateConfig() error {
	if len(m.Options) == 0 {
		return configError("multiselect prompt requires at least one option")
	}
	for _, idx := range m.Checked {
		if idx < 0 || idx >= len(m.Options) {
			return configError("multiselect pre-checked index %d out of range [0, %d)", idx, len(m.Options))
		}
	}
	return nil
}

func (m *MultiSelect) runWith(b *backend) ([]OptionAnswer, error) {
	if err := m.validateConfig(); err != nil {
		return nil, err
	}
	if _, height, err := b.terminal.Size(); err == nil {
		// Leave room for the message, error, help and page indicator lines.
		m.maxRows = height - 4
	}
	m.options = newOptionAnswers(m.Options)
	m.checked = make(map[int]bool, len(m.Checked))
	for _, idx := range m.Checked {
		m.checked[idx] = true
	}
	m.refilter()
	if err := runLoop(b, m); err != nil {
		return nil, err
	}
	return m.answer, nil
}

func (m *MultiSelect) pageSize() int {
	size := m.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if m.maxRows > 0 && size > m.maxRows {
		size = m.maxRows
	}
	return size
}

func (m *MultiSelect) filterFunc() Filter {
	if m.Filter != nil {
		return m.Filter
	}
	return ContainsFilter
}

func (m *MultiSelect) refilter() {
	text := m.filter.text()
	m.view = m.view[:0]
	match := m.filterFunc()
	for _, opt := range m.options {
		if text == "" || match(text, opt.Value, opt.Index) {
			m.view = append(m.view, opt.Index)
		}
	}
	m.cursor = 0
}

func (m *MultiSelect) page() (start, end, pageNum, pageCount int) {
	size := m.pageSize()
	pageCount = (len(m.view) + size - 1) / size
	if pageCount == 0 {
		return 0, 0, 0, 0
	}
	pageNum = m.cursor / size
	start = pageNum * size
	end = min(start+size, len(m.view))
	return start, end, pageNum, pageCount
}

func (m *MultiSelect) render(f *frame, rc *RenderConfig) {
	m.renderHeader(f, rc, m.Message)
	m.filter.renderInto(f, rc.Answer)

	start, end, pageNum, pageCount := m.page()
	for i := start; i < end; i++ {
		f.newline()
		opt := m.options[m.view[i]]
		if i == m.cursor {
			f.writeStyled(rc.SelectedMarker)
		} else {
			f.write(markerPad(rc.SelectedMarker), StyleSheet{})
		}
		if m.checked[opt.Index] {
			f.writeStyled(rc.CheckedMarker)
		} else {
			f.writeStyled(rc.UncheckedMarker)
		}
		if i == m.cursor {
			f.write(opt.Value, rc.HighlightedRow)
		} else {
			f.write(opt.Value, rc.OptionRow)
		}
	}
	if pageCount > 1 {
		f.newline()
		f.write(fmt.Sprintf("[%d/%d]", pageNum+1, pageCount), rc.PageIndicator)
	}
	m.renderFooter(f, rc, m.helpMessage())
}

func (m *MultiSelect) helpMessage() string {
	if m.Help != "" {
		return m.Help
	}
	return "↑↓ to move, space to toggle, → all, ← none, enter to submit"
}

func (m *MultiSelect) renderResult(f *frame, rc *RenderConfig) {
	m.renderAnswer(f, rc, m.Message, m.echo())
}

func (m *MultiSelect) echo() string {
	if m.Formatter != nil {
		return m.Formatter(m.answer)
	}
	values := make([]string, len(m.answer))
	for i, opt := range m.answer {
		values[i] = opt.Value
	}
	return strings.Join(values, ", ")
}

func (m *MultiSelect) handleKey(key Key) (loopAction, error) {
	switch {
	case isCancelKey(key):
		return actionCancel, nil
	case key.Code == KeyEnter:
		selection := m.selection()
		if err := runOptionsValidators(m.Validators, selection); err != nil {
			m.fail(err)
			return actionContinue, nil
		}
		m.answer = selection
		return actionSubmit, nil
	case key.Code == KeySpace:
		if len(m.view) > 0 {
			idx := m.view[m.cursor]
			m.checked[idx] = !m.checked[idx]
			m.clearFailure()
		}
	case key.Code == KeyRight:
		// Select-all operates on the filtered view only.
		for _, idx := range m.view {
			m.checked[idx] = true
		}
		m.clearFailure()
	case key.Code == KeyLeft:
		// Clear-all likewise touches only what the filter shows.
		for _, idx := range m.view {
			delete(m.checked, idx)
		}
		m.clearFailure()
	case key.Code == KeyUp:
		m.moveCursor(-1)
	case key.Code == KeyDown:
		m.moveCursor(1)
	case key.Code == KeyPageUp:
		m.jumpCursor(-m.pageSize())
	case key.Code == KeyPageDown:
		m.jumpCursor(m.pageSize())
	case key.Code == KeyHome:
		m.cursor = 0
	case key.Code == KeyEnd:
		if len(m.view) > 0 {
			m.cursor = len(m.view) - 1
		}
	default:
		before := m.filter.text()
		if m.filter.handleKey(key) {
			m.clearFailure()
			// Pure caret movement keeps the list cursor where it is.
			if m.filter.text() != before {
				m.refilter()
			}
		}
	}
	return actionContinue, nil
}

// selection returns the checked options ordered by original index, regardless
// of the order they were toggled in.
func (m *MultiSelect) selection() []OptionAnswer {
	indices := make([]int, 0, len(m.checked))
	for idx, on := range m.checked {
		if on {
			indices = append(indices, idx)
		}
	}
	sort.Ints(indices)

	selection := make([]OptionAnswer, len(indices))
	for i, idx := range indices {
		selection[i] = m.options[idx]
	}
	return selection
}

func (m *MultiSelect) moveCursor(delta int) {
	if len(m.view) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.view)) % len(m.view)
}

func (m *MultiSelect) jumpCursor(delta int) {
	if len(m.view) == 0 {
		return
	}
	m.cursor = max(0, min(m.cursor+delta, len(m.view)-1))
}
