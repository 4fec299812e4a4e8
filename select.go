package enquire

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const defaultPageSize = 7

// Select prompts for exactly one option out of a list. The user can type to
// filter the list, navigate with the arrow keys (wrapping at both ends), jump
// by page with PageUp/PageDown and submit with Enter.
type Select struct {
	Message string
	Options []string
	Help    string
	// PageSize caps how many rows are drawn at once; defaults to 7.
	PageSize int
	// Filter defaults to a case-insensitive substring match.
	Filter Filter
	// DisableFilter turns typing off entirely, for short fixed menus.
	DisableFilter bool
	// StartingIndex is the option under the cursor on the first render.
	StartingIndex int
	RenderConfig  *RenderConfig

	promptBase
	options []OptionAnswer
	filter  lineEditor
	view    []int // original indices of the visible (filtered) options
	cursor  int   // position within view
	maxRows int   // rows available for options on this terminal
	answer  OptionAnswer
}

// Run executes the prompt on the process terminal.
func (s *Select) Run() (OptionAnswer, error) {
	if err := s.validateConfig(); err != nil {
		return OptionAnswer{}, err
	}
	b, err := newDefaultBackend(s.RenderConfig)
	if err != nil {
		return OptionAnswer{}, err
	}
	defer b.close()
	return s.runWith(b)
}

func (s *Select) validateConfig() error {
	if len(s.Options) == 0 {
		return configError("select prompt requires at least one option")
	}
	if s.StartingIndex < 0 || s.StartingIndex >= len(s.Options) {
		return configError("select starting index %d out of range [0, %d)", s.StartingIndex, len(s.Options))
	}
	return nil
}

func (s *Select) runWith(b *backend) (OptionAnswer, error) {
	if err := s.validateConfig(); err != nil {
		return OptionAnswer{}, err
	}
	if _, height, err := b.terminal.Size(); err == nil {
		// Leave room for the message, error, help and page indicator lines.
		s.maxRows = height - 4
	}
	s.options = newOptionAnswers(s.Options)
	s.refilter()
	s.cursor = s.StartingIndex
	if err := runLoop(b, s); err != nil {
		return OptionAnswer{}, err
	}
	return s.answer, nil
}

func (s *Select) pageSize() int {
	size := s.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if s.maxRows > 0 && size > s.maxRows {
		size = s.maxRows
	}
	return size
}

func (s *Select) filterFunc() Filter {
	if s.Filter != nil {
		return s.Filter
	}
	return ContainsFilter
}

// refilter recomputes the visible view from the filter text, preserving the
// original relative order, and resets the cursor to the first visible row.
func (s *Select) refilter() {
	text := s.filter.text()
	s.view = s.view[:0]
	match := s.filterFunc()
	for _, opt := range s.options {
		if text == "" || match(text, opt.Value, opt.Index) {
			s.view = append(s.view, opt.Index)
		}
	}
	s.cursor = 0
}

// page returns the window of the view drawn this frame plus the page counts.
func (s *Select) page() (start, end, pageNum, pageCount int) {
	size := s.pageSize()
	pageCount = (len(s.view) + size - 1) / size
	if pageCount == 0 {
		return 0, 0, 0, 0
	}
	pageNum = s.cursor / size
	start = pageNum * size
	end = min(start+size, len(s.view))
	return start, end, pageNum, pageCount
}

func (s *Select) render(f *frame, rc *RenderConfig) {
	s.renderHeader(f, rc, s.Message)
	if !s.DisableFilter {
		s.filter.renderInto(f, rc.Answer)
	}

	start, end, pageNum, pageCount := s.page()
	for i := start; i < end; i++ {
		f.newline()
		opt := s.options[s.view[i]]
		if i == s.cursor {
			f.writeStyled(rc.SelectedMarker)
			f.write(opt.Value, rc.HighlightedRow)
		} else {
			f.write(markerPad(rc.SelectedMarker), StyleSheet{})
			f.write(opt.Value, rc.OptionRow)
		}
	}
	if pageCount > 1 {
		f.newline()
		f.write(fmt.Sprintf("[%d/%d]", pageNum+1, pageCount), rc.PageIndicator)
	}
	s.renderFooter(f, rc, s.helpMessage())
}

func (s *Select) helpMessage() string {
	if s.Help != "" {
		return s.Help
	}
	if s.DisableFilter {
		return "↑↓ to move, enter to select"
	}
	return "↑↓ to move, enter to select, type to filter"
}

func (s *Select) renderResult(f *frame, rc *RenderConfig) {
	s.renderAnswer(f, rc, s.Message, s.answer.Value)
}

func (s *Select) handleKey(key Key) (loopAction, error) {
	switch {
	case isCancelKey(key):
		return actionCancel, nil
	case key.Code == KeyEnter:
		if len(s.view) == 0 {
			s.fail(errors.New("no options match the filter"))
			return actionContinue, nil
		}
		s.answer = s.options[s.view[s.cursor]]
		return actionSubmit, nil
	case key.Code == KeyUp:
		s.moveCursor(-1)
	case key.Code == KeyDown:
		s.moveCursor(1)
	case key.Code == KeyPageUp:
		s.jumpCursor(-s.pageSize())
	case key.Code == KeyPageDown:
		s.jumpCursor(s.pageSize())
	case key.Code == KeyHome:
		s.cursor = 0
	case key.Code == KeyEnd:
		if len(s.view) > 0 {
			s.cursor = len(s.view) - 1
		}
	default:
		before := s.filter.text()
		if !s.DisableFilter && s.filter.handleKey(key) {
			s.clearFailure()
			// Pure caret movement keeps the list cursor where it is.
			if s.filter.text() != before {
				s.refilter()
			}
		}
	}
	return actionContinue, nil
}

// moveCursor moves by one row with circular wrap at both ends.
func (s *Select) moveCursor(delta int) {
	if len(s.view) == 0 {
		return
	}
	s.cursor = (s.cursor + delta + len(s.view)) % len(s.view)
}

// jumpCursor moves by a full page, clamping at the boundaries.
func (s *Select) jumpCursor(delta int) {
	if len(s.view) == 0 {
		return
	}
	s.cursor = max(0, min(s.cursor+delta, len(s.view)-1))
}

// markerPad returns spaces as wide as a row marker, to keep unmarked rows
// aligned with marked ones.
func markerPad(marker Styled) string {
	return strings.Repeat(" ", runewidth.StringWidth(marker.Text))
}
