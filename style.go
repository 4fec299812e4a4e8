package enquire

import (
	"fmt"
	"strings"
)

// Color is a 24-bit RGB terminal color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Commonly used colors for building render configs.
var (
	ColorGreen   = Color{R: 0, G: 175, B: 95}
	ColorCyan    = Color{R: 0, G: 175, B: 175}
	ColorYellow  = Color{R: 215, G: 175, B: 0}
	ColorRed     = Color{R: 215, G: 0, B: 0}
	ColorGrey    = Color{R: 128, G: 128, B: 128}
	ColorWhite   = Color{R: 255, G: 255, B: 255}
	ColorMagenta = Color{R: 175, G: 95, B: 215}
)

// AttrSet is a bit set of text attributes.
type AttrSet uint8

// Text attributes applicable to a styled span.
const (
	AttrBold AttrSet = 1 << iota
	AttrItalic
	AttrUnderline
	AttrReverse
)

// StyleSheet describes how one visual element is painted: optional foreground
// and background colors plus a set of attributes. The zero value paints plain
// text with no escape sequences at all.
type StyleSheet struct {
	Fg   *Color
	Bg   *Color
	Attr AttrSet
}

// NewStyle returns a StyleSheet with the given foreground color.
func NewStyle(fg Color) StyleSheet {
	return StyleSheet{Fg: &fg}
}

// Bold returns a copy of the style with the bold attribute set.
func (s StyleSheet) Bold() StyleSheet {
	s.Attr |= AttrBold
	return s
}

// Reversed returns a copy of the style with the reverse-video attribute set.
func (s StyleSheet) Reversed() StyleSheet {
	s.Attr |= AttrReverse
	return s
}

// WithBg returns a copy of the style with the given background color.
func (s StyleSheet) WithBg(bg Color) StyleSheet {
	s.Bg = &bg
	return s
}

func (s StyleSheet) isZero() bool {
	return s.Fg == nil && s.Bg == nil && s.Attr == 0
}

// ansi renders the style as a single SGR escape sequence, or "" for the zero
// style so unstyled output stays byte-exact with plain text.
func (s StyleSheet) ansi() string {
	if s.isZero() {
		return ""
	}

	var codes []string
	if s.Attr&AttrBold != 0 {
		codes = append(codes, "1")
	}
	if s.Attr&AttrItalic != 0 {
		codes = append(codes, "3")
	}
	if s.Attr&AttrUnderline != 0 {
		codes = append(codes, "4")
	}
	if s.Attr&AttrReverse != 0 {
		codes = append(codes, "7")
	}
	if s.Fg != nil {
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", s.Fg.R, s.Fg.G, s.Fg.B))
	}
	if s.Bg != nil {
		codes = append(codes, fmt.Sprintf("48;2;%d;%d;%d", s.Bg.R, s.Bg.G, s.Bg.B))
	}
	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// ansiReset returns the SGR reset sequence.
func ansiReset() string {
	return "\x1b[0m"
}

// Styled pairs a piece of text with the StyleSheet used to paint it.
type Styled struct {
	Text  string
	Style StyleSheet
}

// PlainStyled returns text with the zero style.
func PlainStyled(text string) Styled {
	return Styled{Text: text}
}

// RenderConfig maps every named UI role to its style. It is immutable
// configuration: supplied once at prompt construction and shared read-only by
// all rendering calls for the prompt's lifetime.
type RenderConfig struct {
	// PromptPrefix opens the message line of an active prompt, e.g. "? ".
	PromptPrefix Styled
	// AnsweredPrefix opens the final echo line after submission, e.g. "> ".
	AnsweredPrefix Styled
	// ErrorPrefix opens the error line, e.g. "✘ ".
	ErrorPrefix Styled

	Message     StyleSheet // the prompt question text
	Answer      StyleSheet // typed input and the final echoed answer
	Placeholder StyleSheet // placeholder and default-value hints
	Help        StyleSheet // the bracketed help line
	Error       StyleSheet // validation failure messages

	// SelectedMarker flags the row under the cursor in list prompts.
	SelectedMarker Styled
	// CheckedMarker / UncheckedMarker flag multi-select membership.
	CheckedMarker   Styled
	UncheckedMarker Styled

	HighlightedRow StyleSheet // the row under the cursor
	OptionRow      StyleSheet // every other visible row
	PageIndicator  StyleSheet // the "[2/5]" pagination hint

	CalendarHeader StyleSheet // month/year and weekday header rows
	TodayCell      StyleSheet // the default-marked (today/initial) day cell
	FocusedCell    StyleSheet // the day cell under the cursor
}

// DefaultRenderConfig returns the stock styling used when a prompt is run
// without an explicit RenderConfig.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		PromptPrefix:   Styled{Text: "? ", Style: NewStyle(ColorGreen).Bold()},
		AnsweredPrefix: Styled{Text: "> ", Style: NewStyle(ColorGreen).Bold()},
		ErrorPrefix:    Styled{Text: "✘ ", Style: NewStyle(ColorRed).Bold()},

		Message:     StyleSheet{Attr: AttrBold},
		Answer:      NewStyle(ColorCyan),
		Placeholder: NewStyle(ColorGrey),
		Help:        NewStyle(ColorGrey),
		Error:       NewStyle(ColorRed),

		SelectedMarker:  Styled{Text: "> ", Style: NewStyle(ColorCyan).Bold()},
		CheckedMarker:   Styled{Text: "[x] ", Style: NewStyle(ColorGreen)},
		UncheckedMarker: Styled{Text: "[ ] "},

		HighlightedRow: NewStyle(ColorCyan).Bold(),
		OptionRow:      StyleSheet{},
		PageIndicator:  NewStyle(ColorGrey),

		CalendarHeader: StyleSheet{Attr: AttrBold},
		TodayCell:      NewStyle(ColorGreen),
		FocusedCell:    StyleSheet{Attr: AttrReverse},
	}
}

// EmptyRenderConfig returns a style-free configuration: plain markers and zero
// styles everywhere. Useful on dumb terminals and for byte-exact assertions in
// tests.
func EmptyRenderConfig() *RenderConfig {
	return &RenderConfig{
		PromptPrefix:   PlainStyled("? "),
		AnsweredPrefix: PlainStyled("> "),
		ErrorPrefix:    PlainStyled("! "),

		SelectedMarker:  PlainStyled("> "),
		CheckedMarker:   PlainStyled("[x] "),
		UncheckedMarker: PlainStyled("[ ] "),
	}
}
