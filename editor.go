package enquire

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Editor collects multi-line input through an external text editor. Pressing
// 'e' writes the current buffer to a temporary file, suspends the prompt
// while the editor runs, and reloads the file on return; Enter submits the
// buffer through the validator chain like any other candidate answer.
type Editor struct {
	Message string
	Help    string
	// Command is the editor executable. When empty, $VISUAL then $EDITOR are
	// consulted, falling back to vi (notepad on Windows).
	Command string
	// Args are extra arguments placed before the file path.
	Args []string
	// FileExtension is appended to the temporary file name so editors can
	// pick a syntax mode. Defaults to ".txt".
	FileExtension string
	// PredefinedText seeds the buffer before the first editor round trip.
	PredefinedText string
	Validators     []StringValidator
	// Formatter maps the validated answer to the text echoed after
	// submission; when nil a short preview of the buffer is echoed.
	Formatter    func(answer string) string
	RenderConfig *RenderConfig

	promptBase
	backend *backend
	buffer  string
	edited  bool
	answer  string
}

// Run executes the prompt on the process terminal.
func (e *Editor) Run() (string, error) {
	b, err := newDefaultBackend(e.RenderConfig)
	if err != nil {
		return "", err
	}
	defer b.close()
	return e.runWith(b)
}

func (e *Editor) runWith(b *backend) (string, error) {
	e.backend = b
	e.buffer = e.PredefinedText
	if err := runLoop(b, e); err != nil {
		return "", err
	}
	return e.answer, nil
}

func (e *Editor) command() (string, []string) {
	if e.Command != "" {
		return e.Command, e.Args
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual, nil
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor, nil
	}
	if runtime.GOOS == "windows" {
		return "notepad", nil
	}
	return "vi", nil
}

func (e *Editor) extension() string {
	if e.FileExtension != "" {
		return e.FileExtension
	}
	return ".txt"
}

// openEditor performs the file round trip: write the buffer out, release the
// raw-mode session, block on the external process, re-engage the session and
// read the file back. Any failure along the way is fatal for the prompt run.
func (e *Editor) openEditor() error {
	tmp, err := os.CreateTemp("", "enquire-*"+e.extension())
	if err != nil {
		return fmt.Errorf("enquire: create editor file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(e.buffer); err != nil {
		tmp.Close()
		return fmt.Errorf("enquire: write editor file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("enquire: write editor file: %w", err)
	}

	if err := e.backend.leave(); err != nil {
		return err
	}

	name, args := e.command()
	cmd := exec.Command(name, append(append([]string{}, args...), path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	runErr := cmd.Run()

	// The session is re-entered before the error check so the terminal is
	// usable again even when the editor failed.
	if err := e.backend.enter(); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("enquire: run editor %q: %w", name, runErr)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("enquire: read editor file: %w", err)
	}
	e.buffer = strings.TrimSuffix(string(content), "\n")
	e.edited = true
	return nil
}

func (e *Editor) render(f *frame, rc *RenderConfig) {
	e.renderHeader(f, rc, e.Message)
	if e.edited || e.buffer != "" {
		f.write(e.preview(), rc.Answer)
	} else {
		f.write("<empty>", rc.Placeholder)
	}
	e.renderFooter(f, rc, e.helpMessage())
}

// preview is the first line of the buffer, truncated, for the one-line echo.
func (e *Editor) preview() string {
	line, _, multi := strings.Cut(e.buffer, "\n")
	runes := []rune(line)
	if len(runes) > 40 {
		return string(runes[:40]) + "…"
	}
	if multi {
		return line + " …"
	}
	return line
}

func (e *Editor) helpMessage() string {
	if e.Help != "" {
		return e.Help
	}
	return "press e to open the editor, enter to submit"
}

func (e *Editor) renderResult(f *frame, rc *RenderConfig) {
	echo := e.preview()
	if e.Formatter != nil {
		echo = e.Formatter(e.answer)
	}
	e.renderAnswer(f, rc, e.Message, echo)
}

func (e *Editor) handleKey(key Key) (loopAction, error) {
	switch {
	case isCancelKey(key):
		return actionCancel, nil
	case key.Code == KeyEnter:
		if err := runStringValidators(e.Validators, e.buffer); err != nil {
			e.fail(err)
			return actionContinue, nil
		}
		e.answer = e.buffer
		return actionSubmit, nil
	case key.Code == KeyRune && (key.Rune == 'e' || key.Rune == 'E'):
		if err := e.openEditor(); err != nil {
			return actionContinue, err
		}
		e.clearFailure()
		return actionContinue, nil
	default:
		return actionContinue, nil
	}
}
