// Package enquire provides interactive prompts for terminal applications:
// free text, passwords, confirmations, typed values, single and multi
// selection, calendar dates and externally-edited text.
//
// Every prompt is a blocking, synchronous state machine over a raw terminal:
// it reads one key at a time, updates its state and redraws only the lines of
// its own frame until the user submits a valid answer or cancels. The raw
// terminal mode is acquired when a prompt starts and restored on every exit
// path, so the terminal is never left unusable.
//
// Quick start:
//
//	name, err := (&enquire.Text{
//		Message:    "What is your name?",
//		Validators: []enquire.StringValidator{enquire.Required("")},
//	}).Run()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Hello,", name)
//
// Selection prompts return OptionAnswer values that keep the original list
// index through filtering and reordering:
//
//	color, err := (&enquire.Select{
//		Message: "Pick a color",
//		Options: []string{"red", "green", "blue"},
//	}).Run()
//
// Typed answers go through CustomType, which routes parse failures through
// the same error line as validators:
//
//	port, err := enquire.NewCustomType("Port:", strconv.Atoi).Run()
//
// Outcomes:
//
//   - a valid answer: returned with a nil error
//   - cancellation (Escape or Ctrl+C): ErrCanceled, never a partial answer
//   - exhausted input: ErrEOF
//   - terminal I/O failure: a wrapped fatal error naming the operation
//
// Validation failures are not errors in this sense: they are rendered on the
// prompt's error line and the prompt keeps running.
//
// Styling is configured per prompt through RenderConfig, mapping each UI role
// (prefix, answer, placeholder, help, error, markers, rows, calendar cells)
// to a StyleSheet. DefaultRenderConfig is used when none is given;
// EmptyRenderConfig renders plain text for dumb terminals.
package enquire
