// Package main demonstrates the basic text, password and confirm prompts.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/mikaelmello/enquire"
)

func main() {
	name := enquire.Text{
		Message:    "What is your name?",
		Validators: []enquire.StringValidator{enquire.Required("your name is required")},
	}
	answer, err := name.Run()
	if err != nil {
		if errors.Is(err, enquire.ErrCanceled) {
			fmt.Println("Canceled.")
			return
		}
		log.Fatal(err)
	}

	password := enquire.Password{
		Message:      "Choose a password:",
		DisplayMode:  enquire.PasswordMasked,
		EnableToggle: true,
		Help:         "ctrl+r toggles how the password is displayed",
		Validators:   []enquire.StringValidator{enquire.MinLength(8, "use at least 8 characters")},
	}
	if _, err := password.Run(); err != nil {
		log.Fatal(err)
	}

	confirm := enquire.Confirm{Message: "Save these settings?", Default: true}
	save, err := confirm.Run()
	if err != nil {
		log.Fatal(err)
	}

	if save {
		fmt.Printf("Settings saved for %s.\n", answer)
	} else {
		fmt.Println("Nothing saved.")
	}
}
