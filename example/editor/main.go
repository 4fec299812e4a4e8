// Package main demonstrates the external-editor and custom-type prompts.
package main

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/mikaelmello/enquire"
)

func main() {
	message := enquire.Editor{
		Message:        "Release notes:",
		FileExtension:  ".md",
		PredefinedText: "## Changes\n\n- ",
		Validators:     []enquire.StringValidator{enquire.Required("release notes are required")},
	}
	notes, err := message.Run()
	if err != nil {
		if errors.Is(err, enquire.ErrCanceled) {
			fmt.Println("Canceled.")
			return
		}
		log.Fatal(err)
	}

	replicas := enquire.NewCustomType("How many replicas?", strconv.Atoi)
	replicas.Default = "3"
	count, err := replicas.Run()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Rolling out %d replicas.\n\n%s\n", count, notes)
}
