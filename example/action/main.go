// Package main demonstrates the action prompt for short fixed menus.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/mikaelmello/enquire"
)

func main() {
	conflict := enquire.Action{
		Message: "config.yaml already exists:",
		Actions: []string{"Overwrite", "Keep both", "Skip", "Abort"},
	}
	answer, err := conflict.Run()
	if err != nil {
		if errors.Is(err, enquire.ErrCanceled) {
			fmt.Println("Canceled.")
			return
		}
		log.Fatal(err)
	}
	fmt.Printf("Chose %q.\n", answer.Value)
}
