// Package main demonstrates the select and multiselect prompts.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/mikaelmello/enquire"
)

func main() {
	region := enquire.Select{
		Message: "Deploy to which region?",
		Options: []string{
			"us-east-1",
			"us-west-2",
			"eu-west-1",
			"eu-central-1",
			"ap-northeast-1",
			"ap-southeast-2",
			"sa-east-1",
		},
		PageSize: 5,
		Filter:   enquire.FuzzyFilter,
	}
	answer, err := region.Run()
	if err != nil {
		if errors.Is(err, enquire.ErrCanceled) {
			fmt.Println("Canceled.")
			return
		}
		log.Fatal(err)
	}
	fmt.Printf("Deploying to %s (option %d).\n", answer.Value, answer.Index)

	services := enquire.MultiSelect{
		Message: "Which services should restart?",
		Options: []string{"api", "worker", "scheduler", "gateway", "cache"},
		Checked: []int{0},
		Validators: []enquire.OptionsValidator{
			enquire.MinSelected(1, "pick at least one service"),
		},
	}
	selection, err := services.Run()
	if err != nil {
		log.Fatal(err)
	}
	for _, service := range selection {
		fmt.Printf("restarting %s\n", service.Value)
	}
}
