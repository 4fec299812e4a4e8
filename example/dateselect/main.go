// Package main demonstrates the calendar date prompt.
package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mikaelmello/enquire"
)

func main() {
	today := time.Now()

	when := enquire.DateSelect{
		Message:   "Schedule the maintenance window:",
		MinDate:   today,
		MaxDate:   today.AddDate(0, 3, 0),
		WeekStart: time.Monday,
		Validators: []enquire.DateValidator{
			func(d time.Time) error {
				if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
					return errors.New("maintenance runs on weekdays only")
				}
				return nil
			},
		},
	}
	answer, err := when.Run()
	if err != nil {
		if errors.Is(err, enquire.ErrCanceled) {
			fmt.Println("Canceled.")
			return
		}
		log.Fatal(err)
	}
	fmt.Printf("Maintenance scheduled for %s.\n", answer.Format("Monday, January 2, 2006"))
}
