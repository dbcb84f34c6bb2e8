package domain

import "time"

type ContributionDay struct {
	Count   int
	Date    time.Time
	Weekday int
	Color   string
}
