package domain

import "time"

// Exercise is a single logged activity owned by a User. It has no identity
// of its own beyond its position in the parent's sequence.
type Exercise struct {
	Description string    `bson:"description" json:"description"`
	Duration    int       `bson:"duration" json:"duration"` // Minutes
	Date        time.Time `bson:"date" json:"date"`
}

// DayStringLayout renders a date as e.g. "Tue Jan 02 2024" with no time
// component, matching the classic toDateString shape used in API responses.
const DayStringLayout = "Mon Jan 02 2006"

// DateString returns the exercise date formatted as a day-string.
func (e Exercise) DateString() string {
	return e.Date.UTC().Format(DayStringLayout)
}
