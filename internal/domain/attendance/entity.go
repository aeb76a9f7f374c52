package attendance

import (
	"time"
)

// Kind distinguishes the two daily punches.
type Kind string

const (
	KindCheckIn  Kind = "check_in"
	KindCheckOut Kind = "check_out"
)

func (k Kind) Valid() bool {
	return k == KindCheckIn || k == KindCheckOut
}

// Record is one punch. At most one record may exist per (user, date, kind).
type Record struct {
	ID        string
	UserID    string
	Date      time.Time
	Time      time.Time
	Kind      Kind
	Location  *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	UserName *string
}

// DaySummary pairs a day's check-in and check-out into worked time.
// WorkedMinutes is nil while either punch is missing.
type DaySummary struct {
	Date          time.Time
	CheckIn       *time.Time
	CheckOut      *time.Time
	WorkedMinutes *int
}

// Summarize groups records by date and computes worked minutes per day.
// Records must belong to a single user; the result is ordered by date.
func Summarize(records []Record) []DaySummary {
	byDate := make(map[string]*DaySummary)
	var order []string

	for _, r := range records {
		key := r.Date.Format("2006-01-02")
		day, ok := byDate[key]
		if !ok {
			day = &DaySummary{Date: r.Date}
			byDate[key] = day
			order = append(order, key)
		}
		t := r.Time
		switch r.Kind {
		case KindCheckIn:
			day.CheckIn = &t
		case KindCheckOut:
			day.CheckOut = &t
		}
	}

	summaries := make([]DaySummary, 0, len(order))
	for _, key := range order {
		day := byDate[key]
		if day.CheckIn != nil && day.CheckOut != nil && day.CheckOut.After(*day.CheckIn) {
			minutes := int(day.CheckOut.Sub(*day.CheckIn).Minutes())
			day.WorkedMinutes = &minutes
		}
		summaries = append(summaries, *day)
	}
	return summaries
}
