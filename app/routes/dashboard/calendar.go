package dashboard

import "time"

var weekdayLabels = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Day is one cell of the calendar grid.
type Day struct {
	Date    time.Time
	Number  int
	Outside bool
	Today   bool
}

// Month is a Sunday-first month grid with padding days from the adjacent
// months so every week has seven cells.
type Month struct {
	Title    string
	Weekdays []string
	Weeks    [][]Day
}

// BuildMonth returns the grid for the month containing now.
func BuildMonth(now time.Time) Month {
	loc := now.Location()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, 6-int(last.Weekday()))

	month := Month{
		Title:    first.Format("January 2006"),
		Weekdays: weekdayLabels,
	}

	var week []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		week = append(week, Day{
			Date:    d,
			Number:  d.Day(),
			Outside: d.Month() != first.Month(),
			Today:   sameDay(d, now),
		})
		if len(week) == 7 {
			month.Weeks = append(month.Weeks, week)
			week = nil
		}
	}
	return month
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
