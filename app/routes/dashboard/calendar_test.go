package dashboard

import (
	"testing"
	"time"
)

func TestBuildMonth_PadsToFullWeeks(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 19, 15, 4, 0, 0, time.UTC)
	month := BuildMonth(now)

	if month.Title != "October 2026" {
		t.Fatalf("unexpected title %q", month.Title)
	}
	if len(month.Weekdays) != 7 || month.Weekdays[0] != "Su" {
		t.Fatalf("unexpected weekday header: %v", month.Weekdays)
	}
	if len(month.Weeks) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(month.Weeks))
	}

	first := month.Weeks[0][0]
	if first.Number != 27 || !first.Outside || first.Date.Month() != time.September {
		t.Fatalf("expected grid to start on Sunday Sep 27, got %+v", first)
	}
	if day := month.Weeks[0][4]; day.Number != 1 || day.Outside {
		t.Fatalf("expected Thursday Oct 1 inside the month, got %+v", day)
	}
	if last := month.Weeks[4][6]; last.Number != 31 || last.Outside {
		t.Fatalf("expected grid to end on Saturday Oct 31, got %+v", last)
	}

	today := 0
	for _, week := range month.Weeks {
		if len(week) != 7 {
			t.Fatalf("week has %d days", len(week))
		}
		for _, day := range week {
			if day.Today {
				today++
				if day.Number != 19 || day.Outside {
					t.Fatalf("wrong day marked as today: %+v", day)
				}
			}
		}
	}
	if today != 1 {
		t.Fatalf("expected exactly one today cell, got %d", today)
	}
}

func TestBuildMonth_NoPaddingWhenAligned(t *testing.T) {
	t.Parallel()

	month := BuildMonth(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC))
	if len(month.Weeks) != 4 {
		t.Fatalf("expected 4 weeks for Feb 2026, got %d", len(month.Weeks))
	}
	for _, week := range month.Weeks {
		for _, day := range week {
			if day.Outside {
				t.Fatalf("unexpected padding day %+v", day)
			}
		}
	}
}
