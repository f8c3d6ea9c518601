package dashboard

import (
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"aidhivi-dashboard/app/database"
	"aidhivi-dashboard/app/models"
)

func TestProject_SummaryMatchesRecord(t *testing.T) {
	t.Parallel()

	for _, id := range models.ClassIDs() {
		record, err := database.GetClassByID(id)
		if err != nil {
			t.Fatalf("GetClassByID(%q): %v", id, err)
		}
		view, err := Project(DefaultSelection().SelectClass(id))
		if err != nil {
			t.Fatalf("Project(%q): %v", id, err)
		}

		want := []Metric{
			{Label: "Total Students", Value: strconv.Itoa(record.StudentCount)},
			{Label: "Avg Score", Value: record.AverageScorePercent},
			{Label: "Pending Papers", Value: strconv.Itoa(record.PendingPapers)},
			{Label: "Lessons Taught", Value: strconv.Itoa(record.LessonsTaught)},
		}
		if !reflect.DeepEqual(view.Summary, want) {
			t.Fatalf("%s: expected summary %+v, got %+v", id, want, view.Summary)
		}
		if view.ClassName != record.DisplayName {
			t.Fatalf("%s: expected class name %q, got %q", id, record.DisplayName, view.ClassName)
		}

		if len(view.Chart) != len(record.WeeklyScores) {
			t.Fatalf("%s: expected %d chart points, got %d", id, len(record.WeeklyScores), len(view.Chart))
		}
		for i, p := range view.Chart {
			if p.Week != fmt.Sprintf("Week %d", i+1) || p.Score != record.WeeklyScores[i] {
				t.Fatalf("%s: unexpected chart point %d: %+v", id, i, p)
			}
		}

		if !reflect.DeepEqual(view.Roster, record.Roster) {
			t.Fatalf("%s: roster was reordered or changed", id)
		}
	}
}

func TestProject_Class9B(t *testing.T) {
	t.Parallel()

	view, err := Project(DefaultSelection().SelectClass(models.Class9B))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	values := make([]string, len(view.Summary))
	for i, m := range view.Summary {
		values[i] = m.Value
	}
	if !reflect.DeepEqual(values, []string{"31", "75%", "2", "9"}) {
		t.Fatalf("unexpected summary values: %v", values)
	}

	want := []ChartPoint{
		{Week: "Week 1", Score: 70},
		{Week: "Week 2", Score: 73},
		{Week: "Week 3", Score: 77},
		{Week: "Week 4", Score: 80},
	}
	if !reflect.DeepEqual(view.Chart, want) {
		t.Fatalf("unexpected chart: %+v", view.Chart)
	}
	if len(view.BarChart.Bars) != 4 {
		t.Fatalf("expected 4 bars, got %d", len(view.BarChart.Bars))
	}
}

func TestProject_SidebarToggleRestoresClassList(t *testing.T) {
	t.Parallel()

	sel := DefaultSelection().SelectClass(models.Class9B)
	before, _ := Project(sel)
	closed, _ := Project(sel.ToggleSidebar(false))
	after, _ := Project(sel.ToggleSidebar(false).ToggleSidebar(true))

	if !reflect.DeepEqual(before.Classes, after.Classes) {
		t.Fatalf("class list differs after toggle: %+v vs %+v", before.Classes, after.Classes)
	}
	if len(closed.Classes) != len(before.Classes) {
		t.Fatalf("closing the sidebar changed the class list length")
	}
	if closed.ShowSidebarURL != sel.URL() {
		t.Fatalf("expected show link %q, got %q", sel.URL(), closed.ShowSidebarURL)
	}
}

func TestProject_LinksMarkActiveEntries(t *testing.T) {
	t.Parallel()

	sel := DefaultSelection().SelectClass(models.Class9C).SelectTab(models.TabStudents)
	view, err := Project(sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, link := range view.Classes {
		if link.Active != (link.ID == models.Class9C) {
			t.Fatalf("unexpected active flag on %+v", link)
		}
		if link.URL != sel.SelectClass(link.ID).URL() {
			t.Fatalf("class link keeps the wrong state: %q", link.URL)
		}
	}

	labels := make([]string, len(view.Tabs))
	for i, link := range view.Tabs {
		labels[i] = link.Label
		if link.Active != (link.Tab == models.TabStudents) {
			t.Fatalf("unexpected active flag on %+v", link)
		}
	}
	if !reflect.DeepEqual(labels, []string{"Overview", "Students", "Grading", "Performance"}) {
		t.Fatalf("unexpected tab labels: %v", labels)
	}
}

func TestProject_UnknownClass(t *testing.T) {
	t.Parallel()

	if _, err := Project(DefaultSelection().SelectClass("class-10a")); err == nil {
		t.Fatal("expected error for class outside the enumeration")
	}
}
