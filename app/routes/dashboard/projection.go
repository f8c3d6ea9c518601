package dashboard

import (
	"fmt"
	"strconv"

	"aidhivi-dashboard/app/database"
	"aidhivi-dashboard/app/models"
)

const performancePlaceholder = "Charts and analytics coming soon..."

// Metric is one summary card.
type Metric struct {
	Label string
	Value string
}

// ChartPoint is one bar of the weekly average chart.
type ChartPoint struct {
	Week  string `json:"name"`
	Score int    `json:"score"`
}

// ClassLink is a sidebar entry.
type ClassLink struct {
	ID     models.ClassID
	Name   string
	URL    string
	Active bool
}

// TabLink is a tab strip entry.
type TabLink struct {
	Tab    models.Tab
	Label  string
	URL    string
	Active bool
}

// View is everything the dashboard template needs for one selection.
type View struct {
	Selection      Selection
	ClassName      string
	Summary        []Metric
	Chart          []ChartPoint
	BarChart       BarChart
	Roster         []models.StudentRow
	Classes        []ClassLink
	Tabs           []TabLink
	HideSidebarURL string
	ShowSidebarURL string
	Performance    string
}

// Project derives the display data for sel from the class table.
func Project(sel Selection) (View, error) {
	record, err := database.GetClassByID(sel.ClassID)
	if err != nil {
		return View{}, fmt.Errorf("project dashboard: %w", err)
	}

	chart := chartSeries(record.WeeklyScores)
	return View{
		Selection:      sel,
		ClassName:      record.DisplayName,
		Summary:        summaryMetrics(record),
		Chart:          chart,
		BarChart:       BuildBarChart(chart),
		Roster:         record.Roster,
		Classes:        classLinks(sel),
		Tabs:           tabLinks(sel),
		HideSidebarURL: sel.ToggleSidebar(false).URL(),
		ShowSidebarURL: sel.ToggleSidebar(true).URL(),
		Performance:    performancePlaceholder,
	}, nil
}

func summaryMetrics(record models.ClassRecord) []Metric {
	return []Metric{
		{Label: "Total Students", Value: strconv.Itoa(record.StudentCount)},
		{Label: "Avg Score", Value: record.AverageScorePercent},
		{Label: "Pending Papers", Value: strconv.Itoa(record.PendingPapers)},
		{Label: "Lessons Taught", Value: strconv.Itoa(record.LessonsTaught)},
	}
}

func chartSeries(scores []int) []ChartPoint {
	points := make([]ChartPoint, len(scores))
	for i, score := range scores {
		points[i] = ChartPoint{Week: fmt.Sprintf("Week %d", i+1), Score: score}
	}
	return points
}

func classLinks(sel Selection) []ClassLink {
	classes := database.GetAllClasses()
	links := make([]ClassLink, len(classes))
	for i, class := range classes {
		links[i] = ClassLink{
			ID:     class.ID,
			Name:   class.DisplayName,
			URL:    sel.SelectClass(class.ID).URL(),
			Active: class.ID == sel.ClassID,
		}
	}
	return links
}

func tabLinks(sel Selection) []TabLink {
	tabs := models.Tabs()
	links := make([]TabLink, len(tabs))
	for i, tab := range tabs {
		links[i] = TabLink{
			Tab:    tab,
			Label:  tab.Label(),
			URL:    sel.SelectTab(tab).URL(),
			Active: tab == sel.Tab,
		}
	}
	return links
}
