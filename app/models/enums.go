package models

import "strings"

// Tab defines the panels of the dashboard tab strip.
type Tab string

const (
	TabOverview    Tab = "overview"
	TabStudents    Tab = "students"
	TabGrading     Tab = "grading"
	TabPerformance Tab = "performance"
)

// Tabs returns the tab strip in display order.
func Tabs() []Tab {
	return []Tab{TabOverview, TabStudents, TabGrading, TabPerformance}
}

func (t Tab) Valid() bool {
	switch t {
	case TabOverview, TabStudents, TabGrading, TabPerformance:
		return true
	}
	return false
}

// Label capitalises the first letter, e.g. "overview" -> "Overview".
func (t Tab) Label() string {
	if t == "" {
		return ""
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}
