package models

// ClassID identifies one of the classes shown on the dashboard.
type ClassID string

const (
	Class9A ClassID = "class-9a"
	Class9B ClassID = "class-9b"
	Class9C ClassID = "class-9c"
)

// ClassIDs returns every class identifier in sidebar order.
func ClassIDs() []ClassID {
	return []ClassID{Class9A, Class9B, Class9C}
}

// Valid reports whether id is one of the known classes.
func (id ClassID) Valid() bool {
	switch id {
	case Class9A, Class9B, Class9C:
		return true
	}
	return false
}

type ClassRecord struct {
	ID                  ClassID      `json:"id" validate:"required"`
	DisplayName         string       `json:"display_name" validate:"required"`
	StudentCount        int          `json:"student_count" validate:"gte=0"`
	AverageScorePercent string       `json:"average_score_percent" validate:"required,endswith=%"`
	PendingPapers       int          `json:"pending_papers" validate:"gte=0"`
	LessonsTaught       int          `json:"lessons_taught" validate:"gte=0"`
	WeeklyScores        []int        `json:"weekly_scores" validate:"required,min=1,dive,gte=0,lte=100"`
	Roster              []StudentRow `json:"roster" validate:"dive"`
}

// StudentRow is one line of a class roster.
type StudentRow struct {
	Name            string `json:"name" validate:"required"`
	SubmissionCount int    `json:"submission_count" validate:"gte=0"`
	ScorePercent    string `json:"score_percent" validate:"required,endswith=%"`
}
