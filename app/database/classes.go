package database

import (
	"errors"
	"fmt"
	"slices"

	"aidhivi-dashboard/app/models"

	"github.com/go-playground/validator/v10"
)

// ErrClassNotFound is returned for identifiers outside the class enumeration.
var ErrClassNotFound = errors.New("class not found")

const rosterSize = 20

// classTable is built once at startup and never written afterwards.
var classTable = mustBuildClassTable()

type rosterSpec struct {
	prefix    string
	subsBase  int
	subsMod   int
	scoreBase int
	scoreMod  int
}

func buildRoster(spec rosterSpec) []models.StudentRow {
	rows := make([]models.StudentRow, rosterSize)
	for i := range rows {
		rows[i] = models.StudentRow{
			Name:            fmt.Sprintf("Student %s%d", spec.prefix, i+1),
			SubmissionCount: spec.subsBase + i%spec.subsMod,
			ScorePercent:    fmt.Sprintf("%d%%", spec.scoreBase+i%spec.scoreMod),
		}
	}
	return rows
}

func buildClassTable() map[models.ClassID]models.ClassRecord {
	return map[models.ClassID]models.ClassRecord{
		models.Class9A: {
			ID:                  models.Class9A,
			DisplayName:         "Class 9A",
			StudentCount:        28,
			AverageScorePercent: "82%",
			PendingPapers:       3,
			LessonsTaught:       11,
			WeeklyScores:        []int{76, 83, 79, 88},
			Roster:              buildRoster(rosterSpec{prefix: "A", subsBase: 3, subsMod: 5, scoreBase: 80, scoreMod: 10}),
		},
		models.Class9B: {
			ID:                  models.Class9B,
			DisplayName:         "Class 9B",
			StudentCount:        31,
			AverageScorePercent: "75%",
			PendingPapers:       2,
			LessonsTaught:       9,
			WeeklyScores:        []int{70, 73, 77, 80},
			Roster:              buildRoster(rosterSpec{prefix: "B", subsBase: 2, subsMod: 4, scoreBase: 70, scoreMod: 15}),
		},
		models.Class9C: {
			ID:                  models.Class9C,
			DisplayName:         "Class 9C",
			StudentCount:        25,
			AverageScorePercent: "89%",
			PendingPapers:       1,
			LessonsTaught:       13,
			WeeklyScores:        []int{90, 85, 88, 93},
			Roster:              buildRoster(rosterSpec{prefix: "C", subsBase: 4, subsMod: 3, scoreBase: 85, scoreMod: 8}),
		},
	}
}

func mustBuildClassTable() map[models.ClassID]models.ClassRecord {
	table := buildClassTable()
	if err := validateClassTable(table); err != nil {
		panic(fmt.Sprintf("invalid class table: %v", err))
	}
	return table
}

// validateClassTable checks that every ClassID maps to exactly one well-formed
// record and that nothing outside the enumeration is present.
func validateClassTable(table map[models.ClassID]models.ClassRecord) error {
	validate := validator.New()

	ids := models.ClassIDs()
	if len(table) != len(ids) {
		return fmt.Errorf("expected %d classes, got %d", len(ids), len(table))
	}
	for _, id := range ids {
		record, ok := table[id]
		if !ok {
			return fmt.Errorf("class %q has no record", id)
		}
		if record.ID != id {
			return fmt.Errorf("class %q is stored under key %q", record.ID, id)
		}
		if err := validate.Struct(record); err != nil {
			return fmt.Errorf("class %q: %w", id, err)
		}
	}
	return nil
}

// GetClassByID returns a copy of the record for id.
func GetClassByID(id models.ClassID) (models.ClassRecord, error) {
	record, ok := classTable[id]
	if !ok {
		return models.ClassRecord{}, fmt.Errorf("%w: %s", ErrClassNotFound, id)
	}
	return cloneRecord(record), nil
}

// GetAllClasses returns copies of every record in sidebar order.
func GetAllClasses() []models.ClassRecord {
	ids := models.ClassIDs()
	classes := make([]models.ClassRecord, 0, len(ids))
	for _, id := range ids {
		classes = append(classes, cloneRecord(classTable[id]))
	}
	return classes
}

func cloneRecord(record models.ClassRecord) models.ClassRecord {
	record.WeeklyScores = slices.Clone(record.WeeklyScores)
	record.Roster = slices.Clone(record.Roster)
	return record
}
