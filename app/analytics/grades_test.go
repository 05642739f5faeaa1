package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"school-management-system/app/database"
	"school-management-system/app/models"
)

func recordGrade(t *testing.T, db *gorm.DB, studentID, subject string, score float64) {
	t.Helper()
	grade := &models.Grade{
		StudentID:    studentID,
		Subject:      subject,
		Score:        score,
		Term:         "Term 1",
		DateRecorded: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, database.CreateGrade(db, grade))
}

func TestGradeDistribution(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db)
	students := seedStudents(t, db, parent.ID, 1)

	recordGrade(t, db, students[0].ID, "Math", 95)
	recordGrade(t, db, students[0].ID, "English", 91)
	recordGrade(t, db, students[0].ID, "Science", 75)

	distribution, err := GradeDistribution(db, Scope{}, "")
	require.NoError(t, err)

	counts := map[string]int64{}
	for _, row := range distribution {
		counts[row.Letter] = row.Count
	}
	assert.EqualValues(t, 2, counts["A"])
	assert.EqualValues(t, 1, counts["C"])
	// Letters with no grades never appear.
	_, present := counts["F"]
	assert.False(t, present)
}

func TestSubjectPerformanceAverages(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db)
	students := seedStudents(t, db, parent.ID, 2)

	recordGrade(t, db, students[0].ID, "Math", 80)
	recordGrade(t, db, students[1].ID, "Math", 60)
	recordGrade(t, db, students[0].ID, "English", 90)

	subjects, err := SubjectPerformance(db, Scope{}, "")
	require.NoError(t, err)
	require.Len(t, subjects, 2)

	byName := map[string]SubjectAverage{}
	for _, s := range subjects {
		byName[s.Subject] = s
	}
	assert.InDelta(t, 70.0, byName["Math"].Average, 0.001)
	assert.InDelta(t, 90.0, byName["English"].Average, 0.001)
}

func TestPerformanceForStudentMeanOfMeans(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db)
	students := seedStudents(t, db, parent.ID, 1)
	id := students[0].ID

	// Math has two grades (mean 70), English one (90). The overall average
	// weighs subjects equally: (70+90)/2 = 80, not the mean of all three.
	recordGrade(t, db, id, "Math", 60)
	recordGrade(t, db, id, "Math", 80)
	recordGrade(t, db, id, "English", 90)

	perf, err := PerformanceForStudent(db, id, "")
	require.NoError(t, err)
	assert.InDelta(t, 80.0, perf.OverallAverage, 0.001)
	require.Len(t, perf.Subjects, 2)
}

func TestPerformanceForStudentNoGrades(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db)
	students := seedStudents(t, db, parent.ID, 1)

	perf, err := PerformanceForStudent(db, students[0].ID, "")
	require.NoError(t, err)
	assert.Zero(t, perf.OverallAverage)
	assert.Empty(t, perf.Subjects)
}
