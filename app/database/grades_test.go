package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-management-system/app/models"
)

func TestCreateGradeDerivesLetter(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")

	cases := []struct {
		score  float64
		letter string
	}{
		{95, "A"},
		{90, "A"},
		{85, "B"},
		{72, "C"},
		{60, "D"},
		{59.9, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		grade := &models.Grade{
			StudentID:    student.ID,
			Subject:      "Math",
			Score:        tc.score,
			GradeLetter:  "Z", // caller-supplied letters are ignored
			Term:         "Term 1",
			DateRecorded: time.Now(),
		}
		require.NoError(t, CreateGrade(db, grade))
		assert.Equal(t, tc.letter, grade.GradeLetter, "score %.1f", tc.score)
	}
}

func TestAddGradeSummaryRequiresCard(t *testing.T) {
	db := newTestDB(t)

	summary := &models.GradeSummary{
		ReportCardID: "2f9b1f0e-0000-0000-0000-000000000000",
		Subject:      "Math",
		Score:        80,
	}
	assert.ErrorIs(t, AddGradeSummary(db, summary), ErrNotFound)
}

func TestDeleteReportCardCascadesSummaries(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")

	card := &models.ReportCard{
		StudentID:    student.ID,
		Term:         "Term 1",
		AcademicYear: "2026",
		IssueDate:    time.Now(),
	}
	require.NoError(t, CreateReportCard(db, card))

	summary := &models.GradeSummary{ReportCardID: card.ID, Subject: "Math", Score: 88}
	require.NoError(t, AddGradeSummary(db, summary))
	assert.Equal(t, "B", summary.GradeLetter)

	require.NoError(t, DeleteReportCard(db, card.ID))

	var count int64
	require.NoError(t, db.Model(&models.GradeSummary{}).
		Where("report_card_id = ?", card.ID).Count(&count).Error)
	assert.Zero(t, count)
}
