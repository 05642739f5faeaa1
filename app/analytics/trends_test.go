package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-management-system/app/database"
	"school-management-system/app/models"
)

func TestParseWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	from, err := ParseWindow("3m", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), from)

	from, err = ParseWindow("1y", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), from)

	_, err = ParseWindow("2w", now)
	assert.ErrorIs(t, err, database.ErrValidation)
}

func TestTrendRejectsUnknownMetric(t *testing.T) {
	db := newTestDB(t)
	_, err := Trend(db, "homework", "3m", time.Now())
	assert.ErrorIs(t, err, database.ErrValidation)
}

func TestFeesTrendMonthlyBuckets(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db)
	students := seedStudents(t, db, parent.ID, 1)

	fee := &models.Fee{
		StudentID:    students[0].ID,
		Amount:       2000,
		Description:  "Tuition",
		DueDate:      time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Term:         "Term 1",
		AcademicYear: "2026",
	}
	require.NoError(t, database.CreateFee(db, fee))
	_, err := database.RecordFeePayment(db, fee.ID, 500)
	require.NoError(t, err)

	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	points, err := Trend(db, MetricFees, "3m", now)
	require.NoError(t, err)

	// 2025-12 through 2026-03, oldest first, with zero buckets kept.
	require.Len(t, points, 4)
	assert.Equal(t, "2025-12", points[0].Label)
	assert.Equal(t, "2026-03", points[3].Label)

	values := map[string]float64{}
	for _, p := range points {
		values[p.Label] = p.Value
	}
	assert.InDelta(t, 500, values["2026-02"], 0.001)
	assert.Zero(t, values["2026-01"])
}

func TestAttendanceTrendWeeklyRate(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db)
	students := seedStudents(t, db, parent.ID, 2)

	// Monday of ISO week 2026-W10.
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	_, err := database.UpsertAttendance(db, students[0].ID, day, models.Present)
	require.NoError(t, err)
	_, err = database.UpsertAttendance(db, students[1].ID, day, models.Absent)
	require.NoError(t, err)

	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	points, err := Trend(db, MetricAttendance, "3m", now)
	require.NoError(t, err)
	require.NotEmpty(t, points)

	values := map[string]float64{}
	for _, p := range points {
		values[p.Label] = p.Value
	}
	assert.InDelta(t, 50.0, values["2026-W10"], 0.001)

	// Buckets are chronological and cover empty weeks too.
	assert.Greater(t, len(points), 10)
	assert.Zero(t, values["2026-W08"])
}

func TestGradesTrendMonthlyAverage(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db)
	students := seedStudents(t, db, parent.ID, 1)

	recordGrade(t, db, students[0].ID, "Math", 60)
	recordGrade(t, db, students[0].ID, "Math", 80)

	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	points, err := Trend(db, MetricGrades, "3m", now)
	require.NoError(t, err)

	values := map[string]float64{}
	for _, p := range points {
		values[p.Label] = p.Value
	}
	assert.InDelta(t, 70.0, values["2026-03"], 0.001)
}

func TestSampleTrend(t *testing.T) {
	assert.NotEmpty(t, SampleTrend(MetricAttendance))
	assert.NotEmpty(t, SampleTrend(MetricGrades))
	assert.NotEmpty(t, SampleTrend(MetricFees))
	assert.Nil(t, SampleTrend("homework"))

	assert.True(t, AllZero([]TrendPoint{{Label: "a"}, {Label: "b"}}))
	assert.False(t, AllZero(SampleTrend(MetricFees)))
}
