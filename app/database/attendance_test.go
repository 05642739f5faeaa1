package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-management-system/app/models"
)

func TestUpsertAttendanceOverwritesSameDay(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")

	day := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	first, err := UpsertAttendance(db, student.ID, day, models.Present)
	require.NoError(t, err)

	// Same day, later time of day: still the same record.
	second, err := UpsertAttendance(db, student.ID, day.Add(5*time.Hour), models.Late)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.Late, second.Status)

	var count int64
	require.NoError(t, db.Model(&models.Attendance{}).
		Where("student_id = ?", student.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertAttendanceUnknownStudent(t *testing.T) {
	db := newTestDB(t)

	_, err := UpsertAttendance(db, "2f9b1f0e-0000-0000-0000-000000000000", time.Now(), models.Present)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertAttendanceInvalidStatus(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")

	_, err := UpsertAttendance(db, student.ID, time.Now(), "vacationing")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBatchUpsertSkipsUnknownStudents(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	written, err := BatchUpsertAttendance(db, []AttendanceEntry{
		{StudentID: student.ID, Date: day, Status: models.Present},
		{StudentID: "2f9b1f0e-0000-0000-0000-000000000000", Date: day, Status: models.Present},
	})
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, student.ID, written[0].StudentID)
}

func TestGetAttendanceByDateFiltersClass(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	inClass := seedStudent(t, db, parent.ID, "ADM-001")
	outOfClass := seedStudent(t, db, parent.ID, "ADM-002")
	teacher := seedTeacher(t, db, "teacher1")
	class := seedClass(t, db, teacher.ID, "P5 East")
	require.NoError(t, AddStudentToClass(db, class.ID, inClass.ID))

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	_, err := UpsertAttendance(db, inClass.ID, day, models.Present)
	require.NoError(t, err)
	_, err = UpsertAttendance(db, outOfClass.ID, day, models.Absent)
	require.NoError(t, err)

	records, err := GetAttendanceByDate(db, day, class.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, inClass.ID, records[0].StudentID)
}
