package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-management-system/app/models"
)

func TestEnrollmentIsUnique(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")
	teacher := seedTeacher(t, db, "teacher1")
	class := seedClass(t, db, teacher.ID, "P5 East")

	require.NoError(t, AddStudentToClass(db, class.ID, student.ID))
	assert.ErrorIs(t, AddStudentToClass(db, class.ID, student.ID), ErrAlreadyEnrolled)
}

func TestRemoveStudentNotEnrolled(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")
	teacher := seedTeacher(t, db, "teacher1")
	class := seedClass(t, db, teacher.ID, "P5 East")

	assert.ErrorIs(t, RemoveStudentFromClass(db, class.ID, student.ID), ErrNotEnrolled)

	require.NoError(t, AddStudentToClass(db, class.ID, student.ID))
	require.NoError(t, RemoveStudentFromClass(db, class.ID, student.ID))
	assert.ErrorIs(t, RemoveStudentFromClass(db, class.ID, student.ID), ErrNotEnrolled)
}

func TestCreateClassRequiresTeacher(t *testing.T) {
	db := newTestDB(t)

	class := &models.Class{
		Name:       "P5 East",
		GradeLevel: "P5",
		TeacherID:  "2f9b1f0e-0000-0000-0000-000000000000",
	}
	assert.ErrorIs(t, CreateClass(db, class), ErrNotFound)
}

func TestDeleteTeacherBlockedByClasses(t *testing.T) {
	db := newTestDB(t)
	teacher := seedTeacher(t, db, "teacher1")
	class := seedClass(t, db, teacher.ID, "P5 East")

	assert.ErrorIs(t, DeleteTeacher(db, teacher.ID), ErrValidation)

	require.NoError(t, DeleteClass(db, class.ID))
	require.NoError(t, DeleteTeacher(db, teacher.ID))
}

func TestDeleteStudentCascades(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")
	teacher := seedTeacher(t, db, "teacher1")
	class := seedClass(t, db, teacher.ID, "P5 East")
	require.NoError(t, AddStudentToClass(db, class.ID, student.ID))

	grade := &models.Grade{StudentID: student.ID, Subject: "Math", Score: 72, Term: "Term 1"}
	require.NoError(t, CreateGrade(db, grade))

	require.NoError(t, DeleteStudent(db, student.ID))

	var grades int64
	require.NoError(t, db.Model(&models.Grade{}).Where("student_id = ?", student.ID).Count(&grades).Error)
	assert.Zero(t, grades)

	ids, err := GetStudentIDsByClass(db, class.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
