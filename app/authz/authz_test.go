package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"school-management-system/app/models"
)

func TestCanAccessStudent(t *testing.T) {
	const owner = "parent-1"
	const other = "parent-2"

	cases := []struct {
		name     string
		role     models.UserRole
		callerID string
		action   Action
		wantErr  bool
	}{
		{"admin reads", models.RoleAdmin, "admin-1", ActionRead, false},
		{"admin writes", models.RoleAdmin, "admin-1", ActionWrite, false},
		{"teacher reads", models.RoleTeacher, "teacher-1", ActionRead, false},
		{"teacher writes", models.RoleTeacher, "teacher-1", ActionWrite, false},
		{"owning parent reads", models.RoleParent, owner, ActionRead, false},
		{"owning parent writes", models.RoleParent, owner, ActionWrite, true},
		{"other parent reads", models.RoleParent, other, ActionRead, true},
		{"other parent writes", models.RoleParent, other, ActionWrite, true},
		{"unknown role", models.UserRole("janitor"), "x", ActionRead, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanAccessStudent(tc.role, tc.callerID, owner, tc.action)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrForbidden)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanRecordAcademicData(t *testing.T) {
	assert.NoError(t, CanRecordAcademicData(models.RoleAdmin))
	assert.NoError(t, CanRecordAcademicData(models.RoleTeacher))
	assert.ErrorIs(t, CanRecordAcademicData(models.RoleParent), ErrForbidden)
}

func TestCanManageSchoolStructure(t *testing.T) {
	assert.NoError(t, CanManageSchoolStructure(models.RoleAdmin))
	assert.ErrorIs(t, CanManageSchoolStructure(models.RoleTeacher), ErrForbidden)
	assert.ErrorIs(t, CanManageSchoolStructure(models.RoleParent), ErrForbidden)
}
