// Package authz decides, per request, whether a caller may touch a
// student-scoped resource. The gate is a pure function over the caller's role
// and the student's owning parent; it holds no state and performs no I/O.
package authz

import (
	"errors"

	"school-management-system/app/models"
)

// Action is what the caller wants to do with the resource.
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// ErrForbidden means the credential is valid but the role or ownership rules
// deny the action. A non-owning parent gets this, never a not-found: the
// resource's existence is not hidden.
var ErrForbidden = errors.New("forbidden")

// CanAccessStudent applies the role rules to a student-scoped resource:
//
//   - admin: full read/write everywhere.
//   - teacher: read/write on academic data for all students.
//   - parent: read-only, and only on students whose parent is the caller.
func CanAccessStudent(role models.UserRole, callerID, parentID string, action Action) error {
	switch role {
	case models.RoleAdmin, models.RoleTeacher:
		return nil
	case models.RoleParent:
		if action != ActionRead {
			return ErrForbidden
		}
		if callerID != parentID {
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}

// CanRecordAcademicData reports whether a role may create or change grades,
// attendance, fees, report cards or materials. Only staff may.
func CanRecordAcademicData(role models.UserRole) error {
	if role == models.RoleAdmin || role == models.RoleTeacher {
		return nil
	}
	return ErrForbidden
}

// CanManageSchoolStructure reports whether a role may create, update or
// delete Class and Teacher entities. Only admin may; teachers operate on
// academic records but not on the structure itself.
func CanManageSchoolStructure(role models.UserRole) error {
	if role == models.RoleAdmin {
		return nil
	}
	return ErrForbidden
}
