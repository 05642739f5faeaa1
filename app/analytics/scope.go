// Package analytics derives summary statistics from the domain store. Every
// operation is read-only and computed freshly per call against the store's
// current state; visibility is narrowed by the scope the caller was
// authorized for before aggregating.
package analytics

import (
	"gorm.io/gorm"

	"school-management-system/app/database"
)

// Scope names the set of records an aggregation runs over: one student, one
// class roster, or the whole school when both ids are empty.
type Scope struct {
	StudentID string
	ClassID   string
}

// studentIDs resolves the scope to a student-id filter. restrict reports
// whether a filter applies at all; the whole-school scope has none.
func (s Scope) studentIDs(db *gorm.DB) (ids []string, restrict bool, err error) {
	switch {
	case s.StudentID != "":
		return []string{s.StudentID}, true, nil
	case s.ClassID != "":
		ids, err = database.GetStudentIDsByClass(db, s.ClassID)
		return ids, true, err
	default:
		return nil, false, nil
	}
}

// enrolledCount is the number of students the scope covers, used as the
// fallback denominator when nothing has been marked.
func (s Scope) enrolledCount(db *gorm.DB) (int64, error) {
	ids, restrict, err := s.studentIDs(db)
	if err != nil {
		return 0, err
	}
	if restrict {
		return int64(len(ids)), nil
	}
	return database.CountStudents(db)
}
