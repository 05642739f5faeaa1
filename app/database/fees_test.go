package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"school-management-system/app/models"
)

func seedFee(t *testing.T, db *gorm.DB, studentID string, amount float64, due time.Time) *models.Fee {
	t.Helper()
	fee := &models.Fee{
		StudentID:    studentID,
		Amount:       amount,
		Description:  "Term 1 tuition",
		DueDate:      due,
		Term:         "Term 1",
		AcademicYear: "2026",
	}
	require.NoError(t, CreateFee(db, fee))
	return fee
}

func TestCreateFeeStartsUnpaid(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")

	fee := seedFee(t, db, student.ID, 5000, time.Now().AddDate(0, 1, 0))
	assert.Equal(t, models.FeePending, fee.Status)
	assert.Zero(t, fee.Paid)
}

func TestCreateFeePastDueStartsOverdue(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")

	fee := seedFee(t, db, student.ID, 5000, time.Now().AddDate(0, 0, -3))
	assert.Equal(t, models.FeeOverdue, fee.Status)
}

func TestRecordFeePaymentTransitions(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")
	fee := seedFee(t, db, student.ID, 6000, time.Now().AddDate(0, 1, 0))

	partial, err := RecordFeePayment(db, fee.ID, 1000)
	require.NoError(t, err)
	assert.Equal(t, models.FeePartial, partial.Status)
	assert.InDelta(t, 1000, partial.Paid, 0.001)

	paid, err := RecordFeePayment(db, fee.ID, 5000)
	require.NoError(t, err)
	assert.Equal(t, models.FeePaid, paid.Status)
	assert.InDelta(t, 6000, paid.Paid, 0.001)
}

func TestRecordFeePaymentRejectsOverpayment(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")
	fee := seedFee(t, db, student.ID, 1200, time.Now().AddDate(0, 1, 0))
	_, err := RecordFeePayment(db, fee.ID, 600)
	require.NoError(t, err)

	// 700 exceeds the 600 outstanding.
	_, err = RecordFeePayment(db, fee.ID, 700)
	require.ErrorIs(t, err, ErrExceedsBalance)

	// The rejected payment must not have touched the fee.
	unchanged, err := GetFeeByID(db, fee.ID)
	require.NoError(t, err)
	assert.InDelta(t, 600, unchanged.Paid, 0.001)

	exact, err := RecordFeePayment(db, fee.ID, 600)
	require.NoError(t, err)
	assert.Equal(t, models.FeePaid, exact.Status)
	assert.InDelta(t, 1200, exact.Paid, 0.001)
}

func TestRecordFeePaymentRejectsNonPositive(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")
	fee := seedFee(t, db, student.ID, 600, time.Now().AddDate(0, 1, 0))

	_, err := RecordFeePayment(db, fee.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = RecordFeePayment(db, fee.ID, -50)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestSweepOverdueFees(t *testing.T) {
	db := newTestDB(t)
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")

	due := seedFee(t, db, student.ID, 1000, time.Now().AddDate(0, 0, 5))
	require.Equal(t, models.FeePending, due.Status)

	flipped, err := SweepOverdueFees(db, time.Now().AddDate(0, 0, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 1, flipped)

	after, err := GetFeeByID(db, due.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FeeOverdue, after.Status)
}
