package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"school-management-system/app/models"
)

// CreateFee charges a student. A fee starts pending (or overdue if created
// past its due date) with nothing paid.
func CreateFee(db *gorm.DB, fee *models.Fee) error {
	if _, err := GetStudentByID(db, fee.StudentID); err != nil {
		return err
	}
	fee.Paid = 0
	fee.Status = models.FeePending
	if models.DateOnly(fee.DueDate).Before(models.DateOnly(time.Now())) {
		fee.Status = models.FeeOverdue
	}
	fee.DueDate = models.DateOnly(fee.DueDate)
	return db.Create(fee).Error
}

// GetFeeByID returns a fee by id.
func GetFeeByID(db *gorm.DB, id string) (*models.Fee, error) {
	var fee models.Fee
	err := db.Where("id = ?", id).First(&fee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

// GetFeesByStudent returns every fee charged to one student.
func GetFeesByStudent(db *gorm.DB, studentID string) ([]*models.Fee, error) {
	var fees []*models.Fee
	err := db.Where("student_id = ?", studentID).Order("due_date").Find(&fees).Error
	return fees, err
}

// GetAllFees returns fees optionally filtered by term and academic year.
func GetAllFees(db *gorm.DB, term, academicYear string) ([]*models.Fee, error) {
	query := db.Preload("Student").Order("due_date")
	if term != "" {
		query = query.Where("term = ?", term)
	}
	if academicYear != "" {
		query = query.Where("academic_year = ?", academicYear)
	}
	var fees []*models.Fee
	err := query.Find(&fees).Error
	return fees, err
}

// RecordFeePayment applies a payment to a fee. The amount must be positive
// and no larger than the outstanding balance. Paid accumulates and the status
// is recomputed in the same transaction, so the two are never inconsistent.
func RecordFeePayment(db *gorm.DB, feeID string, amount float64) (*models.Fee, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var fee *models.Fee
	err := db.Transaction(func(tx *gorm.DB) error {
		current, err := GetFeeByID(tx, feeID)
		if err != nil {
			return err
		}
		if amount > current.Amount-current.Paid {
			return ErrExceedsBalance
		}

		current.Paid += amount
		current.Status = recomputeStatus(current)

		if err := tx.Model(&models.Fee{}).Where("id = ?", current.ID).Updates(map[string]interface{}{
			"paid":   current.Paid,
			"status": current.Status,
		}).Error; err != nil {
			return err
		}
		fee = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fee, nil
}

// recomputeStatus derives the fee status from paid vs amount. A fee with
// nothing paid keeps whatever status it already has (pending or overdue).
func recomputeStatus(fee *models.Fee) models.FeeStatus {
	switch {
	case fee.Paid >= fee.Amount:
		return models.FeePaid
	case fee.Paid > 0:
		return models.FeePartial
	default:
		return fee.Status
	}
}

// UpdateFee overwrites a fee's charge fields, then recomputes the status so
// it can never disagree with paid vs amount.
func UpdateFee(db *gorm.DB, fee *models.Fee) error {
	return db.Transaction(func(tx *gorm.DB) error {
		current, err := GetFeeByID(tx, fee.ID)
		if err != nil {
			return err
		}
		current.Amount = fee.Amount
		current.Description = fee.Description
		current.DueDate = models.DateOnly(fee.DueDate)
		current.Term = fee.Term
		current.AcademicYear = fee.AcademicYear
		current.Status = recomputeStatus(current)

		return tx.Model(&models.Fee{}).Where("id = ?", current.ID).Updates(map[string]interface{}{
			"amount":        current.Amount,
			"description":   current.Description,
			"due_date":      current.DueDate,
			"term":          current.Term,
			"academic_year": current.AcademicYear,
			"status":        current.Status,
		}).Error
	})
}

// DeleteFee removes a fee.
func DeleteFee(db *gorm.DB, feeID string) error {
	res := db.Where("id = ?", feeID).Delete(&models.Fee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetPaymentsDue returns fees with an outstanding balance falling due within
// the window, soonest first. studentIDs narrows the result for parent
// callers; nil means no restriction.
func GetPaymentsDue(db *gorm.DB, from, to time.Time, studentIDs []string) ([]*models.Fee, error) {
	query := db.Preload("Student").
		Where("due_date BETWEEN ? AND ?", models.DateOnly(from), models.DateOnly(to)).
		Where("amount > paid").
		Order("due_date")
	if studentIDs != nil {
		query = query.Where("student_id IN ?", studentIDs)
	}
	var fees []*models.Fee
	err := query.Find(&fees).Error
	return fees, err
}

// SweepOverdueFees marks unpaid pending fees past their due date as overdue.
// Returns the number of fees flipped.
func SweepOverdueFees(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Model(&models.Fee{}).
		Where("status = ? AND due_date < ? AND paid < amount", models.FeePending, models.DateOnly(now)).
		Update("status", models.FeeOverdue)
	return res.RowsAffected, res.Error
}
