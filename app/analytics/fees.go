package analytics

import (
	"gorm.io/gorm"

	"school-management-system/app/models"
)

// FeeSummary totals a scope's fees and classifies each student by the ratio
// of what they paid to what they owe.
type FeeSummary struct {
	TotalAmount  float64 `json:"total_amount"`
	TotalPaid    float64 `json:"total_paid"`
	TotalBalance float64 `json:"total_balance"`
	PaymentRate  float64 `json:"payment_rate"`
	StudentCount int     `json:"student_count"`
	PaidCount    int     `json:"paid_count"`
	PartialCount int     `json:"partial_count"`
	UnpaidCount  int     `json:"unpaid_count"`
}

// fullyPaidRatio tolerates rounding: a student at 99% or better counts as
// fully paid.
const fullyPaidRatio = 0.99

// SummarizeFees aggregates the fees in scope, optionally filtered by term
// and academic year. A zero total amount yields a zero payment rate, never a
// division error. The totals and the per-student buckets come from the same
// result set, so they are internally consistent.
func SummarizeFees(db *gorm.DB, scope Scope, term, academicYear string) (*FeeSummary, error) {
	query := db.Model(&models.Fee{})

	ids, restrict, err := scope.studentIDs(db)
	if err != nil {
		return nil, err
	}
	if restrict {
		query = query.Where("student_id IN ?", ids)
	}
	if term != "" {
		query = query.Where("term = ?", term)
	}
	if academicYear != "" {
		query = query.Where("academic_year = ?", academicYear)
	}

	var fees []*models.Fee
	if err := query.Find(&fees).Error; err != nil {
		return nil, err
	}

	summary := &FeeSummary{}
	type studentTotals struct {
		amount float64
		paid   float64
	}
	perStudent := make(map[string]*studentTotals)

	for _, fee := range fees {
		summary.TotalAmount += fee.Amount
		summary.TotalPaid += fee.Paid

		totals, ok := perStudent[fee.StudentID]
		if !ok {
			totals = &studentTotals{}
			perStudent[fee.StudentID] = totals
		}
		totals.amount += fee.Amount
		totals.paid += fee.Paid
	}

	summary.TotalBalance = summary.TotalAmount - summary.TotalPaid
	if summary.TotalAmount > 0 {
		summary.PaymentRate = summary.TotalPaid / summary.TotalAmount * 100
	}

	summary.StudentCount = len(perStudent)
	for _, totals := range perStudent {
		ratio := 0.0
		if totals.amount > 0 {
			ratio = totals.paid / totals.amount
		}
		switch {
		case ratio >= fullyPaidRatio:
			summary.PaidCount++
		case ratio > 0:
			summary.PartialCount++
		default:
			summary.UnpaidCount++
		}
	}
	return summary, nil
}

// FeeStatusCount is one slice of the status distribution.
type FeeStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// FeeStatusDistribution counts fees grouped by their stored status.
func FeeStatusDistribution(db *gorm.DB, academicYear string) ([]FeeStatusCount, error) {
	query := db.Model(&models.Fee{}).
		Select("status, COUNT(*) as count").
		Group("status").Order("status")
	if academicYear != "" {
		query = query.Where("academic_year = ?", academicYear)
	}
	var rows []FeeStatusCount
	err := query.Scan(&rows).Error
	return rows, err
}
