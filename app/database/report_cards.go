package database

import (
	"errors"

	"gorm.io/gorm"

	"school-management-system/app/models"
)

// CreateReportCard issues a term report for an existing student.
func CreateReportCard(db *gorm.DB, card *models.ReportCard) error {
	if _, err := GetStudentByID(db, card.StudentID); err != nil {
		return err
	}
	card.IssueDate = models.DateOnly(card.IssueDate)
	return db.Create(card).Error
}

// GetReportCardByID returns a report card with its grade summaries.
func GetReportCardByID(db *gorm.DB, id string) (*models.ReportCard, error) {
	var card models.ReportCard
	err := db.Preload("GradeSummaries").Where("id = ?", id).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// GetReportCardsByStudent returns a student's report cards with summaries,
// optionally filtered by term and academic year.
func GetReportCardsByStudent(db *gorm.DB, studentID, term, academicYear string) ([]*models.ReportCard, error) {
	query := db.Preload("GradeSummaries").Where("student_id = ?", studentID)
	if term != "" {
		query = query.Where("term = ?", term)
	}
	if academicYear != "" {
		query = query.Where("academic_year = ?", academicYear)
	}
	var cards []*models.ReportCard
	err := query.Order("issue_date DESC").Find(&cards).Error
	return cards, err
}

// AddGradeSummary attaches a subject line to an existing report card. The
// letter is derived from the score.
func AddGradeSummary(db *gorm.DB, summary *models.GradeSummary) error {
	if _, err := GetReportCardByID(db, summary.ReportCardID); err != nil {
		return err
	}
	summary.GradeLetter = models.LetterForScore(summary.Score)
	return db.Create(summary).Error
}

// UpdateGradeSummary overwrites a summary's score and comments; the letter
// follows the score.
func UpdateGradeSummary(db *gorm.DB, summaryID string, score float64, comments *string) error {
	res := db.Model(&models.GradeSummary{}).Where("id = ?", summaryID).Updates(map[string]interface{}{
		"score":        score,
		"grade_letter": models.LetterForScore(score),
		"comments":     comments,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteReportCard removes a report card and cascades to its grade summaries.
func DeleteReportCard(db *gorm.DB, cardID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetReportCardByID(tx, cardID); err != nil {
			return err
		}
		if err := tx.Where("report_card_id = ?", cardID).Delete(&models.GradeSummary{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", cardID).Delete(&models.ReportCard{}).Error
	})
}
