package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"school-management-system/app/models"
)

// CreateMaterial stores a learning resource and associates it with classes.
// Unknown class ids in the list are skipped rather than failing the upload.
func CreateMaterial(db *gorm.DB, material *models.LearningMaterial, classIDs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetTeacherByID(tx, material.TeacherID); err != nil {
			return err
		}
		material.UploadDate = models.DateOnly(time.Now())
		if err := tx.Create(material).Error; err != nil {
			return err
		}

		for _, classID := range classIDs {
			var count int64
			if err := tx.Model(&models.Class{}).Where("id = ?", classID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				continue
			}
			link := models.ClassMaterial{ClassID: classID, MaterialID: material.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetMaterialByID returns one material.
func GetMaterialByID(db *gorm.DB, id string) (*models.LearningMaterial, error) {
	var material models.LearningMaterial
	err := db.Where("id = ?", id).First(&material).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// GetMaterials returns materials, optionally narrowed to one class and/or
// one material type.
func GetMaterials(db *gorm.DB, classID, materialType string) ([]*models.LearningMaterial, error) {
	query := db.Order("upload_date DESC")
	if classID != "" {
		query = query.
			Joins("JOIN class_materials ON class_materials.material_id = learning_materials.id").
			Where("class_materials.class_id = ?", classID)
	}
	if materialType != "" {
		query = query.Where("material_type = ?", materialType)
	}
	var materials []*models.LearningMaterial
	err := query.Find(&materials).Error
	return materials, err
}

// CountMaterials returns the total number of learning resources.
func CountMaterials(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.LearningMaterial{}).Count(&count).Error
	return count, err
}

// DeleteMaterial removes a material and its class associations.
func DeleteMaterial(db *gorm.DB, materialID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetMaterialByID(tx, materialID); err != nil {
			return err
		}
		if err := tx.Where("material_id = ?", materialID).Delete(&models.ClassMaterial{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", materialID).Delete(&models.LearningMaterial{}).Error
	})
}
