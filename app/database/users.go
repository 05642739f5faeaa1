package database

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"school-management-system/app/models"
)

// CreateUser registers a new account. Username and email must be unique and
// the role must be one of the three known roles; the role never changes after
// this point.
func CreateUser(db *gorm.DB, user *models.User) error {
	if !user.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, user.Role)
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ? OR email = ?", user.Username, user.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: username or email already registered", ErrDuplicate)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), 14)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	user.IsActive = true

	return db.Create(user).Error
}

// GetUserByUsername returns an active user by username.
func GetUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	err := db.Where("username = ? AND is_active = ?", username, true).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAllUsers returns users, optionally narrowed to one role.
func GetAllUsers(db *gorm.DB, role string) ([]*models.User, error) {
	query := db.Order("full_name")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	var users []*models.User
	err := query.Find(&users).Error
	return users, err
}

// GetUserByID returns a user by id, active or not.
func GetUserByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserPassword replaces the stored hash for a user.
func UpdateUserPassword(db *gorm.DB, userID, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return err
	}
	res := db.Model(&models.User{}).Where("id = ?", userID).Update("password", string(hashed))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeactivateUser flags an account inactive. Accounts are never hard-deleted.
func DeactivateUser(db *gorm.DB, userID string) error {
	res := db.Model(&models.User{}).Where("id = ?", userID).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountUsersByRole returns the number of active users holding a role.
func CountUsersByRole(db *gorm.DB, role models.UserRole) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).
		Where("role = ? AND is_active = ?", role, true).
		Count(&count).Error
	return count, err
}
