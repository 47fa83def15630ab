package repository

import (
	"alumni-network/backend/internal/models"

	"gorm.io/gorm"
)

// UserRepository is the persistence interface for the user directory.
// The messaging core only ever uses the read methods.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDs(ids []uint) ([]models.User, error)
	SearchByUsername(substring string, excludeID uint) ([]models.User, error)
	Count() (int64, error)
	CountByRole(role string) (int64, error)
	GetSkills(userID uint) ([]models.Skill, error)
	ReplaceSkills(userID uint, college string, names []string) error
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetByIDs(ids []uint) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// SearchByUsername matches usernames containing substring, case-insensitively,
// excluding the given user. No ordering beyond the directory's natural order.
func (r *GormUserRepository) SearchByUsername(substring string, excludeID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("username ILIKE ? AND id <> ?", "%"+substring+"%", excludeID).
		Find(&users).Error
	return users, err
}

func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *GormUserRepository) CountByRole(role string) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *GormUserRepository) GetSkills(userID uint) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Where("user_id = ?", userID).Find(&skills).Error
	return skills, err
}

// ReplaceSkills swaps a user's skill rows for a new set in one transaction.
// The college name is stored on every row. With no skills a single row
// carrying only the college is written so the value survives.
func (r *GormUserRepository) ReplaceSkills(userID uint, college string, names []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Skill{}).Error; err != nil {
			return err
		}

		rows := make([]models.Skill, 0, len(names))
		for _, name := range names {
			if name == "" {
				continue
			}
			rows = append(rows, models.Skill{UserID: userID, College: college, SkillName: name})
		}
		if len(rows) == 0 {
			rows = append(rows, models.Skill{UserID: userID, College: college})
		}

		return tx.Create(&rows).Error
	})
}
