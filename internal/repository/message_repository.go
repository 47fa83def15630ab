package repository

import (
	"alumni-network/backend/internal/models"

	"gorm.io/gorm"
)

// MessageRepository is the persistence interface for the append-only
// message log. There is deliberately no update or delete method.
type MessageRepository interface {
	Create(message *models.Message) error
	PartnerIDs(userID uint) ([]uint, error)
	HistoryBetween(a, b uint) ([]models.Message, error)
	Count() (int64, error)
}

type GormMessageRepository struct {
	db *gorm.DB
}

func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// Create appends one message. The id comes from the store's identity
// column; concurrent appends to the same conversation each get their own
// row via the store's native atomic insert.
func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// PartnerIDs returns the distinct ids of users the given user has
// exchanged at least one message with, in either direction. The result
// may include userID itself when a self-message exists; callers filter it.
func (r *GormMessageRepository) PartnerIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Raw(`
		SELECT DISTINCT CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END
		FROM messages
		WHERE sender_id = ? OR receiver_id = ?`,
		userID, userID, userID,
	).Scan(&ids).Error
	return ids, err
}

// HistoryBetween returns every message between a and b in either
// direction, ascending by timestamp with id as the tiebreak.
func (r *GormMessageRepository) HistoryBetween(a, b uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("timestamp ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

func (r *GormMessageRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Count(&count).Error
	return count, err
}
