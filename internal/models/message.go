package models

import (
	"time"
)

// Message is one directed communication between two users. Rows are
// append-only: nothing in this service updates or deletes a message once
// it is written. The id is assigned by the store and the timestamp is
// assigned server-side at creation; the full timestamp is the ordering
// key, with ties broken by id.
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   uint      `json:"sender" gorm:"not null;index:idx_messages_sender"`
	ReceiverID uint      `json:"receiver" gorm:"not null;index:idx_messages_receiver"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Timestamp  time.Time `json:"timestamp" gorm:"not null;index"`

	Sender   User `json:"-" gorm:"foreignKey:SenderID"`
	Receiver User `json:"-" gorm:"foreignKey:ReceiverID"`
}

// SendMessageRequest is the request structure for posting a message.
// Pointer fields distinguish an absent key (a request error) from a
// present-but-empty value: an explicitly empty content string is accepted
// and persisted as-is.
type SendMessageRequest struct {
	Sender   *uint   `json:"sender" binding:"required"`
	Receiver *uint   `json:"receiver" binding:"required"`
	Content  *string `json:"content" binding:"required"`
}

// HistoryEntry is one element of a chat history response. Time carries
// only hour:minute for display; clients needing true order must use the
// response order, which follows the stored full timestamp.
type HistoryEntry struct {
	Sender  uint   `json:"sender"`
	Content string `json:"content"`
	Time    string `json:"time"`
}

// ToHistoryEntry formats a message for the chat history response
func (m *Message) ToHistoryEntry() HistoryEntry {
	return HistoryEntry{
		Sender:  m.SenderID,
		Content: m.Content,
		Time:    m.Timestamp.Format("15:04"),
	}
}
