package service

import (
	"strings"
	"time"

	"alumni-network/backend/internal/models"
	"alumni-network/backend/internal/repository"
	"alumni-network/backend/pkg/errors"
)

// ChatService resolves chat contacts and history from the message log and
// records new messages. It is stateless and reentrant: every method is a
// self-contained read or a single-row append, and isolation is delegated
// to the backing store. There is no read-your-writes guarantee across
// calls; a history fetched concurrently with an append may or may not
// include the new message, which is fine for a poll-to-refresh client.
type ChatService struct {
	messages  repository.MessageRepository
	directory repository.UserRepository // read-only
}

// NewChatService creates a new chat service
func NewChatService(messages repository.MessageRepository, directory repository.UserRepository) *ChatService {
	return &ChatService{messages: messages, directory: directory}
}

// ResolveContacts returns either a global username search result or the
// requester's chat-partner set.
//
// With a non-empty search term (after trimming) this is a global
// case-insensitive substring search over the whole directory, excluding
// the requester, regardless of message history. With no search term it
// returns exactly the set of users the requester has exchanged at least
// one message with, recomputed from the log on every call.
//
// An unknown requester id fails open: it yields an empty result, not an
// error. That mirrors the sidebar behavior this backs and is a documented
// product decision, not a security boundary.
func (s *ChatService) ResolveContacts(requesterID uint, searchTerm string) ([]models.User, error) {
	searchTerm = strings.TrimSpace(searchTerm)

	if searchTerm != "" {
		users, err := s.directory.SearchByUsername(searchTerm, requesterID)
		if err != nil {
			return nil, errors.FromStore(err, "failed to search users")
		}
		return users, nil
	}

	ids, err := s.messages.PartnerIDs(requesterID)
	if err != nil {
		return nil, errors.FromStore(err, "failed to load chat partners")
	}

	// A self-message would put the requester in their own partner set
	partners := ids[:0]
	for _, id := range ids {
		if id != requesterID {
			partners = append(partners, id)
		}
	}

	if len(partners) == 0 {
		return []models.User{}, nil
	}

	users, err := s.directory.GetByIDs(partners)
	if err != nil {
		return nil, errors.FromStore(err, "failed to resolve chat partners")
	}
	return users, nil
}

// ResolveHistory returns the full message history between two users,
// in either direction, ascending by timestamp with id order breaking
// ties. The pair is order-insensitive and the call is idempotent.
func (s *ChatService) ResolveHistory(userA, userB uint) ([]models.Message, error) {
	messages, err := s.messages.HistoryBetween(userA, userB)
	if err != nil {
		return nil, errors.FromStore(err, "failed to load chat history")
	}
	return messages, nil
}

// RecordMessage appends exactly one message to the log and returns the
// stored record, including its store-assigned id.
//
// Sender and receiver must be distinct existing users; both checks run
// before the insert so the caller can tell a rejected request (400) from
// a failed write (500). Content may be empty but must have been present
// in the request; presence is the handler's concern. The append is never
// retried here: a silent retry could duplicate a message.
func (s *ChatService) RecordMessage(senderID, receiverID uint, content string) (*models.Message, error) {
	if senderID == receiverID {
		return nil, errors.NewValidationError("sender and receiver must be different users")
	}

	if _, err := s.directory.GetByID(senderID); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewValidationError("sender does not exist")
		}
		return nil, errors.FromStore(err, "failed to verify sender")
	}
	if _, err := s.directory.GetByID(receiverID); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewValidationError("receiver does not exist")
		}
		return nil, errors.FromStore(err, "failed to verify receiver")
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now(),
	}

	if err := s.messages.Create(message); err != nil {
		// Single-row insert: the store rolled it back, nothing persisted
		return nil, errors.FromStore(err, "failed to store message")
	}

	return message, nil
}
