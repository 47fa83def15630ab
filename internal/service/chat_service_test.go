package service

import (
	"errors"
	"testing"
	"time"

	"alumni-network/backend/internal/models"
	apperrors "alumni-network/backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatFixture(t *testing.T) (*ChatService, *fakeMessageRepo, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo(
		models.User{ID: 1, Username: "Alice", Role: models.RoleAlumni, Department: "CS"},
		models.User{ID: 2, Username: "Bob", Role: models.RoleStudent, Department: "IT"},
		models.User{ID: 3, Username: "Carol", Role: models.RoleStudent, Department: "EE"},
	)
	messages := newFakeMessageRepo()
	return NewChatService(messages, users), messages, users
}

func seedMessage(t *testing.T, svc *ChatService, sender, receiver uint, content string) *models.Message {
	t.Helper()
	m, err := svc.RecordMessage(sender, receiver, content)
	require.NoError(t, err)
	return m
}

func TestResolveContactsReturnsChatPartners(t *testing.T) {
	svc, _, _ := chatFixture(t)
	seedMessage(t, svc, 1, 2, "hi")
	seedMessage(t, svc, 2, 1, "hey")
	seedMessage(t, svc, 3, 2, "yo")

	contacts, err := svc.ResolveContacts(2, "")
	require.NoError(t, err)

	names := make([]string, len(contacts))
	for i, u := range contacts {
		names[i] = u.Username
	}
	assert.ElementsMatch(t, []string{"Alice", "Carol"}, names)
}

func TestResolveContactsExcludesSelfEvenWithSelfMessage(t *testing.T) {
	svc, messages, _ := chatFixture(t)
	// A self-message can exist in the log; it must not surface the user
	// as their own contact
	require.NoError(t, messages.Create(&models.Message{SenderID: 2, ReceiverID: 2, Content: "note", Timestamp: time.Now()}))
	seedMessage(t, svc, 1, 2, "hi")

	contacts, err := svc.ResolveContacts(2, "")
	require.NoError(t, err)

	require.Len(t, contacts, 1)
	assert.Equal(t, "Alice", contacts[0].Username)
}

func TestResolveContactsUnknownRequesterFailsOpen(t *testing.T) {
	svc, _, _ := chatFixture(t)

	contacts, err := svc.ResolveContacts(999, "")
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestResolveContactsSearchIsGlobal(t *testing.T) {
	svc, _, _ := chatFixture(t)
	// No message history at all: search still finds everyone matching
	contacts, err := svc.ResolveContacts(2, "aro")
	require.NoError(t, err)

	require.Len(t, contacts, 1)
	assert.Equal(t, "Carol", contacts[0].Username)
}

func TestResolveContactsSearchIsCaseInsensitiveAndExcludesRequester(t *testing.T) {
	svc, _, _ := chatFixture(t)

	contacts, err := svc.ResolveContacts(3, "O")
	require.NoError(t, err)

	names := make([]string, len(contacts))
	for i, u := range contacts {
		names[i] = u.Username
	}
	// "O" matches Bob and Carol; Carol is the requester and is excluded
	assert.Equal(t, []string{"Bob"}, names)
}

func TestResolveContactsWhitespaceSearchFallsBackToPartnerSet(t *testing.T) {
	svc, _, _ := chatFixture(t)
	seedMessage(t, svc, 1, 2, "hi")

	contacts, err := svc.ResolveContacts(2, "   ")
	require.NoError(t, err)

	require.Len(t, contacts, 1)
	assert.Equal(t, "Alice", contacts[0].Username)
}

func TestResolveHistoryIsSymmetric(t *testing.T) {
	svc, _, _ := chatFixture(t)
	seedMessage(t, svc, 1, 2, "hi")
	seedMessage(t, svc, 2, 1, "hey")
	seedMessage(t, svc, 3, 2, "yo")

	forward, err := svc.ResolveHistory(1, 2)
	require.NoError(t, err)
	backward, err := svc.ResolveHistory(2, 1)
	require.NoError(t, err)

	assert.Equal(t, forward, backward)
	require.Len(t, forward, 2)
	assert.Equal(t, "hi", forward[0].Content)
	assert.Equal(t, uint(1), forward[0].SenderID)
	assert.Equal(t, "hey", forward[1].Content)
	assert.Equal(t, uint(2), forward[1].SenderID)
}

func TestResolveHistoryBreaksTimestampTiesByID(t *testing.T) {
	svc, messages, _ := chatFixture(t)
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, messages.Create(&models.Message{SenderID: 1, ReceiverID: 2, Content: "first", Timestamp: at}))
	require.NoError(t, messages.Create(&models.Message{SenderID: 2, ReceiverID: 1, Content: "second", Timestamp: at}))

	history, err := svc.ResolveHistory(1, 2)
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, "first", history[0].Content)
	assert.Equal(t, "second", history[1].Content)
}

func TestRecordMessageAppendsExactlyOneRow(t *testing.T) {
	svc, messages, _ := chatFixture(t)

	before, _ := messages.Count()
	m, err := svc.RecordMessage(1, 2, "hello")
	require.NoError(t, err)
	after, _ := messages.Count()

	assert.Equal(t, before+1, after)
	assert.NotZero(t, m.ID)
	assert.False(t, m.Timestamp.IsZero())
}

func TestRecordMessageAcceptsEmptyContent(t *testing.T) {
	svc, messages, _ := chatFixture(t)

	m, err := svc.RecordMessage(1, 2, "")
	require.NoError(t, err)
	assert.Equal(t, "", m.Content)

	count, _ := messages.Count()
	assert.EqualValues(t, 1, count)
}

func TestRecordMessageRejectsSelfSend(t *testing.T) {
	svc, messages, _ := chatFixture(t)

	_, err := svc.RecordMessage(1, 1, "hi me")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	count, _ := messages.Count()
	assert.EqualValues(t, 0, count)
}

func TestRecordMessageRejectsUnknownUsers(t *testing.T) {
	svc, messages, _ := chatFixture(t)

	_, err := svc.RecordMessage(1, 999, "hi")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	_, err = svc.RecordMessage(999, 1, "hi")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	count, _ := messages.Count()
	assert.EqualValues(t, 0, count)
}

func TestRecordMessageSurfacesStoreFailure(t *testing.T) {
	svc, messages, _ := chatFixture(t)
	messages.createErr = errors.New("connection reset")

	_, err := svc.RecordMessage(1, 2, "hi")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeStore))
	assert.Equal(t, 500, apperrors.GetStatusCode(err))
}

func TestResolveContactsSurfacesStoreFailure(t *testing.T) {
	svc, messages, _ := chatFixture(t)
	messages.partnerErr = errors.New("connection reset")

	_, err := svc.ResolveContacts(1, "")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeStore))
}
