package service

import (
	"sort"
	"strings"

	"alumni-network/backend/internal/models"

	"gorm.io/gorm"
)

// fakeUserRepo is an in-memory UserRepository for service tests
type fakeUserRepo struct {
	users  map[uint]models.User
	skills map[uint][]models.Skill
	nextID uint
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		users:  make(map[uint]models.User),
		skills: make(map[uint][]models.Skill),
		nextID: 1,
	}
	for _, u := range users {
		if u.ID >= repo.nextID {
			repo.nextID = u.ID + 1
		}
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByIDs(ids []uint) ([]models.User, error) {
	var users []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			users = append(users, u)
		}
	}
	sortUsersByID(users)
	return users, nil
}

func (r *fakeUserRepo) SearchByUsername(substring string, excludeID uint) ([]models.User, error) {
	needle := strings.ToLower(substring)
	var users []models.User
	for _, u := range r.users {
		if u.ID == excludeID {
			continue
		}
		if strings.Contains(strings.ToLower(u.Username), needle) {
			users = append(users, u)
		}
	}
	sortUsersByID(users)
	return users, nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountByRole(role string) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) GetSkills(userID uint) ([]models.Skill, error) {
	return r.skills[userID], nil
}

func (r *fakeUserRepo) ReplaceSkills(userID uint, college string, names []string) error {
	var rows []models.Skill
	for _, name := range names {
		if name == "" {
			continue
		}
		rows = append(rows, models.Skill{UserID: userID, College: college, SkillName: name})
	}
	if len(rows) == 0 {
		rows = append(rows, models.Skill{UserID: userID, College: college})
	}
	r.skills[userID] = rows
	return nil
}

func sortUsersByID(users []models.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
}

// fakeMessageRepo is an in-memory append-only MessageRepository
type fakeMessageRepo struct {
	messages   []models.Message
	nextID     uint
	createErr  error
	partnerErr error
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{nextID: 1}
}

func (r *fakeMessageRepo) Create(message *models.Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	message.ID = r.nextID
	r.nextID++
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeMessageRepo) PartnerIDs(userID uint) ([]uint, error) {
	if r.partnerErr != nil {
		return nil, r.partnerErr
	}
	seen := make(map[uint]bool)
	var ids []uint
	for _, m := range r.messages {
		var partner uint
		switch {
		case m.SenderID == userID:
			partner = m.ReceiverID
		case m.ReceiverID == userID:
			partner = m.SenderID
		default:
			continue
		}
		if !seen[partner] {
			seen[partner] = true
			ids = append(ids, partner)
		}
	}
	return ids, nil
}

func (r *fakeMessageRepo) HistoryBetween(a, b uint) ([]models.Message, error) {
	var messages []models.Message
	for _, m := range r.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			messages = append(messages, m)
		}
	}
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].Timestamp.Equal(messages[j].Timestamp) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}

func (r *fakeMessageRepo) Count() (int64, error) {
	return int64(len(r.messages)), nil
}
