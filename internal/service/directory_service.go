package service

import (
	"encoding/json"
	"fmt"
	"time"

	"alumni-network/backend/internal/models"
	"alumni-network/backend/internal/repository"
	"alumni-network/backend/pkg/errors"
	"alumni-network/backend/shared/redis"
)

// DirectoryService owns the user-record store: signup, login, profile
// reads and updates. The messaging core consumes it read-only.
type DirectoryService struct {
	repo     repository.UserRepository
	cache    *redis.Client // nil disables caching
	cacheTTL time.Duration
}

// NewDirectoryService creates a new directory service. Pass a nil cache
// to run without Redis (tests do this); cache failures are always treated
// as misses.
func NewDirectoryService(repo repository.UserRepository, cache *redis.Client, cacheTTL time.Duration) *DirectoryService {
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &DirectoryService{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

// Signup creates a new user record. Email and username must be unused.
func (s *DirectoryService) Signup(req *models.SignupRequest) (*models.User, error) {
	if req.Role != models.RoleAlumni && req.Role != models.RoleStudent && req.Role != models.RoleOther {
		return nil, errors.NewValidationError("role must be alumni, student or other")
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, errors.NewConflictError("email already registered")
	} else if !errors.IsNotFound(err) {
		return nil, errors.FromStore(err, "failed to check email")
	}

	if _, err := s.repo.GetByUsername(req.Username); err == nil {
		return nil, errors.NewConflictError("username already taken")
	} else if !errors.IsNotFound(err) {
		return nil, errors.FromStore(err, "failed to check username")
	}

	hash, err := models.HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewInternalServerError(errors.CodeInternal, "failed to hash password")
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Department:   req.Department,
		BatchYear:    req.Year,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, errors.FromStore(err, "failed to create user")
	}

	return user, nil
}

// ErrInvalidCredentials is returned by Login for a bad username or password
var ErrInvalidCredentials = errors.NewError(401, "INVALID_CREDENTIALS", "invalid username or password")

// Login verifies a username/password pair and returns the user record.
// No session or token is issued; callers act under plain user ids.
func (s *DirectoryService) Login(username, password string) (*models.User, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.FromStore(err, "failed to load user")
	}

	if !models.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// FindByID resolves a user record by id, read-through cached.
func (s *DirectoryService) FindByID(id uint) (*models.User, error) {
	cacheKey := fmt.Sprintf("user:id:%d", id)

	if s.cache != nil {
		if cached, err := s.cache.Get(cacheKey); err == nil && cached != "" {
			var user models.User
			if err := json.Unmarshal([]byte(cached), &user); err == nil {
				return &user, nil
			}
		}
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.FromStore(err, "user not found")
	}

	if s.cache != nil {
		if data, err := json.Marshal(user); err == nil {
			_ = s.cache.Set(cacheKey, data, s.cacheTTL)
		}
	}

	return user, nil
}

// Profile assembles the full profile view: user record, skill tags and
// the college name stored alongside them.
func (s *DirectoryService) Profile(id uint) (*models.ProfileResponse, error) {
	user, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	skills, err := s.repo.GetSkills(id)
	if err != nil {
		return nil, errors.FromStore(err, "failed to load skills")
	}

	college := "Not Set"
	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		if college == "Not Set" && skill.College != "" {
			college = skill.College
		}
		if skill.SkillName != "" {
			names = append(names, skill.SkillName)
		}
	}

	return &models.ProfileResponse{
		Username:   user.Username,
		Role:       user.Role,
		Department: user.Department,
		BatchYear:  user.BatchYear,
		College:    college,
		Skills:     names,
	}, nil
}

// UpdateProfile replaces the user's skill tags and college atomically.
func (s *DirectoryService) UpdateProfile(id uint, req *models.UpdateProfileRequest) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return errors.FromStore(err, "user not found")
	}

	college := req.College
	if college == "" {
		college = "Not Set"
	}

	if err := s.repo.ReplaceSkills(id, college, req.Skills); err != nil {
		return errors.FromStore(err, "failed to update profile")
	}

	if s.cache != nil {
		_ = s.cache.Del(fmt.Sprintf("user:id:%d", id))
	}

	return nil
}
