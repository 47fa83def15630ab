package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Roles known to the directory
const (
	RoleAlumni  = "alumni"
	RoleStudent = "student"
	RoleOther   = "other"
)

// User represents a member of the alumni network. Identity is immutable
// once created; the messaging core only ever reads these records.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:200;not null"`
	Role         string    `json:"role" gorm:"size:20;not null"`
	Department   string    `json:"department" gorm:"size:100"`
	BatchYear    int       `json:"batch_year"`
	LinkedinURL  string    `json:"linkedin_url,omitempty" gorm:"size:200"`
	CreatedAt    time.Time `json:"created_at"`

	Skills []Skill `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Skill is one skill tag on a user's profile. The profile's college name
// rides along on each row, mirroring how the profile editor stores it.
type Skill struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	College   string `json:"college" gorm:"size:200"`
	SkillName string `json:"skill_name" gorm:"size:100"`
}

// SignupRequest is the request structure for creating a new user
type SignupRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Role       string `json:"role" binding:"required"`
	Department string `json:"department" binding:"required"`
	Year       int    `json:"year" binding:"required"`
}

// LoginRequest is the request structure for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest replaces a user's skill tags and college
type UpdateProfileRequest struct {
	College string   `json:"college"`
	Skills  []string `json:"skills"`
}

// UserResponse is the public view of a user record
type UserResponse struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	Department string `json:"department"`
	BatchYear  int    `json:"batch_year,omitempty"`
}

// ProfileResponse is the full profile view including skill tags
type ProfileResponse struct {
	Username   string   `json:"username"`
	Role       string   `json:"role"`
	Department string   `json:"department"`
	BatchYear  int      `json:"batch_year"`
	College    string   `json:"college"`
	Skills     []string `json:"skills"`
}

// ToResponse converts a User model to a UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Role:       u.Role,
		Department: u.Department,
		BatchYear:  u.BatchYear,
	}
}

// HashPassword hashes a password for storage
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
