package models

import (
	"strings"
	"time"
)

// Job is a job or internship posting
type Job struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Role        string    `json:"role" gorm:"size:150;not null"`
	CompanyName string    `json:"company_name" gorm:"size:200;not null"`
	Location    string    `json:"location" gorm:"size:200;not null"`
	PaidStatus  string    `json:"paid_status" gorm:"size:50;not null"`
	Duration    string    `json:"duration" gorm:"size:100;not null"`
	PostedBy    *uint     `json:"posted_by" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`

	Poster *User `json:"-" gorm:"foreignKey:PostedBy"`
}

// CreateJobRequest is the request structure for posting a job
type CreateJobRequest struct {
	Role        string `json:"role" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	Location    string `json:"location" binding:"required"`
	PaidStatus  string `json:"paid_status" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
	PostedBy    *uint  `json:"posted_by"`
}

// JobResponse is the listing view of a job posting
type JobResponse struct {
	ID         uint   `json:"id"`
	Role       string `json:"role"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	PaidStatus string `json:"paid_status"`
	Duration   string `json:"duration"`
	LogoLetter string `json:"logo_letter"`
}

// ToResponse converts a Job model to a JobResponse
func (j *Job) ToResponse() JobResponse {
	logo := "J"
	if j.CompanyName != "" {
		logo = strings.ToUpper(j.CompanyName[:1])
	}
	return JobResponse{
		ID:         j.ID,
		Role:       j.Role,
		Company:    j.CompanyName,
		Location:   j.Location,
		PaidStatus: j.PaidStatus,
		Duration:   j.Duration,
		LogoLetter: logo,
	}
}
