package service

import (
	"alumni-network/backend/internal/models"
	"alumni-network/backend/internal/repository"
	"alumni-network/backend/pkg/errors"
)

// JobService manages job postings
type JobService struct {
	repo repository.JobRepository
}

func NewJobService(repo repository.JobRepository) *JobService {
	return &JobService{repo: repo}
}

// CreateJob stores a new job posting
func (s *JobService) CreateJob(req *models.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Role:        req.Role,
		CompanyName: req.CompanyName,
		Location:    req.Location,
		PaidStatus:  req.PaidStatus,
		Duration:    req.Duration,
		PostedBy:    req.PostedBy,
	}

	if err := s.repo.Create(job); err != nil {
		return nil, errors.FromStore(err, "failed to create job")
	}
	return job, nil
}

// ListJobs returns all job postings, newest first
func (s *JobService) ListJobs() ([]models.Job, error) {
	jobs, err := s.repo.ListRecent()
	if err != nil {
		return nil, errors.FromStore(err, "failed to list jobs")
	}
	return jobs, nil
}
