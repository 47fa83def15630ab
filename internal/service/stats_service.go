package service

import (
	"alumni-network/backend/internal/models"
	"alumni-network/backend/internal/repository"
	"alumni-network/backend/pkg/errors"
)

// DashboardStats aggregates top-level counts for the dashboard view
type DashboardStats struct {
	Connections int64 `json:"connections"`
	EventsCount int64 `json:"events_count"`
	JobsCount   int64 `json:"jobs_count"`
	Roles       struct {
		Alumni   int64 `json:"alumni"`
		Students int64 `json:"students"`
		Others   int64 `json:"others"`
	} `json:"roles"`
}

// StatsService computes dashboard statistics
type StatsService struct {
	users  repository.UserRepository
	events repository.EventRepository
	jobs   repository.JobRepository
}

func NewStatsService(users repository.UserRepository, events repository.EventRepository, jobs repository.JobRepository) *StatsService {
	return &StatsService{users: users, events: events, jobs: jobs}
}

// Dashboard returns user, event and job counts plus the per-role split
func (s *StatsService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.Connections, err = s.users.Count(); err != nil {
		return nil, errors.FromStore(err, "failed to count users")
	}
	if stats.EventsCount, err = s.events.Count(); err != nil {
		return nil, errors.FromStore(err, "failed to count events")
	}
	if stats.JobsCount, err = s.jobs.Count(); err != nil {
		return nil, errors.FromStore(err, "failed to count jobs")
	}
	if stats.Roles.Alumni, err = s.users.CountByRole(models.RoleAlumni); err != nil {
		return nil, errors.FromStore(err, "failed to count alumni")
	}
	if stats.Roles.Students, err = s.users.CountByRole(models.RoleStudent); err != nil {
		return nil, errors.FromStore(err, "failed to count students")
	}
	stats.Roles.Others = stats.Connections - stats.Roles.Alumni - stats.Roles.Students

	return stats, nil
}
