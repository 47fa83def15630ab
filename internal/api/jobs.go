package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alumni-network/backend/internal/models"
	"alumni-network/backend/internal/service"
	"alumni-network/backend/pkg/logger"
)

// JobHandler handles job posting endpoints
type JobHandler struct {
	jobs   *service.JobService
	logger *logger.Logger
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobs *service.JobService, logger *logger.Logger) *JobHandler {
	return &JobHandler{jobs: jobs, logger: logger}
}

// RegisterRoutes registers the job routes
func (h *JobHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/jobs", h.ListJobs)
	router.POST("/jobs", h.CreateJob)
}

// ListJobs returns all job postings, newest first
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobs.ListJobs()
	if err != nil {
		respondError(c, err)
		return
	}

	list := make([]models.JobResponse, len(jobs))
	for i, j := range jobs {
		list[i] = j.ToResponse()
	}

	c.JSON(http.StatusOK, list)
}

// CreateJob stores a new job posting
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Error binding JSON for job", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role and company name are required"})
		return
	}

	job, err := h.jobs.CreateJob(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job posted successfully",
		"job":     job.ToResponse(),
	})
}
