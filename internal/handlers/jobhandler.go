package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ronankibharath98/JobHunt/internal/dtos"
	"github.com/ronankibharath98/JobHunt/internal/middleware"
	"github.com/ronankibharath98/JobHunt/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// PostJob is the POST /job/post endpoint.
func (h *JobHandler) PostJob(c *gin.Context) {
	var req dtos.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Something is missing"})
		return
	}

	job, err := h.Jobs.PostJob(middleware.UserID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Company not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "New job created successfully", "job": job})
}

// GetAllJobs is the GET /job/get endpoint; ?keyword= filters by title or
// description.
func (h *JobHandler) GetAllJobs(c *gin.Context) {
	jobs, err := h.Jobs.Search(c.Query("keyword"))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
		return
	}
	job, err := h.Jobs.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

// GetAdminJobs lists the jobs created by the calling recruiter.
func (h *JobHandler) GetAdminJobs(c *gin.Context) {
	jobs, err := h.Jobs.JobsCreatedBy(middleware.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}
