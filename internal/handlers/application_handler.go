package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ronankibharath98/JobHunt/internal/dtos"
	"github.com/ronankibharath98/JobHunt/internal/middleware"
	"github.com/ronankibharath98/JobHunt/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// Apply is the GET /application/apply/:id endpoint.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
		return
	}

	application, err := h.Applications.Apply(middleware.UserID(c), jobID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyApplied):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You have already applied for this job"})
		case errors.Is(err, services.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Application submitted successfully", "application": application})
}

// GetApplications lists the caller's applications, newest first.
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	applications, err := h.Applications.ApplicationsFor(middleware.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": applications})
}

// GetApplicants is the GET /application/:id/applicants endpoint.
func (h *ApplicationHandler) GetApplicants(c *gin.Context) {
	jobID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
		return
	}

	job, err := h.Applications.ApplicantsFor(jobID)
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

// UpdateStatus is the PUT /application/status/:id/update endpoint.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Application not found"})
		return
	}

	var req dtos.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
		return
	}

	if _, err := h.Applications.UpdateStatus(applicationID, req.Status); err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Application not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application updated successfully"})
}
