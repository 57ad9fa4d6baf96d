package services

import (
	"errors"
	"strings"

	"github.com/ronankibharath98/JobHunt/internal/dtos"
	"github.com/ronankibharath98/JobHunt/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

func (s *JobService) PostJob(userID uint, req *dtos.PostJobRequest) (*models.Job, error) {
	var company models.Company
	if err := s.DB.First(&company, req.CompanyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    splitList(req.Requirements),
		Salary:          req.Salary,
		ExperienceLevel: req.Experience,
		Location:        req.Location,
		JobType:         req.JobType,
		Position:        req.Position,
		CompanyID:       company.ID,
		CreatedByID:     userID,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Search returns jobs whose title or description contains the keyword,
// case-insensitively, newest first. An empty keyword returns everything.
func (s *JobService) Search(keyword string) ([]models.Job, error) {
	query := s.DB.Preload("Company").Order("created_at DESC")
	if keyword != "" {
		pattern := "%" + strings.ToLower(keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var jobs []models.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) GetByID(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.Preload("Applications").First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// JobsCreatedBy lists the postings a recruiter has created, for the admin
// dashboard.
func (s *JobService) JobsCreatedBy(userID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Where("created_by_id = ?", userID).
		Preload("Company").
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}
