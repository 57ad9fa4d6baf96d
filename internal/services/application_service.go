package services

import (
	"errors"
	"strings"

	"github.com/ronankibharath98/JobHunt/internal/models"
	"gorm.io/gorm"
)

// ApplicationService owns the application lifecycle: creating applications,
// listing them from either side of the relationship, and moving their status.
type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply files a pending application for the caller on the given job.
// The duplicate check runs before the job lookup, so a repeat caller always
// hears "already applied" even when the job has since disappeared.
func (s *ApplicationService) Apply(applicantID, jobID uint) (*models.Application, error) {
	var existing models.Application
	err := s.DB.Where("job_id = ? AND applicant_id = ?", jobID, applicantID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyApplied
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	application := &models.Application{
		JobID:       job.ID,
		ApplicantID: applicantID,
		Status:      models.StatusPending,
	}
	if err := s.DB.Create(application).Error; err != nil {
		// the unique index on (job_id, applicant_id) catches the race
		// between two concurrent identical requests
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	return application, nil
}

// ApplicationsFor lists the caller's applications newest first, with the job
// and its company expanded. An empty result is not an error.
func (s *ApplicationService) ApplicationsFor(applicantID uint) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Preload("Job").
		Preload("Job.Company").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// ApplicantsFor returns the job with its applications newest first, each
// expanded with the applicant's user record.
func (s *ApplicationService) ApplicantsFor(jobID uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.
		Preload("Applications", func(db *gorm.DB) *gorm.DB {
			return db.Order("applications.created_at DESC")
		}).
		Preload("Applications.Applicant").
		First(&job, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// UpdateStatus stores the lowercased status on an existing application. Any
// value is accepted; there is no state machine and no terminal status.
func (s *ApplicationService) UpdateStatus(applicationID uint, status string) (*models.Application, error) {
	var application models.Application
	if err := s.DB.First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	application.Status = strings.ToLower(status)
	if err := s.DB.Save(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}
