package services

import (
	"errors"

	"github.com/ronankibharath98/JobHunt/internal/dtos"
	"github.com/ronankibharath98/JobHunt/internal/models"
	"gorm.io/gorm"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

func (s *CompanyService) Register(userID uint, name string) (*models.Company, error) {
	var existing models.Company
	err := s.DB.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, ErrCompanyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	company := &models.Company{Name: name, UserID: userID}
	if err := s.DB.Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCompanyExists
		}
		return nil, err
	}
	return company, nil
}

// CompaniesFor lists the companies owned by a recruiter.
func (s *CompanyService) CompaniesFor(userID uint) ([]models.Company, error) {
	var companies []models.Company
	err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&companies).Error
	return companies, err
}

func (s *CompanyService) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	if err := s.DB.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

// Update applies a partial update; logoURL is set only when a new logo was
// uploaded.
func (s *CompanyService) Update(id uint, req *dtos.UpdateCompanyRequest, logoURL string) (*models.Company, error) {
	company, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Description != "" {
		company.Description = req.Description
	}
	if req.Website != "" {
		company.Website = req.Website
	}
	if req.Location != "" {
		company.Location = req.Location
	}
	if logoURL != "" {
		company.Logo = logoURL
	}

	if err := s.DB.Save(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCompanyExists
		}
		return nil, err
	}
	return company, nil
}
