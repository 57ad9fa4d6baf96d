package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ronankibharath98/JobHunt/internal/dtos"
	"github.com/ronankibharath98/JobHunt/internal/middleware"
	"github.com/ronankibharath98/JobHunt/internal/services"
	"github.com/ronankibharath98/JobHunt/internal/storage"
)

type CompanyHandler struct {
	Companies *services.CompanyService
	Storage   storage.Storage
}

func NewCompanyHandler(companies *services.CompanyService, store storage.Storage) *CompanyHandler {
	return &CompanyHandler{Companies: companies, Storage: store}
}

// Register is the POST /company/register endpoint.
func (h *CompanyHandler) Register(c *gin.Context) {
	var req dtos.RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Company name is required"})
		return
	}

	company, err := h.Companies.Register(middleware.UserID(c), req.CompanyName)
	if err != nil {
		if errors.Is(err, services.ErrCompanyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You can't register the same company twice"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Company registered successfully", "company": company})
}

// GetCompanies lists the caller's companies.
func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	companies, err := h.Companies.CompaniesFor(middleware.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "companies": companies})
}

func (h *CompanyHandler) GetCompanyByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Company not found"})
		return
	}
	company, err := h.Companies.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Company not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

// UpdateCompany is the PUT /company/update/:id endpoint (multipart form,
// optional logo upload).
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Company not found"})
		return
	}

	var req dtos.UpdateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid form data"})
		return
	}

	logoURL := ""
	if file, err := c.FormFile("file"); err == nil {
		url, err := h.Storage.Save(c, file)
		if err != nil {
			internalError(c, err)
			return
		}
		logoURL = url
	}

	company, err := h.Companies.Update(id, &req, logoURL)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Company not found"})
		case errors.Is(err, services.ErrCompanyExists):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Company name already taken"})
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Company information updated", "company": company})
}
