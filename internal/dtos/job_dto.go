package dtos

type PostJobRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Requirements string `json:"requirements" binding:"required"` // comma-separated
	Salary       int    `json:"salary" binding:"required"`
	Location     string `json:"location" binding:"required"`
	JobType      string `json:"jobType" binding:"required"`
	Experience   int    `json:"experience" binding:"required"`
	Position     int    `json:"position" binding:"required"`
	CompanyID    uint   `json:"companyId" binding:"required"`
}
