package dtos

type RegisterCompanyRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
}

// UpdateCompanyRequest is a partial update; the logo upload travels as a
// separate multipart file part.
type UpdateCompanyRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Website     string `form:"website"`
	Location    string `form:"location"`
}
