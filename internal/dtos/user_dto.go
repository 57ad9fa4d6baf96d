package dtos

// RegisterRequest arrives as multipart form data; the optional profile photo
// travels alongside in the "file" part.
type RegisterRequest struct {
	FullName    string `form:"fullname" binding:"required"`
	Email       string `form:"email" binding:"required"`
	PhoneNumber string `form:"phoneNumber" binding:"required"`
	Password    string `form:"password" binding:"required"`
	Role        string `form:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// UpdateProfileRequest is a partial update: empty fields are left untouched.
type UpdateProfileRequest struct {
	FullName    string `form:"fullname"`
	Email       string `form:"email"`
	PhoneNumber string `form:"phoneNumber"`
	Bio         string `form:"bio"`
	Skills      string `form:"skills"` // comma-separated
}
