package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ronankibharath98/JobHunt/internal/auth"
	"github.com/ronankibharath98/JobHunt/internal/dtos"
	"github.com/ronankibharath98/JobHunt/internal/middleware"
	"github.com/ronankibharath98/JobHunt/internal/services"
	"github.com/ronankibharath98/JobHunt/internal/storage"
)

type UserHandler struct {
	Users   *services.UserService
	Tokens  *auth.Manager
	Storage storage.Storage
}

func NewUserHandler(users *services.UserService, tokens *auth.Manager, store storage.Storage) *UserHandler {
	return &UserHandler{Users: users, Tokens: tokens, Storage: store}
}

// Register is the POST /user/register endpoint (multipart form).
func (h *UserHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Something is missing"})
		return
	}

	// optional profile photo
	photoURL := ""
	if file, err := c.FormFile("file"); err == nil {
		url, err := h.Storage.Save(c, file)
		if err != nil {
			internalError(c, err)
			return
		}
		photoURL = url
	}

	if _, err := h.Users.Register(&req, photoURL); err != nil {
		if errors.Is(err, services.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already exists with this email."})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Account created successfully."})
}

// Login is the POST /user/login endpoint. On success it sets the HTTP-only
// session cookie and returns the sanitized user (the password hash is never
// serialized).
func (h *UserHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}

	user, err := h.Users.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User does not exist with this email"})
		case errors.Is(err, services.ErrBadCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid credentials"})
		case errors.Is(err, services.ErrRoleMismatch):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Unauthorized role"})
		default:
			internalError(c, err)
		}
		return
	}

	token, err := h.Tokens.Generate(user.ID, user.Role)
	if err != nil {
		internalError(c, err)
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, token, int(auth.TokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Welcome " + user.FullName, "user": user})
}

// Logout clears the session cookie unconditionally.
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout successful"})
}

// UpdateProfile is the POST/PUT /user/profile/update endpoint (multipart
// form, partial update).
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dtos.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid form data"})
		return
	}

	var uploads services.ProfileUploads
	if file, err := c.FormFile("profilePic"); err == nil {
		url, err := h.Storage.Save(c, file)
		if err != nil {
			internalError(c, err)
			return
		}
		uploads.ProfilePhotoURL = url
	}
	if file, err := c.FormFile("resume"); err == nil {
		url, err := h.Storage.Save(c, file)
		if err != nil {
			internalError(c, err)
			return
		}
		uploads.ResumeURL = url
		uploads.ResumeName = file.Filename
	}

	user, err := h.Users.UpdateProfile(middleware.UserID(c), &req, uploads)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User does not exist"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully", "user": user})
}
