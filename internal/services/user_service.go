package services

import (
	"errors"
	"strings"

	"github.com/ronankibharath98/JobHunt/internal/dtos"
	"github.com/ronankibharath98/JobHunt/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// ProfileUploads carries the URLs handed back by the upload storage for an
// UpdateProfile call. Empty fields mean "nothing uploaded".
type ProfileUploads struct {
	ProfilePhotoURL string
	ResumeURL       string
	ResumeName      string
}

func (s *UserService) Register(req *dtos.RegisterRequest, photoURL string) (*models.User, error) {
	var existing models.User
	err := s.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    string(hashed),
		Role:        req.Role,
		Profile:     models.Profile{ProfilePhoto: photoURL},
	}
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(req *dtos.LoginRequest) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrBadCredentials
	}
	// credentials alone are not enough: the portal issues seeker and
	// recruiter sessions separately
	if user.Role != req.Role {
		return nil, ErrRoleMismatch
	}
	return &user, nil
}

// UpdateProfile applies a partial update: only non-empty fields are written.
func (s *UserService) UpdateProfile(userID uint, req *dtos.UpdateProfileRequest, uploads ProfileUploads) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Bio != "" {
		user.Profile.Bio = req.Bio
	}
	if req.Skills != "" {
		user.Profile.Skills = splitList(req.Skills)
	}
	if uploads.ProfilePhotoURL != "" {
		user.Profile.ProfilePhoto = uploads.ProfilePhotoURL
	}
	if uploads.ResumeURL != "" {
		user.Profile.Resume = uploads.ResumeURL
		user.Profile.ResumeOriginalName = uploads.ResumeName
	}

	if err := s.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// splitList turns "go, sql,docker" into {"go","sql","docker"}.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
