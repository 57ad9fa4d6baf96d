package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleSeeker    = "seeker"
	RoleRecruiter = "recruiter"
)

// Application statuses. Stored lowercase. The updater accepts values outside
// this set on purpose: the API never constrained the enum and clients rely on
// being able to store custom stages.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Profile is the mutable block on a User. Resume and photo hold URLs handed
// back by the upload storage.
type Profile struct {
	Bio                string   `json:"bio"`
	Skills             []string `gorm:"serializer:json" json:"skills"`
	Resume             string   `json:"resume"`
	ResumeOriginalName string   `json:"resumeOriginalName"`
	ProfilePhoto       string   `json:"profilePhoto"`
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName    string `gorm:"not null" json:"fullname"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	// bcrypt hash, never serialized
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"`

	Profile Profile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
}

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Logo        string `json:"logo"`

	// Owning recruiter. One recruiter may own several companies.
	UserID uint `gorm:"not null" json:"userId"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title           string   `gorm:"not null" json:"title"`
	Description     string   `gorm:"type:text" json:"description"`
	Requirements    []string `gorm:"serializer:json" json:"requirements"`
	Salary          int      `json:"salary"`
	ExperienceLevel int      `json:"experienceLevel"`
	Location        string   `json:"location"`
	JobType         string   `json:"jobType"`
	Position        int      `json:"position"`

	CompanyID uint    `gorm:"not null" json:"company_id"`
	Company   Company `json:"company"`

	CreatedByID uint `gorm:"not null" json:"created_by"`

	// 'omitempty' prevents Job -> Applications -> Job loops in responses.
	// Membership derives from Application.JobID, so this list can never
	// drift from the application records themselves.
	Applications []Application `json:"applications,omitempty"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// The composite unique index guarantees one application per
	// (job, applicant) pair even under concurrent identical requests.
	JobID       uint `gorm:"not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	ApplicantID uint `gorm:"not null;uniqueIndex:idx_job_applicant" json:"applicant_id"`

	Status string `gorm:"default:'pending'" json:"status"`

	Job       Job  `json:"job,omitempty"`
	Applicant User `json:"applicant,omitempty"`
}
