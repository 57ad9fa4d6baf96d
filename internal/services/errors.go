package services

import "errors"

// Sentinel errors the handlers translate to HTTP statuses. Anything else
// coming out of a service is treated as a 500 and logged.
var (
	ErrUserExists          = errors.New("user already exists with this email")
	ErrUserNotFound        = errors.New("user does not exist")
	ErrBadCredentials      = errors.New("invalid credentials")
	ErrRoleMismatch        = errors.New("unauthorized role")
	ErrCompanyExists       = errors.New("company already registered")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrAlreadyApplied      = errors.New("already applied for this job")
	ErrApplicationNotFound = errors.New("application not found")
)
