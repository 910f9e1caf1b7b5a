package domain

import "errors"

// Family and setup errors
var (
	ErrFamilyNotFound = errors.New("family not found")
	ErrSlugTaken      = errors.New("this URL is already taken")
	ErrSetupForbidden = errors.New("setup requires an invitation")
	ErrInviteNotFound = errors.New("invitation not found")
	ErrInviteExpired  = errors.New("invitation expired")
	ErrInviteConsumed = errors.New("invitation already used")
)

// Slug validation errors
var (
	ErrSlugRequired     = errors.New("URL is required")
	ErrSlugInvalidChars = errors.New("URL can only contain lowercase letters, numbers, and hyphens")
	ErrSlugLength       = errors.New("URL must be between 3 and 50 characters")
	ErrSlugReserved     = errors.New("this URL is reserved and cannot be used")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPin         = errors.New("invalid PIN")
	ErrFamilyInactive     = errors.New("family account is inactive")
	ErrInvalidToken       = errors.New("invalid token")
)

// Record errors
var (
	ErrSettingsNotFound    = errors.New("settings not found")
	ErrBabyNotFound        = errors.New("baby not found")
	ErrLogNotFound         = errors.New("log entry not found")
	ErrEmailConfigNotFound = errors.New("email configuration not found")
)
