package domain

import "errors"

// Sentinel errors for the lead platform. Callers classify failures with
// errors.Is; the HTTP layer maps them to status codes.
var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrDuplicateLead    = errors.New("lead already exists")
	ErrIngestionRunning = errors.New("ingestion already running for campaign")
	ErrEmailTaken       = errors.New("email already registered")

	ErrInvalidMaxResults = errors.New("max_results must be between 1 and 500")
	ErrInvalidStatus     = errors.New("invalid lead status")
	ErrEmptyBusinessName = errors.New("business name is required")
	ErrEmptyCampaignName = errors.New("campaign name is required")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
)
