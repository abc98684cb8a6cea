package campaign

import "errors"

// Sentinel errors for the campaign service layer.
var (
	ErrNotFound         = errors.New("campaign not found")
	ErrTemplateNotFound = errors.New("email template not found")
	ErrScheduleRequired = errors.New("campaign has no scheduled_at")
	ErrSendInProgress   = errors.New("campaign send already in progress")
)
