package social

import "errors"

// Sentinel errors for the social service layer.
var (
	ErrNotFound         = errors.New("post not found")
	ErrScheduleRequired = errors.New("scheduled_at is required to schedule a post")
)
