package thread

import "errors"

var (
	ErrNoOpenThread    = errors.New("no open thread")
	ErrEmptyText       = errors.New("message text is empty")
	ErrMessageNotFound = errors.New("message not found")
	ErrInvalidFeedback = errors.New("invalid feedback")
	ErrUnknownReason   = errors.New("unknown feedback reason")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)
