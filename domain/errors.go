package domain

import "errors"

var (
	ErrOutfitNotFound   = errors.New("outfit not found")
	ErrOccasionNotFound = errors.New("occasion not found")
	ErrStyleNotFound    = errors.New("style not found")
	ErrStylistNotFound  = errors.New("stylist not found")
	ErrArticleNotFound  = errors.New("article not found")

	// Upvote toggle idempotency violations. Reported, not silently ignored.
	ErrAlreadyUpvoted = errors.New("the user already upvoted this outfit")
	ErrNeverUpvoted   = errors.New("the user has never upvoted this outfit")

	ErrInvalidFilterExpression = errors.New("invalid filter expression")
	ErrInvalidShowTime         = errors.New("show time can only be positive")
)
