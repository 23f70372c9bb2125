package model

const (
	// Content limits
	MaxTextLength = 1200
	MaxPhotos     = 4

	// Rating
	MinRating = 1.0
	MaxRating = 5.0

	// Defaults
	AnonymousName     = "Anonymous"
	DefaultAvatarSeed = "bagelhole"

	// Review lifecycle
	StatusPending = "pending"
)
