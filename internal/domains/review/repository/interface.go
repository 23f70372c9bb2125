package repository

import (
	"context"

	"bagelhole-directory/internal/domains/review/model"
)

// =====================================================
// REVIEW STORE INTERFACE
// =====================================================

// ReviewStore is the durable key-value contract over three logical
// regions: per-restaurant approved reviews, the single global pending
// queue, and the moderator flag.
//
// Reads fail soft: absent keys and malformed blobs yield empty results
// so the display never blocks on storage. Writes replace whole
// collections (read-modify-write at the caller) and surface
// ErrStorageUnavailable on failure.
type ReviewStore interface {
	// ========================================
	// Approved reviews (per restaurant)
	// ========================================

	// GetApproved returns the approved reviews for a restaurant,
	// ordered as stored (most-recent-first by write convention).
	GetApproved(ctx context.Context, restaurantID string) []model.Review

	// PutApproved replaces the whole approved collection.
	PutApproved(ctx context.Context, restaurantID string, reviews []model.Review) error

	// ========================================
	// Pending queue (global)
	// ========================================

	// GetPending returns the full global pending queue.
	GetPending(ctx context.Context) []model.PendingReview

	// PutPending replaces the whole pending queue.
	PutPending(ctx context.Context, reviews []model.PendingReview) error

	// ========================================
	// Moderator flag
	// ========================================

	GetModeratorFlag(ctx context.Context) bool
	SetModeratorFlag(ctx context.Context, on bool) error
}
