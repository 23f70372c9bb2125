package service

import (
	"context"

	catalogmodel "bagelhole-directory/internal/domains/catalog/model"
	"bagelhole-directory/internal/domains/review/model"
)

// =====================================================
// REVIEW SERVICE INTERFACE
// =====================================================

// ImageNormalizer bounds a raw uploaded image into a storage-safe
// encoded string. Implemented by the infrastructure image processor.
type ImageNormalizer interface {
	Normalize(data []byte) (string, error)
}

type ServiceInterface interface {
	// ========================================
	// Submission
	// ========================================

	// Submit validates a submission and appends it to the global
	// pending queue, newest first. A *model.ValidationError names the
	// first failing field; nothing is written on failure.
	Submit(ctx context.Context, req model.SubmitReviewRequest) (*model.PendingReview, error)

	// AttachPhotos normalizes a batch of raw images onto current,
	// honoring the photo cap. Failures are reported per file and never
	// abort the batch or discard already-accepted photos.
	AttachPhotos(current []string, files [][]byte) ([]string, []model.PhotoFailure)

	// ========================================
	// Moderation
	// ========================================

	// ListPending returns the global pending queue, newest first.
	ListPending(ctx context.Context) []model.PendingReview

	// Approve moves a pending review into its restaurant's approved
	// collection under a fresh identity. Missing ids fail with
	// ErrPendingNotFound.
	Approve(ctx context.Context, pendingID string) (*model.Review, error)

	// Reject drops a pending review. Unknown ids are a silent no-op.
	Reject(ctx context.Context, pendingID string) error

	// PurgePending empties the whole pending queue.
	PurgePending(ctx context.Context) error

	// ModeratorMode / SetModeratorMode toggle the local moderation
	// panel. A convenience flag, not a security boundary.
	ModeratorMode(ctx context.Context) bool
	SetModeratorMode(ctx context.Context, on bool) error

	// ========================================
	// Display reads
	// ========================================

	// DisplayReviews returns seed reviews followed by the approved
	// collection, normalized, before any presentation sort/filter.
	DisplayReviews(ctx context.Context, restaurant *catalogmodel.Restaurant) []model.Review

	// Summary aggregates a review set with the default policy.
	Summary(reviews []model.Review) model.RatingSummary
}
