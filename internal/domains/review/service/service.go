package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/xid"

	catalogmodel "bagelhole-directory/internal/domains/catalog/model"
	"bagelhole-directory/internal/domains/review/model"
	"bagelhole-directory/internal/domains/review/repository"
	"bagelhole-directory/pkg/logger"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type reviewService struct {
	store  repository.ReviewStore
	images ImageNormalizer
	now    func() time.Time
}

func NewReviewService(
	store repository.ReviewStore,
	images ImageNormalizer,
) ServiceInterface {
	return &reviewService{
		store:  store,
		images: images,
		now:    time.Now,
	}
}

// =====================================================
// SUBMIT
// =====================================================

func (s *reviewService) Submit(ctx context.Context, req model.SubmitReviewRequest) (*model.PendingReview, error) {
	// Step 1: Validate request. Validation failures never touch
	// storage.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Build the pending record. Rating is clamped into [1,5],
	// photos into the cap, mirroring what the form enforces.
	photos := req.Photos
	if len(photos) > model.MaxPhotos {
		photos = photos[:model.MaxPhotos]
	}
	if photos == nil {
		photos = []string{}
	}

	pending := model.PendingReview{
		ID:           xid.New().String(),
		RestaurantID: req.RestaurantID,
		Name:         strings.TrimSpace(req.Name),
		Rating:       clampRating(req.Rating),
		Text:         strings.TrimSpace(req.Text),
		Photos:       photos,
		CreatedAt:    model.ToMillis(s.now()),
		Status:       model.StatusPending,
	}

	// Step 3: Prepend to the global queue (newest first) and persist.
	queue := s.store.GetPending(ctx)
	queue = append([]model.PendingReview{pending}, queue...)
	if err := s.store.PutPending(ctx, queue); err != nil {
		return nil, err
	}

	logger.Info("review submitted for moderation", map[string]interface{}{
		"pendingId":    pending.ID,
		"restaurantId": pending.RestaurantID,
	})

	return &pending, nil
}

// =====================================================
// PHOTO ATTACHMENT
// =====================================================

func (s *reviewService) AttachPhotos(current []string, files [][]byte) ([]string, []model.PhotoFailure) {
	out := append([]string(nil), current...)
	var failures []model.PhotoFailure

	for i, file := range files {
		if len(out) >= model.MaxPhotos {
			failures = append(failures, model.PhotoFailure{Index: i, Err: model.ErrTooManyPhotos})
			continue
		}

		encoded, err := s.images.Normalize(file)
		if err != nil {
			// One failure per offending file; the batch continues.
			failures = append(failures, model.PhotoFailure{Index: i, Err: err})
			continue
		}
		out = append(out, encoded)
	}

	return out, failures
}

// =====================================================
// MODERATION
// =====================================================

func (s *reviewService) ListPending(ctx context.Context) []model.PendingReview {
	queue := s.store.GetPending(ctx)
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].CreatedAt > queue[j].CreatedAt
	})
	return queue
}

func (s *reviewService) Approve(ctx context.Context, pendingID string) (*model.Review, error) {
	// Step 1: Locate the pending record. A vanished id (double
	// approval from another session) fails with NotFound.
	queue := s.store.GetPending(ctx)
	idx := -1
	for i := range queue {
		if queue[i].ID == pendingID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, model.NewPendingNotFoundError(pendingID)
	}
	pending := queue[idx]

	// Step 2: Remove from the queue and persist. The two writes below
	// are not transactional; a crash in between loses the review
	// rather than duplicating it.
	queue = append(queue[:idx], queue[idx+1:]...)
	if err := s.store.PutPending(ctx, queue); err != nil {
		return nil, err
	}

	// Step 3: Synthesize the approved record under a fresh identity
	// with a derived avatar, and prepend it to the restaurant's
	// collection.
	approved := model.Review{
		ID:           uuid.NewString(),
		RestaurantID: pending.RestaurantID,
		Name:         displayName(pending.Name),
		Avatar:       model.AvatarURL(pending.Name),
		Rating:       pending.Rating,
		Text:         pending.Text,
		Photos:       pending.Photos,
		CreatedAt:    pending.CreatedAt,
	}
	if approved.CreatedAt <= 0 {
		approved.CreatedAt = model.ToMillis(s.now())
	}

	collection := s.store.GetApproved(ctx, pending.RestaurantID)
	collection = append([]model.Review{approved}, collection...)
	if err := s.store.PutApproved(ctx, pending.RestaurantID, collection); err != nil {
		return nil, err
	}

	logger.Info("review approved", map[string]interface{}{
		"pendingId":    pendingID,
		"reviewId":     approved.ID,
		"restaurantId": approved.RestaurantID,
	})

	return &approved, nil
}

func (s *reviewService) Reject(ctx context.Context, pendingID string) error {
	queue := s.store.GetPending(ctx)
	out := queue[:0]
	for _, rv := range queue {
		if rv.ID != pendingID {
			out = append(out, rv)
		}
	}

	// Idempotent: rejecting an unknown id rewrites the queue as-is.
	return s.store.PutPending(ctx, out)
}

func (s *reviewService) PurgePending(ctx context.Context) error {
	return s.store.PutPending(ctx, []model.PendingReview{})
}

func (s *reviewService) ModeratorMode(ctx context.Context) bool {
	return s.store.GetModeratorFlag(ctx)
}

func (s *reviewService) SetModeratorMode(ctx context.Context, on bool) error {
	return s.store.SetModeratorFlag(ctx, on)
}

// =====================================================
// DISPLAY READS
// =====================================================

func (s *reviewService) DisplayReviews(ctx context.Context, restaurant *catalogmodel.Restaurant) []model.Review {
	if restaurant == nil {
		return []model.Review{}
	}

	now := s.now()
	out := make([]model.Review, 0, len(restaurant.SeedReviews))
	for _, seed := range restaurant.SeedReviews {
		out = append(out, model.FromSeed(seed, now))
	}

	return append(out, s.store.GetApproved(ctx, restaurant.ID)...)
}

func (s *reviewService) Summary(reviews []model.Review) model.RatingSummary {
	return Aggregate(reviews, ExcludeInvalid)
}

// =====================================================
// HELPERS
// =====================================================

func clampRating(r float64) float64 {
	if r < model.MinRating {
		return model.MinRating
	}
	if r > model.MaxRating {
		return model.MaxRating
	}
	return r
}

func displayName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.AnonymousName
	}
	return name
}
