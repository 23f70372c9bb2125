package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bagelhole-directory/internal/domains/review/model"
	"bagelhole-directory/internal/infrastructure/database"
	"bagelhole-directory/pkg/logger"
)

// =====================================================
// LOCAL STORE IMPLEMENTATION
// =====================================================

// Versioned key namespace. Bumping the version abandons old blobs
// instead of migrating them, which keeps schema evolution
// non-destructive.
const (
	reviewKeyVersion = "v2"
	pendingKey       = "bagelhole_pending_reviews_v1"
	moderatorFlagKey = "bagelhole_mod_mode"
)

func approvedKey(restaurantID string) string {
	return fmt.Sprintf("bagelhole_reviews_%s_%s", reviewKeyVersion, restaurantID)
}

type localReviewStore struct {
	store *database.LocalStore
	now   func() time.Time
}

func NewLocalReviewStore(store *database.LocalStore) ReviewStore {
	return &localReviewStore{
		store: store,
		now:   time.Now,
	}
}

// ========================================
// Approved reviews
// ========================================

func (r *localReviewStore) GetApproved(ctx context.Context, restaurantID string) []model.Review {
	raw, ok := r.read(ctx, approvedKey(restaurantID))
	if !ok {
		return []model.Review{}
	}

	// Decode entry by entry so one mangled record does not take the
	// whole collection down with it.
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logger.Warn("approved blob is not an array, treating as empty", err)
		return []model.Review{}
	}

	now := r.now()
	out := make([]model.Review, 0, len(entries))
	for _, entry := range entries {
		var rv model.Review
		if err := json.Unmarshal(entry, &rv); err != nil {
			continue
		}
		normalized, ok := model.NormalizeStored(rv, now)
		if !ok {
			continue
		}
		normalized.RestaurantID = restaurantID
		out = append(out, normalized)
	}
	return out
}

func (r *localReviewStore) PutApproved(ctx context.Context, restaurantID string, reviews []model.Review) error {
	return r.write(ctx, approvedKey(restaurantID), reviews)
}

// ========================================
// Pending queue
// ========================================

func (r *localReviewStore) GetPending(ctx context.Context) []model.PendingReview {
	raw, ok := r.read(ctx, pendingKey)
	if !ok {
		return []model.PendingReview{}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logger.Warn("pending blob is not an array, treating as empty", err)
		return []model.PendingReview{}
	}

	out := make([]model.PendingReview, 0, len(entries))
	for _, entry := range entries {
		var rv model.PendingReview
		if err := json.Unmarshal(entry, &rv); err != nil {
			continue
		}
		if rv.ID == "" {
			continue
		}
		if rv.Photos == nil {
			rv.Photos = []string{}
		}
		rv.Status = model.StatusPending
		out = append(out, rv)
	}
	return out
}

func (r *localReviewStore) PutPending(ctx context.Context, reviews []model.PendingReview) error {
	return r.write(ctx, pendingKey, reviews)
}

// ========================================
// Moderator flag
// ========================================

func (r *localReviewStore) GetModeratorFlag(ctx context.Context) bool {
	raw, ok := r.read(ctx, moderatorFlagKey)
	return ok && raw == "1"
}

func (r *localReviewStore) SetModeratorFlag(ctx context.Context, on bool) error {
	value := "0"
	if on {
		value = "1"
	}
	if err := r.store.Put(ctx, moderatorFlagKey, value); err != nil {
		return model.NewStorageUnavailableError(err)
	}
	return nil
}

// ========================================
// Helpers
// ========================================

// read fetches one key, degrading to absent on any storage error.
func (r *localReviewStore) read(ctx context.Context, key string) (string, bool) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		logger.Warn("local store read failed, degrading to empty", err)
		return "", false
	}
	return raw, ok
}

func (r *localReviewStore) write(ctx context.Context, key string, v interface{}) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return model.NewStorageUnavailableError(err)
	}
	if err := r.store.Put(ctx, key, string(blob)); err != nil {
		return model.NewStorageUnavailableError(err)
	}
	return nil
}
