package model

import (
	"net/url"
	"strings"
	"time"

	"github.com/rs/xid"

	catalogmodel "bagelhole-directory/internal/domains/catalog/model"
)

// Review is the central entity: a visible (seed or approved) review.
// The JSON layout matches the stored blob format, camelCase keys and
// epoch-millisecond timestamps.
type Review struct {
	ID           string   `json:"id"`
	RestaurantID string   `json:"restaurantId,omitempty"` // empty for seed reviews
	Name         string   `json:"name"`
	Avatar       string   `json:"avatar"`
	Rating       float64  `json:"rating"`
	Text         string   `json:"text"`
	Photos       []string `json:"photos"`
	CreatedAt    Millis   `json:"createdAt"`
}

// PendingReview is a submission waiting in the global moderation queue.
type PendingReview struct {
	ID           string   `json:"id"`
	RestaurantID string   `json:"restaurantId"`
	Name         string   `json:"name"`
	Rating       float64  `json:"rating"`
	Text         string   `json:"text"`
	Photos       []string `json:"photos"`
	CreatedAt    Millis   `json:"createdAt"`
	Status       string   `json:"status"` // always StatusPending
}

// ValidRating reports whether r lies in the accepted [1,5] domain.
func ValidRating(r float64) bool {
	return r >= MinRating && r <= MaxRating
}

// =====================================================
// VALIDATED CONSTRUCTION
// =====================================================
// Stored blobs and catalog seeds are loosely typed; everything entering
// the display path goes through one of these normalizers first.

// NormalizeStored validates a review read from the local store. Entries
// with a rating outside [1,5] are rejected; the rest get their defaults
// filled in.
func NormalizeStored(rv Review, now time.Time) (Review, bool) {
	if !ValidRating(rv.Rating) {
		return Review{}, false
	}
	if rv.CreatedAt <= 0 {
		rv.CreatedAt = ToMillis(now)
	}
	if rv.ID == "" {
		rv.ID = "user-" + xid.New().String()
	}
	if rv.Name == "" {
		rv.Name = AnonymousName
	}
	rv.Text = strings.TrimSpace(rv.Text)
	if rv.Photos == nil {
		rv.Photos = []string{}
	}
	return rv, true
}

// FromSeed converts a catalog seed review. Seeds are kept even when the
// rating is out of domain; the aggregation policy decides what to do
// with them.
func FromSeed(seed catalogmodel.SeedReview, now time.Time) Review {
	createdAt := ParseAuthoredTime(seed.CreatedAt)
	if createdAt <= 0 {
		createdAt = ToMillis(now)
	}

	id := seed.ID
	if id == "" {
		id = "seed_" + xid.New().String()
	}

	name := seed.Name
	if name == "" {
		name = AnonymousName
	}

	photos := seed.Photos
	if photos == nil {
		photos = []string{}
	}

	return Review{
		ID:        id,
		Name:      name,
		Avatar:    seed.Avatar,
		Rating:    seed.Rating,
		Text:      seed.Text,
		Photos:    photos,
		CreatedAt: createdAt,
	}
}

// AvatarURL derives a deterministic placeholder avatar from the display
// name.
func AvatarURL(name string) string {
	seed := strings.ToLower(strings.TrimSpace(name))
	if seed == "" {
		seed = DefaultAvatarSeed
	}
	return "https://api.dicebear.com/9.x/thumbs/svg?seed=" + url.QueryEscape(seed)
}
