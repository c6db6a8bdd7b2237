package app

import (
	"math"
	"regexp"
	"strings"
	"time"

	"flex_reviews/internal/domain"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	dashRun       = regexp.MustCompile(`-+`)
)

// googleIDBase keeps synthesized ids for listing-less channels out of the
// low range typical upstream ids occupy. Canonical ids are still only unique
// per channel, so collisions across channels remain possible.
const googleIDBase = 9_000_000_000

// round1 rounds to one decimal place, half away from zero.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// SlugifyListing derives the cross-channel join key from a listing name:
// whitespace runs become a single dash, dash runs collapse, then lowercase.
// Leading/trailing whitespace yields leading/trailing dashes; that is the
// upstream's established behavior and callers depend on it staying stable.
func SlugifyListing(name string) string {
	s := whitespaceRun.ReplaceAllString(name, "-")
	s = dashRun.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// OverallFromCategories converts a 0-10 category breakdown into the 0-5
// overall scale: mean of the categories, halved, rounded to one decimal.
// No categories means no rating, expressed as 0.
func OverallFromCategories(cats []domain.CategoryRating) float64 {
	if len(cats) == 0 {
		return 0
	}
	var sum float64
	for _, c := range cats {
		sum += c.Rating
	}
	avg := sum / float64(len(cats))
	return round1(avg / 2)
}

// NormalizeHostaway maps primary-channel records into canonical reviews.
// An explicit rating is already on the 0-5 scale and wins over the category
// derivation. Moderation flags initialize to mirror the source publish state.
func NormalizeHostaway(in []domain.HostawayReview) []domain.Review {
	out := make([]domain.Review, 0, len(in))
	for _, r := range in {
		overall := 0.0
		if r.Rating != nil {
			overall = *r.Rating
		} else {
			overall = OverallFromCategories(r.ReviewCategory)
		}

		cats := r.ReviewCategory
		if cats == nil {
			cats = []domain.CategoryRating{}
		}

		published := r.Status == string(domain.StatusPublished)
		out = append(out, domain.Review{
			ID:            r.ID,
			Type:          domain.ReviewType(r.Type),
			Status:        domain.ReviewStatus(r.Status),
			OverallRating: overall,
			Content:       r.PublicReview,
			Categories:    cats,
			SubmittedAt:   r.SubmittedAt,
			GuestName:     r.GuestName,
			ListingName:   r.ListingName,
			ListingID:     SlugifyListing(r.ListingName),
			Channel:       domain.ChannelHostaway,
			IsApproved:    published,
			IsPublic:      published,
		})
	}
	return out
}

// NormalizeGoogle maps aggregator-channel records into canonical reviews.
// The source carries no listing reference, so records are spread round-robin
// over the operator listing map by input position; callers must not treat
// that assignment as authoritative.
func NormalizeGoogle(in []domain.GoogleReview, rotation []domain.ListingRef) []domain.Review {
	out := make([]domain.Review, 0, len(in))
	if len(rotation) == 0 {
		return out
	}
	for i, r := range in {
		listing := rotation[i%len(rotation)]
		out = append(out, domain.Review{
			ID:            googleIDBase + int64(i) + 1,
			Type:          domain.TypeGuestToHost,
			Status:        domain.StatusPublished,
			OverallRating: r.Rating,
			Content:       r.Text,
			Categories:    []domain.CategoryRating{},
			SubmittedAt:   time.Unix(r.Time, 0).UTC().Format(time.RFC3339),
			GuestName:     r.AuthorName,
			ListingName:   listing.Name,
			ListingID:     listing.ID,
			Channel:       domain.ChannelGoogle,
			IsApproved:    true,
			IsPublic:      true,
		})
	}
	return out
}
