package app

import (
	"math"
	"strings"

	"flex_reviews/internal/domain"
)

// VisibleReviews is the public property-page predicate: listing match AND
// approved AND public. A public-but-unapproved review must never surface
// here regardless of what the moderation container holds.
func VisibleReviews(in []domain.Review, listingID string) []domain.Review {
	out := make([]domain.Review, 0, len(in))
	for _, r := range in {
		if r.ListingID == listingID && r.IsApproved && r.IsPublic {
			out = append(out, r)
		}
	}
	return out
}

// Filter carries the dashboard's staff-facing filter controls. Zero values
// mean "all".
type Filter struct {
	Rating  int // matches round(overallRating)
	Channel string
	Listing string
	Status  string // "approved" | "pending"
	Query   string // substring over content, guest name, listing name
}

func (f Filter) IsZero() bool {
	return f.Rating == 0 && f.Channel == "" && f.Listing == "" && f.Status == "" && f.Query == ""
}

// Apply narrows the aggregate sequence for the dashboard view. Order is
// preserved; the filter has no side effects.
func (f Filter) Apply(in []domain.Review) []domain.Review {
	if f.IsZero() {
		return in
	}
	q := strings.ToLower(f.Query)
	out := make([]domain.Review, 0, len(in))
	for _, r := range in {
		if f.Rating != 0 && int(math.Round(r.OverallRating)) != f.Rating {
			continue
		}
		if f.Channel != "" && string(r.Channel) != f.Channel {
			continue
		}
		if f.Listing != "" && r.ListingID != f.Listing {
			continue
		}
		if f.Status == "approved" && !r.IsApproved {
			continue
		}
		if f.Status == "pending" && r.IsApproved {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(r.Content), q) &&
			!strings.Contains(strings.ToLower(r.GuestName), q) &&
			!strings.Contains(strings.ToLower(r.ListingName), q) {
			continue
		}
		out = append(out, r)
	}
	return out
}
