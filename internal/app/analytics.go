package app

import (
	"strconv"

	"flex_reviews/internal/domain"
)

// Analyze computes the aggregate statistics for one concatenated review
// sequence in a single pass. Per-property running averages are re-rounded
// after every increment, matching what the dashboard displays mid-stream.
func Analyze(reviews []domain.Review) domain.Analytics {
	a := domain.Analytics{
		TotalReviews:       len(reviews),
		RatingDistribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0},
		ByProperty:         map[string]*domain.PropertyStats{},
	}

	var sum float64
	for _, r := range reviews {
		sum += r.OverallRating

		if b := bucket(r.OverallRating); b != 0 {
			a.RatingDistribution[strconv.Itoa(b)]++
		}

		ps, ok := a.ByProperty[r.ListingID]
		if !ok {
			ps = &domain.PropertyStats{Name: r.ListingName}
			a.ByProperty[r.ListingID] = ps
		}
		ps.Count++
		ps.TotalRating += r.OverallRating
		ps.AvgRating = round1(ps.TotalRating / float64(ps.Count))
	}

	if len(reviews) > 0 {
		a.AvgRating = round1(sum / float64(len(reviews)))
	}
	return a
}

// bucket places a 0-5 rating into the distribution histogram. Bucket n holds
// [n, n+1) except bucket 5, which holds only an exact 5. Ratings below 1
// fall outside every bucket. These boundaries are load-bearing for the
// dashboard; do not "fix" them.
func bucket(rating float64) int {
	switch {
	case rating == 5:
		return 5
	case rating >= 4 && rating < 5:
		return 4
	case rating >= 3 && rating < 4:
		return 3
	case rating >= 2 && rating < 3:
		return 2
	case rating >= 1 && rating < 2:
		return 1
	default:
		return 0
	}
}
