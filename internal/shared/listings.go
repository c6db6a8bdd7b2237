package shared

import "flex_reviews/internal/domain"

// ListingRotation is the operator-maintained listing map used to assign
// reviews from channels that carry no listing reference (see the Google
// channel). Assignment is positional round-robin over this list, which is a
// placeholder policy until a real identity join exists.
var ListingRotation = []domain.ListingRef{
	{Name: "2B N1 A - 29 Shoreditch Heights", ID: "2b-n1-a-29-shoreditch-heights"},
	{Name: "1B S2 B - 15 Camden Lock View", ID: "1b-s2-b-15-camden-lock-view"},
}
