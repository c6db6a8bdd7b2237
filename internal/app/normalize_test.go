package app_test

import (
	"testing"

	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestOverallFromCategories(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"all tens", []float64{10, 10, 10}, 5},
		{"mixed", []float64{9, 8, 10}, 4.5},
		{"single", []float64{7}, 3.5},
		{"half rounds up", []float64{9, 10}, 4.8}, // mean 9.5 -> 4.75 -> 4.8
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cats := make([]domain.CategoryRating, 0, len(tc.in))
			for _, r := range tc.in {
				cats = append(cats, domain.CategoryRating{Category: "cleanliness", Rating: r})
			}
			if got := app.OverallFromCategories(cats); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSlugifyListing(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2B N1 A - 29 Shoreditch Heights", "2b-n1-a-29-shoreditch-heights"},
		{"2B  N1   A - 29 Shoreditch Heights", "2b-n1-a-29-shoreditch-heights"}, // whitespace runs collapse
		{"A--B C", "a-b-c"},
		{" 1B S2 B - 15 Camden Lock View", "-1b-s2-b-15-camden-lock-view"}, // leading whitespace keeps its dash
		{"Trailing ", "trailing-"},
	}
	for _, tc := range cases {
		if got := app.SlugifyListing(tc.in); got != tc.want {
			t.Fatalf("SlugifyListing(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeHostaway(t *testing.T) {
	in := []domain.HostawayReview{
		{
			ID:     1,
			Type:   "guest-to-host",
			Status: "published",
			Rating: ptr(4.5),
			ReviewCategory: []domain.CategoryRating{
				{Category: "cleanliness", Rating: 2}, // must be ignored: explicit rating wins
			},
			PublicReview: "Great stay",
			SubmittedAt:  "2021-03-14 09:12:33",
			GuestName:    "Maria",
			ListingName:  "2B N1 A - 29 Shoreditch Heights",
		},
		{
			ID:     2,
			Type:   "host-to-guest",
			Status: "draft",
			Rating: nil,
			ReviewCategory: []domain.CategoryRating{
				{Category: "communication", Rating: 9},
				{Category: "cleanliness", Rating: 8},
			},
			ListingName: "1B S2 B - 15 Camden Lock View",
		},
		{
			ID:          3,
			Type:        "guest-to-host",
			Status:      "hidden",
			ListingName: "1B S2 B - 15 Camden Lock View",
		},
	}

	out := app.NormalizeHostaway(in)
	if len(out) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(out))
	}

	if out[0].OverallRating != 4.5 {
		t.Fatalf("explicit rating should pass through, got %v", out[0].OverallRating)
	}
	if !out[0].IsApproved || !out[0].IsPublic {
		t.Fatalf("published review should initialize approved+public, got %+v", out[0])
	}
	if out[0].ListingID != "2b-n1-a-29-shoreditch-heights" {
		t.Fatalf("listingId = %q", out[0].ListingID)
	}
	if out[0].Channel != domain.ChannelHostaway {
		t.Fatalf("channel = %q", out[0].Channel)
	}

	// mean(9,8)=8.5 -> /2 = 4.25 -> 4.3
	if out[1].OverallRating != 4.3 {
		t.Fatalf("derived rating = %v, want 4.3", out[1].OverallRating)
	}
	if out[1].IsApproved || out[1].IsPublic {
		t.Fatalf("draft review must not initialize approved/public")
	}
	if out[1].Type != domain.TypeHostToGuest {
		t.Fatalf("type = %q", out[1].Type)
	}

	if out[2].OverallRating != 0 {
		t.Fatalf("no rating and no categories should yield 0, got %v", out[2].OverallRating)
	}
	if out[2].Categories == nil || len(out[2].Categories) != 0 {
		t.Fatalf("absent categories should map to empty sequence, got %#v", out[2].Categories)
	}
}

func TestNormalizeGoogle(t *testing.T) {
	rotation := []domain.ListingRef{
		{Name: "2B N1 A - 29 Shoreditch Heights", ID: "2b-n1-a-29-shoreditch-heights"},
		{Name: "1B S2 B - 15 Camden Lock View", ID: "1b-s2-b-15-camden-lock-view"},
	}
	in := []domain.GoogleReview{
		{AuthorName: "James", Rating: 5, Text: "Great", Time: 1652097600},
		{AuthorName: "Sophie", Rating: 4, Text: "Good", Time: 1655776800},
		{AuthorName: "Ahmed", Rating: 3, Text: "OK", Time: 1660053600},
	}

	out := app.NormalizeGoogle(in, rotation)
	if len(out) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(out))
	}

	// positional round-robin over the rotation
	if out[0].ListingID != rotation[0].ID || out[1].ListingID != rotation[1].ID || out[2].ListingID != rotation[0].ID {
		t.Fatalf("round-robin broken: %s %s %s", out[0].ListingID, out[1].ListingID, out[2].ListingID)
	}

	for i, r := range out {
		if r.Type != domain.TypeGuestToHost {
			t.Fatalf("review %d: type = %q", i, r.Type)
		}
		if !r.IsApproved || !r.IsPublic {
			t.Fatalf("review %d: google reviews default to visible", i)
		}
		if len(r.Categories) != 0 {
			t.Fatalf("review %d: google reviews carry no categories", i)
		}
		if r.Channel != domain.ChannelGoogle {
			t.Fatalf("review %d: channel = %q", i, r.Channel)
		}
	}

	if out[0].SubmittedAt != "2022-05-09T12:00:00Z" {
		t.Fatalf("epoch conversion: got %q", out[0].SubmittedAt)
	}
	if out[0].OverallRating != 5 {
		t.Fatalf("google rating passes through unchanged, got %v", out[0].OverallRating)
	}
	if out[0].ID == out[1].ID {
		t.Fatalf("synthesized ids must differ")
	}

	if got := app.NormalizeGoogle(in, nil); len(got) != 0 {
		t.Fatalf("empty rotation should yield no assignments, got %d", len(got))
	}
}
