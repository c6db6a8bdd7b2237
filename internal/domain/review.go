package domain

type ReviewType string

const (
	TypeHostToGuest ReviewType = "host-to-guest"
	TypeGuestToHost ReviewType = "guest-to-host"
)

type ReviewStatus string

const (
	StatusPublished ReviewStatus = "published"
	StatusDraft     ReviewStatus = "draft"
	StatusHidden    ReviewStatus = "hidden"
)

type Channel string

const (
	ChannelHostaway Channel = "hostaway"
	ChannelAirbnb   Channel = "airbnb"
	ChannelBooking  Channel = "booking"
	ChannelGoogle   Channel = "google"
)

// CategoryRating keeps the source channel's 0-10 scale; only the overall
// rating is normalized to 0-5.
type CategoryRating struct {
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
}

// Review is the canonical shape every channel is mapped into. IDs are only
// unique within a channel's own id space.
type Review struct {
	ID            int64            `json:"id"`
	Type          ReviewType       `json:"type"`
	Status        ReviewStatus     `json:"status"`
	OverallRating float64          `json:"overallRating"`
	Content       string           `json:"content"`
	Categories    []CategoryRating `json:"categories"`
	SubmittedAt   string           `json:"submittedAt"`
	GuestName     string           `json:"guestName"`
	ListingName   string           `json:"listingName"`
	ListingID     string           `json:"listingId"`
	Channel       Channel          `json:"channel"`
	IsApproved    bool             `json:"isApproved"`
	IsPublic      bool             `json:"isPublic"`
}

// HostawayReview is the primary channel's native record.
type HostawayReview struct {
	ID             int64            `json:"id"`
	Type           string           `json:"type"`
	Status         string           `json:"status"`
	Rating         *float64         `json:"rating"`
	PublicReview   string           `json:"publicReview"`
	ReviewCategory []CategoryRating `json:"reviewCategory"`
	SubmittedAt    string           `json:"submittedAt"`
	GuestName      string           `json:"guestName"`
	ListingName    string           `json:"listingName"`
}

// GoogleReview is a Places-style review record. It carries no listing
// reference and no category breakdown.
type GoogleReview struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
	Time       int64   `json:"time"`
}

// ListingRef is one entry of the operator-configured listing map used to
// assign listing-less channel records to properties.
type ListingRef struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}
