package google

// Capability documents where the Google Reviews integration stands. It is
// informational metadata served next to the review stream, not part of it.
type Capability struct {
	IntegrationFeasible bool              `json:"integration_feasible"`
	Requirements        []string          `json:"requirements"`
	Limitations         []string          `json:"limitations"`
	Costs               map[string]string `json:"costs"`
	ImplementationNotes []string          `json:"implementation_notes"`
}

func Feasibility() Capability {
	return Capability{
		IntegrationFeasible: true,
		Requirements: []string{
			"Google Places API key required",
			"Need to identify Place IDs for each property",
			"Rate limits: 1000 requests per day (free tier)",
			"Reviews are read-only via API",
		},
		Limitations: []string{
			"Cannot filter reviews by date range",
			"Limited to most recent reviews",
			"No control over which reviews are shown",
			"Cannot modify or respond to reviews via API",
		},
		Costs: map[string]string{
			"places_api":     "$17 per 1000 requests after free tier",
			"places_details": "$17 per 1000 requests",
		},
		ImplementationNotes: []string{
			"Each property must be mapped to a Google Place ID",
			"Responses must be cached to stay inside API limits",
			"Consider the Google Business Profile API for more control",
		},
	}
}
