package entity

// PlacePhoto references an upstream photo that can be fetched through the photo proxy.
type PlacePhoto struct {
	PhotoReference string `json:"photoReference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

// OpeningHours is only present when the upstream sent hours data at all.
type OpeningHours struct {
	OpenNow     bool     `json:"openNow"`
	WeekdayText []string `json:"weekdayText,omitempty"`
}

// Geometry wraps the place location the same way the upstream does.
type Geometry struct {
	Location Coordinates `json:"location"`
}

// Place is the normalized place record used everywhere past the upstream gateway.
type Place struct {
	PlaceID          string        `json:"placeId"`
	Name             string        `json:"name"`
	Address          string        `json:"address"`
	Rating           float64       `json:"rating"`
	UserRatingsTotal int           `json:"userRatingsTotal"`
	PriceLevel       *int          `json:"priceLevel,omitempty"` // nil means unknown; 0 is a real tier
	Types            []string      `json:"types"`
	Photos           []PlacePhoto  `json:"photos,omitempty"`
	OpeningHours     *OpeningHours `json:"openingHours,omitempty"`
	Geometry         Geometry      `json:"geometry"`

	// Distance from the searching user in meters, set by enrichment only.
	Distance *float64 `json:"distance,omitempty"`
}

// IsOpenNow is false when the place carries no hours data.
func (p *Place) IsOpenNow() bool {
	return p.OpeningHours != nil && p.OpeningHours.OpenNow
}

// WithDistance returns a copy of p annotated with the given distance.
// The receiver is left untouched so result sets are never mutated in place.
func (p *Place) WithDistance(meters float64) *Place {
	clone := *p
	clone.Distance = &meters

	return &clone
}

// Review is a single upstream review attached to place details.
type Review struct {
	AuthorName              string  `json:"authorName"`
	Rating                  float64 `json:"rating"`
	Text                    string  `json:"text"`
	RelativeTimeDescription string  `json:"relativeTimeDescription"`
}

// PlaceDetails extends Place with contact information and reviews.
type PlaceDetails struct {
	Place

	FormattedPhoneNumber string   `json:"formattedPhoneNumber,omitempty"`
	Website              string   `json:"website,omitempty"`
	URL                  string   `json:"url,omitempty"`
	Reviews              []Review `json:"reviews,omitempty"`
}

// PhotoImage is a binary photo passed through from the upstream.
type PhotoImage struct {
	ContentType string
	Data        []byte
}
