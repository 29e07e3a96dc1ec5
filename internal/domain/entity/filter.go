package entity

import (
	"cmp"
	"slices"
)

// SortBy selects the ordering of the visible place list.
type SortBy string

const (
	SortByDistance SortBy = "distance"
	SortByRating   SortBy = "rating"
	SortByReviews  SortBy = "reviews"
)

// DefaultMaxDistance is the default distance threshold in meters.
const DefaultMaxDistance = 5000

// IsValid reports whether s is a known sort key.
func (s SortBy) IsValid() bool {
	switch s {
	case SortByDistance, SortByRating, SortByReviews:
		return true
	default:
		return false
	}
}

// FilterState is the user-adjustable view over a result set.
type FilterState struct {
	SortBy      SortBy  `json:"sortBy"`
	MaxDistance float64 `json:"maxDistance"`
	MinRating   float64 `json:"minRating"`
	OpenNow     bool    `json:"openNow"`
}

// DefaultFilterState returns the filters applied when a session starts.
func DefaultFilterState() FilterState {
	return FilterState{
		SortBy:      SortByDistance,
		MaxDistance: DefaultMaxDistance,
		MinRating:   0,
		OpenNow:     false,
	}
}

// Keep reports whether place passes every filter rule.
// A place without a computed distance is never dropped by the distance rule.
func (f FilterState) Keep(place *Place) bool {
	if place == nil {
		return false
	}
	if f.OpenNow && !place.IsOpenNow() {
		return false
	}
	if place.Distance != nil && *place.Distance > f.MaxDistance {
		return false
	}

	return place.Rating >= f.MinRating
}

// Apply derives the visible list. The input slice and its places are not modified.
func (f FilterState) Apply(places []*Place) []*Place {
	visible := make([]*Place, 0, len(places))
	for _, place := range places {
		if f.Keep(place) {
			visible = append(visible, place)
		}
	}

	slices.SortStableFunc(visible, f.compare)

	return visible
}

func (f FilterState) compare(a, b *Place) int {
	switch f.SortBy {
	case SortByRating:
		return cmp.Compare(b.Rating, a.Rating)
	case SortByReviews:
		return cmp.Compare(b.UserRatingsTotal, a.UserRatingsTotal)
	default:
		return compareDistance(a, b)
	}
}

// compareDistance orders ascending and puts places without a distance last.
func compareDistance(a, b *Place) int {
	switch {
	case a.Distance == nil && b.Distance == nil:
		return 0
	case a.Distance == nil:
		return 1
	case b.Distance == nil:
		return -1
	default:
		return cmp.Compare(*a.Distance, *b.Distance)
	}
}
