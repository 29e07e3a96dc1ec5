package google

import (
	"slices"
	"strings"

	"moodmap/internal/domain/entity"
)

// toPlace maps a nearby-search record into the internal schema.
func toPlace(r placeResult) *entity.Place {
	return normalizePlace(r, r.Vicinity)
}

// toPlaceDetails maps a details record, which addresses by formatted_address.
func toPlaceDetails(r placeResult) *entity.PlaceDetails {
	details := &entity.PlaceDetails{
		Place:                *normalizePlace(r, r.FormattedAddress),
		FormattedPhoneNumber: r.FormattedPhoneNumber,
		Website:              r.Website,
		URL:                  r.URL,
	}

	if len(r.Reviews) > 0 {
		details.Reviews = make([]entity.Review, 0, len(r.Reviews))
		for _, review := range r.Reviews {
			details.Reviews = append(details.Reviews, entity.Review{
				AuthorName:              review.AuthorName,
				Rating:                  review.Rating,
				Text:                    review.Text,
				RelativeTimeDescription: review.RelativeTimeDescription,
			})
		}
	}

	return details
}

func normalizePlace(r placeResult, address string) *entity.Place {
	place := &entity.Place{
		PlaceID: r.PlaceID,
		Name:    r.Name,
		Address: address,
		Types:   slices.Clone(r.Types),
		Geometry: entity.Geometry{
			Location: entity.Coordinates{
				Lat: r.Geometry.Location.Lat,
				Lng: r.Geometry.Location.Lng,
			},
		},
	}
	if place.Types == nil {
		place.Types = []string{}
	}

	if r.Rating != nil {
		place.Rating = *r.Rating
	}
	if r.UserRatingsTotal != nil {
		place.UserRatingsTotal = *r.UserRatingsTotal
	}
	if r.PriceLevel != nil {
		level := *r.PriceLevel
		place.PriceLevel = &level
	}

	if len(r.Photos) > 0 {
		place.Photos = make([]entity.PlacePhoto, 0, len(r.Photos))
		for _, photo := range r.Photos {
			place.Photos = append(place.Photos, entity.PlacePhoto{
				PhotoReference: photo.PhotoReference,
				Width:          photo.Width,
				Height:         photo.Height,
			})
		}
	}

	if r.OpeningHours != nil {
		place.OpeningHours = &entity.OpeningHours{
			OpenNow:     r.OpeningHours.OpenNow,
			WeekdayText: slices.Clone(r.OpeningHours.WeekdayText),
		}
	}

	return place
}

// addressLabel picks the shortest useful label from the first geocode result:
// neighborhood (or sublocality) plus locality, else the formatted address.
func addressLabel(results []geocodeResult) string {
	if len(results) == 0 {
		return ""
	}

	first := results[0]
	neighborhood := findComponent(first.AddressComponents, "neighborhood")
	sublocality := findComponent(first.AddressComponents, "sublocality")
	locality := findComponent(first.AddressComponents, "locality")

	parts := make([]string, 0, 2)
	switch {
	case neighborhood != "":
		parts = append(parts, neighborhood)
	case sublocality != "":
		parts = append(parts, sublocality)
	}
	if locality != "" {
		parts = append(parts, locality)
	}

	if len(parts) == 0 {
		return first.FormattedAddress
	}

	return strings.Join(parts, ", ")
}

func findComponent(components []addressComponent, componentType string) string {
	for _, c := range components {
		if slices.Contains(c.Types, componentType) {
			return c.LongName
		}
	}

	return ""
}
