package service

import "moodmap/internal/domain/entity"

// MapView is everything a map needs from a discovery session: the visible
// places, the user's position and the selected place.
type MapView struct {
	User            *entity.Coordinates
	Mood            entity.MoodID
	Places          []*entity.Place
	SelectedPlaceID string
}

// MapRenderer turns a MapView into a document a map widget can draw.
type MapRenderer interface {
	// ContentType of the rendered document
	ContentType() string

	Render(view MapView) ([]byte, error)
}
