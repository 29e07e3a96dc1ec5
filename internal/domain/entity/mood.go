package entity

import "slices"

// MoodID names a user intent that maps onto fixed upstream search parameters.
type MoodID string

const (
	MoodWork      MoodID = "work"
	MoodDate      MoodID = "date"
	MoodQuickBite MoodID = "quick-bite"
	MoodBudget    MoodID = "budget"
)

// FallbackMoodColor is used for markers when no mood color applies.
const FallbackMoodColor = "#8b5cf6"

// PriceRange bounds the upstream price tier, inclusive on both ends.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Mood is an immutable catalog entry.
type Mood struct {
	ID          MoodID      `json:"id"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
	Types       []string    `json:"types"`
	Keywords    []string    `json:"keywords"`
	Color       string      `json:"color"`
	PriceRange  *PriceRange `json:"priceRange,omitempty"`
}

// PrimaryType is the upstream category used for nearby searches.
func (m Mood) PrimaryType() string {
	if len(m.Types) == 0 {
		return ""
	}

	return m.Types[0]
}

// PrimaryKeyword is the free-text keyword used for nearby searches.
func (m Mood) PrimaryKeyword() string {
	if len(m.Keywords) == 0 {
		return ""
	}

	return m.Keywords[0]
}

var moodOrder = []MoodID{MoodWork, MoodDate, MoodQuickBite, MoodBudget}

var moodCatalog = map[MoodID]Mood{
	MoodWork: {
		ID:          MoodWork,
		Label:       "Work Mode",
		Description: "Quiet spots with wifi for productivity",
		Types:       []string{"cafe", "library"},
		Keywords:    []string{"wifi", "quiet", "workspace"},
		Color:       "#00d4ff",
	},
	MoodDate: {
		ID:          MoodDate,
		Label:       "Date Night",
		Description: "Romantic spots with great ambiance",
		Types:       []string{"restaurant", "bar"},
		Keywords:    []string{"romantic", "ambiance", "dinner"},
		Color:       "#ff1493",
	},
	MoodQuickBite: {
		ID:          MoodQuickBite,
		Label:       "Quick Bite",
		Description: "Fast, tasty options when time is short",
		Types:       []string{"restaurant", "meal_takeaway"},
		Keywords:    []string{"fast", "takeout", "quick"},
		Color:       "#ffd700",
	},
	MoodBudget: {
		ID:          MoodBudget,
		Label:       "Budget Friendly",
		Description: "Great food that won't break the bank",
		Types:       []string{"restaurant", "cafe"},
		Keywords:    []string{"cheap", "affordable", "budget"},
		Color:       "#00ff88",
		PriceRange:  &PriceRange{Min: 1, Max: 2},
	},
}

// IsValid reports whether id is part of the catalog.
func (id MoodID) IsValid() bool {
	_, ok := moodCatalog[id]

	return ok
}

// LookupMood returns a copy of the catalog entry so callers cannot alter the catalog.
func LookupMood(id MoodID) (Mood, bool) {
	mood, ok := moodCatalog[id]
	if !ok {
		return Mood{}, false
	}

	return cloneMood(mood), true
}

// Moods lists the catalog in display order.
func Moods() []Mood {
	moods := make([]Mood, 0, len(moodOrder))
	for _, id := range moodOrder {
		moods = append(moods, cloneMood(moodCatalog[id]))
	}

	return moods
}

// MoodColor returns the accent color for id, or FallbackMoodColor.
func MoodColor(id MoodID) string {
	if mood, ok := moodCatalog[id]; ok {
		return mood.Color
	}

	return FallbackMoodColor
}

func cloneMood(m Mood) Mood {
	m.Types = slices.Clone(m.Types)
	m.Keywords = slices.Clone(m.Keywords)
	if m.PriceRange != nil {
		pr := *m.PriceRange
		m.PriceRange = &pr
	}

	return m
}
