package model

import "time"

// GeocodeLabelModel is the GORM-specific struct for the 'geocode_labels' table.
// Coordinates are stored as integers scaled by 1e5 (about 1.1 m at the equator).
type GeocodeLabelModel struct {
	LatE5     int64  `gorm:"primaryKey;autoIncrement:false"`
	LngE5     int64  `gorm:"primaryKey;autoIncrement:false"`
	Label     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeocodeLabelModel) TableName() string {
	return "geocode_labels"
}
