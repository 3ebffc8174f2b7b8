package models

import "time"

// GPSPing defines a location report based on the 'gps_tracking' table
type GPSPing struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Accuracy  float64   `json:"accuracy" db:"accuracy"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	Activity  *string   `json:"activity,omitempty" db:"activity"` // arriving, departing, training
	Location  *string   `json:"location,omitempty" db:"location"` // academy, home, transit
}
