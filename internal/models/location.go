package models

import (
	"time"

	"github.com/google/uuid"
)

// Location is a named place inside which attendance actions are accepted.
type Location struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Address   string    `db:"address"    json:"address"`
	Latitude  float64   `db:"latitude"   json:"latitude"`
	Longitude float64   `db:"longitude"  json:"longitude"`
	Radius    float64   `db:"radius"     json:"radius"`
	IsActive  bool      `db:"is_active"  json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

func (l Location) Center() Coordinates {
	return Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}

type NearbyLocation struct {
	Location Location `json:"location"`
	Distance float64  `json:"distance"`
}

const (
	AttendanceCheckIn  = "checkin"
	AttendanceCheckOut = "checkout"
)

type Attendance struct {
	ID         uuid.UUID  `db:"id"          json:"id"`
	EmployeeID uuid.UUID  `db:"employee_id" json:"employeeId"`
	Type       string     `db:"type"        json:"type"`
	DeviceID   uuid.UUID  `db:"device_id"   json:"deviceId"`
	LocationID *uuid.UUID `db:"location_id" json:"locationId,omitempty"`
	Latitude   *float64   `db:"latitude"    json:"latitude,omitempty"`
	Longitude  *float64   `db:"longitude"   json:"longitude,omitempty"`
	Distance   *float64   `db:"distance"    json:"distance,omitempty"`
	CreatedAt  time.Time  `db:"created_at"  json:"createdAt"`
}
