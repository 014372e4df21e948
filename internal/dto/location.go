package dto

import (
	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/google/uuid"
)

type CreateLocationRequest struct {
	Name      string  `json:"name"      validate:"required"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"  validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Radius    float64 `json:"radius"    validate:"gt=0"`
}

type CreateLocationResponse struct {
	ID uuid.UUID `json:"id"`
}

type PositionRequest struct {
	Latitude  *float64 `json:"latitude"  validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

func (p PositionRequest) Coordinates() md.Coordinates {
	return md.Coordinates{Latitude: *p.Latitude, Longitude: *p.Longitude}
}

type GeofenceResponse struct {
	LocationID  uuid.UUID `json:"locationId"`
	WithinRange bool      `json:"withinRange"`
	Distance    float64   `json:"distance"`
	Radius      float64   `json:"radius"`
}

type NearbyResponse struct {
	Data []md.NearbyLocation `json:"data"`
}
