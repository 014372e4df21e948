package dto

import (
	"time"

	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/google/uuid"
)

const ReasonOutOfRange = "OUT_OF_RANGE"

type AttendanceRequest struct {
	Type       string     `json:"type"       validate:"required,oneof=checkin checkout"`
	LocationID *uuid.UUID `json:"locationId"`
	Latitude   *float64   `json:"latitude"   validate:"omitempty,latitude"`
	Longitude  *float64   `json:"longitude"  validate:"omitempty,longitude"`
	Timestamp  *time.Time `json:"timestamp"`
}

type AttendanceResponse struct {
	Recorded     bool                `json:"recorded"`
	Reason       string              `json:"reason,omitempty"`
	Attendance   *md.Attendance      `json:"attendance,omitempty"`
	Geofence     *GeofenceResponse   `json:"geofence,omitempty"`
	Registration *RegistrationResult `json:"registration"`
}
