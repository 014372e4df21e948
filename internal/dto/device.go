package dto

import (
	"time"

	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/google/uuid"
)

type RegisterDeviceRequest struct {
	Latitude  *float64   `json:"latitude"  validate:"omitempty,latitude"`
	Longitude *float64   `json:"longitude" validate:"omitempty,longitude"`
	Timestamp *time.Time `json:"timestamp"`
}

// RiskContext carries what the client reported about the attempt. It is
// logged alongside the assessment and never affects the score.
type RiskContext struct {
	ClientTime time.Time
}

// RegistrationResult is returned for every expected outcome. Reason is set
// when Success is false.
type RegistrationResult struct {
	Success     bool               `json:"success"`
	DeviceID    uuid.UUID          `json:"deviceId,omitempty"`
	IsNewDevice bool               `json:"isNewDevice"`
	Approved    bool               `json:"approved"`
	TrustLevel  int                `json:"trustLevel"`
	RiskScore   int                `json:"riskScore"`
	Message     string             `json:"message"`
	RequiresOTP bool               `json:"requiresOTP"`
	Reason      string             `json:"reason,omitempty"`
	Flags       []string           `json:"flags,omitempty"`
	Conflict    *md.DeviceConflict `json:"conflict,omitempty"`
}
