package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DeviceDesktop = "Desktop"
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
	Unknown       = "Unknown"
)

// Fingerprint is the identity derived from one request. It is recomputed on
// every call and only survives as the Device record it produces.
type Fingerprint struct {
	DeviceUUID     string         `json:"deviceUUID"`
	DeviceType     string         `json:"deviceType"`
	Platform       string         `json:"platform"`
	Browser        string         `json:"browser"`
	BrowserVersion string         `json:"browserVersion"`
	Raw            RawFingerprint `json:"raw"`
}

type RawFingerprint struct {
	UserAgent      string `json:"userAgent"`
	IP             string `json:"ip"`
	AcceptLanguage string `json:"acceptLanguage"`
	AcceptEncoding string `json:"acceptEncoding"`
}

// Device is a device known to belong to one employee.
type Device struct {
	ID             uuid.UUID `db:"id"              json:"id"`
	EmployeeID     uuid.UUID `db:"employee_id"     json:"employeeId"`
	DeviceUUID     string    `db:"device_uuid"     json:"deviceUUID"`
	DeviceType     string    `db:"device_type"     json:"deviceType"`
	Name           string    `db:"name"            json:"name"`
	OS             string    `db:"os"              json:"os"`
	Browser        string    `db:"browser"         json:"browser"`
	LastIP         string    `db:"last_ip"         json:"lastIp"`
	LastLatitude   *float64  `db:"last_latitude"   json:"lastLatitude,omitempty"`
	LastLongitude  *float64  `db:"last_longitude"  json:"lastLongitude,omitempty"`
	IsApproved     bool      `db:"is_approved"     json:"isApproved"`
	IsActive       bool      `db:"is_active"       json:"isActive"`
	TrustLevel     int       `db:"trust_level"     json:"trustLevel"`
	RiskScore      int       `db:"risk_score"      json:"riskScore"`
	ApprovalReason string    `db:"approval_reason" json:"approvalReason"`
	RegisteredAt   time.Time `db:"registered_at"   json:"registeredAt"`
	LastUsedAt     time.Time `db:"last_used_at"    json:"lastUsedAt"`
}

// DeviceConflict describes an active device owned by somebody else.
type DeviceConflict struct {
	DeviceID     uuid.UUID `db:"id"            json:"deviceId"`
	EmployeeID   uuid.UUID `db:"employee_id"   json:"employeeId"`
	EmployeeName string    `db:"employee_name" json:"employeeName"`
}

// LocationSample is the position reported together with a request.
type LocationSample struct {
	IP        string   `json:"ip"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (s LocationSample) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

type Coordinates struct {
	Latitude  float64 `db:"latitude"  json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
}
