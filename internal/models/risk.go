package models

import (
	"time"

	"github.com/google/uuid"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// Assessment is the result of scoring one registration attempt.
type Assessment struct {
	Score      int       `json:"score"`
	Level      RiskLevel `json:"level"`
	TrustLevel int       `json:"trustLevel"`
	Flags      []string  `json:"flags"`
}

type MonitoringLog struct {
	ID         uuid.UUID `db:"id"          json:"id"`
	EmployeeID uuid.UUID `db:"employee_id" json:"employeeId"`
	DeviceUUID string    `db:"device_uuid" json:"deviceUUID"`
	RiskScore  int       `db:"risk_score"  json:"riskScore"`
	RiskLevel  RiskLevel `db:"risk_level"  json:"riskLevel"`
	Flags      []string  `db:"-"           json:"flags"`
	Action     string    `db:"action"      json:"action"`
	CreatedAt  time.Time `db:"created_at"  json:"createdAt"`
}

// SecurityIncident never carries the full fingerprint, only a UUID prefix and
// the key of the archived payload.
type SecurityIncident struct {
	ID               uuid.UUID `db:"id"                 json:"id"`
	EmployeeID       uuid.UUID `db:"employee_id"        json:"employeeId"`
	Type             string    `db:"type"               json:"type"`
	Severity         RiskLevel `db:"severity"           json:"severity"`
	RiskScore        int       `db:"risk_score"         json:"riskScore"`
	DeviceUUIDPrefix string    `db:"device_uuid_prefix" json:"deviceUUIDPrefix"`
	IP               string    `db:"ip"                 json:"ip"`
	Flags            []string  `db:"-"                  json:"flags"`
	ArchiveKey       string    `db:"archive_key"        json:"archiveKey"`
	CreatedAt        time.Time `db:"created_at"         json:"createdAt"`
}

type ManagerContact struct {
	EmployeeID   uuid.UUID `db:"employee_id"   json:"employeeId"`
	EmployeeName string    `db:"employee_name" json:"employeeName"`
	ManagerName  string    `db:"manager_name"  json:"managerName"`
	ManagerEmail string    `db:"manager_email" json:"managerEmail"`
}

// ManagerAlert is queued when a device is approved only temporarily.
type ManagerAlert struct {
	EmployeeID uuid.UUID `json:"employeeId"`
	DeviceID   uuid.UUID `json:"deviceId"`
	DeviceName string    `json:"deviceName"`
	Score      int       `json:"score"`
	Level      RiskLevel `json:"level"`
	Flags      []string  `json:"flags"`
	CreatedAt  time.Time `json:"createdAt"`
}
