// Package risk maps device risk scores to levels, trust levels and decisions.
package risk

import (
	"fmt"
	"math"

	"github.com/JMURv/attendance-guard/internal/config"
	md "github.com/JMURv/attendance-guard/internal/models"
)

const (
	FlagTooManyDevices  = "Too many devices"
	FlagUnusualHours    = "Unusual hours"
	FlagAssessmentError = "Assessment error"
)

const (
	ReasonHighRiskDevice = "HIGH_RISK_DEVICE"
	ReasonDeviceConflict = "DEVICE_CONFLICT"
)

const (
	ActionAutoApproved      = "AUTO_APPROVED"
	ActionApprovedMonitored = "AUTO_APPROVED_MONITORED"
	ActionTemporaryApproval = "TEMPORARY_APPROVAL"
	ActionRejected          = "REJECTED"
)

type Decision struct {
	Approved      bool
	Monitor       bool
	NotifyManager bool
	RequiresOTP   bool
	Action        string
	Reason        string
	Message       string
}

// Level returns the level of the highest threshold the score exceeds.
func Level(score int, conf config.RiskConfig) md.RiskLevel {
	switch {
	case score > conf.CriticalThreshold:
		return md.RiskCritical
	case score > conf.HighThreshold:
		return md.RiskHigh
	case score > conf.LowThreshold:
		return md.RiskMedium
	default:
		return md.RiskLow
	}
}

func TrustLevel(level md.RiskLevel) int {
	switch level {
	case md.RiskCritical:
		return 0
	case md.RiskHigh:
		return 1
	case md.RiskMedium:
		return 2
	default:
		return 3
	}
}

func NewAssessment(score int, flags []string, conf config.RiskConfig) md.Assessment {
	if flags == nil {
		flags = []string{}
	}

	lvl := Level(score, conf)
	return md.Assessment{
		Score:      score,
		Level:      lvl,
		TrustLevel: TrustLevel(lvl),
		Flags:      flags,
	}
}

// FailOpen is used when scoring itself failed: the attempt is treated as
// MEDIUM instead of blocking attendance.
func FailOpen(conf config.RiskConfig) md.Assessment {
	return md.Assessment{
		Score:      conf.MediumThreshold,
		Level:      md.RiskMedium,
		TrustLevel: TrustLevel(md.RiskMedium),
		Flags:      []string{FlagAssessmentError},
	}
}

// LocationAnomaly scores the largest distance between the reported position
// and the employee's recent device locations.
func LocationAnomaly(maxKm float64, conf config.RiskConfig) (int, string) {
	if maxKm <= conf.LocationRadiusKm {
		return 0, ""
	}

	severity := 2
	if maxKm > conf.LocationFarKm {
		severity = 3
	}
	return severity * conf.LocationSeverityPt, fmt.Sprintf("Location anomaly: %dkm", int(math.Round(maxKm)))
}

func UnusualHour(hour int, conf config.RiskConfig) bool {
	return hour >= conf.UnusualHourStart && hour <= conf.UnusualHourEnd
}

func Decide(score int, conf config.RiskConfig) Decision {
	d := Decision{RequiresOTP: score > conf.MediumThreshold}

	switch {
	case score <= conf.LowThreshold:
		d.Approved = true
		d.Action = ActionAutoApproved
		d.Message = "Device approved"
	case score <= conf.MediumThreshold:
		d.Approved = true
		d.Monitor = true
		d.Action = ActionApprovedMonitored
		d.Message = "Device approved with monitoring"
	case score <= conf.HighThreshold:
		d.Approved = true
		d.Monitor = true
		d.NotifyManager = true
		d.Action = ActionTemporaryApproval
		d.Message = "Device temporarily approved, manager has been notified"
	default:
		d.Action = ActionRejected
		d.Reason = ReasonHighRiskDevice
		d.Message = "Device was rejected due to high risk, contact your administrator"
	}

	return d
}
