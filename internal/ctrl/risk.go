package ctrl

import (
	"context"

	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/JMURv/attendance-guard/internal/dto"
	"github.com/JMURv/attendance-guard/internal/geo"
	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/JMURv/attendance-guard/internal/repo/s3"
	"github.com/JMURv/attendance-guard/internal/risk"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type auditRepo interface {
	CreateMonitoringLog(ctx context.Context, l *md.MonitoringLog) error
	CreateSecurityIncident(ctx context.Context, i *md.SecurityIncident) error
}

const uuidPrefixLen = 8

// AssessRisk sums the device count, hour of day and location anomaly checks.
// A storage failure yields the fail-open assessment instead of an error.
func (c *Controller) AssessRisk(
	ctx context.Context,
	employeeID uuid.UUID,
	fp *md.Fingerprint,
	sample md.LocationSample,
	rc dto.RiskContext,
) md.Assessment {
	const op = "devices.AssessRisk.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	score, flags := 0, make([]string, 0, 3)

	count, err := c.repo.CountActiveDevices(ctx, employeeID)
	if err != nil {
		return c.failOpen(span, op, employeeID, err)
	}

	if count >= c.conf.DeviceCountLimit {
		score += c.conf.DeviceCountWeight
		flags = append(flags, risk.FlagTooManyDevices)
	}

	now := c.now()
	if risk.UnusualHour(now.Local().Hour(), c.conf) {
		score += c.conf.UnusualHoursWeight
		flags = append(flags, risk.FlagUnusualHours)
	}

	if sample.HasCoordinates() {
		history, err := c.repo.ListRecentLocations(ctx, employeeID, c.conf.LocationHistory)
		if err != nil {
			return c.failOpen(span, op, employeeID, err)
		}

		if len(history) > 0 {
			pos := md.Coordinates{Latitude: *sample.Latitude, Longitude: *sample.Longitude}

			var maxMeters float64
			for _, h := range history {
				if d := geo.Distance(pos, h); d > maxMeters {
					maxMeters = d
				}
			}

			if points, flag := risk.LocationAnomaly(maxMeters/1000, c.conf); points > 0 {
				score += points
				flags = append(flags, flag)
			}
		}
	}

	a := risk.NewAssessment(score, flags, c.conf)
	zap.L().Debug(
		"risk assessed",
		zap.String("employeeID", employeeID.String()),
		zap.String("device", prefix(fp.DeviceUUID)),
		zap.Int("score", a.Score),
		zap.String("level", string(a.Level)),
		zap.Strings("flags", a.Flags),
		zap.Time("serverTime", now),
		zap.Time("clientTime", rc.ClientTime),
	)
	return a
}

func (c *Controller) failOpen(span opentracing.Span, op string, employeeID uuid.UUID, err error) md.Assessment {
	span.SetTag(config.ErrorSpanTag, true)
	zap.L().Error(
		"risk assessment failed, falling back to medium risk",
		zap.String("op", op),
		zap.String("employeeID", employeeID.String()),
		zap.Error(err),
	)
	return risk.FailOpen(c.conf)
}

func (c *Controller) logMonitoring(
	ctx context.Context,
	employeeID uuid.UUID,
	fp *md.Fingerprint,
	a md.Assessment,
	d risk.Decision,
) {
	err := c.repo.CreateMonitoringLog(
		ctx, &md.MonitoringLog{
			EmployeeID: employeeID,
			DeviceUUID: fp.DeviceUUID,
			RiskScore:  a.Score,
			RiskLevel:  a.Level,
			Flags:      a.Flags,
			Action:     d.Action,
		},
	)
	if err != nil {
		zap.L().Error(
			"failed to write monitoring log",
			zap.String("employeeID", employeeID.String()),
			zap.Error(err),
		)
	}
}

// reportIncident archives the raw fingerprint and records an incident that
// only carries the UUID prefix and the archive key.
func (c *Controller) reportIncident(
	ctx context.Context,
	employeeID uuid.UUID,
	fp *md.Fingerprint,
	sample md.LocationSample,
	a md.Assessment,
) {
	const op = "devices.reportIncident.ctrl"

	var key string
	payload, err := json.Marshal(fp.Raw)
	if err == nil {
		key, err = c.archiver.PutJSON(ctx, s3.IncidentKey(employeeID.String(), c.now()), payload)
	}
	if err != nil {
		zap.L().Warn("failed to archive fingerprint", zap.String("op", op), zap.Error(err))
		key = ""
	}

	err = c.repo.CreateSecurityIncident(
		ctx, &md.SecurityIncident{
			EmployeeID:       employeeID,
			Type:             risk.ReasonHighRiskDevice,
			Severity:         a.Level,
			RiskScore:        a.Score,
			DeviceUUIDPrefix: prefix(fp.DeviceUUID),
			IP:               sample.IP,
			Flags:            a.Flags,
			ArchiveKey:       key,
		},
	)
	if err != nil {
		zap.L().Error(
			"failed to write security incident",
			zap.String("op", op),
			zap.String("employeeID", employeeID.String()),
			zap.Error(err),
		)
	}
}

func prefix(deviceUUID string) string {
	if len(deviceUUID) <= uuidPrefixLen {
		return deviceUUID
	}
	return deviceUUID[:uuidPrefixLen]
}
