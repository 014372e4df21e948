package ctrl

import (
	"context"
	"errors"

	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/JMURv/attendance-guard/internal/dto"
	"github.com/JMURv/attendance-guard/internal/fingerprint"
	md "github.com/JMURv/attendance-guard/internal/models"
	metrics "github.com/JMURv/attendance-guard/internal/observability/metrics/prometheus"
	"github.com/JMURv/attendance-guard/internal/repo"
	"github.com/JMURv/attendance-guard/internal/risk"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type deviceCtrl interface {
	RegisterOrUpdate(
		ctx context.Context,
		employeeID uuid.UUID,
		fp *md.Fingerprint,
		sample md.LocationSample,
		rc dto.RiskContext,
	) (*dto.RegistrationResult, error)
	AssessRisk(
		ctx context.Context,
		employeeID uuid.UUID,
		fp *md.Fingerprint,
		sample md.LocationSample,
		rc dto.RiskContext,
	) md.Assessment
	ListDevices(ctx context.Context, employeeID uuid.UUID) ([]md.Device, error)
	DeactivateDevice(ctx context.Context, id, employeeID uuid.UUID) error
}

type deviceRepo interface {
	GetActiveDevice(ctx context.Context, deviceUUID string, employeeID uuid.UUID) (*md.Device, error)
	GetConflictingDevice(ctx context.Context, deviceUUID string, employeeID uuid.UUID) (*md.DeviceConflict, error)
	TouchDevice(ctx context.Context, id uuid.UUID, sample md.LocationSample) error
	CreateDevice(ctx context.Context, d *md.Device) (uuid.UUID, error)
	CountActiveDevices(ctx context.Context, employeeID uuid.UUID) (int, error)
	ListRecentLocations(ctx context.Context, employeeID uuid.UUID, limit int) ([]md.Coordinates, error)
	EvictLeastRecentDevice(ctx context.Context, employeeID uuid.UUID, keep uuid.UUID) (uuid.UUID, error)
	ListDevices(ctx context.Context, employeeID uuid.UUID) ([]md.Device, error)
	DeactivateDevice(ctx context.Context, id, employeeID uuid.UUID) error
}

const (
	msgDeviceRecognized = "Device recognized"
	msgDeviceConflict   = "This device is registered to another employee, contact your administrator"
)

// RegisterOrUpdate decides whether the device may be used by the employee.
// Conflicts and rejections are returned as unsuccessful results, only
// storage failures are returned as errors.
func (c *Controller) RegisterOrUpdate(
	ctx context.Context,
	employeeID uuid.UUID,
	fp *md.Fingerprint,
	sample md.LocationSample,
	rc dto.RiskContext,
) (*dto.RegistrationResult, error) {
	const op = "devices.RegisterOrUpdate.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := fingerprint.Validate(fp); err != nil {
		return nil, ErrInvalidFingerprint
	}

	if sample.IP == "" {
		sample.IP = fp.Raw.IP
	}

	existing, err := c.repo.GetActiveDevice(ctx, fp.DeviceUUID, employeeID)
	if err == nil {
		return c.touchExisting(ctx, existing, sample)
	}
	if !errors.Is(err, repo.ErrNotFound) {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	conflict, err := c.repo.GetConflictingDevice(ctx, fp.DeviceUUID, employeeID)
	if err == nil {
		zap.L().Warn(
			"device is already registered to another employee",
			zap.String("op", op),
			zap.String("employeeID", employeeID.String()),
			zap.String("ownerID", conflict.EmployeeID.String()),
		)
		metrics.ObserveRiskDecision(risk.ReasonDeviceConflict, "")
		return &dto.RegistrationResult{
			Success:  false,
			Reason:   risk.ReasonDeviceConflict,
			Message:  msgDeviceConflict,
			Conflict: conflict,
		}, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	a := c.AssessRisk(ctx, employeeID, fp, sample, rc)
	d := risk.Decide(a.Score, c.conf)
	metrics.ObserveRiskDecision(d.Action, string(a.Level))

	if !d.Approved {
		c.reportIncident(ctx, employeeID, fp, sample, a)
		return &dto.RegistrationResult{
			Success:     false,
			IsNewDevice: true,
			Approved:    false,
			TrustLevel:  a.TrustLevel,
			RiskScore:   a.Score,
			Message:     d.Message,
			RequiresOTP: d.RequiresOTP,
			Reason:      d.Reason,
			Flags:       a.Flags,
		}, nil
	}

	device := &md.Device{
		EmployeeID:     employeeID,
		DeviceUUID:     fp.DeviceUUID,
		DeviceType:     fp.DeviceType,
		Name:           fingerprint.DeviceName(fp),
		OS:             fp.Platform,
		Browser:        fp.Browser,
		LastIP:         sample.IP,
		LastLatitude:   sample.Latitude,
		LastLongitude:  sample.Longitude,
		IsApproved:     d.Approved,
		IsActive:       true,
		TrustLevel:     a.TrustLevel,
		RiskScore:      a.Score,
		ApprovalReason: d.Action,
	}

	id, err := c.repo.CreateDevice(ctx, device)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			zap.L().Debug(
				"device was registered concurrently",
				zap.String("op", op),
				zap.String("employeeID", employeeID.String()),
			)
			existing, err = c.repo.GetActiveDevice(ctx, fp.DeviceUUID, employeeID)
			if err != nil {
				span.SetTag(config.ErrorSpanTag, true)
				return nil, err
			}
			return c.touchExisting(ctx, existing, sample)
		}

		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	device.ID = id

	if d.Monitor {
		c.logMonitoring(ctx, employeeID, fp, a, d)
	}

	if d.NotifyManager {
		c.notifier.Enqueue(
			md.ManagerAlert{
				EmployeeID: employeeID,
				DeviceID:   id,
				DeviceName: device.Name,
				Score:      a.Score,
				Level:      a.Level,
				Flags:      a.Flags,
				CreatedAt:  c.now(),
			},
		)
	}

	c.enforceDeviceLimit(ctx, employeeID, id)

	return &dto.RegistrationResult{
		Success:     true,
		DeviceID:    id,
		IsNewDevice: true,
		Approved:    true,
		TrustLevel:  a.TrustLevel,
		RiskScore:   a.Score,
		Message:     d.Message,
		RequiresOTP: d.RequiresOTP,
		Flags:       a.Flags,
	}, nil
}

// touchExisting answers for a device that is already known. Known devices
// are not scored again.
func (c *Controller) touchExisting(
	ctx context.Context,
	d *md.Device,
	sample md.LocationSample,
) (*dto.RegistrationResult, error) {
	if err := c.repo.TouchDevice(ctx, d.ID, sample); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &dto.RegistrationResult{
		Success:     true,
		DeviceID:    d.ID,
		IsNewDevice: false,
		Approved:    true,
		TrustLevel:  d.TrustLevel,
		RiskScore:   d.RiskScore,
		Message:     msgDeviceRecognized,
	}, nil
}

// enforceDeviceLimit deactivates at most one device per registration.
func (c *Controller) enforceDeviceLimit(ctx context.Context, employeeID, keep uuid.UUID) {
	const op = "devices.enforceDeviceLimit.ctrl"

	count, err := c.repo.CountActiveDevices(ctx, employeeID)
	if err != nil {
		zap.L().Warn("failed to count devices after registration", zap.String("op", op), zap.Error(err))
		return
	}

	if count <= c.conf.MaxDevices {
		return
	}

	evicted, err := c.repo.EvictLeastRecentDevice(ctx, employeeID, keep)
	if err != nil {
		zap.L().Warn(
			"failed to evict device",
			zap.String("op", op),
			zap.String("employeeID", employeeID.String()),
			zap.Error(err),
		)
		return
	}

	zap.L().Info(
		"device limit exceeded, least recently used device deactivated",
		zap.String("employeeID", employeeID.String()),
		zap.String("deviceID", evicted.String()),
		zap.Int("count", count),
	)
}

func (c *Controller) ListDevices(ctx context.Context, employeeID uuid.UUID) ([]md.Device, error) {
	const op = "devices.ListDevices.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.ListDevices(ctx, employeeID)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	return res, nil
}

func (c *Controller) DeactivateDevice(ctx context.Context, id, employeeID uuid.UUID) error {
	const op = "devices.DeactivateDevice.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.DeactivateDevice(ctx, id, employeeID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}

		span.SetTag(config.ErrorSpanTag, true)
		return err
	}

	return nil
}
