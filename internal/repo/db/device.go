package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JMURv/attendance-guard/internal/config"
	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/JMURv/attendance-guard/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) GetActiveDevice(
	ctx context.Context,
	deviceUUID string,
	employeeID uuid.UUID,
) (*md.Device, error) {
	const op = "devices.GetActiveDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, getActiveDevice, deviceUUID, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get active device", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetConflictingDevice(
	ctx context.Context,
	deviceUUID string,
	employeeID uuid.UUID,
) (*md.DeviceConflict, error) {
	const op = "devices.GetConflictingDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.DeviceConflict{}
	err := r.conn.GetContext(ctx, res, getConflictingDevice, deviceUUID, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get conflicting device", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) TouchDevice(ctx context.Context, id uuid.UUID, sample md.LocationSample) error {
	const op = "devices.TouchDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, touchDevice, id, sample.IP, sample.Latitude, sample.Longitude)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to touch device", zap.String("op", op), zap.Error(err))
		return err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if aff == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// CreateDevice returns repo.ErrAlreadyExists when an active record for the
// same device and employee appeared concurrently.
func (r *Repository) CreateDevice(ctx context.Context, d *md.Device) (uuid.UUID, error) {
	const op = "devices.CreateDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowxContext(
		ctx,
		createDevice,
		d.EmployeeID,
		d.DeviceUUID,
		d.DeviceType,
		d.Name,
		d.OS,
		d.Browser,
		d.LastIP,
		d.LastLatitude,
		d.LastLongitude,
		d.IsApproved,
		d.TrustLevel,
		d.RiskScore,
		d.ApprovalReason,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
			return uuid.Nil, repo.ErrAlreadyExists
		}

		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create device", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) CountActiveDevices(ctx context.Context, employeeID uuid.UUID) (int, error) {
	const op = "devices.CountActiveDevices.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var count int
	if err := r.conn.GetContext(ctx, &count, countActiveDevices, employeeID); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to count devices", zap.String("op", op), zap.Error(err))
		return 0, err
	}

	return count, nil
}

func (r *Repository) ListRecentLocations(
	ctx context.Context,
	employeeID uuid.UUID,
	limit int,
) ([]md.Coordinates, error) {
	const op = "devices.ListRecentLocations.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.Coordinates, 0, limit)
	if err := r.conn.SelectContext(ctx, &res, listRecentLocations, employeeID, limit); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list recent locations", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

// EvictLeastRecentDevice deactivates the least recently used active device of
// the employee other than keep.
func (r *Repository) EvictLeastRecentDevice(
	ctx context.Context,
	employeeID uuid.UUID,
	keep uuid.UUID,
) (uuid.UUID, error) {
	const op = "devices.EvictLeastRecentDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowxContext(ctx, evictLeastRecentDevice, employeeID, keep).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, repo.ErrNotFound
		}

		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to evict device", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) ListDevices(ctx context.Context, employeeID uuid.UUID) ([]md.Device, error) {
	const op = "devices.ListDevices.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.Device, 0)
	if err := r.conn.SelectContext(ctx, &res, listDevices, employeeID); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list devices", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) DeactivateDevice(ctx context.Context, id, employeeID uuid.UUID) error {
	const op = "devices.DeactivateDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deactivateDevice, id, employeeID)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to deactivate device", zap.String("op", op), zap.Error(err))
		return err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if aff == 0 {
		return repo.ErrNotFound
	}
	return nil
}
