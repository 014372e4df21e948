package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/JMURv/attendance-guard/internal/dto"
	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/JMURv/attendance-guard/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) GetLocation(ctx context.Context, id uuid.UUID) (*md.Location, error) {
	const op = "locations.GetLocation.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Location{}
	if err := r.conn.GetContext(ctx, res, getLocation, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get location", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListLocations(ctx context.Context, filters map[string]any) ([]md.Location, error) {
	const op = "locations.ListLocations.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, args, err := buildLocationListQuery(ctx, filters)
	if err != nil {
		return nil, err
	}

	res := make([]md.Location, 0)
	if err = r.conn.SelectContext(ctx, &res, q, args...); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list locations", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (uuid.UUID, error) {
	const op = "locations.CreateLocation.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowxContext(
		ctx,
		createLocation,
		req.Name,
		req.Address,
		req.Latitude,
		req.Longitude,
		req.Radius,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, repo.ErrAlreadyExists
		}

		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create location", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) CreateAttendance(ctx context.Context, a *md.Attendance) error {
	const op = "attendance.CreateAttendance.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := r.conn.QueryRowxContext(
		ctx,
		createAttendance,
		a.EmployeeID,
		a.Type,
		a.DeviceID,
		a.LocationID,
		a.Latitude,
		a.Longitude,
		a.Distance,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create attendance", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}
