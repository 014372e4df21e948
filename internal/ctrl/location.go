package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/JMURv/attendance-guard/internal/dto"
	"github.com/JMURv/attendance-guard/internal/geo"
	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/JMURv/attendance-guard/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

type locationCtrl interface {
	CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.CreateLocationResponse, error)
	ValidateGeofence(ctx context.Context, locationID uuid.UUID, pos md.Coordinates) (*dto.GeofenceResponse, error)
	Nearby(ctx context.Context, pos md.Coordinates, radius float64) (*dto.NearbyResponse, error)
}

type locationRepo interface {
	GetLocation(ctx context.Context, id uuid.UUID) (*md.Location, error)
	ListLocations(ctx context.Context, filters map[string]any) ([]md.Location, error)
	CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (uuid.UUID, error)
}

const (
	locationCacheKey   = "location:%v"
	candidatesCacheKey = "locations-candidates:%.4f:%.4f:%.4f:%.4f"
	candidatesPattern  = "locations-*"
)

func (c *Controller) CreateLocation(
	ctx context.Context,
	req *dto.CreateLocationRequest,
) (*dto.CreateLocationResponse, error) {
	const op = "locations.CreateLocation.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := geo.ValidateLocation(
		md.Location{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Radius:    req.Radius,
		},
	)
	if err != nil {
		return nil, err
	}

	id, err := c.repo.CreateLocation(ctx, req)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}

		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	c.cache.InvalidateKeysByPattern(ctx, candidatesPattern)
	return &dto.CreateLocationResponse{ID: id}, nil
}

func (c *Controller) ValidateGeofence(
	ctx context.Context,
	locationID uuid.UUID,
	pos md.Coordinates,
) (*dto.GeofenceResponse, error) {
	const op = "locations.ValidateGeofence.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if !geo.ValidCoordinates(pos) {
		return nil, geo.ErrInvalidCoordinates
	}

	loc, err := c.getLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	res := geo.Validate(loc.Center(), loc.Radius, pos)
	return &dto.GeofenceResponse{
		LocationID:  loc.ID,
		WithinRange: res.WithinRange,
		Distance:    res.Distance,
		Radius:      loc.Radius,
	}, nil
}

// Nearby prefilters candidates with a bounding box in storage and leaves the
// exact distance filter and ordering to geo.Nearby.
func (c *Controller) Nearby(ctx context.Context, pos md.Coordinates, radius float64) (*dto.NearbyResponse, error) {
	const op = "locations.Nearby.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if !(radius > 0) {
		return nil, geo.ErrInvalidRadius
	}

	if !geo.ValidCoordinates(pos) {
		return nil, geo.ErrInvalidCoordinates
	}

	box := geo.BoundingBox(pos, radius)
	cacheKey := fmt.Sprintf(candidatesCacheKey, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)

	candidates := make([]md.Location, 0)
	if err := c.cache.GetToStruct(ctx, cacheKey, &candidates); err != nil {
		candidates, err = c.repo.ListLocations(
			ctx, map[string]any{
				repo.FilterIsActive: true,
				repo.FilterBox:      box,
			},
		)
		if err != nil {
			span.SetTag(config.ErrorSpanTag, true)
			return nil, err
		}

		if bytes, err := json.Marshal(candidates); err == nil {
			c.cache.Set(ctx, config.MinCacheTime, cacheKey, bytes)
		}
	}

	return &dto.NearbyResponse{Data: geo.Nearby(pos, radius, candidates)}, nil
}

// getLocation returns an active location, cached by id.
func (c *Controller) getLocation(ctx context.Context, id uuid.UUID) (*md.Location, error) {
	cached := &md.Location{}
	cacheKey := fmt.Sprintf(locationCacheKey, id)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	loc, err := c.repo.GetLocation(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !loc.IsActive {
		return nil, ErrNotFound
	}

	if bytes, err := json.Marshal(loc); err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}
	return loc, nil
}
