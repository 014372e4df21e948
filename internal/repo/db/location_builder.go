package db

import (
	"context"

	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/JMURv/attendance-guard/internal/geo"
	"github.com/JMURv/attendance-guard/internal/repo"
	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func buildLocationListQuery(ctx context.Context, filters map[string]any) (string, []any, error) {
	const op = "locations.buildLocationListQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select(
		"l.id",
		"l.name",
		"l.address",
		"l.latitude",
		"l.longitude",
		"l.radius",
		"l.is_active",
		"l.created_at",
	).From("locations l").PlaceholderFormat(sq.Dollar)

	if isActive, ok := filters[repo.FilterIsActive].(bool); ok {
		query = query.Where(sq.Eq{"l.is_active": isActive})
	}

	if box, ok := filters[repo.FilterBox].(geo.Box); ok {
		query = query.Where(
			sq.And{
				sq.GtOrEq{"l.latitude": box.MinLat},
				sq.LtOrEq{"l.latitude": box.MaxLat},
				sq.GtOrEq{"l.longitude": box.MinLng},
				sq.LtOrEq{"l.longitude": box.MaxLng},
			},
		)
	}

	q, args, err := query.OrderBy("l.name").ToSql()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to build location query", zap.String("op", op), zap.Error(err))
		return "", nil, err
	}

	return q, args, nil
}
