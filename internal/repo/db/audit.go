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

func (r *Repository) CreateMonitoringLog(ctx context.Context, l *md.MonitoringLog) error {
	const op = "audit.CreateMonitoringLog.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	flags, err := encodeFlags(l.Flags)
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(
		ctx,
		createMonitoringLog,
		l.EmployeeID,
		l.DeviceUUID,
		l.RiskScore,
		string(l.RiskLevel),
		flags,
		l.Action,
	)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create monitoring log", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) CreateSecurityIncident(ctx context.Context, i *md.SecurityIncident) error {
	const op = "audit.CreateSecurityIncident.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	flags, err := encodeFlags(i.Flags)
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(
		ctx,
		createSecurityIncident,
		i.EmployeeID,
		i.Type,
		string(i.Severity),
		i.RiskScore,
		i.DeviceUUIDPrefix,
		i.IP,
		flags,
		i.ArchiveKey,
	)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create security incident", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) GetManagerContact(ctx context.Context, employeeID uuid.UUID) (*md.ManagerContact, error) {
	const op = "audit.GetManagerContact.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.ManagerContact{}
	if err := r.conn.GetContext(ctx, res, getManagerContact, employeeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get manager contact", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}
