package ctrl

import (
	"context"

	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/JMURv/attendance-guard/internal/dto"
	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type attendanceCtrl interface {
	RecordAttendance(
		ctx context.Context,
		employeeID uuid.UUID,
		fp *md.Fingerprint,
		req *dto.AttendanceRequest,
	) (*dto.AttendanceResponse, error)
}

type attendanceRepo interface {
	CreateAttendance(ctx context.Context, a *md.Attendance) error
}

// RecordAttendance registers the device, checks the geofence when a location
// is given and stores the attendance row. Nothing is stored unless both
// checks pass.
func (c *Controller) RecordAttendance(
	ctx context.Context,
	employeeID uuid.UUID,
	fp *md.Fingerprint,
	req *dto.AttendanceRequest,
) (*dto.AttendanceResponse, error) {
	const op = "attendance.RecordAttendance.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, ErrIncompletePosition
	}

	sample := md.LocationSample{
		IP:        fp.Raw.IP,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	if req.LocationID != nil && !sample.HasCoordinates() {
		return nil, ErrPositionRequired
	}

	rc := dto.RiskContext{}
	if req.Timestamp != nil {
		rc.ClientTime = *req.Timestamp
	}

	reg, err := c.RegisterOrUpdate(ctx, employeeID, fp, sample, rc)
	if err != nil {
		return nil, err
	}

	res := &dto.AttendanceResponse{Registration: reg}
	if !reg.Success || !reg.Approved {
		res.Reason = reg.Reason
		return res, nil
	}

	a := &md.Attendance{
		EmployeeID: employeeID,
		Type:       req.Type,
		DeviceID:   reg.DeviceID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}

	if req.LocationID != nil {
		gf, err := c.ValidateGeofence(
			ctx,
			*req.LocationID,
			md.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude},
		)
		if err != nil {
			return nil, err
		}

		res.Geofence = gf
		if !gf.WithinRange {
			zap.L().Info(
				"attendance rejected, employee is out of range",
				zap.String("employeeID", employeeID.String()),
				zap.String("locationID", gf.LocationID.String()),
				zap.Float64("distance", gf.Distance),
				zap.Float64("radius", gf.Radius),
			)
			res.Reason = dto.ReasonOutOfRange
			return res, nil
		}

		distance := gf.Distance
		a.LocationID = req.LocationID
		a.Distance = &distance
	}

	if err = c.repo.CreateAttendance(ctx, a); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	res.Recorded = true
	res.Attendance = a
	return res, nil
}
