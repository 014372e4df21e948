package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/attendance-guard/internal/ctrl"
	"github.com/JMURv/attendance-guard/internal/dto"
	"github.com/JMURv/attendance-guard/internal/fingerprint"
	"github.com/JMURv/attendance-guard/internal/geo"
	"github.com/JMURv/attendance-guard/internal/hdl"
	"github.com/JMURv/attendance-guard/internal/hdl/http/utils"
	"go.uber.org/zap"
)

func (h *Handler) recordAttendance(w http.ResponseWriter, r *http.Request) {
	const op = "attendance.recordAttendance.hdl"
	uid, ok := employeeID(w, r)
	if !ok {
		return
	}

	req := &dto.AttendanceRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	fp := fingerprint.Generate(fingerprint.FromRequest(r))
	res, err := h.ctrl.RecordAttendance(r.Context(), uid, &fp, req)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrIncompletePosition),
			errors.Is(err, ctrl.ErrPositionRequired),
			errors.Is(err, ctrl.ErrInvalidFingerprint),
			errors.Is(err, geo.ErrInvalidCoordinates):
			utils.ErrResponse(w, http.StatusBadRequest, err)
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		default:
			zap.L().Error("failed to record attendance", zap.String("op", op), zap.Error(err))
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SuccessResponse(w, attendanceStatus(res), res)
}

func attendanceStatus(res *dto.AttendanceResponse) int {
	switch {
	case res.Recorded:
		return http.StatusCreated
	case res.Reason == dto.ReasonOutOfRange:
		return http.StatusUnprocessableEntity
	default:
		return registrationStatus(res.Registration)
	}
}
