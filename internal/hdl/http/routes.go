package http

import (
	"net/http"

	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/JMURv/attendance-guard/internal/dto"
	"github.com/JMURv/attendance-guard/internal/hdl"
	"github.com/JMURv/attendance-guard/internal/hdl/http/middleware"
	"github.com/JMURv/attendance-guard/internal/hdl/http/utils"
	"github.com/JMURv/attendance-guard/internal/risk"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) RegisterRoutes() {
	auth := middleware.Auth(h.au)

	h.router.With(auth).Post("/devices/register", h.registerDevice)
	h.router.With(auth).Get("/devices", h.listDevices)
	h.router.With(auth).Delete("/devices/{id}", h.deactivateDevice)

	h.router.With(auth).Post("/locations", h.createLocation)
	h.router.Post("/locations/{id}/validate", h.validateGeofence)
	h.router.Get("/locations/nearby", h.nearby)

	h.router.With(auth).Post("/attendance", h.recordAttendance)
}

// employeeID reads the id put into the context by the auth middleware. The
// error response is written when it is missing.
func employeeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if uid == uuid.Nil || !ok {
		zap.L().Error(
			hdl.ErrFailedToGetUUID.Error(),
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrFailedToGetUUID)
		return uuid.Nil, false
	}
	return uid, true
}

// registrationStatus maps a registration outcome to a response status.
// Rejections other than a conflict are HIGH_RISK_DEVICE.
func registrationStatus(res *dto.RegistrationResult) int {
	switch {
	case res.Success && res.IsNewDevice:
		return http.StatusCreated
	case res.Success:
		return http.StatusOK
	case res.Reason == risk.ReasonDeviceConflict:
		return http.StatusConflict
	default:
		return http.StatusForbidden
	}
}
