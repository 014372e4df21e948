package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/attendance-guard/internal/ctrl"
	"github.com/JMURv/attendance-guard/internal/dto"
	"github.com/JMURv/attendance-guard/internal/fingerprint"
	"github.com/JMURv/attendance-guard/internal/hdl"
	"github.com/JMURv/attendance-guard/internal/hdl/http/utils"
	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// registerDevice fingerprints the caller from request headers and registers
// the device for the authenticated employee. Conflicts answer 409 and
// rejections 403, both with the full result as body.
func (h *Handler) registerDevice(w http.ResponseWriter, r *http.Request) {
	const op = "devices.registerDevice.hdl"
	uid, ok := employeeID(w, r)
	if !ok {
		return
	}

	req := &dto.RegisterDeviceRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if (req.Latitude == nil) != (req.Longitude == nil) {
		utils.ErrResponse(w, http.StatusBadRequest, ctrl.ErrIncompletePosition)
		return
	}

	rc := dto.RiskContext{}
	if req.Timestamp != nil {
		rc.ClientTime = *req.Timestamp
	}

	fp := fingerprint.Generate(fingerprint.FromRequest(r))
	res, err := h.ctrl.RegisterOrUpdate(
		r.Context(), uid, &fp, md.LocationSample{
			IP:        fp.Raw.IP,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		}, rc,
	)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrInvalidFingerprint):
			utils.ErrResponse(w, http.StatusBadRequest, err)
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		default:
			zap.L().Error("failed to register device", zap.String("op", op), zap.Error(err))
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SuccessResponse(w, registrationStatus(res), res)
}

func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	const op = "devices.listDevices.hdl"
	uid, ok := employeeID(w, r)
	if !ok {
		return
	}

	res, err := h.ctrl.ListDevices(r.Context(), uid)
	if err != nil {
		zap.L().Error("failed to list devices", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) deactivateDevice(w http.ResponseWriter, r *http.Request) {
	const op = "devices.deactivateDevice.hdl"
	uid, ok := employeeID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if id == uuid.Nil || err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	if err = h.ctrl.DeactivateDevice(r.Context(), id, uid); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		zap.L().Error("failed to deactivate device", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}
