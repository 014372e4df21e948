package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/JMURv/attendance-guard/internal/ctrl"
	"github.com/JMURv/attendance-guard/internal/dto"
	"github.com/JMURv/attendance-guard/internal/geo"
	"github.com/JMURv/attendance-guard/internal/hdl"
	"github.com/JMURv/attendance-guard/internal/hdl/http/utils"
	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) createLocation(w http.ResponseWriter, r *http.Request) {
	const op = "locations.createLocation.hdl"
	req := &dto.CreateLocationRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateLocation(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, geo.ErrInvalidRadius), errors.Is(err, geo.ErrInvalidCoordinates):
			utils.ErrResponse(w, http.StatusBadRequest, err)
		case errors.Is(err, ctrl.ErrAlreadyExists):
			utils.ErrResponse(w, http.StatusConflict, err)
		default:
			zap.L().Error("failed to create location", zap.String("op", op), zap.Error(err))
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

// validateGeofence answers 200 for both outcomes, withinRange tells them apart.
func (h *Handler) validateGeofence(w http.ResponseWriter, r *http.Request) {
	const op = "locations.validateGeofence.hdl"
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if id == uuid.Nil || err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	req := &dto.PositionRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.ValidateGeofence(r.Context(), id, req.Coordinates())
	if err != nil {
		switch {
		case errors.Is(err, geo.ErrInvalidCoordinates):
			utils.ErrResponse(w, http.StatusBadRequest, err)
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		default:
			zap.L().Error("failed to validate geofence", zap.String("op", op), zap.Error(err))
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) nearby(w http.ResponseWriter, r *http.Request) {
	const op = "locations.nearby.hdl"
	pos, radius, err := parseNearbyQuery(r)
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.ctrl.Nearby(r.Context(), pos, radius)
	if err != nil {
		switch {
		case errors.Is(err, geo.ErrInvalidRadius), errors.Is(err, geo.ErrInvalidCoordinates):
			utils.ErrResponse(w, http.StatusBadRequest, err)
		default:
			zap.L().Error("failed to find nearby locations", zap.String("op", op), zap.Error(err))
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// parseNearbyQuery reads lat and lng, both required, and an optional radius
// in meters.
func parseNearbyQuery(r *http.Request) (md.Coordinates, float64, error) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		return md.Coordinates{}, 0, hdl.ErrInvalidQuery
	}

	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil {
		return md.Coordinates{}, 0, hdl.ErrInvalidQuery
	}

	radius := config.DefaultNearbyRadius
	if raw := q.Get("radius"); raw != "" {
		if radius, err = strconv.ParseFloat(raw, 64); err != nil {
			return md.Coordinates{}, 0, hdl.ErrInvalidQuery
		}
	}

	if radius > config.MaxNearbyRadius {
		return md.Coordinates{}, 0, hdl.ErrRadiusTooLarge
	}
	return md.Coordinates{Latitude: lat, Longitude: lng}, radius, nil
}
