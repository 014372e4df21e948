package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JMURv/attendance-guard/internal/auth/jwt"
	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/JMURv/attendance-guard/internal/ctrl"
	"github.com/JMURv/attendance-guard/internal/dto"
	"github.com/JMURv/attendance-guard/internal/hdl"
	"github.com/JMURv/attendance-guard/internal/hdl/http/utils"
	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/JMURv/attendance-guard/internal/risk"
	"github.com/JMURv/attendance-guard/tests/mocks"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "token"

type dataResponse[T any] struct {
	Data T `json:"data"`
}

func newTestHandler(t *testing.T, uid uuid.UUID) (*Handler, *mocks.MockAppCtrl) {
	mock := gomock.NewController(t)
	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockPort(mock)
	mauth.EXPECT().ParseClaims(gomock.Any(), testToken).Return(jwt.Claims{UID: uid}, nil).AnyTimes()

	h := New(mauth, mctrl)
	h.RegisterRoutes()
	return h, mctrl
}

func serve(t *testing.T, h *Handler, method, uri string, payload any, authed bool) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if strPayload, ok := payload.(string); ok {
		body.WriteString(strPayload)
	} else if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, uri, &body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0.0.0 Safari/537.36")
	if authed {
		req.AddCookie(&http.Cookie{Name: config.AccessCookieName, Value: testToken})
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decodeErrors(t *testing.T, w *httptest.ResponseRecorder) []string {
	res := &utils.ErrorsResponse{}
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
	return res.Errors
}

func TestHandler_Auth(t *testing.T) {
	uid := uuid.New()

	t.Run("MissingToken", func(t *testing.T) {
		h, _ := newTestHandler(t, uid)

		w := serve(t, h, http.MethodGet, "/devices", nil, false)
		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
		assert.Equal(t, hdl.ErrMissingToken.Error(), decodeErrors(t, w)[0])
	})

	t.Run("BearerToken", func(t *testing.T) {
		h, mctrl := newTestHandler(t, uid)
		mctrl.EXPECT().ListDevices(gomock.Any(), uid).Return([]md.Device{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/devices", nil)
		req.Header.Set("Authorization", "Bearer "+testToken)
		w := httptest.NewRecorder()
		h.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		mock := gomock.NewController(t)
		mauth := mocks.NewMockPort(mock)
		mauth.EXPECT().ParseClaims(gomock.Any(), testToken).Return(jwt.Claims{}, jwt.ErrInvalidToken)

		h := New(mauth, mocks.NewMockAppCtrl(mock))
		h.RegisterRoutes()

		w := serve(t, h, http.MethodGet, "/devices", nil, true)
		assert.Equal(t, http.StatusForbidden, w.Result().StatusCode)
		assert.Equal(t, jwt.ErrInvalidToken.Error(), decodeErrors(t, w)[0])
	})
}

func TestHandler_RegisterDevice(t *testing.T) {
	const uri = "/devices/register"
	uid := uuid.New()
	testErr := errors.New("testErr")
	deviceID := uuid.New()

	tests := []struct {
		name       string
		payload    any
		status     int
		expect     func(mctrl *mocks.MockAppCtrl)
		assertions func(w *httptest.ResponseRecorder)
	}{
		{
			name:    "ErrDecodeRequest_InvalidPayload",
			payload: "invalid-json",
			status:  http.StatusBadRequest,
			assertions: func(w *httptest.ResponseRecorder) {
				assert.Contains(t, decodeErrors(t, w)[0], "decode request")
			},
		},
		{
			name:    "InvalidLatitude",
			payload: map[string]any{"latitude": 100.0, "longitude": 10.0},
			status:  http.StatusBadRequest,
			assertions: func(w *httptest.ResponseRecorder) {
				assert.Contains(t, decodeErrors(t, w)[0], "latitude rule")
			},
		},
		{
			name:    "IncompletePosition",
			payload: map[string]any{"latitude": 10.0},
			status:  http.StatusBadRequest,
			assertions: func(w *httptest.ResponseRecorder) {
				assert.Equal(t, ctrl.ErrIncompletePosition.Error(), decodeErrors(t, w)[0])
			},
		},
		{
			name:    "NewDevice",
			payload: map[string]any{"latitude": 10.0, "longitude": 20.0},
			status:  http.StatusCreated,
			expect: func(mctrl *mocks.MockAppCtrl) {
				mctrl.EXPECT().
					RegisterOrUpdate(gomock.Any(), uid, gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(
						func(
							_ context.Context,
							_ uuid.UUID,
							fp *md.Fingerprint,
							sample md.LocationSample,
							_ dto.RiskContext,
						) (*dto.RegistrationResult, error) {
							assert.Equal(t, "Windows", fp.Platform)
							assert.Equal(t, "192.0.2.1", sample.IP)
							require.True(t, sample.HasCoordinates())
							assert.Equal(t, 10.0, *sample.Latitude)
							return &dto.RegistrationResult{
								Success:     true,
								DeviceID:    deviceID,
								IsNewDevice: true,
								Approved:    true,
								TrustLevel:  3,
							}, nil
						},
					)
			},
			assertions: func(w *httptest.ResponseRecorder) {
				res := &dataResponse[dto.RegistrationResult]{}
				require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
				assert.Equal(t, deviceID, res.Data.DeviceID)
				assert.True(t, res.Data.IsNewDevice)
			},
		},
		{
			name:    "KnownDeviceWithEmptyBody",
			payload: nil,
			status:  http.StatusOK,
			expect: func(mctrl *mocks.MockAppCtrl) {
				mctrl.EXPECT().
					RegisterOrUpdate(gomock.Any(), uid, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&dto.RegistrationResult{Success: true, Approved: true, DeviceID: deviceID}, nil)
			},
			assertions: func(w *httptest.ResponseRecorder) {},
		},
		{
			name:    "DeviceConflict",
			payload: map[string]any{},
			status:  http.StatusConflict,
			expect: func(mctrl *mocks.MockAppCtrl) {
				mctrl.EXPECT().
					RegisterOrUpdate(gomock.Any(), uid, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&dto.RegistrationResult{Reason: risk.ReasonDeviceConflict}, nil)
			},
			assertions: func(w *httptest.ResponseRecorder) {
				res := &dataResponse[dto.RegistrationResult]{}
				require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
				assert.Equal(t, risk.ReasonDeviceConflict, res.Data.Reason)
			},
		},
		{
			name:    "HighRiskDevice",
			payload: map[string]any{},
			status:  http.StatusForbidden,
			expect: func(mctrl *mocks.MockAppCtrl) {
				mctrl.EXPECT().
					RegisterOrUpdate(gomock.Any(), uid, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&dto.RegistrationResult{Reason: risk.ReasonHighRiskDevice, RiskScore: 90}, nil)
			},
			assertions: func(w *httptest.ResponseRecorder) {
				res := &dataResponse[dto.RegistrationResult]{}
				require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
				assert.Equal(t, 90, res.Data.RiskScore)
			},
		},
		{
			name:    "InvalidFingerprint",
			payload: map[string]any{},
			status:  http.StatusBadRequest,
			expect: func(mctrl *mocks.MockAppCtrl) {
				mctrl.EXPECT().
					RegisterOrUpdate(gomock.Any(), uid, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, ctrl.ErrInvalidFingerprint)
			},
			assertions: func(w *httptest.ResponseRecorder) {
				assert.Equal(t, ctrl.ErrInvalidFingerprint.Error(), decodeErrors(t, w)[0])
			},
		},
		{
			name:    "StatusInternalServerError",
			payload: map[string]any{},
			status:  http.StatusInternalServerError,
			expect: func(mctrl *mocks.MockAppCtrl) {
				mctrl.EXPECT().
					RegisterOrUpdate(gomock.Any(), uid, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, testErr)
			},
			assertions: func(w *httptest.ResponseRecorder) {
				assert.Equal(t, hdl.ErrInternal.Error(), decodeErrors(t, w)[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mctrl := newTestHandler(t, uid)
			if tt.expect != nil {
				tt.expect(mctrl)
			}

			w := serve(t, h, http.MethodPost, uri, tt.payload, true)
			assert.Equal(t, tt.status, w.Result().StatusCode)

			defer func() {
				assert.Nil(t, w.Result().Body.Close())
			}()

			tt.assertions(w)
		})
	}
}

func TestHandler_ListDevices(t *testing.T) {
	uid := uuid.New()
	devices := []md.Device{{ID: uuid.New(), EmployeeID: uid, Name: "Chrome on Windows"}}

	h, mctrl := newTestHandler(t, uid)
	mctrl.EXPECT().ListDevices(gomock.Any(), uid).Return(devices, nil)

	w := serve(t, h, http.MethodGet, "/devices", nil, true)
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	res := &dataResponse[[]md.Device]{}
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
	require.Len(t, res.Data, 1)
	assert.Equal(t, devices[0].ID, res.Data[0].ID)

	mctrl.EXPECT().ListDevices(gomock.Any(), uid).Return(nil, errors.New("testErr"))
	w = serve(t, h, http.MethodGet, "/devices", nil, true)
	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
}

func TestHandler_DeactivateDevice(t *testing.T) {
	uid, id := uuid.New(), uuid.New()

	tests := []struct {
		name   string
		path   string
		status int
		expect func(mctrl *mocks.MockAppCtrl)
	}{
		{
			name:   "InvalidID",
			path:   "/devices/not-a-uuid",
			status: http.StatusBadRequest,
		},
		{
			name:   "NotFound",
			path:   "/devices/" + id.String(),
			status: http.StatusNotFound,
			expect: func(mctrl *mocks.MockAppCtrl) {
				mctrl.EXPECT().DeactivateDevice(gomock.Any(), id, uid).Return(ctrl.ErrNotFound)
			},
		},
		{
			name:   "StatusInternalServerError",
			path:   "/devices/" + id.String(),
			status: http.StatusInternalServerError,
			expect: func(mctrl *mocks.MockAppCtrl) {
				mctrl.EXPECT().DeactivateDevice(gomock.Any(), id, uid).Return(errors.New("testErr"))
			},
		},
		{
			name:   "Success",
			path:   "/devices/" + id.String(),
			status: http.StatusNoContent,
			expect: func(mctrl *mocks.MockAppCtrl) {
				mctrl.EXPECT().DeactivateDevice(gomock.Any(), id, uid).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mctrl := newTestHandler(t, uid)
			if tt.expect != nil {
				tt.expect(mctrl)
			}

			w := serve(t, h, http.MethodDelete, tt.path, nil, true)
			assert.Equal(t, tt.status, w.Result().StatusCode)
		})
	}
}
