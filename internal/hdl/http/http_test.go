package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JMURv/attendance-guard/internal/auth/jwt"
	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/JMURv/attendance-guard/internal/dto"
	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/JMURv/attendance-guard/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Health(t *testing.T) {
	mock := gomock.NewController(t)
	h := New(mocks.NewMockPort(mock), mocks.NewMockAppCtrl(mock))

	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	w = httptest.NewRecorder()
	h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/devices/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Result().StatusCode)
}

func TestHandler_TrustedProxy(t *testing.T) {
	uid := uuid.New()

	tests := []struct {
		name  string
		trust bool
		ip    string
	}{
		{name: "ConnectionAddress", trust: false, ip: "192.0.2.1"},
		{name: "ForwardedAddress", trust: true, ip: "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := gomock.NewController(t)
			mctrl := mocks.NewMockAppCtrl(mock)
			mauth := mocks.NewMockPort(mock)
			mauth.EXPECT().ParseClaims(gomock.Any(), testToken).Return(jwt.Claims{UID: uid}, nil)
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
						assert.Equal(t, tt.ip, sample.IP)
						assert.Equal(t, tt.ip, fp.Raw.IP)
						return &dto.RegistrationResult{Success: true, IsNewDevice: true, Approved: true}, nil
					},
				)

			h := New(mauth, mctrl, WithTrustedProxy(tt.trust))
			req := httptest.NewRequest(http.MethodPost, "/devices/register", nil)
			req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0.0.0 Safari/537.36")
			req.Header.Set("X-Forwarded-For", "203.0.113.7")
			req.AddCookie(&http.Cookie{Name: config.AccessCookieName, Value: testToken})

			w := httptest.NewRecorder()
			h.Router().ServeHTTP(w, req)
			assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
		})
	}
}
