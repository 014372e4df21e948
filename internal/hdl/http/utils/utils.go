package utils

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/JMURv/attendance-guard/internal/hdl"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var validate = validator.New()

type Response struct {
	Data any `json:"data"`
}

type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(&Response{Data: data}); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	ErrsResponse(w, statusCode, []string{err.Error()})
}

func ErrsResponse(w http.ResponseWriter, statusCode int, errs []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(&ErrorsResponse{Errors: errs}); err != nil {
		zap.L().Error("failed to encode error response", zap.Error(err))
	}
}

// ParseAndValidate decodes the JSON body into dst and runs its validate tags.
// An empty body decodes to the zero value. On failure the 400 response is
// already written.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		zap.L().Debug("failed to decode request", zap.String("path", r.URL.Path), zap.Error(err))
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			ErrResponse(w, http.StatusBadRequest, err)
			return false
		}

		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed on the %s rule", fe.Field(), fe.Tag()))
		}
		ErrsResponse(w, http.StatusBadRequest, msgs)
		return false
	}

	return true
}
