package transport

import (
	"encoding/json"
	"net/http"

	"github.com/omartarek/e-commerce-api/constant"
	"github.com/omartarek/e-commerce-api/utils/errors"
)

type response struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Violations []string    `json:"violations,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	customErr, ok := err.(errors.CustomError)
	if !ok {
		customErr = errors.SetCustomError(constant.ErrInternal)
	}

	w.WriteHeader(customErr.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(response{
		Code:       customErr.ErrorCode(),
		Message:    customErr.Error(),
		Violations: customErr.Violations(),
	})
}
