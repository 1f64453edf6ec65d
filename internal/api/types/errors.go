package types

import (
	"strings"

	appErr "github.com/routeburn/product-flow/pkg/errors"
)

func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	code := string(appErr.CodeUnknown)
	if e, ok := err.(*appErr.AppError); ok {
		code = string(e.Code)
		out := &APIError{Code: code, Message: e.Message}
		if fields := appErr.ValidationFields(err); len(fields) > 0 {
			out.Details = "missing or empty: " + strings.Join(fields, ", ")
		}
		return out
	}
	return &APIError{Code: code, Message: err.Error()}
}
