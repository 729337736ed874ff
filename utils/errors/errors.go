package errors

import "github.com/omartarek/e-commerce-api/constant"

type CustomError struct {
	errType    constant.ErrorType
	violations []string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// Violations lists every violated input constraint, one message each.
// Empty for non-validation errors.
func (c CustomError) Violations() []string {
	return c.violations
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetValidationError builds an invalid-request error carrying the full
// list of violated constraints.
func SetValidationError(violations []string) CustomError {
	return CustomError{
		errType:    constant.ErrInvalidRequest,
		violations: violations,
	}
}
