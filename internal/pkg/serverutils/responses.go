package serverutils

type WebResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

type WebError struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Error   string `json:"error"`
}

type WebValidationError struct {
	Success bool          `json:"success"`
	Error   string        `json:"error"`
	Details []ErrorDetail `json:"details"`
}

func SuccessResponse[T any](message string, data T) WebResponse[T] {
	return WebResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) WebError {
	return WebError{
		Success: false,
		Code:    code,
		Error:   message,
	}
}

func ValidationErrorResponse(details []ErrorDetail) WebValidationError {
	return WebValidationError{
		Success: false,
		Error:   "validation failed",
		Details: details,
	}
}
