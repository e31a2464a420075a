package models

// APIError is the coded error envelope returned on non-2xx responses.
// The message is serialized under "error" so clients can read it
// without caring about the code.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Entity-specific errors
	ErrPizzaNotFound      = "PIZZA_NOT_FOUND"
	ErrAreaNotFound       = "AREA_NOT_FOUND"
	ErrOrderNotFound      = "ORDER_NOT_FOUND"
	ErrUserNotFound       = "USER_NOT_FOUND"
	ErrEmailTaken         = "EMAIL_ALREADY_REGISTERED"
	ErrInvalidOrderData   = "ORDER_INVALID_DATA"
	ErrInvalidCredentials = "INVALID_CREDENTIALS"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string) APIError {
	return APIError{Code: code, Message: message}
}
