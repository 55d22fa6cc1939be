package waveform

import "errors"

// Error represents waveform-related errors
type Error struct {
	Kind    Kind   `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeParameter  = "INVALID_PARAMETER"
	ErrCodeDomain     = "OUT_OF_DOMAIN"
	ErrCodeCapability = "MISSING_CAPABILITY"
)

// NewError creates a new waveform error
func NewError(kind Kind, code, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func hasCode(err error, code string) bool {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Code == code
	}
	return false
}

// IsParameterError reports whether err is a construction-time parameter error
func IsParameterError(err error) bool {
	return hasCode(err, ErrCodeParameter)
}

// IsDomainError reports whether err is an out-of-domain evaluation error
func IsDomainError(err error) bool {
	return hasCode(err, ErrCodeDomain)
}

// IsCapabilityError reports whether err is a missing-capability error
func IsCapabilityError(err error) bool {
	return hasCode(err, ErrCodeCapability)
}
