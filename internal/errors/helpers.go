package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is forwards to errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code; nil is OK and foreign errors are Internal
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from the outermost *Error in the chain
func GetMeta(err error) map[string]interface{} {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsAborted checks if an error is an aborted error
func IsAborted(err error) bool {
	return GetCode(err) == CodeAborted
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

// IsRetryable reports whether err carries a retryable code
func IsRetryable(err error) bool {
	return err != nil && GetCode(err).Retryable()
}
