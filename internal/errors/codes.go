package errors

import "google.golang.org/grpc/codes"

// Code represents an error code. Codes mirror the gRPC status codes one to one.
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

var toGRPC = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodePermissionDenied:   codes.PermissionDenied,
	CodeResourceExhausted:  codes.ResourceExhausted,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeAborted:            codes.Aborted,
	CodeOutOfRange:         codes.OutOfRange,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
	CodeDataLoss:           codes.DataLoss,
	CodeUnauthenticated:    codes.Unauthenticated,
}

var fromGRPC = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(toGRPC))
	for c, g := range toGRPC {
		m[g] = c
	}
	return m
}()

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the matching gRPC code, or Unknown for codes outside the table
func (c Code) GRPCCode() codes.Code {
	if g, ok := toGRPC[c]; ok {
		return g
	}
	return codes.Unknown
}

// codeFromGRPC maps a gRPC code back; anything unmapped is Internal
func codeFromGRPC(g codes.Code) Code {
	if c, ok := fromGRPC[g]; ok {
		return c
	}
	return CodeInternal
}

// Retryable reports whether the same request may succeed if sent again.
// Aborted means a revision conflict; the caller should reload before retrying.
func (c Code) Retryable() bool {
	switch c {
	case CodeAborted, CodeUnavailable, CodeDeadlineExceeded:
		return true
	default:
		return false
	}
}

// ServerFault reports whether the code points at the server rather than the request
func (c Code) ServerFault() bool {
	switch c {
	case CodeInternal, CodeUnavailable, CodeDataLoss, CodeUnimplemented:
		return true
	default:
		return false
	}
}
