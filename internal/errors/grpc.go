package errors

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	// Check if it's our custom error
	var customErr *Error
	if As(err, &customErr) {
		st := status.New(customErr.Code.GRPCCode(), chainMessage(customErr))

		// Add metadata if present
		if len(customErr.Meta) > 0 {
			if details, err := detailsStruct(customErr); err == nil {
				if withDetails, err := st.WithDetails(details); err == nil {
					st = withDetails
				}
			}
		}

		return st.Err()
	}

	// Default to internal error
	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	code := codeFromGRPC(st.Code())

	// Create base error
	customErr := &Error{
		Code:    code,
		Message: st.Message(),
	}

	// Extract details if present
	for _, detail := range st.Details() {
		if details, ok := detail.(*structpb.Struct); ok {
			code, meta := metaFromDetails(details)
			if code != "" {
				customErr.Code = code
			}
			customErr.Meta = meta
			break
		}
	}

	return customErr
}

// chainMessage joins the messages of e and its causes without repeating the codes
func chainMessage(e *Error) string {
	msg := e.Message
	for cause := e.Cause; cause != nil; {
		var next *Error
		if !As(cause, &next) {
			return msg + ": " + cause.Error()
		}
		msg += ": " + next.Message
		cause = next.Cause
	}
	return msg
}

// detailsStruct encodes the error code, message and metadata as a status detail.
// Metadata goes through JSON so typed values such as issue lists survive the trip.
func detailsStruct(e *Error) (*structpb.Struct, error) {
	raw, err := json.Marshal(e.Meta)
	if err != nil {
		return nil, err
	}
	var meta map[string]interface{}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]interface{}{
		"code":    string(e.Code),
		"message": e.Message,
		"meta":    meta,
	})
}

// metaFromDetails reads metadata back out of a detail written by detailsStruct
func metaFromDetails(details *structpb.Struct) (Code, map[string]interface{}) {
	fields := details.GetFields()
	code := Code(fields["code"].GetStringValue())
	meta := fields["meta"].GetStructValue()
	if meta == nil {
		return code, nil
	}
	return code, meta.AsMap()
}
