package v1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/grimoire-api/internal/errors"
)

// Encode renders a message as a Struct through its JSON form
func Encode(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode message")
	}
	fields := map[string]interface{}{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrapf(err, "failed to encode message")
	}
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode message")
	}
	return out, nil
}

// Decode fills v from a Struct. Unknown fields are rejected when strict is set.
func Decode(in *structpb.Struct, v interface{}, strict bool) error {
	raw, err := json.Marshal(in.AsMap())
	if err != nil {
		return errors.Wrapf(err, "failed to read message")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	return nil
}
