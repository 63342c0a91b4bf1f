package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/grimoire-api/internal/errors"
)

// Client calls the build service over a gRPC connection
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a build service client
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with req and decodes the reply into resp.
// resp may be a *structpb.Struct to keep the raw reply, or nil to discard it.
func (c *Client) Call(ctx context.Context, method string, req, resp interface{}) error {
	in, err := Encode(req)
	if err != nil {
		return err
	}

	out, ok := resp.(*structpb.Struct)
	if !ok {
		out = new(structpb.Struct)
	}
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out); err != nil {
		return errors.FromGRPCError(err)
	}

	if ok || resp == nil {
		return nil
	}
	return Decode(out, resp, false)
}
