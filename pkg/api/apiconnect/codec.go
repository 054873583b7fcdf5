// Package apiconnect wires the api messages to Connect handlers and clients.
package apiconnect

import (
	"connectrpc.com/connect"
	"github.com/bytedance/sonic"
)

// JSONCodec marshals api messages as JSON. The api messages are plain Go
// structs, so the default protobuf codecs do not apply.
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

// Name is the codec name advertised in the Content-Type (application/json).
func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return sonic.ConfigStd.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return sonic.ConfigStd.Unmarshal(data, msg)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
}
