package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/creditline/internal/apartment"
	"github.com/mmynk/creditline/internal/calculator"
	"github.com/mmynk/creditline/internal/customers"
	"github.com/mmynk/creditline/internal/storage"
)

// toConnectError maps store and validation errors onto Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, apartment.ErrInvalid),
		errors.Is(err, calculator.ErrInvalidAmount),
		errors.Is(err, customers.ErrInvalidForm),
		errors.Is(err, customers.ErrInvalidTransaction),
		errors.Is(err, errInvalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// errInvalidArgument marks request fields the service itself rejects.
var errInvalidArgument = errors.New("invalid argument")
