package api

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/elskow/tasktrack/internal/common"
)

// Code maps a domain error to its gRPC status code.
func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, common.ErrValidation):
		return codes.InvalidArgument
	case errors.Is(err, common.ErrDuplicateIdentity):
		return codes.AlreadyExists
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrUnauthenticated),
		errors.Is(err, common.ErrUserNotFound):
		return codes.Unauthenticated
	case errors.Is(err, common.ErrAccountLocked):
		return codes.FailedPrecondition
	case errors.Is(err, common.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, common.ErrForbidden):
		return codes.PermissionDenied
	default:
		return codes.Internal
	}
}

// ToStatus converts err into a gRPC status error. Internal failures carry a
// generic message; the detail belongs in the server log.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code := Code(err)
	if code == codes.Internal {
		return status.Error(codes.Internal, "internal server error")
	}
	return status.Error(code, err.Error())
}
