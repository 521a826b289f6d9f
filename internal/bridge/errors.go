package bridge

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	blk "github.com/SyedDaiam9101/policy-block/internal/block"
)

// toStatusError maps block lifecycle errors to gRPC status errors. The
// block's typed errors cross this boundary as status codes plus the
// bounded descriptive message; nothing propagates as a bare error.
func toStatusError(err error) error {
	if err == nil {
		return nil
	}

	var cfgErr *blk.ConfigurationError
	var loadErr *blk.ModelLoadError
	var notLoadedErr *blk.ModelNotLoadedError
	var infErr *blk.InferenceError

	switch {
	case errors.As(err, &cfgErr):
		return status.Errorf(codes.InvalidArgument, "%v", err)

	case errors.As(err, &loadErr):
		return status.Errorf(codes.FailedPrecondition, "%v", err)

	case errors.As(err, &notLoadedErr):
		return status.Errorf(codes.FailedPrecondition, "%v", err)

	case errors.As(err, &infErr):
		return status.Errorf(codes.Internal, "%v", err)

	default:
		return status.Errorf(codes.Internal, "internal error: %v", err)
	}
}

// invalidArgumentError creates an InvalidArgument gRPC error
func invalidArgumentError(format string, args ...interface{}) error {
	return status.Errorf(codes.InvalidArgument, format, args...)
}

// failedPreconditionError creates a FailedPrecondition gRPC error
func failedPreconditionError(format string, args ...interface{}) error {
	return status.Errorf(codes.FailedPrecondition, format, args...)
}

// notFoundError creates a NotFound gRPC error
func notFoundError(format string, args ...interface{}) error {
	return status.Errorf(codes.NotFound, format, args...)
}
