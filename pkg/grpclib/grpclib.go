package grpclib

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecoveryHandlerFunc converts panics inside handlers into internal errors.
func RecoveryHandlerFunc(p interface{}) error {
	return status.Errorf(codes.Internal, "%v", p)
}
