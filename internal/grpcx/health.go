// Package grpcx serves the standard gRPC health protocol next to the HTTP API.
package grpcx

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name probes pass to Health/Check.
const ServiceName = "cornerstore"

type Health struct {
	Server *grpc.Server
	status *health.Server
}

// NewHealth registers the health service; every service starts NOT_SERVING.
func NewHealth() *Health {
	h := &Health{
		Server: grpc.NewServer(),
		status: health.NewServer(),
	}
	healthpb.RegisterHealthServer(h.Server, h.status)
	h.SetServing(false)
	return h
}

// SetServing flips both the overall ("") and the named service status.
func (h *Health) SetServing(ok bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		st = healthpb.HealthCheckResponse_SERVING
	}
	h.status.SetServingStatus("", st)
	h.status.SetServingStatus(ServiceName, st)
}

// Stop marks everything NOT_SERVING and drains in-flight calls.
func (h *Health) Stop() {
	h.status.Shutdown()
	h.Server.GracefulStop()
}
