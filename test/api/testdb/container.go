//go:build api

// Package testdb starts the MongoDB, Redis and MinIO containers the API suite runs against.
package testdb

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
)

const startupTimeout = 2 * time.Minute

// startContainer runs req and returns the container with the host:port of its lowest exposed port.
func startContainer(ctx context.Context, req testcontainers.ContainerRequest) (testcontainers.Container, string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("start %s: %w", req.Image, err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", fmt.Errorf("resolve %s endpoint: %w", req.Image, err)
	}
	return container, endpoint, nil
}
