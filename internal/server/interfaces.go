// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled and
	// every transport has shut down, or until a transport fails to serve.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server within ctx's deadline.
	Shutdown(ctx context.Context) error
}
