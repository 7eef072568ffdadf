// Package delivery defines the common contract for transport servers.
package delivery

import "context"

// Delivery is implemented by every serving surface (HTTP API, realtime
// gateway, push worker). Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
