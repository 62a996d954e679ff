package model

import (
	"context"
	"net"
)

// SecurityLayer produces the network listener the server runs on, either
// plain TCP or TLS depending on configuration.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is the transport-facing lifecycle: serve until stopped, then shut
// down gracefully.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
