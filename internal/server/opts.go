package server

import (
	"os"
	"runtime/debug"

	"github.com/shravanasati/pageserver/internal/logging"
	"github.com/shravanasati/pageserver/internal/resolve"
)

// DefaultAddress is where the server listens when no address is given.
const DefaultAddress = "0.0.0.0:8080"

type ServerOpts struct {
	// The address for the server to listen on.
	Address string

	// Policy maps request paths to files. Defaults to resolve.Unified.
	Policy resolve.Policy

	// Logger receives access lines and errors. Defaults to plain logging on stderr.
	Logger logging.Logger

	// Recovery receives the value recovered from a connection handler that
	// panicked. Nothing is written to such a connection; it is closed once
	// Recovery returns.
	Recovery func(any)
}

func defaultRecovery(logger logging.Logger) func(any) {
	return func(r any) {
		logger.Errorf("connection aborted: %v\n%s", r, debug.Stack())
	}
}

func (o *ServerOpts) setDefaults() {
	if o.Address == "" {
		o.Address = DefaultAddress
	}
	if o.Policy == nil {
		o.Policy = resolve.Unified
	}
	if o.Logger == nil {
		o.Logger = logging.NewPlain(os.Stderr)
	}
	if o.Recovery == nil {
		o.Recovery = defaultRecovery(o.Logger)
	}
}
