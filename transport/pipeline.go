// Package transport implements the connection state machine and TCP
// listener: PlainConnection, SslConnection, and DetectConnection share
// one read-header -> filter -> route -> write loop, with keep-alive
// looping and a timeout-monitor-backed read deadline. Grounded on
// original_source's netkit/http/connection.h (the BasicConnection<T>
// CRTP base plus its three concrete variants) and netkit/tcp/listener.h;
// the request pipeline stage is folded into connection.serve, matching
// how connection.h itself interleaves header-read, filter, and route.
package transport

import (
	"time"

	"github.com/nabbar/netkit/filter"
	"github.com/nabbar/netkit/logger"
	"github.com/nabbar/netkit/router"
)

// Limits bounds one connection's request parsing (header limit default
// 8KiB, body limit default 1MiB/0=unlimited, read timeout default 60s).
type Limits struct {
	HeaderBytes int
	BodyBytes   int
	ReadTimeout time.Duration
}

// DefaultLimits returns the documented defaults.
func DefaultLimits() Limits {
	return Limits{
		HeaderBytes: 8 * 1024,
		BodyBytes:   1024 * 1024,
		ReadTimeout: 60 * time.Second,
	}
}

// Pipeline bundles the immutable, connection-shared collaborators every
// Connection dispatches through: the compiled route table, the filter
// chain, the parsing limits, and a logger for swallowed transport I/O
// errors.
type Pipeline struct {
	Router  *router.Router
	Filters *filter.Chain
	Limits  Limits
	Log     logger.Logger
}
