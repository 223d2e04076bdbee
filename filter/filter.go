// Package filter implements a request/response filter chain: a Filter
// can inspect and short-circuit an incoming request, and annotate an
// outgoing response, before the core router dispatches or the connection
// writes. Grounded on original_source's netkit/http/filter.h and the
// CORS/digest filters built on top of it.
package filter

import (
	"github.com/nabbar/netkit/httpmsg"
	"github.com/nabbar/netkit/reqctx"
)

// Result reports what an incoming-request filter decided.
type Result int

const (
	// Passed means the request continues to the next filter, or to routing
	// if this was the last one.
	Passed Result = iota
	// Responded means the filter already wrote ctx's response; the chain
	// and the router must not run further.
	Responded
)

// Filter is one stage of the chain. OnIncomingRequest runs in
// registration order before routing; a filter that responds stops the
// chain. OnOutgoingResponse runs in the same registration order (not
// reversed) on every response that reaches the wire, whether produced by
// a handler or by an earlier filter.
type Filter interface {
	OnIncomingRequest(ctx *reqctx.Context) Result
	OnOutgoingResponse(ctx *reqctx.Context, resp *httpmsg.Response)
}

// Chain runs a fixed, ordered list of Filters around one request's
// lifecycle.
type Chain struct {
	filters []Filter
}

// NewChain builds a Chain from filters, preserving their order.
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Attach installs this chain's outbound hook on ctx, so that any response
// ctx eventually writes is first passed through every filter's
// OnOutgoingResponse, in registration order.
func (c *Chain) Attach(ctx *reqctx.Context) {
	ctx.SetOutboundHook(func(resp *httpmsg.Response) {
		for _, f := range c.filters {
			f.OnOutgoingResponse(ctx, resp)
		}
	})
}

// RunIncoming runs every filter's OnIncomingRequest in order, stopping at
// the first one that responds. It reports Responded if the request
// should not proceed to routing.
func (c *Chain) RunIncoming(ctx *reqctx.Context) Result {
	for _, f := range c.filters {
		if f.OnIncomingRequest(ctx) == Responded {
			return Responded
		}
	}
	return Passed
}
