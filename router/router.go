package router

import (
	"sort"
	"strings"

	liberr "github.com/nabbar/netkit/errors"
	"github.com/nabbar/netkit/reqctx"
)

const wildcardBucket = "\x00wildcard"

// Router owns the route table (insertion-order) plus a lookup index
// keyed by literal first-path-segment for pruning. Routes are only added
// during setup; the table is read-only once serving begins.
type Router struct {
	routes []Route
	index  map[string][]int // literal first segment -> sorted route indices
}

// New returns an empty Router.
func New() *Router {
	return &Router{index: make(map[string][]int)}
}

// AddRoute compiles pattern and registers handler for methods (empty
// means any method). Returns an error if the handler's signature does
// not match the pattern's placeholder/query arity, or if the query
// parameter list contains a duplicate name.
func (r *Router) AddRoute(pattern string, methods []string, handler interface{}) error {
	route, err := compileRoute(pattern, methods, handler)
	if err != nil {
		return err
	}

	idx := len(r.routes)
	r.routes = append(r.routes, route)

	key := wildcardBucket
	if len(route.segments) > 0 && !route.segments[0].placeholder {
		key = route.segments[0].literal
	}
	r.index[key] = append(r.index[key], idx)

	return nil
}

// Outcome classifies the result of a Dispatch call: Dispatched when a
// handler ran, otherwise which error response the caller should send.
type Outcome int

const (
	// Dispatched means a handler ran and produced (or will produce) the
	// response itself.
	Dispatched Outcome = iota
	// NotFound means no registered route's path shape matched the target.
	NotFound
	// MethodNotAllowed means a literal route's path matched but not its
	// method set; AllowHeader carries the Allow header value.
	MethodNotAllowed
	// BadRequest means a path+method candidate existed but a present
	// query or path argument failed type coercion.
	BadRequest
)

// Result is what Dispatch returns; AllowHeader is set only for
// MethodNotAllowed.
type Result struct {
	Outcome     Outcome
	AllowHeader string
}

// Dispatch matches method/target against the route table in insertion
// order and, on the first full match, invokes the bound handler with ctx
// and the coerced path+query arguments. It returns Dispatched if a
// handler ran; otherwise it returns a Result describing which of
// 404/405/400 the caller should respond with.
//
// Path-coercion or present-but-invalid query coercion aborts matching
// immediately with BadRequest rather than falling through to a more
// general route: this mirrors the reference implementation's
// exception-propagating router (original_source's connection.h wraps
// Routing() in one try/catch), where a malformed argument value is a hard
// parse failure, not a soft "try the next candidate" signal. A missing
// required query parameter, by contrast, is a soft disqualification that
// does let matching continue.
func (r *Router) Dispatch(ctx *reqctx.Context, method, target string) Result {
	path, rawQuery := splitTargetPathQuery(target)
	reqSegs := splitPathSegments(path)
	query := parseQuery(rawQuery)

	pathMatchedLiteral := false // used only for the 404-vs-405 decision

	for _, idx := range r.candidateIndices(reqSegs) {
		route := r.routes[idx]
		if !pathShapeMatches(route.segments, reqSegs) {
			continue
		}

		allPlaceholders := routeHasNoPlaceholders(route.segments)
		if allPlaceholders {
			pathMatchedLiteral = true
		}

		if !route.allowsMethod(method) {
			continue
		}

		args, soft, hardErr := bindArguments(ctx, route, reqSegs, query)
		if hardErr {
			return Result{Outcome: BadRequest}
		}
		if soft {
			continue
		}

		route.handler.Call(args)
		return Result{Outcome: Dispatched}
	}

	if pathMatchedLiteral {
		return Result{Outcome: MethodNotAllowed, AllowHeader: r.allowHeaderFor(reqSegs)}
	}
	return Result{Outcome: NotFound}
}

// routeHasNoPlaceholders reports whether every segment is literal. Used to
// scope the 405 decision to purely-literal patterns — see the Dispatch
// doc comment and DESIGN.md for why placeholder-bearing routes don't
// participate in that decision.
func routeHasNoPlaceholders(segs []segment) bool {
	for _, s := range segs {
		if s.placeholder {
			return false
		}
	}
	return true
}

func (r *Router) candidateIndices(reqSegs []string) []int {
	var out []int
	if len(reqSegs) > 0 {
		out = append(out, r.index[reqSegs[0]]...)
	}
	out = append(out, r.index[wildcardBucket]...)
	sort.Ints(out)
	return out
}

func (r *Router) allowHeaderFor(reqSegs []string) string {
	seen := make(map[string]bool)
	var methods []string
	for _, route := range r.routes {
		if !routeHasNoPlaceholders(route.segments) {
			continue
		}
		if !pathShapeMatches(route.segments, reqSegs) {
			continue
		}
		for m := range route.methods {
			if !seen[m] {
				seen[m] = true
				methods = append(methods, m)
			}
		}
	}
	sort.Strings(methods)
	return strings.Join(methods, ",")
}

func pathShapeMatches(segs []segment, reqSegs []string) bool {
	if len(segs) != len(reqSegs) {
		return false
	}
	for i, s := range segs {
		if !s.placeholder && s.literal != reqSegs[i] {
			return false
		}
	}
	return true
}

func splitTargetPathQuery(target string) (path, query string) {
	if i := strings.IndexByte(target, '?'); i >= 0 {
		return target[:i], target[i+1:]
	}
	return target, ""
}

// NewRouterError is a convenience constructor for callers that need a
// liberr.Error tied to a routing failure code, e.g. when wiring Dispatch's
// Result into an httpmsg.Response outside this package.
func NewRouterError(code liberr.CodeError) liberr.Error {
	return code.Error(nil)
}
