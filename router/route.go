package router

import (
	"reflect"
	"strings"

	liberr "github.com/nabbar/netkit/errors"
	"github.com/nabbar/netkit/reqctx"
)

var ctxType = reflect.TypeOf((*reqctx.Context)(nil))

// Route is a compiled registration: an HTTP method set (nil/empty means
// wildcard), a sequence of path segments, an ordered list of declared
// query parameters, and the reflected handler.
type Route struct {
	methods  map[string]bool // nil/empty = any method
	segments []segment
	query    []queryParam
	handler  reflect.Value
	pattern  string
}

func normalizeMethods(methods []string) map[string]bool {
	if len(methods) == 0 {
		return nil
	}
	out := make(map[string]bool, len(methods))
	for _, m := range methods {
		out[strings.ToUpper(m)] = true
	}
	return out
}

func (r Route) allowsMethod(method string) bool {
	if len(r.methods) == 0 {
		return true
	}
	return r.methods[strings.ToUpper(method)]
}

// compileRoute validates and compiles a pattern + handler into a Route.
// handler must be a func whose first parameter is *reqctx.Context,
// followed by one parameter per path placeholder (in path order) and then
// one parameter per declared query name (in pattern order). A pointer
// parameter type marks that query argument optional.
func compileRoute(pattern string, methods []string, handler interface{}) (Route, liberr.Error) {
	hv := reflect.ValueOf(handler)
	if hv.Kind() != reflect.Func {
		return Route{}, liberr.ErrMalformedReq.Errorf("handler for pattern %q is not a function", pattern)
	}
	ht := hv.Type()

	pathPart, queryPart := splitPattern(pattern)
	segs := compileSegments(pathPart)
	queryNames, derr := compileQueryNames(queryPart)
	if derr != nil {
		return Route{}, derr
	}

	nPlaceholders := 0
	for _, s := range segs {
		if s.placeholder {
			nPlaceholders++
		}
	}

	wantIn := 1 + nPlaceholders + len(queryNames)
	if ht.NumIn() != wantIn {
		return Route{}, liberr.ErrMalformedReq.Errorf(
			"handler for pattern %q expects %d arguments (ctx + %d path + %d query), got %d",
			pattern, wantIn, nPlaceholders, len(queryNames), ht.NumIn())
	}
	if ht.In(0) != ctxType {
		return Route{}, liberr.ErrMalformedReq.Errorf("handler for pattern %q must take *reqctx.Context as its first argument", pattern)
	}

	query := make([]queryParam, len(queryNames))
	for i, name := range queryNames {
		argType := ht.In(1 + nPlaceholders + i)
		query[i] = queryParam{name: name, optional: isOptional(argType)}
	}

	return Route{
		methods:  normalizeMethods(methods),
		segments: segs,
		query:    query,
		handler:  hv,
		pattern:  pattern,
	}, nil
}
