package router

import (
	"reflect"

	"github.com/nabbar/netkit/reqctx"
)

// bindArguments builds the reflect.Call argument list for route against
// the already-path-shape-matched reqSegs and parsed query map.
//
// hardErr reports a present-but-invalid path or query value: this aborts
// the whole Dispatch with 400 (see router.go's Dispatch doc comment).
// soft reports a missing required query parameter: this only disqualifies
// route, letting Dispatch continue to the next candidate.
func bindArguments(ctx *reqctx.Context, route Route, reqSegs []string, query map[string]string) (args []reflect.Value, soft bool, hardErr bool) {
	ht := route.handler.Type()
	args = make([]reflect.Value, 0, ht.NumIn())
	args = append(args, reflect.ValueOf(ctx))

	argIdx := 1
	placeholderIdx := 0
	for _, s := range route.segments {
		if !s.placeholder {
			continue
		}
		raw := reqSegs[placeholderIdx]
		placeholderIdx++

		v, ok := coerce(ht.In(argIdx), &raw)
		if !ok {
			return nil, false, true
		}
		args = append(args, v)
		argIdx++
	}

	for _, q := range route.query {
		raw, present := query[q.name]

		if !present {
			if q.optional {
				args = append(args, reflect.Zero(ht.In(argIdx)))
				argIdx++
				continue
			}
			soft = true
			args = append(args, reflect.Zero(ht.In(argIdx)))
			argIdx++
			continue
		}

		v, ok := coerce(ht.In(argIdx), &raw)
		if !ok {
			return nil, false, true
		}
		args = append(args, v)
		argIdx++
	}

	return args, soft, false
}
