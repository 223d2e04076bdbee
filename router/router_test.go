package router_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/netkit/reqctx"
	"github.com/nabbar/netkit/router"
)

func TestRouter(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "router suite")
}

func newCtx(method, target string) *reqctx.Context {
	req := httpRequest(method, target)
	return reqctx.New(discardWriter{}, req)
}

var _ = Describe("Dispatch", func() {
	It("matches a literal route", func() {
		r := router.New()
		called := false
		_ = r.AddRoute("/health", []string{"GET"}, func(ctx *reqctx.Context) error {
			called = true
			return ctx.OK()
		})

		res := r.Dispatch(newCtx("GET", "/health"), "GET", "/health")
		Expect(res.Outcome).To(Equal(router.Dispatched))
		Expect(called).To(BeTrue())
	})

	It("binds a path placeholder positionally", func() {
		r := router.New()
		var got string
		_ = r.AddRoute("/users/{id}", []string{"GET"}, func(ctx *reqctx.Context, id string) error {
			got = id
			return ctx.OK()
		})

		res := r.Dispatch(newCtx("GET", "/users/42"), "GET", "/users/42")
		Expect(res.Outcome).To(Equal(router.Dispatched))
		Expect(got).To(Equal("42"))
	})

	It("coerces an integer path placeholder", func() {
		r := router.New()
		var got int
		_ = r.AddRoute("/users/{id}", []string{"GET"}, func(ctx *reqctx.Context, id int) error {
			got = id
			return ctx.OK()
		})

		res := r.Dispatch(newCtx("GET", "/users/42"), "GET", "/users/42")
		Expect(res.Outcome).To(Equal(router.Dispatched))
		Expect(got).To(Equal(42))
	})

	It("returns NotFound when no route's path shape matches", func() {
		r := router.New()
		_ = r.AddRoute("/health", []string{"GET"}, func(ctx *reqctx.Context) error { return ctx.OK() })

		res := r.Dispatch(newCtx("GET", "/missing"), "GET", "/missing")
		Expect(res.Outcome).To(Equal(router.NotFound))
	})

	It("returns MethodNotAllowed with an Allow header for a literal path/method mismatch", func() {
		r := router.New()
		_ = r.AddRoute("/health", []string{"GET", "HEAD"}, func(ctx *reqctx.Context) error { return ctx.OK() })

		res := r.Dispatch(newCtx("POST", "/health"), "POST", "/health")
		Expect(res.Outcome).To(Equal(router.MethodNotAllowed))
		Expect(res.AllowHeader).To(Equal("GET,HEAD"))
	})

	It("disqualifies a candidate route on a missing required query parameter but keeps matching", func() {
		r := router.New()
		_ = r.AddRoute("/search?name1", []string{"GET"}, func(ctx *reqctx.Context, name1 string) error { return ctx.OK() })
		fallbackCalled := false
		_ = r.AddRoute("/search", []string{"GET"}, func(ctx *reqctx.Context) error {
			fallbackCalled = true
			return ctx.OK()
		})

		res := r.Dispatch(newCtx("GET", "/search"), "GET", "/search")
		Expect(res.Outcome).To(Equal(router.Dispatched))
		Expect(fallbackCalled).To(BeTrue())
	})

	It("returns BadRequest when a present query argument fails coercion", func() {
		r := router.New()
		_ = r.AddRoute("/items?limit", []string{"GET"}, func(ctx *reqctx.Context, limit int) error { return ctx.OK() })

		res := r.Dispatch(newCtx("GET", "/items?limit=notanumber"), "GET", "/items?limit=notanumber")
		Expect(res.Outcome).To(Equal(router.BadRequest))
	})

	It("binds an optional query parameter via a pointer type", func() {
		r := router.New()
		var got *string
		_ = r.AddRoute("/items?tag", []string{"GET"}, func(ctx *reqctx.Context, tag *string) error {
			got = tag
			return ctx.OK()
		})

		res := r.Dispatch(newCtx("GET", "/items"), "GET", "/items")
		Expect(res.Outcome).To(Equal(router.Dispatched))
		Expect(got).To(BeNil())
	})

	It("rejects duplicate query parameter names at registration", func() {
		r := router.New()
		err := r.AddRoute("/dup?name&name", []string{"GET"}, func(ctx *reqctx.Context, a, b string) error { return ctx.OK() })
		Expect(err).ToNot(BeNil())
	})

	It("does not let a placeholder route participate in the 404-vs-405 decision", func() {
		r := router.New()
		_ = r.AddRoute("/items/{id}", []string{"GET"}, func(ctx *reqctx.Context, id string) error { return ctx.OK() })

		res := r.Dispatch(newCtx("POST", "/items/7"), "POST", "/items/7")
		Expect(res.Outcome).To(Equal(router.NotFound))
	})

	It("matches routes in insertion order, stopping at the first full match", func() {
		r := router.New()
		var hit string
		_ = r.AddRoute("/a/{x}", []string{"GET"}, func(ctx *reqctx.Context, x string) error {
			hit = "first"
			return ctx.OK()
		})
		_ = r.AddRoute("/a/{x}", []string{"GET"}, func(ctx *reqctx.Context, x string) error {
			hit = "second"
			return ctx.OK()
		})

		r.Dispatch(newCtx("GET", "/a/1"), "GET", "/a/1")
		Expect(hit).To(Equal("first"))
	})
})
