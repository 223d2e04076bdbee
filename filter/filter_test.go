package filter_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/netkit/digest"
	"github.com/nabbar/netkit/filter"
	"github.com/nabbar/netkit/httpmsg"
	"github.com/nabbar/netkit/reqctx"
)

func TestFilter(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "filter suite")
}

type recordingWriter struct {
	resp httpmsg.Response
	got  bool
}

func (w *recordingWriter) WriteResponse(resp httpmsg.Response) error {
	w.resp = resp
	w.got = true
	return nil
}

func newCtx(method, target string, headers map[string]string) (*reqctx.Context, *recordingWriter) {
	h := httpmsg.NewHeader()
	for k, v := range headers {
		h.Add(k, v)
	}
	req := httpmsg.Request{Method: method, Target: target, Version: "HTTP/1.1", Header: h}
	w := &recordingWriter{}
	return reqctx.New(w, req), w
}

var _ = Describe("CORS", func() {
	It("passes a same-origin request through untouched", func() {
		c := filter.NewCORS([]string{"example.com"}, nil, []string{"GET"}, nil, 600)
		ctx, _ := newCtx("GET", "/x", nil)
		Expect(c.OnIncomingRequest(ctx)).To(Equal(filter.Passed))
	})

	It("rejects a disallowed origin with 403", func() {
		c := filter.NewCORS([]string{"example.com"}, nil, []string{"GET"}, nil, 600)
		ctx, w := newCtx("GET", "/x", map[string]string{"Origin": "http://evil.com"})
		Expect(c.OnIncomingRequest(ctx)).To(Equal(filter.Responded))
		Expect(w.got).To(BeTrue())
		Expect(w.resp.Status).To(Equal(403))
	})

	It("annotates an allowed-origin response with CORS headers", func() {
		c := filter.NewCORS([]string{"http://example.com"}, []string{"content-type"}, []string{"GET", "POST"}, nil, 600)
		ctx, w := newCtx("GET", "/x", map[string]string{"Origin": "http://example.com"})
		Expect(c.OnIncomingRequest(ctx)).To(Equal(filter.Passed))

		chain := filter.NewChain(c)
		chain.Attach(ctx)
		Expect(ctx.OK()).To(BeNil())

		Expect(w.resp.Header.Get("Access-Control-Allow-Origin")).To(Equal("http://example.com"))
		Expect(w.resp.Header.Get("Access-Control-Allow-Methods")).To(Equal("GET,POST"))
	})

	It("answers an OPTIONS preflight for an allowed method", func() {
		c := filter.NewCORS([]string{"http://example.com"}, []string{"content-type"}, []string{"GET"}, nil, 600)
		ctx, w := newCtx("OPTIONS", "/x", map[string]string{
			"Origin":                         "http://example.com",
			"Access-Control-Request-Method":  "GET",
			"Access-Control-Request-Headers": "content-type",
		})
		Expect(c.OnIncomingRequest(ctx)).To(Equal(filter.Responded))
		Expect(w.resp.Status).To(Equal(200))
	})

	It("rejects a preflight for a disallowed method", func() {
		c := filter.NewCORS([]string{"http://example.com"}, nil, []string{"GET"}, nil, 600)
		ctx, w := newCtx("OPTIONS", "/x", map[string]string{
			"Origin":                        "http://example.com",
			"Access-Control-Request-Method": "DELETE",
		})
		Expect(c.OnIncomingRequest(ctx)).To(Equal(filter.Responded))
		Expect(w.resp.Status).To(Equal(403))
	})
})

var _ = Describe("DigestAuth", func() {
	lookup := func(user string) (string, bool) {
		if user == "Mufasa" {
			return "Circle Of Life", true
		}
		return "", false
	}

	It("challenges a request with no Authorization header", func() {
		d := filter.NewDigestAuth("realm", lookup)
		ctx, w := newCtx("GET", "/dir/index.html", nil)
		Expect(d.OnIncomingRequest(ctx)).To(Equal(filter.Responded))
		Expect(w.resp.Status).To(Equal(401))
		Expect(w.resp.Header.Get("WWW-Authenticate")).NotTo(BeEmpty())
	})

	It("accepts a correctly computed response and rejects a wrong one", func() {
		d := filter.NewDigestAuth("realm", lookup)

		ctx1, w1 := newCtx("GET", "/dir/index.html", nil)
		d.OnIncomingRequest(ctx1)
		challengeHeader := w1.resp.Header.Get("WWW-Authenticate")
		challenge, err := digest.ParseWwwAuthenticate(challengeHeader)
		Expect(err).To(BeNil())

		resp := challenge.MakeResponse("Mufasa", "Circle Of Life", "GET", "/dir/index.html")
		auth := digest.AuthorizationDigest{
			Username: "Mufasa",
			Realm:    challenge.Realm,
			Nonce:    challenge.Nonce,
			URI:      "/dir/index.html",
			Response: resp,
		}

		ctx2, w2 := newCtx("GET", "/dir/index.html", map[string]string{"Authorization": auth.String()})
		Expect(d.OnIncomingRequest(ctx2)).To(Equal(filter.Passed))
		Expect(w2.got).To(BeFalse())

		auth.Response = "0000000000000000000000000000000"
		ctx3, w3 := newCtx("GET", "/dir/index.html", map[string]string{"Authorization": auth.String()})
		Expect(d.OnIncomingRequest(ctx3)).To(Equal(filter.Responded))
		Expect(w3.resp.Status).To(Equal(401))
	})
})
