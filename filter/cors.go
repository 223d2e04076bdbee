package filter

import (
	"strconv"
	"strings"

	"github.com/nabbar/netkit/httpmsg"
	"github.com/nabbar/netkit/reqctx"
)

// CORS implements cross-origin request handling: simple-request origin
// verification plus OPTIONS preflight. Grounded on original_source's
// netkit/http/cors_filter.h/.cpp.
type CORS struct {
	AllowAnyOrigins bool
	AllowOrigins    []string // normalized lowercase, :80/:443 stripped, at New time
	AllowAnyHeaders bool
	AllowHeaders    []string // normalized lowercase
	AllowMethods    []string // normalized uppercase
	ExposeHeaders   []string
	MaxAge          int
}

// NewCORS builds a CORS filter, normalizing origins/headers/methods the
// same way the source's setters do (strip default ports, case-fold).
func NewCORS(allowOrigins, allowHeaders, allowMethods, exposeHeaders []string, maxAge int) *CORS {
	c := &CORS{
		AllowAnyOrigins: containsStar(allowOrigins),
		AllowAnyHeaders: containsStar(allowHeaders),
		ExposeHeaders:   exposeHeaders,
		MaxAge:          maxAge,
	}

	for _, o := range allowOrigins {
		c.AllowOrigins = append(c.AllowOrigins, strings.ToLower(stripDefaultPort(o)))
	}
	for _, h := range allowHeaders {
		c.AllowHeaders = append(c.AllowHeaders, strings.ToLower(h))
	}
	for _, m := range allowMethods {
		c.AllowMethods = append(c.AllowMethods, strings.ToUpper(m))
	}

	return c
}

func containsStar(vs []string) bool {
	for _, v := range vs {
		if v == "*" {
			return true
		}
	}
	return false
}

func stripDefaultPort(origin string) string {
	if strings.HasSuffix(origin, ":80") {
		return strings.TrimSuffix(origin, ":80")
	}
	if strings.HasSuffix(origin, ":443") {
		return strings.TrimSuffix(origin, ":443")
	}
	return origin
}

// OnIncomingRequest handles OPTIONS as a preflight request and verifies
// Origin on every other request.
func (c *CORS) OnIncomingRequest(ctx *reqctx.Context) Result {
	ctx.SetOrigin("")
	req := ctx.Request()

	if req.Method == "OPTIONS" {
		return c.handleOptions(ctx)
	}

	origin := req.Header.Get("Origin")
	if origin == "" {
		return Passed
	}

	allowed := c.verifyOrigin(origin)
	if allowed == "" {
		ctx.Forbidden("Origin not allowed")
		return Responded
	}

	ctx.SetOrigin(allowed)
	return Passed
}

// OnOutgoingResponse annotates resp with the CORS response headers when
// an origin was verified for this request.
func (c *CORS) OnOutgoingResponse(ctx *reqctx.Context, resp *httpmsg.Response) {
	origin := ctx.Origin()
	if origin == "" {
		return
	}

	resp.Header.Set("Access-Control-Allow-Origin", origin)
	if c.AllowAnyHeaders {
		resp.Header.Set("Access-Control-Allow-Headers", "*")
	} else if len(c.AllowHeaders) > 0 {
		resp.Header.Set("Access-Control-Allow-Headers", strings.Join(c.AllowHeaders, ","))
	}
	resp.Header.Set("Access-Control-Allow-Methods", strings.Join(c.AllowMethods, ","))
	resp.Header.Set("Access-Control-Max-Age", strconv.Itoa(c.MaxAge))
	if len(c.ExposeHeaders) > 0 {
		resp.Header.Set("Access-Control-Expose-Headers", strings.Join(c.ExposeHeaders, ","))
	}
}

func (c *CORS) handleOptions(ctx *reqctx.Context) Result {
	req := ctx.Request()

	if req.Header.Get("Content-Length") != "" && req.Header.Get("Content-Length") != "0" {
		ctx.PayloadTooLarge("preflight request must not carry a body")
		return Responded
	}

	origin := req.Header.Get("Origin")
	if origin == "" {
		ctx.Response(200, reqctx.WithHeader("Allow", "*"), reqctx.WithHeader("Age", "3600"))
		return Responded
	}

	reqMethod := req.Header.Get("Access-Control-Request-Method")
	if reqMethod == "" {
		ctx.BadRequest("missing Access-Control-Request-Method")
		return Responded
	}

	reqHeaders := req.Header.Get("Access-Control-Request-Headers")
	allowed := c.preflight(origin, reqMethod, reqHeaders)
	if allowed == "" {
		ctx.Forbidden("Origin not allowed")
		return Responded
	}

	ctx.SetOrigin(allowed)
	ctx.OK()
	return Responded
}

func (c *CORS) verifyOrigin(origin string) string {
	if c.AllowAnyOrigins {
		return "*"
	}
	normalized := strings.ToLower(stripDefaultPort(origin))
	for _, o := range c.AllowOrigins {
		if o == normalized {
			return origin
		}
	}
	return ""
}

func (c *CORS) preflight(origin, requestMethod, requestHeaders string) string {
	allowed := c.verifyOrigin(origin)
	if allowed == "" {
		return ""
	}

	method := strings.ToUpper(requestMethod)
	methodOK := false
	for _, m := range c.AllowMethods {
		if m == method {
			methodOK = true
			break
		}
	}
	if !methodOK {
		return ""
	}

	if !c.AllowAnyHeaders && requestHeaders != "" {
		for _, h := range strings.Split(requestHeaders, ",") {
			h = strings.ToLower(strings.TrimSpace(h))
			found := false
			for _, allowedHeader := range c.AllowHeaders {
				if allowedHeader == h {
					found = true
					break
				}
			}
			if !found {
				return ""
			}
		}
	}

	return allowed
}
