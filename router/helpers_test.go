package router_test

import "github.com/nabbar/netkit/httpmsg"

func httpRequest(method, target string) httpmsg.Request {
	return httpmsg.Request{
		Method:  method,
		Target:  target,
		Version: "HTTP/1.1",
		Header:  httpmsg.NewHeader(),
	}
}

type discardWriter struct{}

func (discardWriter) WriteResponse(httpmsg.Response) error { return nil }
