package server_test

import (
	"net"
	"strconv"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/netkit/executor"
	"github.com/nabbar/netkit/logger"
	"github.com/nabbar/netkit/reqctx"
	"github.com/nabbar/netkit/router"
	"github.com/nabbar/netkit/server"
	"github.com/nabbar/netkit/tlsconfig"
	"github.com/nabbar/netkit/transport"
)

func TestServer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "server suite")
}

func freePort() uint16 {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).To(BeNil())
	defer l.Close()
	return uint16(l.Addr().(*net.TCPAddr).Port)
}

func newRouter() *router.Router {
	r := router.New()
	_ = r.AddRoute("/hello", []string{"GET"}, func(ctx *reqctx.Context) error {
		return ctx.OK(reqctx.WithBody([]byte("hi"), "text/plain"))
	})
	return r
}

var _ = Describe("Settings.Validate", func() {
	It("rejects a missing name", func() {
		s := server.Settings{Address: "127.0.0.1", Port: 8080}
		Expect(s.Validate()).ToNot(BeNil())
	})

	It("requires TLS config for ModeTLS", func() {
		s := server.Settings{Name: "a", Address: "127.0.0.1", Port: 8080, Mode: transport.ModeTLS}
		Expect(s.Validate()).ToNot(BeNil())
	})

	It("accepts a minimal plain config", func() {
		s := server.Settings{Name: "a", Address: "127.0.0.1", Port: 8080}
		Expect(s.Validate()).To(BeNil())
	})

	It("propagates nested TLS validation failure", func() {
		s := server.Settings{
			Name: "a", Address: "127.0.0.1", Port: 8080, Mode: transport.ModeTLS,
			TLS: &tlsconfig.Config{},
		}
		Expect(s.Validate()).ToNot(BeNil())
	})
})

var _ = Describe("Server lifecycle", func() {
	It("starts, serves a request, and shuts down cleanly", func() {
		port := freePort()
		s := server.New(server.Settings{
			Name:    "test",
			Address: "127.0.0.1",
			Port:    port,
		}, newRouter(), logger.Noop())

		pool := executor.New(1)
		pool.Run()
		defer pool.Stop()

		Expect(s.Run(pool)).To(BeNil())
		Expect(s.IsRunning()).To(BeTrue())

		conn, err := net.DialTimeout("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(int(port))), time.Second)
		Expect(err).To(BeNil())
		_, err = conn.Write([]byte("GET /hello HTTP/1.1\r\nConnection: close\r\n\r\n"))
		Expect(err).To(BeNil())

		buf := make([]byte, 512)
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		n, err := conn.Read(buf)
		Expect(err).To(BeNil())
		Expect(string(buf[:n])).To(ContainSubstring("200"))
		_ = conn.Close()

		s.Shutdown()
		Expect(s.IsRunning()).To(BeFalse())
	})
})

var _ = Describe("Pool", func() {
	It("runs a mandatory and an optional server together", func() {
		p1 := freePort()
		p2 := freePort()

		mandatory := server.New(server.Settings{Name: "m", Address: "127.0.0.1", Port: p1, Mandatory: true}, newRouter(), logger.Noop())
		optional := server.New(server.Settings{Name: "o", Address: "127.0.0.1", Port: p2}, newRouter(), logger.Noop())

		pool := server.NewPool(mandatory, optional)
		Expect(pool.Len()).To(Equal(2))

		ex := executor.New(2)
		ex.Run()
		defer ex.Stop()

		Expect(pool.Run(ex)).To(BeNil())
		Expect(pool.IsRunning(false)).To(BeTrue())

		pool.Shutdown()
		Expect(pool.IsRunning(true)).To(BeFalse())
	})
})
