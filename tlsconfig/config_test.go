package tlsconfig_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/netkit/tlsconfig"
)

func TestTlsconfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "tlsconfig suite")
}

var _ = Describe("Config.Validate", func() {
	It("rejects a config missing cert/key paths", func() {
		c := tlsconfig.Config{}
		Expect(c.Validate()).ToNot(BeNil())
	})

	It("rejects a config pointing at nonexistent files", func() {
		c := tlsconfig.Config{CertFile: "/nonexistent/cert.pem", KeyFile: "/nonexistent/key.pem"}
		Expect(c.Validate()).ToNot(BeNil())
	})
})

var _ = Describe("Config.TLSConfig", func() {
	It("fails when the certificate pair cannot be loaded", func() {
		c := tlsconfig.Config{CertFile: "/nonexistent/cert.pem", KeyFile: "/nonexistent/key.pem"}
		_, err := c.TLSConfig()
		Expect(err).ToNot(BeNil())
	})
})
