package logger_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/nabbar/netkit/logger"
)

func TestLogger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "logger suite")
}

var _ = Describe("NewFrom", func() {
	It("attaches the component field and structured fields to every entry", func() {
		base, hook := test.NewNullLogger()
		base.SetLevel(logrus.DebugLevel)

		log := logger.NewFrom(base, "transport")
		log.Warn("listener closed", logger.F("address", "127.0.0.1:8080"))

		Expect(hook.LastEntry()).ToNot(BeNil())
		Expect(hook.LastEntry().Message).To(Equal("listener closed"))
		Expect(hook.LastEntry().Data["component"]).To(Equal("transport"))
		Expect(hook.LastEntry().Data["address"]).To(Equal("127.0.0.1:8080"))
	})

	It("falls back to a fresh logger when given a nil *logrus.Logger", func() {
		log := logger.NewFrom(nil, "fallback")
		Expect(log).ToNot(BeNil())
	})
})

var _ = Describe("Noop", func() {
	It("discards every call without panicking", func() {
		log := logger.Noop()
		Expect(func() {
			log.Debug("x")
			log.Info("x")
			log.Warn("x")
			log.Error("x")
		}).ToNot(Panic())
	})
})
