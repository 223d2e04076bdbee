package timeout_test

import (
	"sync/atomic"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/netkit/timeout"
)

func TestTimeout(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "timeout suite")
}

type inlineExecutor struct{}

func (inlineExecutor) Post(fn func()) { fn() }

var _ = Describe("Monitor", func() {
	It("fires the callback after the configured delay", func() {
		m := timeout.New(inlineExecutor{})
		var fired int32

		m.ExpiresAfter(10*time.Millisecond, func() { atomic.StoreInt32(&fired, 1) })

		Eventually(func() int32 { return atomic.LoadInt32(&fired) }, time.Second).Should(Equal(int32(1)))
	})

	It("cancels a pending firing on ExpiresNever", func() {
		m := timeout.New(inlineExecutor{})
		var fired int32

		m.ExpiresAfter(20*time.Millisecond, func() { atomic.StoreInt32(&fired, 1) })
		m.ExpiresNever()

		Consistently(func() int32 { return atomic.LoadInt32(&fired) }, 50*time.Millisecond).Should(Equal(int32(0)))
	})

	It("re-arming cancels the previous firing", func() {
		m := timeout.New(inlineExecutor{})
		var firedFirst, firedSecond int32

		m.ExpiresAfter(10*time.Millisecond, func() { atomic.StoreInt32(&firedFirst, 1) })
		m.ExpiresAfter(30*time.Millisecond, func() { atomic.StoreInt32(&firedSecond, 1) })

		Eventually(func() int32 { return atomic.LoadInt32(&firedSecond) }, time.Second).Should(Equal(int32(1)))
		Expect(atomic.LoadInt32(&firedFirst)).To(Equal(int32(0)))
	})
})
