package executor_test

import (
	"sync"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/netkit/executor"
)

func TestExecutor(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "executor suite")
}

var _ = Describe("Pool", func() {
	It("runs posted tasks and distributes them round robin", func() {
		p := executor.New(2)
		p.Run()
		defer p.Stop()

		var mu sync.Mutex
		var ran []int

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			i := i
			ex := p.Next()
			ex.Post(func() {
				defer wg.Done()
				mu.Lock()
				ran = append(ran, i)
				mu.Unlock()
			})
		}
		wg.Wait()

		mu.Lock()
		defer mu.Unlock()
		Expect(ran).To(HaveLen(4))
	})

	It("serializes tasks posted to the same executor", func() {
		p := executor.New(1)
		p.Run()
		defer p.Stop()

		ex := p.Next()
		var order []int
		var mu sync.Mutex
		done := make(chan struct{})

		for i := 0; i < 3; i++ {
			i := i
			ex.Post(func() {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				if i == 2 {
					close(done)
				}
			})
		}

		Eventually(done, time.Second).Should(BeClosed())
		mu.Lock()
		defer mu.Unlock()
		Expect(order).To(Equal([]int{0, 1, 2}))
	})

	It("drains queued tasks on Stop before returning", func() {
		p := executor.New(1)
		p.Run()

		var ran int32
		ex := p.Next()
		ex.Post(func() { ran = 1 })

		p.Stop()
		Expect(ran).To(Equal(int32(1)))
	})
})
