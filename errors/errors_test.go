package errors_test

import (
	"fmt"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/netkit/errors"
)

func TestErrors(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "errors suite")
}

var _ = Describe("CodeError", func() {
	It("carries its registered message and code", func() {
		err := errors.ErrRouteNotFound.Error(nil)
		Expect(err.Code()).To(Equal(errors.ErrRouteNotFound))
		Expect(err.IsCode(errors.ErrRouteNotFound)).To(BeTrue())
		Expect(err.Error()).To(Equal(errors.ErrRouteNotFound.Message()))
	})

	It("chains parent errors into its message and Unwrap", func() {
		parent := fmt.Errorf("boom")
		err := errors.ErrMalformedReq.Error(parent)
		Expect(err.HasParent()).To(BeTrue())
		Expect(err.Unwrap()).To(Equal(parent))
		Expect(err.Error()).To(ContainSubstring("boom"))
	})

	It("formats a custom message via Errorf without losing its code", func() {
		err := errors.ErrConfigValidate.Errorf("field %q invalid", "Name")
		Expect(err.Code()).To(Equal(errors.ErrConfigValidate))
		Expect(err.Error()).To(Equal(`field "Name" invalid`))
	})

	It("AddParent appends to an existing chain", func() {
		err := errors.ErrDuplicateRoute.Error(nil)
		err.AddParent(fmt.Errorf("first"))
		err.AddParent(fmt.Errorf("second"))
		Expect(err.Error()).To(ContainSubstring("first"))
		Expect(err.Error()).To(ContainSubstring("second"))
	})
})

var _ = Describe("New", func() {
	It("wraps a plain error under UnknownError", func() {
		err := errors.New(fmt.Errorf("plain"))
		Expect(err.Code()).To(Equal(errors.UnknownError))
		Expect(err.Error()).To(ContainSubstring("plain"))
	})

	It("returns nil for a nil input", func() {
		Expect(errors.New(nil)).To(BeNil())
	})
})
