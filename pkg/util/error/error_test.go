package error

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("error test", func() {
	Describe("IsNotFound test", func() {
		It("should return true if the error is not found", func() {
			err := NewNotFound(404, "not found")
			Expect(IsNotFound(err)).To(BeTrue())
		})

		It("should see through wrapped errors", func() {
			err := fmt.Errorf("delete chat: %w", NewNotFound(404, "chat not found"))
			Expect(IsNotFound(err)).To(BeTrue())
		})

		It("should return false if the error is not not found", func() {
			err := fmt.Errorf("not found")
			Expect(IsNotFound(err)).To(BeFalse())
			Expect(IsNotFound(nil)).To(BeFalse())
		})
	})

	Describe("IsBadRequest test", func() {
		It("should only match bad request errors", func() {
			Expect(IsBadRequest(NewBadRequest(400, "missing chat_id"))).To(BeTrue())
			Expect(IsBadRequest(NewNotFound(404, "missing"))).To(BeFalse())
		})
	})

	Describe("IsUnauthorized test", func() {
		It("should match unauthorized errors", func() {
			Expect(IsUnauthorized(NewUnauthorized(401, "no token"))).To(BeTrue())
			Expect(IsUnauthorized(fmt.Errorf("plain"))).To(BeFalse())
		})
	})
})
