package identity_test

import (
	"encoding/hex"

	"afriledger/pkg/identity"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Identity", func() {
	Describe("Normalize", func() {
		It("strips spaces, dashes and parentheses", func() {
			Expect(identity.Normalize("+254 (700) 000-001")).To(Equal("+254700000001"))
		})

		It("keeps only a leading plus", func() {
			Expect(identity.Normalize("+254+700+000001")).To(Equal("+254700000001"))
			Expect(identity.Normalize("254700000001+")).To(Equal("254700000001"))
		})

		It("leaves an already clean number untouched", func() {
			Expect(identity.Normalize("+254700000001")).To(Equal("+254700000001"))
		})
	})

	Describe("PhoneToKey", func() {
		It("maps every spelling of a number to the same key", func() {
			key := identity.PhoneToKey("+254700000001")
			Expect(identity.PhoneToKey("+254 700 000 001")).To(Equal(key))
			Expect(identity.PhoneToKey("+254-700-000-001")).To(Equal(key))
		})

		It("is deterministic", func() {
			Expect(identity.PhoneToKey("+254700000001")).
				To(Equal(identity.PhoneToKey("+254700000001")))
		})

		It("produces a 64 character hex key", func() {
			key := identity.PhoneToKey("+254700000001")
			Expect(key).To(HaveLen(64))
			_, err := hex.DecodeString(key)
			Expect(err).NotTo(HaveOccurred())
		})

		It("separates distinct numbers", func() {
			Expect(identity.PhoneToKey("+254700000001")).
				NotTo(Equal(identity.PhoneToKey("+254700000002")))
		})
	})
})
