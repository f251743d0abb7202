package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"afriledger/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Payload", func() {
	var validator payload.DecodeValidator

	newRequest := func(body string) *http.Request {
		return httptest.NewRequest("POST", "/afri/test", strings.NewReader(body))
	}

	Describe("DecodeAndValidateJSONPayload", func() {
		When("the payload is valid", func() {
			It("decodes into the target", func() {
				var req payload.AuthRequest
				err := validator.DecodeAndValidateJSONPayload(
					newRequest(`{"phoneNumber":"+254700000001","pin":"1234"}`), &req)
				Expect(err).NotTo(HaveOccurred())
				Expect(req.PhoneNumber).To(Equal("+254700000001"))
				Expect(req.PIN).To(Equal("1234"))
			})
		})

		When("the payload carries unknown fields", func() {
			It("should return a decoding error", func() {
				var req payload.AuthRequest
				err := validator.DecodeAndValidateJSONPayload(
					newRequest(`{"phoneNumber":"+254700000001","pin":"1234","extra":true}`), &req)
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})

		When("the payload is not json", func() {
			It("should return a decoding error", func() {
				var req payload.AuthRequest
				err := validator.DecodeAndValidateJSONPayload(newRequest(`not-json`), &req)
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})

		When("the payload fails validation", func() {
			It("should return a validation error", func() {
				var req payload.AuthRequest
				err := validator.DecodeAndValidateJSONPayload(
					newRequest(`{"phoneNumber":"not-a-phone","pin":"1234"}`), &req)
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
			})
		})
	})

	Describe("AuthRequest", func() {
		It("accepts a plus-prefixed number and a 4 digit pin", func() {
			req := payload.AuthRequest{PhoneNumber: "+254700000001", PIN: "1234"}
			Expect(req.Validate()).To(Succeed())
		})

		It("rejects a short number", func() {
			req := payload.AuthRequest{PhoneNumber: "+12345", PIN: "1234"}
			Expect(req.Validate()).NotTo(Succeed())
		})

		It("rejects a short pin", func() {
			req := payload.AuthRequest{PhoneNumber: "+254700000001", PIN: "12"}
			Expect(req.Validate()).NotTo(Succeed())
		})
	})

	Describe("SendRequest", func() {
		It("accepts a positive integer amount", func() {
			req := payload.SendRequest{RecipientPhone: "+254700000002", Amount: "400"}
			Expect(req.Validate()).To(Succeed())
		})

		It("rejects a zero amount", func() {
			req := payload.SendRequest{RecipientPhone: "+254700000002", Amount: "0"}
			Expect(req.Validate()).NotTo(Succeed())
		})

		It("rejects a decimal amount", func() {
			req := payload.SendRequest{RecipientPhone: "+254700000002", Amount: "4.5"}
			Expect(req.Validate()).NotTo(Succeed())
		})
	})

	Describe("FundRequest", func() {
		It("accepts a fiat funding request", func() {
			req := payload.FundRequest{Amount: "10000", Currency: "USD", Method: "card"}
			Expect(req.Validate()).To(Succeed())
		})

		It("rejects a missing method", func() {
			req := payload.FundRequest{Amount: "10000", Currency: "USD"}
			Expect(req.Validate()).NotTo(Succeed())
		})
	})

	Describe("DepositAddressRequest", func() {
		It("accepts a 20 byte hex address", func() {
			req := payload.DepositAddressRequest{Address: "0x9aF2E435A27A6F8D3a4DaD4eF971eC17C5ED6c41"}
			Expect(req.Validate()).To(Succeed())
		})

		It("rejects a truncated address", func() {
			req := payload.DepositAddressRequest{Address: "0x9aF2E435"}
			Expect(req.Validate()).NotTo(Succeed())
		})
	})
})
