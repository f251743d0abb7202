package handler_test

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"

	"afriledger/internal/core"
	"afriledger/internal/http/handler"
	"afriledger/internal/http/handler/fake"
	"afriledger/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("LedgerHandler", func() {
	var (
		lh            *handler.LedgerHandler
		fakeService   *fake.LedgerService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		testToken     string
		fakeErr       error
	)

	BeforeEach(func() {
		testToken = "test-token"
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.LedgerService)
		fakeValidator = new(fake.RequestValidator)

		fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		lh = handler.NewLedgerHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleAuthenticate", func() {
		var response map[string]string

		BeforeEach(func() {
			fakeService.AuthenticateReturns(testToken, nil)

			body := strings.NewReader(`{"phoneNumber":"+254700000001","pin":"1234"}`)
			req = httptest.NewRequest("POST", "/afri/authenticate", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			lh.HandleAuthenticate(w, req)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["token"]).To(Equal(testToken))

				Expect(fakeService.AuthenticateCallCount()).To(Equal(1))
				_, argMsg := fakeService.AuthenticateArgsForCall(0)
				Expect(argMsg.PhoneNumber).To(Equal("+254700000001"))
				Expect(argMsg.PIN).To(Equal("1234"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the pin is incorrect", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPIN)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleSendMoney", func() {
		var response map[string]string

		BeforeEach(func() {
			fakeService.SendMoneyReturns("01J0TRANSFER", nil)

			body := strings.NewReader(`{"recipientPhone":"+254700000002","amount":"400"}`)
			req = httptest.NewRequest("POST", "/afri/send", body)
			req.Header.Set("AUTH_TOKEN", testToken)
		})

		JustBeforeEach(func() {
			lh.HandleSendMoney(w, req)
		})

		When("the transfer succeeds", func() {
			It("should return the transfer id", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["transferId"]).To(Equal("01J0TRANSFER"))

				Expect(fakeService.SendMoneyCallCount()).To(Equal(1))
				_, argToken, argPhone, argAmount := fakeService.SendMoneyArgsForCall(0)
				Expect(argToken).To(Equal(testToken))
				Expect(argPhone).To(Equal("+254700000002"))
				Expect(argAmount).To(Equal(big.NewInt(400)))
			})
		})

		When("the auth token header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.SendMoneyCallCount()).To(Equal(0))
			})
		})

		When("the balance does not cover the amount", func() {
			BeforeEach(func() {
				fakeService.SendMoneyReturns("", core.ErrInsufficientBalance)
			})

			It("should return 422 Unprocessable Entity", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
				Expect(w.Body.String()).To(ContainSubstring("insufficient balance"))
			})
		})

		When("the recipient does not exist", func() {
			BeforeEach(func() {
				fakeService.SendMoneyReturns("", core.ErrRecipientNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the amount is rejected", func() {
			BeforeEach(func() {
				fakeService.SendMoneyReturns("", core.ErrInvalidAmount)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the transfer fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.SendMoneyReturns("", fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetBalance", func() {
		var response map[string]string

		BeforeEach(func() {
			fakeService.GetBalanceReturns(big.NewInt(60000), nil)

			req = httptest.NewRequest("GET", "/afri/balance", nil)
			req.Header.Set("AUTH_TOKEN", testToken)
		})

		JustBeforeEach(func() {
			lh.HandleGetBalance(w, req)
		})

		When("the lookup succeeds", func() {
			It("should return the balance as a string", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["balance"]).To(Equal("60000"))

				_, argToken := fakeService.GetBalanceArgsForCall(0)
				Expect(argToken).To(Equal(testToken))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeService.GetBalanceReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetHistory", func() {
		BeforeEach(func() {
			fakeService.GetHistoryReturns([]repository.Transaction{
				{Hash: "0x1"},
				{Hash: "0x2"},
			}, nil)

			req = httptest.NewRequest("GET", "/afri/history?limit=5", nil)
			req.Header.Set("AUTH_TOKEN", testToken)
		})

		JustBeforeEach(func() {
			lh.HandleGetHistory(w, req)
		})

		When("records exist", func() {
			It("should return them with the parsed limit", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string][]repository.Transaction
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["transactions"]).To(HaveLen(2))

				_, argToken, argLimit := fakeService.GetHistoryArgsForCall(0)
				Expect(argToken).To(Equal(testToken))
				Expect(argLimit).To(Equal(5))
			})
		})

		When("the limit parameter is not a number", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/afri/history?limit=abc", nil)
				req.Header.Set("AUTH_TOKEN", testToken)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.GetHistoryCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleFund", func() {
		BeforeEach(func() {
			fakeService.FundFromFiatReturns(repository.Transaction{
				Hash:   "pay_abc123",
				Amount: "1000000",
				Status: repository.StatusPending,
			}, nil)

			body := strings.NewReader(`{"amount":"10000","currency":"USD","method":"card","externalRef":"pay_abc123"}`)
			req = httptest.NewRequest("POST", "/afri/fund", body)
			req.Header.Set("AUTH_TOKEN", testToken)
		})

		JustBeforeEach(func() {
			lh.HandleFund(w, req)
		})

		When("funding succeeds", func() {
			It("should return the pending record", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]repository.Transaction
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["transaction"].Hash).To(Equal("pay_abc123"))
				Expect(response["transaction"].Status).To(Equal(repository.StatusPending))

				_, argToken, argFunding := fakeService.FundFromFiatArgsForCall(0)
				Expect(argToken).To(Equal(testToken))
				Expect(argFunding.Currency).To(Equal("USD"))
				Expect(argFunding.Method).To(Equal("card"))
				Expect(argFunding.ExternalRef).To(Equal("pay_abc123"))
				Expect(argFunding.Amount).To(Equal(big.NewInt(10000)))
			})
		})

		When("the currency is unsupported", func() {
			BeforeEach(func() {
				fakeService.FundFromFiatReturns(repository.Transaction{}, core.ErrUnsupportedCurrency)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleSetDepositAddress", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"address":"0x9aF2E435A27A6F8D3a4DaD4eF971eC17C5ED6c41"}`)
			req = httptest.NewRequest("PUT", "/afri/deposit-address", body)
			req.Header.Set("AUTH_TOKEN", testToken)
		})

		JustBeforeEach(func() {
			lh.HandleSetDepositAddress(w, req)
		})

		When("the update succeeds", func() {
			It("should echo the registered address", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["depositAddress"]).To(Equal("0x9aF2E435A27A6F8D3a4DaD4eF971eC17C5ED6c41"))

				_, argToken, argAddr := fakeService.SetDepositAddressArgsForCall(0)
				Expect(argToken).To(Equal(testToken))
				Expect(argAddr).To(Equal("0x9aF2E435A27A6F8D3a4DaD4eF971eC17C5ED6c41"))
			})
		})

		When("the session account no longer exists", func() {
			BeforeEach(func() {
				fakeService.SetDepositAddressReturns(core.ErrAccountNotFound)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})
})
