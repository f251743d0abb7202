package core_test

import (
	"context"
	"errors"
	"math/big"

	"afriledger/internal/core"
	"afriledger/internal/core/fake"
	"afriledger/internal/rates"
	"afriledger/internal/repository"
	"afriledger/pkg/identity"
	tokenIssuer "afriledger/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Ledger", func() {
	var (
		fakeRepo   *fake.Repository
		fakeChain  *fake.ChainService
		fakeRates  *fake.RateService
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		ledger *core.Ledger

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeChain = new(fake.ChainService)
		fakeRates = new(fake.RateService)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		ledger = core.NewLedger(fakeLogger, fakeRepo, fakeChain, fakeRates, fakeJWT)

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg   core.AuthMessage
			token     string
			err       error
			accountID string
			pinHash   string
			genToken  *jwt.Token
		)

		BeforeEach(func() {
			authMsg = core.AuthMessage{
				PhoneNumber: "+254700000001",
				PIN:         "testpass",
			}
			accountID = identity.PhoneToKey(authMsg.PhoneNumber)
			pinHash = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)
		})

		JustBeforeEach(func() {
			token, err = ledger.Authenticate(ctx, authMsg)
		})

		When("account exists and pin matches", func() {
			BeforeEach(func() {
				fakeRepo.AccountByIDReturns(repository.Account{
					ID:          accountID,
					PhoneNumber: authMsg.PhoneNumber,
					PINHash:     pinHash,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.AccountByIDCallCount()).To(Equal(1))
				_, argID := fakeRepo.AccountByIDArgsForCall(0)
				Expect(argID).To(Equal(accountID))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenIssuer.TokenInfo{
					PhoneNumber: authMsg.PhoneNumber,
					Subject:     accountID,
					Expiration:  24,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				argSign := fakeJWT.SignArgsForCall(0)
				Expect(argSign).To(Equal(genToken))
			})
		})

		When("account does not exist", func() {
			BeforeEach(func() {
				fakeRepo.AccountByIDReturns(repository.Account{}, repository.ErrAccountNotFound)
			})

			It("should return account not found error", func() {
				Expect(err).To(MatchError(core.ErrAccountNotFound))
			})
		})

		When("pin does not match", func() {
			BeforeEach(func() {
				fakeRepo.AccountByIDReturns(repository.Account{
					ID:          accountID,
					PhoneNumber: authMsg.PhoneNumber,
					PINHash:     pinHash,
				}, nil)
				authMsg.PIN = "wrongpin"
			})

			It("should return incorrect pin error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPIN))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.AccountByIDReturns(repository.Account{
					ID:          accountID,
					PhoneNumber: authMsg.PhoneNumber,
					PINHash:     pinHash,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SendMoney", func() {
		var (
			token          string
			recipientPhone string
			amount         *big.Int
			transferID     string
			err            error

			sender    repository.Account
			recipient repository.Account
		)

		BeforeEach(func() {
			token = "valid.token"
			recipientPhone = "+254700000002"
			amount = big.NewInt(400)

			sender = repository.Account{
				ID:          identity.PhoneToKey("+254700000001"),
				PhoneNumber: "+254700000001",
				Balance:     "1000",
			}
			recipient = repository.Account{
				ID:          identity.PhoneToKey(recipientPhone),
				PhoneNumber: recipientPhone,
				Balance:     "0",
			}

			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": sender.ID}, nil)
			fakeRepo.AccountByIDReturnsOnCall(0, sender, nil)
			fakeRepo.AccountByIDReturnsOnCall(1, recipient, nil)
		})

		JustBeforeEach(func() {
			transferID, err = ledger.SendMoney(ctx, token, recipientPhone, amount)
		})

		When("both accounts exist and the balance covers the amount", func() {
			It("executes one atomic transfer with paired records", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transferID).NotTo(BeEmpty())

				Expect(fakeRepo.ExecuteTransferCallCount()).To(Equal(1))
				_, params := fakeRepo.ExecuteTransferArgsForCall(0)
				Expect(params.TransferID).To(Equal(transferID))
				Expect(params.SenderID).To(Equal(sender.ID))
				Expect(params.RecipientID).To(Equal(recipient.ID))
				Expect(params.Amount.String()).To(Equal("400"))

				Expect(params.SendRecord.Type).To(Equal(repository.TypeSend))
				Expect(params.ReceiveRecord.Type).To(Equal(repository.TypeReceive))
				Expect(params.SendRecord.TransferID).To(Equal(transferID))
				Expect(params.ReceiveRecord.TransferID).To(Equal(transferID))
				Expect(params.SendRecord.Amount).To(Equal("400"))
				Expect(params.ReceiveRecord.Amount).To(Equal("400"))
				Expect(params.SendRecord.Status).To(Equal(repository.StatusCompleted))
				Expect(params.ReceiveRecord.Status).To(Equal(repository.StatusCompleted))
				Expect(params.SendRecord.Hash).NotTo(Equal(params.ReceiveRecord.Hash))
				Expect(params.SendRecord.SenderPhone).To(Equal(sender.PhoneNumber))
				Expect(params.SendRecord.RecipientPhone).To(Equal(recipient.PhoneNumber))
			})
		})

		When("the repository reports insufficient balance", func() {
			BeforeEach(func() {
				fakeRepo.ExecuteTransferReturns(repository.ErrInsufficientBalance)
			})

			It("should return insufficient balance error", func() {
				Expect(err).To(MatchError(core.ErrInsufficientBalance))
				Expect(transferID).To(BeEmpty())
			})
		})

		When("amount is not positive", func() {
			BeforeEach(func() {
				amount = big.NewInt(0)
			})

			It("rejects the transfer before touching any account", func() {
				Expect(err).To(MatchError(core.ErrInvalidAmount))
				Expect(fakeRepo.AccountByIDCallCount()).To(Equal(0))
				Expect(fakeRepo.ExecuteTransferCallCount()).To(Equal(0))
			})
		})

		When("amount is nil", func() {
			BeforeEach(func() {
				amount = nil
			})

			It("should return invalid amount error", func() {
				Expect(err).To(MatchError(core.ErrInvalidAmount))
			})
		})

		When("recipient does not exist", func() {
			BeforeEach(func() {
				fakeRepo.AccountByIDReturnsOnCall(1, repository.Account{}, repository.ErrAccountNotFound)
			})

			It("should return recipient not found error", func() {
				Expect(err).To(MatchError(core.ErrRecipientNotFound))
				Expect(fakeRepo.ExecuteTransferCallCount()).To(Equal(0))
			})
		})

		When("token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return validation error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.ExecuteTransferCallCount()).To(Equal(0))
			})
		})

		When("the transfer fails for any other reason", func() {
			BeforeEach(func() {
				fakeRepo.ExecuteTransferReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetHistory", func() {
		var (
			token     string
			limit     int
			records   []repository.Transaction
			err       error
			accountID string
		)

		BeforeEach(func() {
			token = "valid.token"
			limit = 5
			accountID = "account123"
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": accountID}, nil)
		})

		JustBeforeEach(func() {
			records, err = ledger.GetHistory(ctx, token, limit)
		})

		When("the account has records", func() {
			BeforeEach(func() {
				fakeRepo.HistoryReturns([]repository.Transaction{
					{Hash: "0x1"},
					{Hash: "0x2"},
				}, nil)
			})

			It("should return the records", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))

				_, argID, argLimit := fakeRepo.HistoryArgsForCall(0)
				Expect(argID).To(Equal(accountID))
				Expect(argLimit).To(Equal(5))
			})
		})

		When("limit is not positive", func() {
			BeforeEach(func() {
				limit = 0
			})

			It("falls back to the default limit", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, argLimit := fakeRepo.HistoryArgsForCall(0)
				Expect(argLimit).To(Equal(20))
			})
		})

		When("token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return validation error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.HistoryCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetBalance", func() {
		var (
			token   string
			balance *big.Int
			err     error
			account repository.Account
		)

		BeforeEach(func() {
			token = "valid.token"
			depositAddr := "0x9aF2E435A27A6F8D3a4DaD4eF971eC17C5ED6c41"
			account = repository.Account{
				ID:             "account123",
				PhoneNumber:    "+254700000001",
				WalletAddress:  "0x1bE6683Cd00Fa0E6f3F0F15E36eD49E104105D2a",
				DepositAddress: &depositAddr,
				Balance:        "0",
			}

			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": account.ID}, nil)
		})

		JustBeforeEach(func() {
			fakeRepo.AccountByIDReturns(account, nil)
			balance, err = ledger.GetBalance(ctx, token)
		})

		When("the local ledger balance is positive", func() {
			BeforeEach(func() {
				account.Balance = "600"
			})

			It("returns it without querying the chain", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.String()).To(Equal("600"))
				Expect(fakeChain.TokenBalanceCallCount()).To(Equal(0))
			})
		})

		When("the ledger is empty but the deposit wallet holds tokens", func() {
			BeforeEach(func() {
				fakeChain.TokenBalanceReturnsOnCall(0, big.NewInt(500), nil)
			})

			It("returns the deposit wallet balance", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.String()).To(Equal("500"))
				Expect(fakeChain.TokenBalanceCallCount()).To(Equal(1))
				_, argAddr := fakeChain.TokenBalanceArgsForCall(0)
				Expect(argAddr).To(Equal(*account.DepositAddress))
			})
		})

		When("only the outbound wallet holds tokens", func() {
			BeforeEach(func() {
				fakeChain.TokenBalanceReturnsOnCall(0, big.NewInt(0), nil)
				fakeChain.TokenBalanceReturnsOnCall(1, big.NewInt(250), nil)
			})

			It("falls through to the outbound wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.String()).To(Equal("250"))
				Expect(fakeChain.TokenBalanceCallCount()).To(Equal(2))
				_, argAddr := fakeChain.TokenBalanceArgsForCall(1)
				Expect(argAddr).To(Equal(account.WalletAddress))
			})
		})

		When("no deposit address is registered", func() {
			BeforeEach(func() {
				account.DepositAddress = nil
				fakeChain.TokenBalanceReturns(big.NewInt(70), nil)
			})

			It("queries only the outbound wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.String()).To(Equal("70"))
				Expect(fakeChain.TokenBalanceCallCount()).To(Equal(1))
			})
		})

		When("every chain lookup fails", func() {
			BeforeEach(func() {
				fakeChain.TokenBalanceReturns(nil, fakeErr)
			})

			It("degrades to a zero balance", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.Sign()).To(Equal(0))
			})
		})
	})

	Describe("FundFromChain", func() {
		var (
			deposit core.Deposit
			err     error
			account repository.Account
		)

		BeforeEach(func() {
			deposit = core.Deposit{
				DepositAddress: "0x9aF2E435A27A6F8D3a4DaD4eF971eC17C5ED6c41",
				Amount:         big.NewInt(2_500_000_000),
				TxHash:         "0xdeadbeef",
			}
			account = repository.Account{
				ID:            "account123",
				PhoneNumber:   "+254700000001",
				WalletAddress: "0x1bE6683Cd00Fa0E6f3F0F15E36eD49E104105D2a",
			}

			fakeRepo.AccountByDepositAddressReturns(account, nil)
			fakeRepo.RecordExistsReturns(false, nil)
			fakeChain.MintReturns("0xminted", nil)
		})

		JustBeforeEach(func() {
			err = ledger.FundFromChain(ctx, deposit)
		})

		When("the deposit is new and the wallet is registered", func() {
			It("mints to the outbound wallet and credits the ledger", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeChain.MintCallCount()).To(Equal(1))
				_, argAddr, argAmount := fakeChain.MintArgsForCall(0)
				Expect(argAddr).To(Equal(account.WalletAddress))
				Expect(argAmount.String()).To(Equal("2500000000"))

				Expect(fakeRepo.CreditDepositCallCount()).To(Equal(1))
				_, argID, argAmount, argRecord := fakeRepo.CreditDepositArgsForCall(0)
				Expect(argID).To(Equal(account.ID))
				Expect(argAmount.String()).To(Equal("2500000000"))
				Expect(argRecord.Hash).To(Equal(deposit.TxHash))
				Expect(argRecord.Type).To(Equal(repository.TypeMint))
				Expect(argRecord.Status).To(Equal(repository.StatusCompleted))
				Expect(argRecord.DepositAddress).To(Equal(deposit.DepositAddress))
				Expect(argRecord.MintTxHash).To(Equal("0xminted"))
			})
		})

		When("no account has registered the deposit wallet", func() {
			BeforeEach(func() {
				fakeRepo.AccountByDepositAddressReturns(repository.Account{}, repository.ErrAccountNotFound)
			})

			It("skips the deposit without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeChain.MintCallCount()).To(Equal(0))
				Expect(fakeRepo.CreditDepositCallCount()).To(Equal(0))
			})
		})

		When("the deposit was already processed", func() {
			BeforeEach(func() {
				fakeRepo.RecordExistsReturns(true, nil)
			})

			It("does not mint or credit a second time", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeChain.MintCallCount()).To(Equal(0))
				Expect(fakeRepo.CreditDepositCallCount()).To(Equal(0))
			})
		})

		When("the record is inserted concurrently", func() {
			BeforeEach(func() {
				fakeRepo.CreditDepositReturns(repository.ErrDuplicateRecord)
			})

			It("treats the replay as already done", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("minting fails", func() {
			BeforeEach(func() {
				fakeChain.MintReturns("", fakeErr)
			})

			It("returns the error without crediting", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreditDepositCallCount()).To(Equal(0))
			})
		})
	})

	Describe("FundFromFiat", func() {
		var (
			token   string
			funding core.FiatFunding
			record  repository.Transaction
			err     error
			account repository.Account
		)

		BeforeEach(func() {
			token = "valid.token"
			funding = core.FiatFunding{
				Amount:      big.NewInt(10_000),
				Currency:    "USD",
				Method:      "card",
				ExternalRef: "pay_abc123",
			}
			account = repository.Account{
				ID:          "account123",
				PhoneNumber: "+254700000001",
			}

			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": account.ID}, nil)
			fakeRepo.AccountByIDReturns(account, nil)
			fakeRates.ConvertReturns(big.NewInt(1_000_000), nil)
		})

		JustBeforeEach(func() {
			record, err = ledger.FundFromFiat(ctx, token, funding)
		})

		When("the currency is supported", func() {
			It("records a pending credit at the converted amount", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRates.ConvertCallCount()).To(Equal(1))
				_, argAmount, argCurrency := fakeRates.ConvertArgsForCall(0)
				Expect(argAmount.String()).To(Equal("10000"))
				Expect(argCurrency).To(Equal("USD"))

				Expect(fakeRepo.SaveRecordCallCount()).To(Equal(1))
				_, argRecord := fakeRepo.SaveRecordArgsForCall(0)
				Expect(argRecord).To(Equal(record))

				Expect(record.Hash).To(Equal("pay_abc123"))
				Expect(record.Amount).To(Equal("1000000"))
				Expect(record.Status).To(Equal(repository.StatusPending))
				Expect(record.Type).To(Equal(repository.TypeReceive))
				Expect(record.Currency).To(Equal("USD"))
				Expect(record.Method).To(Equal("card"))
			})
		})

		When("no external reference is supplied", func() {
			BeforeEach(func() {
				funding.ExternalRef = ""
			})

			It("generates a ledger hash", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Hash).To(HavePrefix("0x"))
			})
		})

		When("the currency is not supported", func() {
			BeforeEach(func() {
				fakeRates.ConvertReturns(nil, rates.ErrUnsupportedCurrency)
			})

			It("should return unsupported currency error", func() {
				Expect(err).To(MatchError(core.ErrUnsupportedCurrency))
				Expect(fakeRepo.SaveRecordCallCount()).To(Equal(0))
			})
		})

		When("amount is not positive", func() {
			BeforeEach(func() {
				funding.Amount = big.NewInt(-5)
			})

			It("should return invalid amount error", func() {
				Expect(err).To(MatchError(core.ErrInvalidAmount))
				Expect(fakeRates.ConvertCallCount()).To(Equal(0))
			})
		})

		When("saving the record fails", func() {
			BeforeEach(func() {
				fakeRepo.SaveRecordReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SetDepositAddress", func() {
		var (
			token   string
			address string
			err     error
		)

		BeforeEach(func() {
			token = "valid.token"
			address = "0x9aF2E435A27A6F8D3a4DaD4eF971eC17C5ED6c41"
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "account123"}, nil)
		})

		JustBeforeEach(func() {
			err = ledger.SetDepositAddress(ctx, token, address)
		})

		When("the account exists", func() {
			It("registers the address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.SetDepositAddressCallCount()).To(Equal(1))
				_, argID, argAddr := fakeRepo.SetDepositAddressArgsForCall(0)
				Expect(argID).To(Equal("account123"))
				Expect(argAddr).To(Equal(address))
			})
		})

		When("the account does not exist", func() {
			BeforeEach(func() {
				fakeRepo.SetDepositAddressReturns(repository.ErrAccountNotFound)
			})

			It("should return account not found error", func() {
				Expect(err).To(MatchError(core.ErrAccountNotFound))
			})
		})

		When("token has no subject", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{}, nil)
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
				Expect(fakeRepo.SetDepositAddressCallCount()).To(Equal(0))
			})
		})
	})
})
