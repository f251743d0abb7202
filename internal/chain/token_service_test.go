package chain_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"afriledger/internal/chain"
	"afriledger/internal/chain/fake"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TokenService", func() {
	var (
		fakeClient *fake.EthClient
		ctx        context.Context

		service *chain.TokenService
		cfg     chain.Config

		fakeErr error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		ctx = context.Background()

		cfg = chain.Config{
			TokenContract:    "0x5FbDB2315678afecb367f032d93F642f64180aa3",
			AssetContract:    "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
			VaultAddress:     "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0",
			MinterPrivateKey: "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
			ReceiptInterval:  time.Millisecond,
		}

		var err error
		service, err = chain.NewTokenService(fakeClient, cfg)
		Expect(err).NotTo(HaveOccurred())

		fakeErr = errors.New("fake error")
	})

	Describe("NewTokenService", func() {
		When("the minter key is malformed", func() {
			It("should return an error", func() {
				cfg.MinterPrivateKey = "not-a-key"
				_, err := chain.NewTokenService(fakeClient, cfg)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("CurrentHeight", func() {
		When("the node responds", func() {
			BeforeEach(func() {
				fakeClient.BlockNumberReturns(12345, nil)
			})

			It("should return the chain height", func() {
				height, err := service.CurrentHeight(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(height).To(Equal(uint64(12345)))
			})
		})

		When("the node fails", func() {
			BeforeEach(func() {
				fakeClient.BlockNumberReturns(0, fakeErr)
			})

			It("should return the error", func() {
				_, err := service.CurrentHeight(ctx)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DepositEvents", func() {
		var (
			depositorA common.Address
			depositorB common.Address
		)

		BeforeEach(func() {
			depositorA = common.HexToAddress("0x9aF2E435A27A6F8D3a4DaD4eF971eC17C5ED6c41")
			depositorB = common.HexToAddress("0x2C18d35b3AbA73E3E79F35be175D6CcB5ddB3428")

			transferTopic := crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
			vaultTopic := common.BytesToHash(common.HexToAddress(cfg.VaultAddress).Bytes())

			// returned deliberately out of order
			fakeClient.FilterLogsReturns([]types.Log{
				{
					BlockNumber: 97,
					Index:       0,
					TxHash:      common.HexToHash("0xbbb"),
					Topics:      []common.Hash{transferTopic, common.BytesToHash(depositorB.Bytes()), vaultTopic},
					Data:        common.LeftPadBytes(big.NewInt(500).Bytes(), 32),
				},
				{
					BlockNumber: 95,
					Index:       2,
					TxHash:      common.HexToHash("0xaaa"),
					Topics:      []common.Hash{transferTopic, common.BytesToHash(depositorA.Bytes()), vaultTopic},
					Data:        common.LeftPadBytes(big.NewInt(1000).Bytes(), 32),
				},
				{
					// anonymous log without indexed participants
					BlockNumber: 96,
					Topics:      []common.Hash{transferTopic},
				},
			}, nil)
		})

		It("queries transfers into the vault for the block window", func() {
			_, err := service.DepositEvents(ctx, 91, 100)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeClient.FilterLogsCallCount()).To(Equal(1))
			_, query := fakeClient.FilterLogsArgsForCall(0)
			Expect(query.FromBlock.Uint64()).To(Equal(uint64(91)))
			Expect(query.ToBlock.Uint64()).To(Equal(uint64(100)))
			Expect(query.Addresses).To(ConsistOf([]common.Address{common.HexToAddress(cfg.AssetContract)}))
			Expect(query.Topics).To(HaveLen(3))
			Expect(query.Topics[2]).To(ConsistOf([]common.Hash{common.BytesToHash(common.HexToAddress(cfg.VaultAddress).Bytes())}))
		})

		It("returns parsed events ascending by block and log index", func() {
			events, err := service.DepositEvents(ctx, 91, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(events).To(HaveLen(2))

			Expect(events[0].BlockNumber).To(Equal(uint64(95)))
			Expect(events[0].Depositor).To(Equal(depositorA.Hex()))
			Expect(events[0].Amount.String()).To(Equal("1000"))
			Expect(events[0].TxHash).To(Equal(common.HexToHash("0xaaa").Hex()))

			Expect(events[1].BlockNumber).To(Equal(uint64(97)))
			Expect(events[1].Depositor).To(Equal(depositorB.Hex()))
			Expect(events[1].Amount.String()).To(Equal("500"))
		})

		When("the log query fails", func() {
			BeforeEach(func() {
				fakeClient.FilterLogsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				_, err := service.DepositEvents(ctx, 91, 100)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Mint", func() {
		BeforeEach(func() {
			fakeClient.PendingNonceAtReturns(7, nil)
			fakeClient.SuggestGasPriceReturns(big.NewInt(1_000_000_000), nil)
			fakeClient.NetworkIDReturns(big.NewInt(1337), nil)
			fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
		})

		When("the transaction is mined successfully", func() {
			It("submits a signed mint and returns its hash", func() {
				txHash, err := service.Mint(ctx, "0x1bE6683Cd00Fa0E6f3F0F15E36eD49E104105D2a", big.NewInt(2500))
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
				_, sentTx := fakeClient.SendTransactionArgsForCall(0)
				Expect(sentTx.To().Hex()).To(Equal(common.HexToAddress(cfg.TokenContract).Hex()))
				Expect(sentTx.Nonce()).To(Equal(uint64(7)))
				Expect(txHash).To(Equal(sentTx.Hash().Hex()))

				_, receiptHash := fakeClient.TransactionReceiptArgsForCall(0)
				Expect(receiptHash).To(Equal(sentTx.Hash()))
			})
		})

		When("the receipt is not immediately available", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturnsOnCall(0, nil, ethereum.NotFound)
				fakeClient.TransactionReceiptReturnsOnCall(1, &types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			})

			It("polls until the transaction is mined", func() {
				_, err := service.Mint(ctx, "0x1bE6683Cd00Fa0E6f3F0F15E36eD49E104105D2a", big.NewInt(2500))
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))
			})
		})

		When("the transaction reverts", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)
			})

			It("should return mint reverted error", func() {
				_, err := service.Mint(ctx, "0x1bE6683Cd00Fa0E6f3F0F15E36eD49E104105D2a", big.NewInt(2500))
				Expect(err).To(MatchError(chain.ErrMintReverted))
			})
		})

		When("broadcasting fails", func() {
			BeforeEach(func() {
				fakeClient.SendTransactionReturns(fakeErr)
			})

			It("should return the error without polling", func() {
				_, err := service.Mint(ctx, "0x1bE6683Cd00Fa0E6f3F0F15E36eD49E104105D2a", big.NewInt(2500))
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(0))
			})
		})
	})

	Describe("TokenBalance", func() {
		When("the contract responds", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(common.LeftPadBytes(big.NewInt(98765).Bytes(), 32), nil)
			})

			It("should return the decoded balance", func() {
				balance, err := service.TokenBalance(ctx, "0x1bE6683Cd00Fa0E6f3F0F15E36eD49E104105D2a")
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.String()).To(Equal("98765"))

				_, msg, _ := fakeClient.CallContractArgsForCall(0)
				Expect(msg.To.Hex()).To(Equal(common.HexToAddress(cfg.TokenContract).Hex()))
			})
		})

		When("the call fails", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				_, err := service.TokenBalance(ctx, "0x1bE6683Cd00Fa0E6f3F0F15E36eD49E104105D2a")
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
