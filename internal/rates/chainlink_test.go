package rates_test

import (
	"context"
	"errors"
	"math/big"

	"afriledger/internal/rates"
	"afriledger/internal/rates/fake"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// roundData encodes a latestRoundData result with the given answer; the other
// four fields are zero.
func roundData(answer *big.Int) []byte {
	out := make([]byte, 160)
	copy(out[32:64], common.LeftPadBytes(answer.Bytes(), 32))
	return out
}

var _ = Describe("FeedOracle", func() {
	var (
		fakeCaller *fake.ContractCaller
		ctx        context.Context

		oracle      *rates.FeedOracle
		feedAddress string

		fakeErr error
	)

	BeforeEach(func() {
		fakeCaller = new(fake.ContractCaller)
		ctx = context.Background()

		feedAddress = "0x5f4eC3Df9cbd43714FE2740f5E3616155c5b8419"
		var err error
		oracle, err = rates.NewFeedOracle(fakeCaller, map[string]string{
			"ETH/USD": feedAddress,
		})
		Expect(err).NotTo(HaveOccurred())

		fakeErr = errors.New("fake error")
	})

	Describe("LatestPrice", func() {
		When("the feed answers", func() {
			BeforeEach(func() {
				fakeCaller.CallContractReturns(roundData(big.NewInt(2500_00000000)), nil)
			})

			It("should return the answer", func() {
				price, err := oracle.LatestPrice(ctx, "ETH/USD")
				Expect(err).NotTo(HaveOccurred())
				Expect(price.String()).To(Equal("250000000000"))

				Expect(fakeCaller.CallContractCallCount()).To(Equal(1))
				_, msg, blockNumber := fakeCaller.CallContractArgsForCall(0)
				Expect(msg.To.Hex()).To(Equal(common.HexToAddress(feedAddress).Hex()))
				Expect(msg.Data).NotTo(BeEmpty())
				Expect(blockNumber).To(BeNil())
			})
		})

		When("no feed is configured for the pair", func() {
			It("should return no feed error", func() {
				_, err := oracle.LatestPrice(ctx, "BTC/USD")
				Expect(err).To(MatchError(rates.ErrNoFeed))
				Expect(fakeCaller.CallContractCallCount()).To(Equal(0))
			})
		})

		When("the feed reports a non-positive price", func() {
			BeforeEach(func() {
				fakeCaller.CallContractReturns(roundData(big.NewInt(0)), nil)
			})

			It("should reject the answer", func() {
				_, err := oracle.LatestPrice(ctx, "ETH/USD")
				Expect(err).To(HaveOccurred())
			})
		})

		When("the contract call fails", func() {
			BeforeEach(func() {
				fakeCaller.CallContractReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				_, err := oracle.LatestPrice(ctx, "ETH/USD")
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
