package rates

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const aggregatorABIJSON = `[
	{"name":"latestRoundData","type":"function","stateMutability":"view","inputs":[],"outputs":[
		{"name":"roundId","type":"uint80"},
		{"name":"answer","type":"int256"},
		{"name":"startedAt","type":"uint256"},
		{"name":"updatedAt","type":"uint256"},
		{"name":"answeredInRound","type":"uint80"}
	]}
]`

var ErrNoFeed error = errors.New("no oracle feed configured for pair")

// FeedOracle reads chainlink-style aggregator contracts, one feed address per
// currency pair.
type FeedOracle struct {
	caller        ContractCaller
	aggregatorABI abi.ABI
	feeds         map[string]common.Address
}

func NewFeedOracle(caller ContractCaller, feedAddresses map[string]string) (*FeedOracle, error) {
	parsedABI, err := abi.JSON(strings.NewReader(aggregatorABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse aggregator abi: %w", err)
	}

	feeds := make(map[string]common.Address, len(feedAddresses))
	for pair, address := range feedAddresses {
		feeds[pair] = common.HexToAddress(address)
	}

	return &FeedOracle{
		caller:        caller,
		aggregatorABI: parsedABI,
		feeds:         feeds,
	}, nil
}

func (o *FeedOracle) LatestPrice(ctx context.Context, pairID string) (*big.Int, error) {
	feed, ok := o.feeds[pairID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoFeed, pairID)
	}

	callData, err := o.aggregatorABI.Pack("latestRoundData")
	if err != nil {
		return nil, fmt.Errorf("pack latestRoundData call: %w", err)
	}

	output, err := o.caller.CallContract(ctx, ethereum.CallMsg{
		To:   &feed,
		Data: callData,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("call feed %s: %w", feed.Hex(), err)
	}

	results, err := o.aggregatorABI.Unpack("latestRoundData", output)
	if err != nil {
		return nil, fmt.Errorf("unpack latestRoundData result: %w", err)
	}

	answer, ok := results[1].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected answer type %T", results[1])
	}
	if answer.Sign() <= 0 {
		return nil, fmt.Errorf("feed %s returned non-positive price %s", feed.Hex(), answer)
	}

	return answer, nil
}
