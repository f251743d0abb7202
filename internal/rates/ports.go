package rates

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Oracle . Oracle
type Oracle interface {
	LatestPrice(ctx context.Context, pairID string) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name ContractCaller . ContractCaller
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}
