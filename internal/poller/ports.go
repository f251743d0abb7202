package poller

import (
	"context"
	"math/big"

	"afriledger/internal/chain"
	"afriledger/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainWatcher . ChainWatcher
type ChainWatcher interface {
	CurrentHeight(ctx context.Context) (uint64, error)
	DepositEvents(ctx context.Context, fromBlock, toBlock uint64) ([]chain.DepositEvent, error)
}

//counterfeiter:generate -o fake -fake-name Funder . Funder
type Funder interface {
	FundFromChain(ctx context.Context, deposit core.Deposit) error
}

//counterfeiter:generate -o fake -fake-name PriceSource . PriceSource
type PriceSource interface {
	FetchPrice(ctx context.Context, pair string) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name CursorStore . CursorStore
type CursorStore interface {
	Cursor(ctx context.Context) (uint64, error)
	SetCursor(ctx context.Context, height uint64) error
}
