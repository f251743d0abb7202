package poller

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"afriledger/internal/core"

	"go.uber.org/zap"
)

type State int

const (
	StateIdle State = iota
	StateScanning
	StateRecovering
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateRecovering:
		return "recovering"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

const (
	PairETHUSD  = "ETH/USD"
	PairUSDAFRI = "USD/AFRI"
)

// afriDecimals is the minor-unit scale of the ledger currency.
const afriDecimals = 2

var (
	weiPerEth   = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	oracleScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(8), nil)
	afriScale   = new(big.Int).Exp(big.NewInt(10), big.NewInt(afriDecimals), nil)

	// fallbackAfriPerEth prices a deposit when the oracle is unreachable:
	// AFRI minor units per whole ETH, deliberately far below market so an
	// outage can never over-mint. Stopgap, see DESIGN.md.
	fallbackAfriPerEth = big.NewInt(100_000_000)
)

type Config struct {
	Interval   time.Duration
	BaseDelay  time.Duration
	MaxRetries int
}

// Poller watches the chain for new deposit events, prices them and hands each
// one to the funding service exactly once. Scan failures back off
// exponentially; past the retry ceiling the poller stops for good and must be
// restarted externally.
type Poller struct {
	logs   *zap.SugaredLogger
	chain  ChainWatcher
	funder Funder
	prices PriceSource
	cursor CursorStore
	cfg    Config

	mu      sync.Mutex
	state   State
	retries int
}

func NewPoller(logger *zap.SugaredLogger, watcher ChainWatcher, funder Funder, prices PriceSource, cursor CursorStore, cfg Config) *Poller {
	return &Poller{
		logs:   logger,
		chain:  watcher,
		funder: funder,
		prices: prices,
		cursor: cursor,
		cfg:    cfg,
		state:  StateIdle,
	}
}

func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Poller) Retries() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.retries
}

// Run drives ticks until the context is cancelled or the poller stops.
func (p *Poller) Run(ctx context.Context) {
	p.logs.Infow("deposit poller started",
		"interval", p.cfg.Interval,
		"max_retries", p.cfg.MaxRetries)

	for {
		p.Tick(ctx)

		var wait time.Duration
		switch p.State() {
		case StateStopped:
			p.logs.Errorw("deposit poller stopped after exhausting retries",
				"retries", p.Retries())
			return
		case StateRecovering:
			wait = BackoffDelay(p.cfg.BaseDelay, p.Retries())
		default:
			wait = p.cfg.Interval
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// Tick performs one poll cycle. A stopped poller ignores ticks entirely.
func (p *Poller) Tick(ctx context.Context) {
	if p.State() == StateStopped {
		return
	}
	p.setState(StateScanning)

	err := p.scan(ctx)
	if err != nil {
		p.mu.Lock()
		p.retries++
		retries := p.retries
		if retries > p.cfg.MaxRetries {
			p.state = StateStopped
		} else {
			p.state = StateRecovering
		}
		state := p.state
		p.mu.Unlock()

		p.logs.Errorw("deposit scan failed",
			"error", err,
			"retries", retries,
			"state", state.String())
		return
	}

	p.mu.Lock()
	p.retries = 0
	p.state = StateIdle
	p.mu.Unlock()
}

func (p *Poller) scan(ctx context.Context) error {
	height, err := p.chain.CurrentHeight(ctx)
	if err != nil {
		return fmt.Errorf("get current height: %w", err)
	}

	cursor, err := p.cursor.Cursor(ctx)
	if err != nil {
		return fmt.Errorf("get cursor: %w", err)
	}
	if height <= cursor {
		return nil
	}

	events, err := p.chain.DepositEvents(ctx, cursor+1, height)
	if err != nil {
		return fmt.Errorf("query deposit events in (%d, %d]: %w", cursor, height, err)
	}

	for _, event := range events {
		amount := p.priceDeposit(ctx, event.Amount)
		deposit := core.Deposit{
			DepositAddress: event.Depositor,
			Amount:         amount,
			TxHash:         event.TxHash,
		}
		// individual failures must not block the batch: the record is logged
		// and the event revisited only if the process restarts mid-batch
		if err := p.funder.FundFromChain(ctx, deposit); err != nil {
			p.logs.Errorw("deposit processing failed",
				"error", err,
				"tx_hash", event.TxHash,
				"block", event.BlockNumber)
		}
	}

	if err := p.cursor.SetCursor(ctx, height); err != nil {
		return fmt.Errorf("advance cursor to %d: %w", height, err)
	}

	return nil
}

// priceDeposit converts a wei amount into AFRI minor units by composing the
// ETH/USD and USD/AFRI oracle rates. If either lookup fails the conservative
// fallback rate is applied instead of dropping the deposit.
func (p *Poller) priceDeposit(ctx context.Context, wei *big.Int) *big.Int {
	ethUsd, err := p.prices.FetchPrice(ctx, PairETHUSD)
	if err != nil {
		p.logs.Errorw("price lookup failed, applying fallback rate", "pair", PairETHUSD, "error", err)
		return fallbackAmount(wei)
	}

	usdAfri, err := p.prices.FetchPrice(ctx, PairUSDAFRI)
	if err != nil {
		p.logs.Errorw("price lookup failed, applying fallback rate", "pair", PairUSDAFRI, "error", err)
		return fallbackAmount(wei)
	}

	return MintAmount(wei, ethUsd, usdAfri)
}

// MintAmount is the exact minor-unit value of a wei deposit at the given
// oracle prices: wei × pETHUSD × pUSDAFRI × afriScale / (10^18 × 10^8 × 10^8).
func MintAmount(wei, ethUsd, usdAfri *big.Int) *big.Int {
	amount := new(big.Int).Mul(wei, ethUsd)
	amount.Mul(amount, usdAfri)
	amount.Mul(amount, afriScale)
	amount.Div(amount, weiPerEth)
	amount.Div(amount, oracleScale)
	amount.Div(amount, oracleScale)
	return amount
}

func fallbackAmount(wei *big.Int) *big.Int {
	amount := new(big.Int).Mul(wei, fallbackAfriPerEth)
	return amount.Div(amount, weiPerEth)
}

// BackoffDelay is the recovery delay after the given number of consecutive
// failures: baseDelay doubled per extra failure.
func BackoffDelay(baseDelay time.Duration, retries int) time.Duration {
	if retries < 1 {
		return baseDelay
	}
	return baseDelay << (retries - 1)
}

func (p *Poller) setState(state State) {
	p.mu.Lock()
	p.state = state
	p.mu.Unlock()
}
