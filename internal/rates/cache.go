package rates

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OracleDecimals is the fixed-point scale of every oracle price: a price of
// 2500 USD per ETH arrives as 2500 * 10^8.
const OracleDecimals = 8

var TimeNow = time.Now

var ErrUnsupportedCurrency error = errors.New("unsupported currency")

type cacheEntry struct {
	price     *big.Int
	fetchedAt time.Time
}

// Cache serves oracle prices from memory while they are younger than the TTL.
// Entries are read-then-overwritten; last writer wins, which is acceptable
// under the TTL contract.
type Cache struct {
	logs       *zap.SugaredLogger
	oracle     Oracle
	pairs      []string
	currencies map[string]string // currency code → pair ID
	ttl        time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func NewCache(logger *zap.SugaredLogger, oracle Oracle, pairs []string, currencies map[string]string, ttl time.Duration) *Cache {
	return &Cache{
		logs:       logger,
		oracle:     oracle,
		pairs:      pairs,
		currencies: currencies,
		ttl:        ttl,
		entries:    make(map[string]cacheEntry),
	}
}

// FetchPrice returns the cached price for the pair while it is fresh,
// otherwise queries the oracle and caches the result.
func (c *Cache) FetchPrice(ctx context.Context, pair string) (*big.Int, error) {
	if price, ok := c.cached(pair); ok {
		return price, nil
	}

	price, err := c.oracle.LatestPrice(ctx, pair)
	if err != nil {
		return nil, fmt.Errorf("oracle price for %q: %w", pair, err)
	}

	c.mu.Lock()
	c.entries[pair] = cacheEntry{price: price, fetchedAt: TimeNow()}
	c.mu.Unlock()

	return new(big.Int).Set(price), nil
}

type priceResult struct {
	pair  string
	price *big.Int
	err   error
}

// FetchAllPrices refreshes every configured pair concurrently. Individual
// failures are logged and skipped; only the pairs that succeeded are returned.
func (c *Cache) FetchAllPrices(ctx context.Context) map[string]*big.Int {
	resultsChan := make(chan priceResult)

	var wg sync.WaitGroup
	for _, pair := range c.pairs {
		wg.Add(1)
		go func(pair string) {
			defer wg.Done()
			price, err := c.FetchPrice(ctx, pair)
			resultsChan <- priceResult{pair: pair, price: price, err: err}
		}(pair)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	prices := make(map[string]*big.Int)
	for result := range resultsChan {
		if result.err != nil {
			c.logs.Errorw("skipping pair after oracle failure", "pair", result.pair, "error", result.err)
			continue
		}
		prices[result.pair] = result.price
	}

	return prices
}

// Convert prices amount (minor units) of the given currency into AFRI minor
// units at the current rate, rounded to display precision.
func (c *Cache) Convert(ctx context.Context, amount *big.Int, currency string) (*big.Int, error) {
	pair, ok := c.currencies[currency]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, currency)
	}

	price, err := c.FetchPrice(ctx, pair)
	if err != nil {
		return nil, fmt.Errorf("fetch price: %w", err)
	}

	converted := decimal.NewFromBigInt(amount, 0).
		Mul(decimal.NewFromBigInt(price, -OracleDecimals)).
		Round(0)

	return converted.BigInt(), nil
}

// Clear drops every cache entry; the next fetch per pair goes to the oracle.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

func (c *Cache) cached(pair string) (*big.Int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[pair]
	if !ok || TimeNow().Sub(entry.fetchedAt) >= c.ttl {
		return nil, false
	}
	return new(big.Int).Set(entry.price), true
}
