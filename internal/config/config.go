package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	ethNodeEnvKey       = "ETH_NODE_URL"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	jwtSecretEnvKey     = "JWT_SECRET"
	tokenContractEnvKey = "TOKEN_CONTRACT_ADDRESS"
	assetContractEnvKey = "ASSET_CONTRACT_ADDRESS"
	vaultAddressEnvKey  = "CUSTODY_VAULT_ADDRESS"
	minterKeyEnvKey     = "MINTER_PRIVATE_KEY"
	oracleFeedsEnvKey   = "ORACLE_FEED_ADDRESSES"
	pollIntervalEnvKey  = "POLL_INTERVAL"
	cacheTTLEnvKey      = "RATE_CACHE_TTL"
	maxRetriesEnvKey    = "POLLER_MAX_RETRIES"
	baseDelayEnvKey     = "POLLER_BASE_DELAY"
)

const (
	defaultPollInterval = 30 * time.Second
	defaultCacheTTL     = 5 * time.Minute
	defaultMaxRetries   = 5
	defaultBaseDelay    = 2 * time.Second
)

type App struct {
	Port             string
	NodeURL          string
	DBConnectionURL  string
	JWTSecret        string
	TokenContract    string
	AssetContract    string
	VaultAddress     string
	MinterPrivateKey string
	// OracleFeeds maps a currency pair (e.g. "ETH/USD") to its on-chain
	// aggregator feed address.
	OracleFeeds  map[string]string
	PollInterval time.Duration
	CacheTTL     time.Duration
	MaxRetries   int
	BaseDelay    time.Duration
}

func NewApp() (App, error) {
	// local development convenience, ignored when the file is absent
	_ = godotenv.Load()

	app := App{
		PollInterval: defaultPollInterval,
		CacheTTL:     defaultCacheTTL,
		MaxRetries:   defaultMaxRetries,
		BaseDelay:    defaultBaseDelay,
	}

	for key, target := range map[string]*string{
		apiPortEnvKey:       &app.Port,
		ethNodeEnvKey:       &app.NodeURL,
		dbConnEnvKey:        &app.DBConnectionURL,
		jwtSecretEnvKey:     &app.JWTSecret,
		tokenContractEnvKey: &app.TokenContract,
		assetContractEnvKey: &app.AssetContract,
		vaultAddressEnvKey:  &app.VaultAddress,
		minterKeyEnvKey:     &app.MinterPrivateKey,
	} {
		value, ok := os.LookupEnv(key)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, key)
		}
		*target = value
	}

	rawFeeds, ok := os.LookupEnv(oracleFeedsEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, oracleFeedsEnvKey)
	}
	feeds, err := parseFeeds(rawFeeds)
	if err != nil {
		return App{}, err
	}
	if len(feeds) == 0 {
		return App{}, fmt.Errorf("no oracle feeds configured in %s", oracleFeedsEnvKey)
	}
	app.OracleFeeds = feeds

	if err := overrideDuration(pollIntervalEnvKey, &app.PollInterval); err != nil {
		return App{}, err
	}
	if err := overrideDuration(cacheTTLEnvKey, &app.CacheTTL); err != nil {
		return App{}, err
	}
	if err := overrideDuration(baseDelayEnvKey, &app.BaseDelay); err != nil {
		return App{}, err
	}

	if raw, ok := os.LookupEnv(maxRetriesEnvKey); ok {
		retries, err := strconv.Atoi(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", maxRetriesEnvKey, err)
		}
		app.MaxRetries = retries
	}

	return app, nil
}

// parseFeeds parses "ETH/USD=0xabc...,USD/AFRI=0xdef..." into a pair→address map.
func parseFeeds(raw string) (map[string]string, error) {
	feeds := make(map[string]string)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		pair, address, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("malformed oracle feed entry: %q", entry)
		}
		feeds[strings.TrimSpace(pair)] = strings.TrimSpace(address)
	}
	return feeds, nil
}

func overrideDuration(key string, target *time.Duration) error {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*target = parsed
	return nil
}
