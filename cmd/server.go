package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"afriledger/internal/chain"
	"afriledger/internal/config"
	"afriledger/internal/core"
	"afriledger/internal/db"
	"afriledger/internal/http/handler"
	"afriledger/internal/http/handler/middleware"
	"afriledger/internal/http/payload"
	"afriledger/internal/http/server"
	"afriledger/internal/poller"
	"afriledger/internal/rates"
	"afriledger/internal/repository"
	"afriledger/pkg/jwt"
	"afriledger/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("afriledger", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewLedgerRepository(dbConn)

	err = repo.MigrateAndSeed(context.Background())
	if err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("eth node connection failed", "error", err)
		return err
	}

	tokenService, err := chain.NewTokenService(client, chain.Config{
		TokenContract:    config.TokenContract,
		AssetContract:    config.AssetContract,
		VaultAddress:     config.VaultAddress,
		MinterPrivateKey: config.MinterPrivateKey,
	})
	if err != nil {
		logger.Errorw("failed to create token service", "error", err)
		return err
	}

	oracle, err := rates.NewFeedOracle(client, config.OracleFeeds)
	if err != nil {
		logger.Errorw("failed to create feed oracle", "error", err)
		return err
	}

	rateCache := rates.NewCache(
		logger,
		oracle,
		feedPairs(config.OracleFeeds),
		currencyPairs(config.OracleFeeds),
		config.CacheTTL)

	// ledger core
	ledger := core.NewLedger(
		logger,
		repo,
		tokenService,
		rateCache,
		jwtService)

	// deposit reconciliation
	depositPoller := poller.NewPoller(
		logger,
		tokenService,
		ledger,
		rateCache,
		repo,
		poller.Config{
			Interval:   config.PollInterval,
			BaseDelay:  config.BaseDelay,
			MaxRetries: config.MaxRetries,
		})

	// handler
	ledgerHlr := handler.NewLedgerHandler(
		logger,
		payload.DecodeValidator{},
		ledger)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, ledgerHlr.HandleAuthenticate)
	mux.HandleFunc(handler.SendMoney, ledgerHlr.HandleSendMoney)
	mux.HandleFunc(handler.GetBalance, ledgerHlr.HandleGetBalance)
	mux.HandleFunc(handler.GetHistory, ledgerHlr.HandleGetHistory)
	mux.HandleFunc(handler.Fund, ledgerHlr.HandleFund)
	mux.HandleFunc(handler.SetDepositAddress, ledgerHlr.HandleSetDepositAddress)

	pollerCtx, stopPoller := context.WithCancel(context.Background())
	defer stopPoller()
	go depositPoller.Run(pollerCtx)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}

func feedPairs(feeds map[string]string) []string {
	pairs := make([]string, 0, len(feeds))
	for pair := range feeds {
		pairs = append(pairs, pair)
	}
	return pairs
}

// currencyPairs derives the fiat conversion table from the configured feeds:
// every X/AFRI feed makes X a fundable currency.
func currencyPairs(feeds map[string]string) map[string]string {
	currencies := make(map[string]string)
	for pair := range feeds {
		currency, quote, found := strings.Cut(pair, "/")
		if found && quote == "AFRI" {
			currencies[currency] = pair
		}
	}
	return currencies
}
