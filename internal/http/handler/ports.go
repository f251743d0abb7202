package handler

import (
	"context"
	"math/big"
	"net/http"

	"afriledger/internal/core"
	"afriledger/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name LedgerService . LedgerService
type LedgerService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	SendMoney(ctx context.Context, token, recipientPhone string, amount *big.Int) (string, error)
	GetHistory(ctx context.Context, token string, limit int) ([]repository.Transaction, error)
	GetBalance(ctx context.Context, token string) (*big.Int, error)
	FundFromFiat(ctx context.Context, token string, funding core.FiatFunding) (repository.Transaction, error)
	SetDepositAddress(ctx context.Context, token, address string) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
