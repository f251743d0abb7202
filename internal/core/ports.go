package core

import (
	"context"
	"math/big"

	"afriledger/internal/repository"
	tokenIssuer "afriledger/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	AccountByID(ctx context.Context, id string) (repository.Account, error)
	AccountByDepositAddress(ctx context.Context, address string) (repository.Account, error)
	SetDepositAddress(ctx context.Context, accountID, address string) error
	ExecuteTransfer(ctx context.Context, params repository.TransferParams) error
	CreditDeposit(ctx context.Context, accountID string, amount *big.Int, record repository.Transaction) error
	SaveRecord(ctx context.Context, record repository.Transaction) error
	RecordExists(ctx context.Context, hash string) (bool, error)
	History(ctx context.Context, accountID string, limit int) ([]repository.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name ChainService . ChainService
type ChainService interface {
	Mint(ctx context.Context, toAddress string, amount *big.Int) (string, error)
	TokenBalance(ctx context.Context, address string) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name RateService . RateService
type RateService interface {
	Convert(ctx context.Context, amount *big.Int, currency string) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
