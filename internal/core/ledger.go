package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"afriledger/internal/repository"
	"afriledger/pkg/identity"
	tokenIssuer "afriledger/pkg/jwt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrAccountNotFound error = errors.New("account not found")
var ErrRecipientNotFound error = errors.New("recipient not found")
var ErrInsufficientBalance error = errors.New("insufficient balance")
var ErrIncorrectPIN error = errors.New("incorrect pin")
var ErrInvalidAmount error = errors.New("amount must be a positive integer")
var ErrUnsupportedCurrency error = errors.New("unsupported currency")

const defaultHistoryLimit = 20

// Ledger is the custodial balance engine: PIN-gated peer transfers plus the
// funding/minting operations that mirror on-chain value into the ledger.
type Ledger struct {
	logs      *zap.SugaredLogger
	repo      Repository
	chain     ChainService
	rates     RateService
	jwtIssuer JWTIssuer
}

func NewLedger(logger *zap.SugaredLogger, repo Repository, chain ChainService, rates RateService, jwt JWTIssuer) *Ledger {
	return &Ledger{
		logs:      logger,
		repo:      repo,
		chain:     chain,
		rates:     rates,
		jwtIssuer: jwt,
	}
}

// Authenticate checks the PIN for the phone number's account and issues a
// session token on success.
func (l *Ledger) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	account, err := l.repo.AccountByID(ctx, identity.PhoneToKey(msg.PhoneNumber))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", ErrAccountNotFound
		}
		return "", fmt.Errorf("get account: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PINHash), []byte(msg.PIN)); err != nil {
		return "", ErrIncorrectPIN
	}

	tokenInfo := tokenIssuer.TokenInfo{
		PhoneNumber: account.PhoneNumber,
		Subject:     account.ID,
		Expiration:  24,
	}
	token := l.jwtIssuer.Generate(tokenInfo)
	signed, err := l.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// SendMoney moves amount (minor units) from the token holder's account to the
// account behind recipientPhone. Debit, credit and both ledger records commit
// atomically under one transfer ID; on any failure neither balance moves.
func (l *Ledger) SendMoney(ctx context.Context, token, recipientPhone string, amount *big.Int) (string, error) {
	senderID, err := l.resolveSubject(token)
	if err != nil {
		return "", err
	}

	if amount == nil || amount.Sign() <= 0 {
		return "", ErrInvalidAmount
	}

	sender, err := l.repo.AccountByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", ErrAccountNotFound
		}
		return "", fmt.Errorf("get sender account: %w", err)
	}

	recipient, err := l.repo.AccountByID(ctx, identity.PhoneToKey(recipientPhone))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", ErrRecipientNotFound
		}
		return "", fmt.Errorf("get recipient account: %w", err)
	}

	transferID := ulid.Make().String()
	amountStr := amount.String()

	params := repository.TransferParams{
		TransferID:  transferID,
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Amount:      amount,
		SendRecord: repository.Transaction{
			Hash:           newLedgerHash(),
			TransferID:     transferID,
			SenderID:       sender.ID,
			SenderPhone:    sender.PhoneNumber,
			RecipientID:    recipient.ID,
			RecipientPhone: recipient.PhoneNumber,
			Amount:         amountStr,
			Status:         repository.StatusCompleted,
			Type:           repository.TypeSend,
		},
		ReceiveRecord: repository.Transaction{
			Hash:           newLedgerHash(),
			TransferID:     transferID,
			SenderID:       sender.ID,
			SenderPhone:    sender.PhoneNumber,
			RecipientID:    recipient.ID,
			RecipientPhone: recipient.PhoneNumber,
			Amount:         amountStr,
			Status:         repository.StatusCompleted,
			Type:           repository.TypeReceive,
		},
	}

	err = l.repo.ExecuteTransfer(ctx, params)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientBalance) {
			return "", ErrInsufficientBalance
		}
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", ErrRecipientNotFound
		}
		return "", fmt.Errorf("execute transfer: %w", err)
	}

	l.logs.Infow("transfer completed",
		"transfer_id", transferID,
		"sender", sender.PhoneNumber,
		"recipient", recipient.PhoneNumber,
		"amount", amountStr)

	return transferID, nil
}

// GetHistory returns the account's ledger records, newest first.
func (l *Ledger) GetHistory(ctx context.Context, token string, limit int) ([]repository.Transaction, error) {
	accountID, err := l.resolveSubject(token)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	records, err := l.repo.History(ctx, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	return records, nil
}

func (l *Ledger) resolveSubject(token string) (string, error) {
	claims, err := l.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w", err)
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", errors.New("jwt token has no subject")
	}

	return subject, nil
}

// newLedgerHash generates a unique off-chain record hash in on-chain format.
func newLedgerHash() string {
	sum := sha256.Sum256([]byte(uuid.NewString()))
	return "0x" + hex.EncodeToString(sum[:])
}
