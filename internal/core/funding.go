package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"afriledger/internal/rates"
	"afriledger/internal/repository"
)

// FundFromChain credits a deposit observed on chain exactly once. Deposits
// from wallets no account has registered are skipped without error so the
// poller can advance past them.
func (l *Ledger) FundFromChain(ctx context.Context, deposit Deposit) error {
	account, err := l.repo.AccountByDepositAddress(ctx, deposit.DepositAddress)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			l.logs.Infow("deposit from unregistered wallet, skipping",
				"deposit_address", deposit.DepositAddress,
				"tx_hash", deposit.TxHash)
			return nil
		}
		return fmt.Errorf("get account by deposit address: %w", err)
	}

	exists, err := l.repo.RecordExists(ctx, deposit.TxHash)
	if err != nil {
		return fmt.Errorf("check deposit record: %w", err)
	}
	if exists {
		l.logs.Infow("deposit already processed", "tx_hash", deposit.TxHash)
		return nil
	}

	// mint to the outbound wallet, never the deposit wallet: users may rotate
	// their funding source without changing their receiving identity
	mintTxHash, err := l.chain.Mint(ctx, account.WalletAddress, deposit.Amount)
	if err != nil {
		return fmt.Errorf("mint tokens: %w", err)
	}

	record := repository.Transaction{
		Hash:           deposit.TxHash,
		RecipientID:    account.ID,
		RecipientPhone: account.PhoneNumber,
		Amount:         deposit.Amount.String(),
		Status:         repository.StatusCompleted,
		Type:           repository.TypeMint,
		DepositAddress: deposit.DepositAddress,
		MintTxHash:     mintTxHash,
	}

	err = l.repo.CreditDeposit(ctx, account.ID, deposit.Amount, record)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateRecord) {
			l.logs.Infow("deposit credited concurrently, skipping", "tx_hash", deposit.TxHash)
			return nil
		}
		return fmt.Errorf("credit deposit: %w", err)
	}

	l.logs.Infow("deposit credited",
		"account", account.PhoneNumber,
		"amount", deposit.Amount.String(),
		"tx_hash", deposit.TxHash,
		"mint_tx_hash", mintTxHash)

	return nil
}

// FundFromFiat converts a fiat or mobile-money amount into AFRI and records a
// pending credit; on-chain settlement is confirmed out of band.
func (l *Ledger) FundFromFiat(ctx context.Context, token string, funding FiatFunding) (repository.Transaction, error) {
	accountID, err := l.resolveSubject(token)
	if err != nil {
		return repository.Transaction{}, err
	}

	if funding.Amount == nil || funding.Amount.Sign() <= 0 {
		return repository.Transaction{}, ErrInvalidAmount
	}

	account, err := l.repo.AccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return repository.Transaction{}, ErrAccountNotFound
		}
		return repository.Transaction{}, fmt.Errorf("get account: %w", err)
	}

	afriAmount, err := l.rates.Convert(ctx, funding.Amount, funding.Currency)
	if err != nil {
		if errors.Is(err, rates.ErrUnsupportedCurrency) {
			return repository.Transaction{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, funding.Currency)
		}
		return repository.Transaction{}, fmt.Errorf("convert funding amount: %w", err)
	}

	hash := funding.ExternalRef
	if hash == "" {
		hash = newLedgerHash()
	}

	record := repository.Transaction{
		Hash:           hash,
		RecipientID:    account.ID,
		RecipientPhone: account.PhoneNumber,
		Amount:         afriAmount.String(),
		Status:         repository.StatusPending,
		Type:           repository.TypeReceive,
		Method:         funding.Method,
		Currency:       funding.Currency,
	}

	if err := l.repo.SaveRecord(ctx, record); err != nil {
		return repository.Transaction{}, fmt.Errorf("save funding record: %w", err)
	}

	l.logs.Infow("fiat funding recorded",
		"account", account.PhoneNumber,
		"currency", funding.Currency,
		"method", funding.Method,
		"afri_amount", afriAmount.String())

	return record, nil
}

// GetBalance resolves the spendable balance in three tiers: the local ledger
// first, then the on-chain balance of the deposit wallet, then of the
// outbound wallet. The chain fallbacks cover the window where the ledger lags
// on-chain state during reconciliation.
func (l *Ledger) GetBalance(ctx context.Context, token string) (*big.Int, error) {
	accountID, err := l.resolveSubject(token)
	if err != nil {
		return nil, err
	}

	account, err := l.repo.AccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	if balance, ok := new(big.Int).SetString(account.Balance, 10); ok && balance.Sign() > 0 {
		return balance, nil
	}

	if account.DepositAddress != nil {
		balance, err := l.chain.TokenBalance(ctx, *account.DepositAddress)
		if err != nil {
			l.logs.Errorw("deposit wallet balance lookup failed", "error", err, "account", account.PhoneNumber)
		} else if balance.Sign() > 0 {
			return balance, nil
		}
	}

	balance, err := l.chain.TokenBalance(ctx, account.WalletAddress)
	if err != nil {
		l.logs.Errorw("outbound wallet balance lookup failed", "error", err, "account", account.PhoneNumber)
		return big.NewInt(0), nil
	}

	return balance, nil
}

// SetDepositAddress registers or rotates the wallet the account funds from.
func (l *Ledger) SetDepositAddress(ctx context.Context, token, address string) error {
	accountID, err := l.resolveSubject(token)
	if err != nil {
		return err
	}

	err = l.repo.SetDepositAddress(ctx, accountID, address)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("set deposit address: %w", err)
	}

	l.logs.Infow("deposit address updated", "account_id", accountID, "deposit_address", address)
	return nil
}
