package repository

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"

	"afriledger/internal/db"
	"afriledger/pkg/identity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAccountNotFound error = errors.New("account not found")
var ErrInsufficientBalance error = errors.New("insufficient balance")
var ErrDuplicateRecord error = errors.New("duplicate transaction record")

// TransferParams describes one atomic peer transfer: both account mutations
// and both ledger records commit or roll back together.
type TransferParams struct {
	TransferID    string
	SenderID      string
	RecipientID   string
	Amount        *big.Int
	SendRecord    Transaction
	ReceiveRecord Transaction
}

type LedgerRepository struct {
	db *db.PostgresDB
}

func NewLedgerRepository(database *db.PostgresDB) *LedgerRepository {
	return &LedgerRepository{
		db: database,
	}
}

func (r *LedgerRepository) MigrateAndSeed(ctx context.Context) error {
	err := r.db.MigrateTable(&Account{}, &Transaction{}, &DepositCursor{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	aliceDeposit := "0x9aF2E435A27A6F8D3a4DaD4eF971eC17C5ED6c41"
	accounts := []Account{
		{
			ID:             identity.PhoneToKey("+254700000001"),
			PhoneNumber:    "+254700000001",
			PINHash:        "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
			WalletAddress:  "0x1bE6683Cd00Fa0E6f3F0F15E36eD49E104105D2a",
			DepositAddress: &aliceDeposit,
			Balance:        "100000",
		},
		{
			ID:            identity.PhoneToKey("+254700000002"),
			PhoneNumber:   "+254700000002",
			PINHash:       "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
			WalletAddress: "0x2C18d35b3AbA73E3E79F35be175D6CcB5ddB3428",
			Balance:       "0",
		},
	}
	err = r.db.SeedTable(ctx, &accounts)
	if err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}

	return nil
}

func (r *LedgerRepository) AccountByID(ctx context.Context, id string) (Account, error) {
	return r.accountBy(ctx, "id", id)
}

func (r *LedgerRepository) AccountByDepositAddress(ctx context.Context, address string) (Account, error) {
	return r.accountBy(ctx, "deposit_address", address)
}

func (r *LedgerRepository) accountBy(ctx context.Context, column, value string) (Account, error) {
	var account Account
	err := r.db.GetOneBy(ctx, column, value, &account)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("get account by %s: %w", column, err)
	}
	return account, nil
}

func (r *LedgerRepository) SetDepositAddress(ctx context.Context, accountID, address string) error {
	tx := r.db.DB.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", accountID).
		Update("deposit_address", address)
	if tx.Error != nil {
		return fmt.Errorf("set deposit address: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// ExecuteTransfer moves Amount from sender to recipient and appends both
// ledger records in one database transaction. Rows are locked in ID order so
// two opposing transfers cannot deadlock.
func (r *LedgerRepository) ExecuteTransfer(ctx context.Context, params TransferParams) error {
	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		accounts, err := lockAccounts(tx, params.SenderID, params.RecipientID)
		if err != nil {
			return err
		}
		sender, recipient := accounts[params.SenderID], accounts[params.RecipientID]

		senderBalance, err := parseBalance(sender.Balance)
		if err != nil {
			return fmt.Errorf("sender balance: %w", err)
		}
		if senderBalance.Cmp(params.Amount) < 0 {
			return ErrInsufficientBalance
		}
		recipientBalance, err := parseBalance(recipient.Balance)
		if err != nil {
			return fmt.Errorf("recipient balance: %w", err)
		}

		newSender := new(big.Int).Sub(senderBalance, params.Amount)
		newRecipient := new(big.Int).Add(recipientBalance, params.Amount)

		if err := setBalance(tx, params.SenderID, newSender); err != nil {
			return err
		}
		if err := setBalance(tx, params.RecipientID, newRecipient); err != nil {
			return err
		}

		records := []Transaction{params.SendRecord, params.ReceiveRecord}
		if err := tx.Create(&records).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateRecord
			}
			return fmt.Errorf("insert transfer records: %w", err)
		}

		return nil
	})
}

// CreditDeposit adds amount to the account balance and appends the record in
// one transaction. A replayed record hash aborts the whole unit with
// ErrDuplicateRecord, so the balance is never credited twice.
func (r *LedgerRepository) CreditDeposit(ctx context.Context, accountID string, amount *big.Int, record Transaction) error {
	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateRecord
			}
			return fmt.Errorf("insert deposit record: %w", err)
		}

		accounts, err := lockAccounts(tx, accountID)
		if err != nil {
			return err
		}

		balance, err := parseBalance(accounts[accountID].Balance)
		if err != nil {
			return fmt.Errorf("account balance: %w", err)
		}

		return setBalance(tx, accountID, new(big.Int).Add(balance, amount))
	})
}

func (r *LedgerRepository) SaveRecord(ctx context.Context, record Transaction) error {
	err := r.db.InsertRecords(ctx, &record)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

func (r *LedgerRepository) RecordExists(ctx context.Context, hash string) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&Transaction{}).
		Where("hash = ?", hash).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count records by hash: %w", err)
	}
	return count > 0, nil
}

func (r *LedgerRepository) History(ctx context.Context, accountID string, limit int) ([]Transaction, error) {
	var records []Transaction
	err := r.db.DB.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", accountID, accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("get transaction history: %w", err)
	}
	return records, nil
}

// Cursor returns the last fully processed block height, zero when the poller
// has never run.
func (r *LedgerRepository) Cursor(ctx context.Context) (uint64, error) {
	var cursor DepositCursor
	err := r.db.GetOneBy(ctx, "id", 1, &cursor)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get deposit cursor: %w", err)
	}
	return cursor.BlockHeight, nil
}

func (r *LedgerRepository) SetCursor(ctx context.Context, height uint64) error {
	cursor := DepositCursor{ID: 1, BlockHeight: height}
	err := r.db.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"block_height", "updated_at"}),
		}).
		Create(&cursor).Error
	if err != nil {
		return fmt.Errorf("set deposit cursor: %w", err)
	}
	return nil
}

func lockAccounts(tx *gorm.DB, ids ...string) (map[string]Account, error) {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	accounts := make(map[string]Account, len(sorted))
	for _, id := range sorted {
		var account Account
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&account).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAccountNotFound
			}
			return nil, fmt.Errorf("lock account %q: %w", id, err)
		}
		accounts[id] = account
	}
	return accounts, nil
}

func setBalance(tx *gorm.DB, accountID string, balance *big.Int) error {
	err := tx.Model(&Account{}).
		Where("id = ?", accountID).
		Update("balance", balance.String()).Error
	if err != nil {
		return fmt.Errorf("update balance for %q: %w", accountID, err)
	}
	return nil
}

func parseBalance(raw string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("malformed balance %q", raw)
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("negative balance %q", raw)
	}
	return value, nil
}
