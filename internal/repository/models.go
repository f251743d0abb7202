package repository

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

const (
	TypeSend    = "send"
	TypeReceive = "receive"
	TypeMint    = "mint"
)

// Account holds the authoritative off-chain balance for one phone number.
// Balance is a base-10 integer string in AFRI minor units, never a float.
type Account struct {
	ID             string  `gorm:"primaryKey;autoIncrement:false"` // identity key (phone hash)
	PhoneNumber    string  `gorm:"type:varchar(32);uniqueIndex;not null"`
	PINHash        string  `gorm:"not null"`
	WalletAddress  string  `gorm:"size:42;uniqueIndex;not null"` // outbound (receiving) address
	DepositAddress *string `gorm:"size:42;uniqueIndex"`          // inbound funding address, user-settable
	Balance        string  `gorm:"size:100;not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Transaction is an append-only ledger entry. Hash is the idempotency key:
// replayed deposits and duplicate transfers hit the unique index instead of
// crediting twice.
type Transaction struct {
	Hash           string `gorm:"size:66;uniqueIndex;not null"`
	TransferID     string `gorm:"size:26;index"` // shared by the send/receive pair
	SenderID       string `gorm:"index"`
	SenderPhone    string `gorm:"size:32"`
	RecipientID    string `gorm:"index"`
	RecipientPhone string `gorm:"size:32"`
	Amount         string `gorm:"size:100;not null"` // minor units
	Status         string `gorm:"size:16;not null"`
	Type           string `gorm:"size:16;not null"`
	Method         string `gorm:"size:32"` // funding method, empty for transfers
	Currency       string `gorm:"size:16"`
	Rate           string `gorm:"size:100"` // conversion rate applied, if any
	DepositAddress string `gorm:"size:42"`
	MintTxHash     string `gorm:"size:66"`
	CreatedAt      time.Time
}

// DepositCursor stores the last block height through which deposit events have
// been fully processed. Single row, monotonically non-decreasing.
type DepositCursor struct {
	ID          uint `gorm:"primaryKey"`
	BlockHeight uint64
	UpdatedAt   time.Time
}
