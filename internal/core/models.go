package core

import "math/big"

type AuthMessage struct {
	PhoneNumber string `json:"phoneNumber"`
	PIN         string `json:"pin"`
}

// Deposit is one on-chain funding event handed over by the poller. TxHash is
// the hash of the observed deposit transaction and doubles as the ledger
// idempotency key.
type Deposit struct {
	DepositAddress string
	Amount         *big.Int
	TxHash         string
}

// FiatFunding is a fiat or mobile-money top-up request. ExternalRef, when
// supplied by the payment provider, keys the pending ledger record;
// settlement is confirmed out of band.
type FiatFunding struct {
	Amount      *big.Int
	Currency    string
	Method      string
	ExternalRef string
}
