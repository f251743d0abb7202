package chain

import "math/big"

// DepositEvent is one observed transfer of the funding asset into the custody
// vault. Depositor is the sending wallet, TxHash the on-chain transaction the
// event came from.
type DepositEvent struct {
	Depositor   string
	Amount      *big.Int
	TxHash      string
	BlockNumber uint64
}
