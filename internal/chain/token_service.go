package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

const tokenABIJSON = `[
	{"name":"mint","type":"function","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

const mintGasLimit = 120_000

var ErrMintReverted error = errors.New("mint transaction reverted")

var transferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

type Config struct {
	TokenContract    string
	AssetContract    string
	VaultAddress     string
	MinterPrivateKey string
	// ReceiptInterval is how often a submitted mint is polled for its receipt.
	ReceiptInterval time.Duration
}

// TokenService talks to the chain: deposit event scans, mint submission and
// on-chain balance reads.
type TokenService struct {
	client        EthClient
	tokenABI      abi.ABI
	tokenContract common.Address
	assetContract common.Address
	vault         common.Address
	minterKey     *ecdsa.PrivateKey
	minterAddress common.Address
	receiptEvery  time.Duration
}

func NewTokenService(client EthClient, cfg Config) (*TokenService, error) {
	parsedABI, err := abi.JSON(strings.NewReader(tokenABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse token abi: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.MinterPrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse minter key: %w", err)
	}

	interval := cfg.ReceiptInterval
	if interval <= 0 {
		interval = time.Second
	}

	return &TokenService{
		client:        client,
		tokenABI:      parsedABI,
		tokenContract: common.HexToAddress(cfg.TokenContract),
		assetContract: common.HexToAddress(cfg.AssetContract),
		vault:         common.HexToAddress(cfg.VaultAddress),
		minterKey:     key,
		minterAddress: crypto.PubkeyToAddress(key.PublicKey),
		receiptEvery:  interval,
	}, nil
}

func (s *TokenService) CurrentHeight(ctx context.Context) (uint64, error) {
	height, err := s.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return height, nil
}

// DepositEvents returns asset transfers into the custody vault within
// [fromBlock, toBlock], ascending by block then log index.
func (s *TokenService) DepositEvents(ctx context.Context, fromBlock, toBlock uint64) ([]DepositEvent, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{s.assetContract},
		Topics: [][]common.Hash{
			{transferTopic},
			nil,
			{common.BytesToHash(s.vault.Bytes())},
		},
	}

	logs, err := s.client.FilterLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("filter deposit logs: %w", err)
	}

	sort.Slice(logs, func(i, j int) bool {
		if logs[i].BlockNumber != logs[j].BlockNumber {
			return logs[i].BlockNumber < logs[j].BlockNumber
		}
		return logs[i].Index < logs[j].Index
	})

	events := make([]DepositEvent, 0, len(logs))
	for _, lg := range logs {
		if len(lg.Topics) < 3 {
			continue
		}
		events = append(events, DepositEvent{
			Depositor:   common.BytesToAddress(lg.Topics[1].Bytes()).Hex(),
			Amount:      new(big.Int).SetBytes(lg.Data),
			TxHash:      lg.TxHash.Hex(),
			BlockNumber: lg.BlockNumber,
		})
	}

	return events, nil
}

// Mint submits a signed mint(to, amount) transaction and blocks until the
// receipt confirms it. Returns the mint transaction hash.
func (s *TokenService) Mint(ctx context.Context, toAddress string, amount *big.Int) (string, error) {
	callData, err := s.tokenABI.Pack("mint", common.HexToAddress(toAddress), amount)
	if err != nil {
		return "", fmt.Errorf("pack mint call: %w", err)
	}

	nonce, err := s.client.PendingNonceAt(ctx, s.minterAddress)
	if err != nil {
		return "", fmt.Errorf("get pending nonce: %w", err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("suggest gas price: %w", err)
	}

	chainID, err := s.client.NetworkID(ctx)
	if err != nil {
		return "", fmt.Errorf("get network id: %w", err)
	}

	tx := types.NewTransaction(nonce, s.tokenContract, big.NewInt(0), mintGasLimit, gasPrice, callData)
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.minterKey)
	if err != nil {
		return "", fmt.Errorf("sign mint transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("send mint transaction: %w", err)
	}

	receipt, err := s.waitMined(ctx, signedTx.Hash())
	if err != nil {
		return "", err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return "", fmt.Errorf("%w: %s", ErrMintReverted, signedTx.Hash().Hex())
	}

	return signedTx.Hash().Hex(), nil
}

func (s *TokenService) TokenBalance(ctx context.Context, address string) (*big.Int, error) {
	callData, err := s.tokenABI.Pack("balanceOf", common.HexToAddress(address))
	if err != nil {
		return nil, fmt.Errorf("pack balanceOf call: %w", err)
	}

	output, err := s.client.CallContract(ctx, ethereum.CallMsg{
		To:   &s.tokenContract,
		Data: callData,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("call balanceOf: %w", err)
	}

	results, err := s.tokenABI.Unpack("balanceOf", output)
	if err != nil {
		return nil, fmt.Errorf("unpack balanceOf result: %w", err)
	}

	balance, ok := results[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf result type %T", results[0])
	}
	return balance, nil
}

func (s *TokenService) waitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(s.receiptEvery)
	defer ticker.Stop()

	for {
		receipt, err := s.client.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("get mint receipt: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
