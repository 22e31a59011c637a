// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/sprinter-settlement/chains/evm/calls/contracts"
	"github.com/sprintertech/sprinter-settlement/settlement"
)

type Backend interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
}

type EVMClient struct {
	backend Backend
	chainID *big.Int

	receiptTimeout      time.Duration
	receiptPollInterval time.Duration
	gasLimitMultiplier  uint64

	// sendLocks serializes nonce selection and broadcast per signer.
	sendLocks sync.Map
}

func NewEVMClient(
	backend Backend,
	chainID *big.Int,
	receiptTimeout time.Duration,
	receiptPollInterval time.Duration,
	gasLimitMultiplier uint64,
) *EVMClient {
	if gasLimitMultiplier < 100 {
		gasLimitMultiplier = 100
	}

	return &EVMClient{
		backend:             backend,
		chainID:             chainID,
		receiptTimeout:      receiptTimeout,
		receiptPollInterval: receiptPollInterval,
		gasLimitMultiplier:  gasLimitMultiplier,
	}
}

func (c *EVMClient) lock(signer common.Address) func() {
	l, _ := c.sendLocks.LoadOrStore(signer, &sync.Mutex{})
	mu := l.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// BalanceOf returns the ERC20 balance of account.
func (c *EVMClient) BalanceOf(ctx context.Context, token common.Address, account common.Address) (*big.Int, error) {
	data, err := contracts.PackBalanceOf(account)
	if err != nil {
		return nil, err
	}

	out, err := c.backend.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed fetching balance of %s: %w", account, err)
	}

	return contracts.UnpackBalance(out)
}

// Transact signs and broadcasts a contract call from the key's address.
func (c *EVMClient) Transact(ctx context.Context, to common.Address, data []byte, key *ecdsa.PrivateKey) (common.Hash, error) {
	from := crypto.PubkeyToAddress(key.PublicKey)
	unlock := c.lock(from)
	defer unlock()

	nonce, err := c.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed fetching nonce: %w", err)
	}

	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed fetching gas price: %w", err)
	}

	gas, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:     from,
		To:       &to,
		GasPrice: gasPrice,
		Data:     data,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed estimating gas: %w", err)
	}
	gas = gas * c.gasLimitMultiplier / 100

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    big.NewInt(0),
		Gas:      gas,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), key)
	if err != nil {
		return common.Hash{}, err
	}

	err = c.backend.SendTransaction(ctx, signed)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed sending transaction: %w", err)
	}

	log.Debug().Str("from", from.Hex()).Str("txHash", signed.Hash().Hex()).Msgf("Sent transaction with nonce %d", nonce)
	return signed.Hash(), nil
}

// WaitForReceipt polls for the receipt of hash until the receipt timeout elapses.
// A reverted transaction returns its receipt together with settlement.ErrReverted.
func (c *EVMClient) WaitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.receiptTimeout)
	defer cancel()

	for {
		receipt, err := c.backend.TransactionReceipt(ctx, hash)
		if err == nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				return receipt, fmt.Errorf("%w: %s", settlement.ErrReverted, hash)
			}
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			log.Warn().Str("txHash", hash.Hex()).Msgf("Failed fetching receipt: %s", err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("receipt for %s not found: %w", hash, ctx.Err())
		case <-time.After(c.receiptPollInterval):
		}
	}
}

func (c *EVMClient) TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, error) {
	tx, _, err := c.backend.TransactionByHash(ctx, hash)
	return tx, err
}

// SubmitSignedTransaction broadcasts a hex encoded signed transaction.
func (c *EVMClient) SubmitSignedTransaction(ctx context.Context, envelope string) (string, error) {
	raw, err := hexutil.Decode(envelope)
	if err != nil {
		return "", fmt.Errorf("invalid transaction envelope: %w", err)
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return "", fmt.Errorf("invalid transaction envelope: %w", err)
	}

	if err := c.backend.SendTransaction(ctx, tx); err != nil {
		return "", fmt.Errorf("failed sending transaction: %w", err)
	}
	return tx.Hash().Hex(), nil
}

// DepositRecord waits for the deposit to settle and lists the native and
// ERC20 transfers it performed.
func (c *EVMClient) DepositRecord(ctx context.Context, txHash string) (*settlement.DepositRecord, error) {
	hash := common.HexToHash(txHash)
	receipt, err := c.WaitForReceipt(ctx, hash)
	if err != nil && !errors.Is(err, settlement.ErrReverted) {
		return nil, err
	}

	tx, err := c.TransactionByHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed fetching transaction %s: %w", txHash, err)
	}

	from, err := types.Sender(types.LatestSignerForChainID(c.chainID), tx)
	if err != nil {
		return nil, fmt.Errorf("failed recovering sender: %w", err)
	}

	record := &settlement.DepositRecord{
		TxHash:    hash.Hex(),
		From:      from.Hex(),
		Succeeded: receipt.Status == types.ReceiptStatusSuccessful,
		Transfers: []settlement.Transfer{},
	}
	if !record.Succeeded {
		return record, nil
	}

	if tx.To() != nil && tx.Value().Sign() > 0 {
		record.Transfers = append(record.Transfers, settlement.Transfer{
			From:   from.Hex(),
			To:     tx.To().Hex(),
			Amount: tx.Value(),
		})
	}

	for _, l := range receipt.Logs {
		from, to, value, ok := contracts.DecodeTransferLog(l)
		if !ok {
			continue
		}

		record.Transfers = append(record.Transfers, settlement.Transfer{
			From:   from.Hex(),
			To:     to.Hex(),
			Token:  l.Address.Hex(),
			Amount: value,
		})
	}
	return record, nil
}
