package solana

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"time"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/sprinter-settlement/settlement"
)

var memoProgramIDs = []solanago.PublicKey{
	solanago.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr"),
	solanago.MustPublicKeyFromBase58("Memo1UhkJRfHyvLMcVucJwxXeuD728EqVDDwQDxFMNo"),
}

type RPC interface {
	SendEncodedTransaction(ctx context.Context, encodedTx string) (solanago.Signature, error)
	GetTransaction(ctx context.Context, txSig solanago.Signature, opts *rpc.GetTransactionOpts) (*rpc.GetTransactionResult, error)
}

type SolanaClient struct {
	rpc RPC

	receiptTimeout      time.Duration
	receiptPollInterval time.Duration
}

func NewSolanaClient(client RPC, receiptTimeout time.Duration, receiptPollInterval time.Duration) *SolanaClient {
	return &SolanaClient{
		rpc:                 client,
		receiptTimeout:      receiptTimeout,
		receiptPollInterval: receiptPollInterval,
	}
}

// SubmitSignedTransaction broadcasts a base64 encoded signed transaction.
func (c *SolanaClient) SubmitSignedTransaction(ctx context.Context, envelope string) (string, error) {
	if _, err := base64.StdEncoding.DecodeString(envelope); err != nil {
		return "", fmt.Errorf("invalid transaction envelope: %w", err)
	}

	sig, err := c.rpc.SendEncodedTransaction(ctx, envelope)
	if err != nil {
		return "", fmt.Errorf("failed sending transaction: %w", err)
	}
	return sig.String(), nil
}

// DepositRecord waits for the transaction to be confirmed and lists the
// lamport and token transfers it performed together with its memo.
func (c *SolanaClient) DepositRecord(ctx context.Context, txHash string) (*settlement.DepositRecord, error) {
	sig, err := solanago.SignatureFromBase58(txHash)
	if err != nil {
		return nil, fmt.Errorf("invalid signature %s: %w", txHash, err)
	}

	res, err := c.waitForTransaction(ctx, sig)
	if err != nil {
		return nil, err
	}

	tx, err := res.Transaction.GetTransaction()
	if err != nil {
		return nil, fmt.Errorf("failed decoding transaction: %w", err)
	}
	return NewDepositRecord(sig, tx, res.Meta)
}

func (c *SolanaClient) waitForTransaction(ctx context.Context, sig solanago.Signature) (*rpc.GetTransactionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.receiptTimeout)
	defer cancel()

	maxVersion := uint64(0)
	opts := &rpc.GetTransactionOpts{
		Encoding:                       solanago.EncodingBase64,
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: &maxVersion,
	}
	for {
		res, err := c.rpc.GetTransaction(ctx, sig, opts)
		if err == nil && res != nil && res.Transaction != nil {
			return res, nil
		}
		if err != nil && !errors.Is(err, rpc.ErrNotFound) {
			log.Warn().Str("signature", sig.String()).Msgf("Failed fetching transaction: %s", err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("transaction %s not found: %w", sig, ctx.Err())
		case <-time.After(c.receiptPollInterval):
		}
	}
}

// NewDepositRecord extracts system transfers, token balance increases and the
// memo from a confirmed transaction.
func NewDepositRecord(sig solanago.Signature, tx *solanago.Transaction, meta *rpc.TransactionMeta) (*settlement.DepositRecord, error) {
	if len(tx.Message.AccountKeys) == 0 {
		return nil, fmt.Errorf("transaction %s has no accounts", sig)
	}

	record := &settlement.DepositRecord{
		TxHash:    sig.String(),
		From:      tx.Message.AccountKeys[0].String(),
		Succeeded: meta != nil && meta.Err == nil,
		Transfers: []settlement.Transfer{},
	}
	if !record.Succeeded {
		return record, nil
	}

	for _, inst := range tx.Message.Instructions {
		programID, err := tx.Message.ResolveProgramIDIndex(inst.ProgramIDIndex)
		if err != nil {
			return nil, err
		}

		switch {
		case isMemoProgram(programID):
			record.Memo = string(inst.Data)
		case programID.Equals(solanago.SystemProgramID):
			accounts, err := inst.ResolveInstructionAccounts(&tx.Message)
			if err != nil {
				return nil, err
			}
			decoded, err := system.DecodeInstruction(accounts, inst.Data)
			if err != nil {
				continue
			}
			transfer, ok := decoded.Impl.(*system.Transfer)
			if !ok || transfer.Lamports == nil {
				continue
			}

			record.Transfers = append(record.Transfers, settlement.Transfer{
				From:   transfer.GetFundingAccount().PublicKey.String(),
				To:     transfer.GetRecipientAccount().PublicKey.String(),
				Amount: new(big.Int).SetUint64(*transfer.Lamports),
			})
		}
	}

	record.Transfers = append(record.Transfers, tokenCredits(record.From, meta)...)
	return record, nil
}

// tokenCredits converts positive token balance changes into transfers.
func tokenCredits(from string, meta *rpc.TransactionMeta) []settlement.Transfer {
	pre := make(map[uint16]*big.Int)
	for _, b := range meta.PreTokenBalances {
		if b.UiTokenAmount == nil {
			continue
		}
		if amount, ok := new(big.Int).SetString(b.UiTokenAmount.Amount, 10); ok {
			pre[b.AccountIndex] = amount
		}
	}

	transfers := []settlement.Transfer{}
	for _, b := range meta.PostTokenBalances {
		if b.UiTokenAmount == nil || b.Owner == nil {
			continue
		}
		post, ok := new(big.Int).SetString(b.UiTokenAmount.Amount, 10)
		if !ok {
			continue
		}

		delta := new(big.Int).Set(post)
		if before, ok := pre[b.AccountIndex]; ok {
			delta.Sub(delta, before)
		}
		if delta.Sign() <= 0 {
			continue
		}

		transfers = append(transfers, settlement.Transfer{
			From:   from,
			To:     b.Owner.String(),
			Token:  b.Mint.String(),
			Amount: delta,
		})
	}
	return transfers
}

func isMemoProgram(programID solanago.PublicKey) bool {
	for _, id := range memoProgramIDs {
		if programID.Equals(id) {
			return true
		}
	}
	return false
}
