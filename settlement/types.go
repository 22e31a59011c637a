package settlement

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/sprintertech/sprinter-settlement/registry"
)

// PendingTransactionHash marks a successful result on which the caller still has to act.
const PendingTransactionHash = "pending"

type StrategyKind string

const (
	GaslessKind           StrategyKind = "gasless"
	AttestationBridgeKind StrategyKind = "attestation-bridge"
	IntentBridgeKind      StrategyKind = "intent-bridge"
	LiquidityBridgeKind   StrategyKind = "liquidity-bridge"
	StandardBridgeKind    StrategyKind = "standard-bridge"

	// NoStrategyKind labels requests rejected before a strategy was selected.
	NoStrategyKind StrategyKind = "none"
)

// TransferAuthorization is an EIP-3009 authorization as submitted by the user.
type TransferAuthorization struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	ValidAfter  int64  `json:"validAfter"`
	ValidBefore int64  `json:"validBefore"`
	Nonce       string `json:"nonce"`
}

// SignedPayload carries either an authorization with its signature or a signed
// ledger transaction envelope.
type SignedPayload struct {
	Authorization *TransferAuthorization `json:"authorization,omitempty"`
	Signature     string                 `json:"signature,omitempty"`
	Envelope      string                 `json:"envelope,omitempty"`
}

type SettlementRequest struct {
	SourceChain    string         `json:"sourceChain"`
	DestChain      string         `json:"destChain"`
	SourceToken    string         `json:"sourceToken,omitempty"`
	DestToken      string         `json:"destToken,omitempty"`
	Amount         string         `json:"amount"`
	Recipient      string         `json:"recipient"`
	Sender         string         `json:"sender,omitempty"`
	FacilitatorKey string         `json:"facilitatorKey,omitempty"`
	DepositTxHash  string         `json:"depositTxHash,omitempty"`
	SignedPayload  *SignedPayload `json:"signedPayload,omitempty"`
}

func (r *SettlementRequest) SourceSymbol() string {
	if r.SourceToken == "" {
		return registry.ReferenceToken
	}
	return strings.ToUpper(r.SourceToken)
}

func (r *SettlementRequest) DestSymbol() string {
	if r.DestToken == "" {
		return r.SourceSymbol()
	}
	return strings.ToUpper(r.DestToken)
}

// SameChain reports whether the request moves the same token within one chain.
func (r *SettlementRequest) SameChain() bool {
	return strings.EqualFold(r.SourceChain, r.DestChain) && r.SourceSymbol() == r.DestSymbol()
}

// RefundAddress is where failed intents return funds.
func (r *SettlementRequest) RefundAddress() string {
	if r.Sender != "" {
		return r.Sender
	}
	return r.Recipient
}

type Attestation struct {
	Message     string `json:"message"`
	Attestation string `json:"attestation"`
}

type DataType string

const (
	PendingDepositData       DataType = "pendingDeposit"
	UnsignedTransactionsData DataType = "unsignedTransactions"
	IntentDepositData        DataType = "intentDeposit"
)

type PendingDeposit struct {
	DepositAddress string `json:"depositAddress"`
	// Amount is denominated in the source token base units.
	Amount         string     `json:"amount"`
	Memo           string     `json:"memo,omitempty"`
	Fee            string     `json:"fee"`
	ExpectedOutput string     `json:"expectedOutput,omitempty"`
	TimeEstimate   float64    `json:"timeEstimate,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

type UnsignedTransaction struct {
	ChainKey string `json:"chainKey"`
	From     string `json:"from,omitempty"`
	To       string `json:"to"`
	Data     string `json:"data"`
	Value    string `json:"value,omitempty"`
}

type UnsignedTransactions struct {
	Route             string               `json:"route"`
	Approval          *UnsignedTransaction `json:"approval,omitempty"`
	Bridge            UnsignedTransaction  `json:"bridge"`
	SrcAmount         string               `json:"srcAmount"`
	DstAmount         string               `json:"dstAmount"`
	DstAmountMin      string               `json:"dstAmountMin"`
	EstimatedDuration float64              `json:"estimatedDuration"`
}

type IntentDeposit struct {
	DepositAddress string `json:"depositAddress"`
	Memo           string `json:"memo,omitempty"`
}

// ResultData holds exactly one payload, selected by Type.
type ResultData struct {
	Type                 DataType              `json:"type"`
	PendingDeposit       *PendingDeposit       `json:"pendingDeposit,omitempty"`
	UnsignedTransactions *UnsignedTransactions `json:"unsignedTransactions,omitempty"`
	IntentDeposit        *IntentDeposit        `json:"intentDeposit,omitempty"`
}

type SettlementResult struct {
	Strategy            StrategyKind `json:"strategy,omitempty"`
	Success             bool         `json:"success"`
	TransactionHash     string       `json:"transactionHash,omitempty"`
	BurnTransactionHash string       `json:"burnTransactionHash,omitempty"`
	MintTransactionHash string       `json:"mintTransactionHash,omitempty"`
	ErrorReason         string       `json:"errorReason,omitempty"`
	Attestation         *Attestation `json:"attestation,omitempty"`
	Data                *ResultData  `json:"data,omitempty"`
}

// Pending reports whether the caller still has to deposit or sign.
func (r *SettlementResult) Pending() bool {
	return r.Success && r.TransactionHash == PendingTransactionHash
}

// Partial reports a success after an irreversible action that did not complete.
func (r *SettlementResult) Partial() bool {
	return r.Success && r.ErrorReason != ""
}

const (
	OutcomeFailed    = "failed"
	OutcomePending   = "pending"
	OutcomePartial   = "partial"
	OutcomeCompleted = "completed"
)

// Outcome classifies the result for logs and metrics.
func (r *SettlementResult) Outcome() string {
	switch {
	case !r.Success:
		return OutcomeFailed
	case r.Pending():
		return OutcomePending
	case r.Partial():
		return OutcomePartial
	default:
		return OutcomeCompleted
	}
}

func rejection(format string, args ...interface{}) *SettlementResult {
	return &SettlementResult{
		Success:     false,
		ErrorReason: fmt.Sprintf(format, args...),
	}
}

func failure(txHash string, format string, args ...interface{}) *SettlementResult {
	return &SettlementResult{
		Success:         false,
		TransactionHash: txHash,
		ErrorReason:     fmt.Sprintf(format, args...),
	}
}

func pendingDeposit(deposit *PendingDeposit) *SettlementResult {
	return &SettlementResult{
		Success:         true,
		TransactionHash: PendingTransactionHash,
		Data: &ResultData{
			Type:           PendingDepositData,
			PendingDeposit: deposit,
		},
	}
}

// Transfer is a single value movement observed in a deposit transaction. Token
// is empty for the native currency.
type Transfer struct {
	From   string
	To     string
	Token  string
	Amount *big.Int
}

// DepositRecord is the settled state of a deposit transaction.
type DepositRecord struct {
	TxHash    string
	From      string
	Succeeded bool
	Transfers []Transfer
	Memo      string
}

// Received sums what recipient was paid in token.
func (d *DepositRecord) Received(token string, recipient string) *big.Int {
	total := big.NewInt(0)
	for _, t := range d.Transfers {
		if sameAddress(t.Token, token) && sameAddress(t.To, recipient) {
			total.Add(total, t.Amount)
		}
	}
	return total
}

// sameAddress compares hex addresses case-insensitively and any other
// encoding exactly.
func sameAddress(a string, b string) bool {
	if strings.HasPrefix(a, "0x") && strings.HasPrefix(b, "0x") {
		return strings.EqualFold(a, b)
	}
	return a == b
}

func preview(deposit *PendingDeposit) *SettlementResult {
	return &SettlementResult{
		Success: true,
		Data: &ResultData{
			Type:           PendingDepositData,
			PendingDeposit: deposit,
		},
	}
}
