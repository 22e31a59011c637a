package settlement

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/sprintertech/sprinter-settlement/protocol/cctp"
	"github.com/sprintertech/sprinter-settlement/protocol/near"
	"github.com/sprintertech/sprinter-settlement/protocol/stargate"
)

// ErrReverted marks a transaction that was mined and reverted. Any other
// receipt error leaves the outcome of a broadcast transaction unknown.
var ErrReverted = errors.New("transaction reverted")

type EVMClient interface {
	BalanceOf(ctx context.Context, token common.Address, account common.Address) (*big.Int, error)
	Transact(ctx context.Context, to common.Address, data []byte, key *ecdsa.PrivateKey) (common.Hash, error)
	WaitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

// LedgerClient is the family independent view of a chain used to submit
// user signed transactions and to inspect deposits.
type LedgerClient interface {
	SubmitSignedTransaction(ctx context.Context, envelope string) (string, error)
	DepositRecord(ctx context.Context, txHash string) (*DepositRecord, error)
}

type ChainClients interface {
	EVM(chain string) (EVMClient, error)
	Ledger(chain string) (LedgerClient, error)
}

type AttestationFetcher interface {
	RetrieveAttestation(ctx context.Context, txHash string, sourceDomain uint32, timeout time.Duration) (*cctp.Message, error)
}

type IntentMatcher interface {
	Quote(ctx context.Context, params near.QuoteParams) (*near.Quote, error)
	SubmitDeposit(ctx context.Context, proof near.DepositProof) error
}

type LiquidityRouter interface {
	Quotes(ctx context.Context, params stargate.QuoteParams) ([]stargate.Quote, error)
	MinimumReceived(amount *big.Int) *big.Int
}

type ResultCache interface {
	Get(key string) (*SettlementResult, bool)
	Set(key string, result *SettlementResult)
}

type Metrics interface {
	TrackSettlement(ctx context.Context, strategy StrategyKind, outcome string, duration time.Duration)
}

// Strategy is one settlement protocol. CanHandle and Preview must be side-effect
// free and Execute reports every failure as a result.
type Strategy interface {
	Kind() StrategyKind
	CanHandle(req *SettlementRequest) bool
	Execute(ctx context.Context, req *SettlementRequest) *SettlementResult
	Preview(ctx context.Context, req *SettlementRequest) *SettlementResult
}
