package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/sprintertech/sprinter-settlement/config"
	"github.com/sprintertech/sprinter-settlement/protocol/near"
	"github.com/sprintertech/sprinter-settlement/registry"
)

var previewAddresses = map[registry.ChainFamily]string{
	registry.EVMFamily:    "0x000000000000000000000000000000000000dEaD",
	registry.SolanaFamily: "11111111111111111111111111111111",
}

// IntentBridgeStrategy settles through a solver network: the user funds a
// quoted deposit address and a solver delivers on the destination chain.
type IntentBridgeStrategy struct {
	registry      *registry.Registry
	clients       ChainClients
	matcher       IntentMatcher
	fee           decimal.Decimal
	notifyTimeout time.Duration
}

func NewIntentBridgeStrategy(
	registry *registry.Registry,
	clients ChainClients,
	matcher IntentMatcher,
	fee decimal.Decimal,
	notifyTimeout time.Duration,
) *IntentBridgeStrategy {
	if !intentFeeEnabled {
		fee = decimal.Zero
	}

	return &IntentBridgeStrategy{
		registry:      registry,
		clients:       clients,
		matcher:       matcher,
		fee:           fee,
		notifyTimeout: notifyTimeout,
	}
}

func (s *IntentBridgeStrategy) Kind() StrategyKind {
	return IntentBridgeKind
}

func (s *IntentBridgeStrategy) CanHandle(req *SettlementRequest) bool {
	_, err := s.assets(req)
	return err == nil
}

type intentAssets struct {
	source      *registry.CapabilityEntry
	dest        *registry.CapabilityEntry
	sourceToken config.TokenConfig
	destToken   config.TokenConfig

	sourceSymbol string
}

func (s *IntentBridgeStrategy) assets(req *SettlementRequest) (*intentAssets, error) {
	source, err := s.registry.Lookup(req.SourceChain)
	if err != nil {
		return nil, err
	}
	dest, err := s.registry.Lookup(req.DestChain)
	if err != nil {
		return nil, err
	}

	sourceToken, ok := source.IntentAsset(req.SourceSymbol())
	if !ok {
		return nil, fmt.Errorf("no intent asset for %s on %s", req.SourceSymbol(), source.Key)
	}
	destToken, ok := dest.IntentAsset(req.DestSymbol())
	if !ok {
		return nil, fmt.Errorf("no intent asset for %s on %s", req.DestSymbol(), dest.Key)
	}

	return &intentAssets{
		source:       source,
		dest:         dest,
		sourceToken:  sourceToken,
		destToken:    destToken,
		sourceSymbol: req.SourceSymbol(),
	}, nil
}

func (s *IntentBridgeStrategy) Execute(ctx context.Context, req *SettlementRequest) *SettlementResult {
	a, err := s.assets(req)
	if err != nil {
		return rejection("%s", err)
	}
	if _, _, _, err := SplitFee(req.Amount, s.fee, a.sourceToken.Decimals); err != nil {
		return rejection("%s", err)
	}

	switch {
	case req.SignedPayload != nil && req.SignedPayload.Envelope != "":
		return s.submit(ctx, a, req.SignedPayload.Envelope)
	case req.DepositTxHash != "":
		return s.verify(ctx, a, req.DepositTxHash)
	default:
		return s.quote(ctx, a, req, false)
	}
}

// Preview requests an indicative quote without reserving a deposit address.
func (s *IntentBridgeStrategy) Preview(ctx context.Context, req *SettlementRequest) *SettlementResult {
	a, err := s.assets(req)
	if err != nil {
		return rejection("%s", err)
	}

	return s.quote(ctx, a, req, true)
}

func (s *IntentBridgeStrategy) submit(ctx context.Context, a *intentAssets, envelope string) *SettlementResult {
	ledger, err := s.clients.Ledger(a.source.Key)
	if err != nil {
		return rejection("%s", err)
	}

	txHash, err := ledger.SubmitSignedTransaction(ctx, envelope)
	if err != nil {
		return rejection("failed submitting signed transaction: %s", err)
	}

	return &SettlementResult{
		Success:         true,
		TransactionHash: txHash,
	}
}

func (s *IntentBridgeStrategy) verify(ctx context.Context, a *intentAssets, txHash string) *SettlementResult {
	ledger, err := s.clients.Ledger(a.source.Key)
	if err != nil {
		return rejection("%s", err)
	}

	record, err := ledger.DepositRecord(ctx, txHash)
	if err != nil {
		return failure(txHash, "deposit verification failed: %s", err)
	}
	if !record.Succeeded {
		return failure(txHash, "deposit verification failed: transaction %s failed", txHash)
	}

	depositAddress := ""
	for _, t := range record.Transfers {
		if sameAddress(t.Token, a.sourceToken.Address) && sameAddress(t.From, record.From) {
			depositAddress = t.To
			break
		}
	}
	if depositAddress == "" {
		return failure(txHash, "deposit verification failed: no %s transfer found", a.sourceSymbol)
	}

	s.notify(near.DepositProof{
		DepositAddress: depositAddress,
		TxHash:         txHash,
	})

	return &SettlementResult{
		Success:         true,
		TransactionHash: txHash,
		Data: &ResultData{
			Type: IntentDepositData,
			IntentDeposit: &IntentDeposit{
				DepositAddress: depositAddress,
				Memo:           record.Memo,
			},
		},
	}
}

// notify tells the solver network about the deposit without holding up the
// settlement. Failures are only logged.
func (s *IntentBridgeStrategy) notify(proof near.DepositProof) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()

		err := s.matcher.SubmitDeposit(ctx, proof)
		if err != nil {
			log.Warn().Str("depositAddress", proof.DepositAddress).Str("txHash", proof.TxHash).Msgf("Failed notifying deposit: %s", err)
			return
		}
		log.Debug().Str("depositAddress", proof.DepositAddress).Str("txHash", proof.TxHash).Msg("Deposit notified")
	}()
}

func (s *IntentBridgeStrategy) quote(ctx context.Context, a *intentAssets, req *SettlementRequest, dry bool) *SettlementResult {
	_, fee, net, err := SplitFee(req.Amount, s.fee, a.sourceToken.Decimals)
	if err != nil {
		return rejection("%s", err)
	}

	recipient := req.Recipient
	refund := req.RefundAddress()
	if dry {
		if recipient == "" {
			recipient = previewAddresses[a.dest.Family]
		}
		if refund == "" {
			refund = previewAddresses[a.source.Family]
		}
	}
	if recipient == "" {
		return rejection("recipient required")
	}

	quote, err := s.matcher.Quote(ctx, near.QuoteParams{
		OriginAsset:      a.sourceToken.IntentAssetID,
		DestinationAsset: a.destToken.IntentAssetID,
		Amount:           net.String(),
		RefundTo:         refund,
		Recipient:        recipient,
		Dry:              dry,
	})
	if err != nil {
		return rejection("intent quote failed: %s", err)
	}

	zerolog.Ctx(ctx).Debug().Msgf("Quoted %s for %s", quote.AmountOutFormatted, FromAtomic(net, a.sourceToken.Decimals))
	deposit := &PendingDeposit{
		DepositAddress: quote.DepositAddress,
		Amount:         net.String(),
		Memo:           quote.DepositMemo,
		Fee:            fee.String(),
		ExpectedOutput: quote.AmountOutFormatted,
		TimeEstimate:   quote.TimeEstimate,
	}
	if !quote.Deadline.IsZero() {
		deadline := quote.Deadline
		deposit.Deadline = &deadline
	}
	if dry {
		return preview(deposit)
	}
	if deposit.DepositAddress == "" {
		return rejection("intent quote without deposit address")
	}
	return pendingDeposit(deposit)
}
