package settlement

import (
	"context"
	"fmt"
	"strings"

	"github.com/sprintertech/sprinter-settlement/protocol/stargate"
	"github.com/sprintertech/sprinter-settlement/registry"
)

// LiquidityBridgeStrategy quotes a pool route and hands the transactions back for
// the user to sign. It never holds a key and never submits.
type LiquidityBridgeStrategy struct {
	registry *registry.Registry
	router   LiquidityRouter
	routes   map[string]struct{}
}

// NewLiquidityBridgeStrategy enables the vetted routes given as
// "srcChain:srcToken>dstChain:dstToken".
func NewLiquidityBridgeStrategy(registry *registry.Registry, router LiquidityRouter, routes []string) (*LiquidityBridgeStrategy, error) {
	enabled := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		parts := strings.Split(r, ">")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid route %s", r)
		}
		src := strings.Split(parts[0], ":")
		dst := strings.Split(parts[1], ":")
		if len(src) != 2 || len(dst) != 2 {
			return nil, fmt.Errorf("invalid route %s", r)
		}
		enabled[routeKey(src[0], src[1], dst[0], dst[1])] = struct{}{}
	}

	return &LiquidityBridgeStrategy{
		registry: registry,
		router:   router,
		routes:   enabled,
	}, nil
}

func routeKey(srcChain, srcToken, dstChain, dstToken string) string {
	return fmt.Sprintf(
		"%s:%s>%s:%s",
		strings.ToLower(strings.TrimSpace(srcChain)),
		strings.ToUpper(strings.TrimSpace(srcToken)),
		strings.ToLower(strings.TrimSpace(dstChain)),
		strings.ToUpper(strings.TrimSpace(dstToken)),
	)
}

func (s *LiquidityBridgeStrategy) Kind() StrategyKind {
	return LiquidityBridgeKind
}

func (s *LiquidityBridgeStrategy) CanHandle(req *SettlementRequest) bool {
	if _, ok := s.routes[routeKey(req.SourceChain, req.SourceSymbol(), req.DestChain, req.DestSymbol())]; !ok {
		return false
	}

	_, err := s.quoteParams(req)
	return err == nil
}

func (s *LiquidityBridgeStrategy) quoteParams(req *SettlementRequest) (*stargate.QuoteParams, error) {
	source, err := s.registry.Lookup(req.SourceChain)
	if err != nil {
		return nil, err
	}
	dest, err := s.registry.Lookup(req.DestChain)
	if err != nil {
		return nil, err
	}

	srcToken, ok := source.StargateToken(req.SourceSymbol())
	if !ok {
		return nil, fmt.Errorf("no liquidity pool for %s on %s", req.SourceSymbol(), source.Key)
	}
	dstToken, ok := dest.StargateToken(req.DestSymbol())
	if !ok {
		return nil, fmt.Errorf("no liquidity pool for %s on %s", req.DestSymbol(), dest.Key)
	}

	return &stargate.QuoteParams{
		SrcChainKey: source.StargateKey,
		DstChainKey: dest.StargateKey,
		SrcToken:    srcToken.Address,
		DstToken:    dstToken.Address,
		SrcAddress:  req.Sender,
		DstAddress:  req.Recipient,
	}, nil
}

func (s *LiquidityBridgeStrategy) Execute(ctx context.Context, req *SettlementRequest) *SettlementResult {
	return s.quote(ctx, req, false)
}

func (s *LiquidityBridgeStrategy) Preview(ctx context.Context, req *SettlementRequest) *SettlementResult {
	return s.quote(ctx, req, true)
}

func (s *LiquidityBridgeStrategy) quote(ctx context.Context, req *SettlementRequest, dry bool) *SettlementResult {
	params, err := s.quoteParams(req)
	if err != nil {
		return rejection("%s", err)
	}

	source, _ := s.registry.Lookup(req.SourceChain)
	tc, _ := source.StargateToken(req.SourceSymbol())
	amount, err := ToAtomic(req.Amount, tc.Decimals)
	if err != nil {
		return rejection("%s", err)
	}
	if amount.Sign() <= 0 {
		return rejection("amount must be positive")
	}
	params.SrcAmount = amount

	if dry {
		if params.SrcAddress == "" {
			params.SrcAddress = previewAddresses[registry.EVMFamily]
		}
		if params.DstAddress == "" {
			params.DstAddress = previewAddresses[registry.EVMFamily]
		}
	}
	if params.SrcAddress == "" {
		return rejection("sender required")
	}
	if params.DstAddress == "" {
		return rejection("recipient required")
	}

	quotes, err := s.router.Quotes(ctx, *params)
	if err != nil {
		return rejection("liquidity quote failed: %s", err)
	}
	quote, err := stargate.SelectQuote(quotes)
	if err != nil {
		return rejection("liquidity quote failed: %s", err)
	}

	bridge, _ := quote.Step(stargate.StepBridge)
	txs := &UnsignedTransactions{
		Route:             quote.Route,
		Bridge:            unsignedTransaction(bridge),
		SrcAmount:         quote.SrcAmount,
		DstAmount:         quote.DstAmount,
		DstAmountMin:      s.router.MinimumReceived(amount).String(),
		EstimatedDuration: quote.Duration.Estimated,
	}
	if approval, ok := quote.Step(stargate.StepApprove); ok {
		tx := unsignedTransaction(approval)
		txs.Approval = &tx
	}

	result := &SettlementResult{
		Success:         true,
		TransactionHash: PendingTransactionHash,
		Data: &ResultData{
			Type:                 UnsignedTransactionsData,
			UnsignedTransactions: txs,
		},
	}
	if dry {
		result.TransactionHash = ""
	}
	return result
}

func unsignedTransaction(step *stargate.Step) UnsignedTransaction {
	return UnsignedTransaction{
		ChainKey: step.ChainKey,
		From:     step.Transaction.From,
		To:       step.Transaction.To,
		Data:     step.Transaction.Data,
		Value:    step.Transaction.Value,
	}
}
