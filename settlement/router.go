package settlement

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/sprinter-settlement/registry"
)

// priority is the order strategies are consulted in for cross chain requests.
var priority = []StrategyKind{
	LiquidityBridgeKind,
	AttestationBridgeKind,
	IntentBridgeKind,
	GaslessKind,
	StandardBridgeKind,
}

// Router selects exactly one strategy per request and delegates to it.
type Router struct {
	registry   *registry.Registry
	strategies []Strategy
	gasless    Strategy

	cache   ResultCache
	metrics Metrics

	inflight sync.Map
}

// NewRouter orders strategies by priority. Cache and metrics are optional.
func NewRouter(registry *registry.Registry, strategies []Strategy, cache ResultCache, metrics Metrics) (*Router, error) {
	known := make(map[StrategyKind]bool, len(priority))
	for _, kind := range priority {
		known[kind] = true
	}

	byKind := make(map[StrategyKind]Strategy, len(strategies))
	for _, s := range strategies {
		if !known[s.Kind()] {
			return nil, fmt.Errorf("unknown strategy %s", s.Kind())
		}
		if _, ok := byKind[s.Kind()]; ok {
			return nil, fmt.Errorf("strategy %s registered twice", s.Kind())
		}
		byKind[s.Kind()] = s
	}

	ordered := make([]Strategy, 0, len(strategies))
	for _, kind := range priority {
		if s, ok := byKind[kind]; ok {
			ordered = append(ordered, s)
		}
	}

	r := &Router{
		registry:   registry,
		strategies: ordered,
		cache:      cache,
		metrics:    metrics,
	}
	for _, s := range ordered {
		if s.Kind() == GaslessKind {
			r.gasless = s
		}
	}
	return r, nil
}

// Select returns the strategy a request settles with.
func (r *Router) Select(req *SettlementRequest) (Strategy, error) {
	if _, err := r.registry.Lookup(req.SourceChain); err != nil {
		return nil, err
	}
	if _, err := r.registry.Lookup(req.DestChain); err != nil {
		return nil, err
	}

	if req.SameChain() {
		if r.gasless == nil {
			return nil, fmt.Errorf("no settlement strategy supports %s to %s", req.SourceChain, req.DestChain)
		}
		return r.gasless, nil
	}

	for _, s := range r.strategies {
		if s.CanHandle(req) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("no settlement strategy supports %s to %s", req.SourceChain, req.DestChain)
}

// Execute settles the request. All failures are reported in the result.
func (r *Router) Execute(ctx context.Context, req *SettlementRequest) *SettlementResult {
	start := time.Now()
	logger := log.With().
		Str("settlementID", uuid.NewString()).
		Str("sourceChain", req.SourceChain).
		Str("destChain", req.DestChain).
		Logger()

	strategy, err := r.Select(req)
	if err != nil {
		logger.Info().Msgf("Rejected settlement: %s", err)
		result := rejection("%s", err)
		r.track(ctx, NoStrategyKind, result, start)
		return result
	}
	kind := strategy.Kind()
	logger = logger.With().Str("strategy", string(kind)).Logger()
	ctx = logger.WithContext(ctx)

	key := resultKey(kind, req)
	if key != "" {
		if r.cache != nil {
			if cached, ok := r.cache.Get(key); ok {
				logger.Info().Str("depositTxHash", req.DepositTxHash).Msg("Replaying settlement result")
				return cached
			}
		}

		if _, running := r.inflight.LoadOrStore(key, struct{}{}); running {
			return rejection("settlement of deposit %s is already in progress", req.DepositTxHash)
		}
		defer r.inflight.Delete(key)
	}

	result := strategy.Execute(ctx, req)
	result.Strategy = kind

	if key != "" && r.cache != nil && result.Success && !result.Pending() {
		r.cache.Set(key, result)
	}
	r.track(ctx, kind, result, start)
	logResult(&logger, result)
	return result
}

func (r *Router) track(ctx context.Context, kind StrategyKind, result *SettlementResult, start time.Time) {
	if r.metrics != nil {
		r.metrics.TrackSettlement(ctx, kind, result.Outcome(), time.Since(start))
	}
}

// Preview estimates the settlement without side effects.
func (r *Router) Preview(ctx context.Context, req *SettlementRequest) *SettlementResult {
	strategy, err := r.Select(req)
	if err != nil {
		return rejection("%s", err)
	}

	result := strategy.Preview(ctx, req)
	result.Strategy = strategy.Kind()
	return result
}

func resultKey(kind StrategyKind, req *SettlementRequest) string {
	if req.DepositTxHash == "" {
		return ""
	}
	hash := req.DepositTxHash
	if strings.HasPrefix(hash, "0x") {
		hash = strings.ToLower(hash)
	}
	return fmt.Sprintf("%s|%s|%s", kind, strings.ToLower(req.SourceChain), hash)
}

func logResult(logger *zerolog.Logger, result *SettlementResult) {
	switch result.Outcome() {
	case OutcomeFailed:
		logger.Info().Str("txHash", result.TransactionHash).Msgf("Settlement failed: %s", result.ErrorReason)
	case OutcomePartial:
		logger.Warn().Str("burnTxHash", result.BurnTransactionHash).Msgf("Settlement incomplete: %s", result.ErrorReason)
	case OutcomePending:
		logger.Info().Msg("Settlement awaiting caller action")
	default:
		logger.Info().Str("txHash", result.TransactionHash).Msg("Settlement completed")
	}
}
