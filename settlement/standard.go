package settlement

import (
	"context"

	"github.com/sprintertech/sprinter-settlement/registry"
)

// StandardBridgeStrategy recognizes the legacy canonical bridge routes and
// rejects them. The canonical bridges are no longer used for settlement.
type StandardBridgeStrategy struct {
	registry *registry.Registry
}

func NewStandardBridgeStrategy(registry *registry.Registry) *StandardBridgeStrategy {
	return &StandardBridgeStrategy{
		registry: registry,
	}
}

func (s *StandardBridgeStrategy) Kind() StrategyKind {
	return StandardBridgeKind
}

func (s *StandardBridgeStrategy) CanHandle(req *SettlementRequest) bool {
	source, err := s.registry.Lookup(req.SourceChain)
	if err != nil {
		return false
	}
	dest, err := s.registry.Lookup(req.DestChain)
	if err != nil {
		return false
	}
	return source.StandardBridge && dest.StandardBridge
}

func (s *StandardBridgeStrategy) Execute(ctx context.Context, req *SettlementRequest) *SettlementResult {
	return rejection("standard bridge settlement from %s to %s is deprecated", req.SourceChain, req.DestChain)
}

func (s *StandardBridgeStrategy) Preview(ctx context.Context, req *SettlementRequest) *SettlementResult {
	return s.Execute(ctx, req)
}
