// Package registry holds the static capability table every settlement strategy
// consults when deciding whether it can move a token between two chains.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sprintertech/sprinter-settlement/config"
)

// ReferenceToken is the token a request settles in when it names no source token.
const ReferenceToken = "USDC"

var ErrUnknownChain = errors.New("unknown chain")

type ChainFamily string

const (
	EVMFamily    ChainFamily = "evm"
	SolanaFamily ChainFamily = "solana"
)

// CctpCapability holds the attestation bridge parameters of a chain.
type CctpCapability struct {
	Domain             uint32
	TokenMessenger     string
	MessageTransmitter string
}

// CapabilityEntry is the immutable capability record of one chain.
type CapabilityEntry struct {
	Key     string
	Family  ChainFamily
	ChainID uint64

	Cctp *CctpCapability
	// StargateKey is the chain key the Stargate API knows this chain by; empty when
	// the chain has no Stargate pools.
	StargateKey    string
	StandardBridge bool

	tokens map[string]config.TokenConfig
}

func NewCapabilityEntry(
	key string,
	family ChainFamily,
	chainID uint64,
	cctp *CctpCapability,
	stargateKey string,
	standardBridge bool,
	tokens map[string]config.TokenConfig,
) *CapabilityEntry {
	t := make(map[string]config.TokenConfig, len(tokens))
	for symbol, tc := range tokens {
		t[strings.ToUpper(symbol)] = tc
	}

	return &CapabilityEntry{
		Key:            strings.ToLower(key),
		Family:         family,
		ChainID:        chainID,
		Cctp:           cctp,
		StargateKey:    stargateKey,
		StandardBridge: standardBridge,
		tokens:         t,
	}
}

// Token returns the token configuration for symbol.
func (e *CapabilityEntry) Token(symbol string) (config.TokenConfig, bool) {
	tc, ok := e.tokens[strings.ToUpper(symbol)]
	return tc, ok
}

// Symbols returns the configured token symbols in sorted order.
func (e *CapabilityEntry) Symbols() []string {
	symbols := make([]string, 0, len(e.tokens))
	for s := range e.tokens {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// CctpToken reports whether symbol is the canonical attestation bridge asset on this chain.
func (e *CapabilityEntry) CctpToken(symbol string) (config.TokenConfig, bool) {
	if e.Cctp == nil {
		return config.TokenConfig{}, false
	}

	tc, ok := e.Token(symbol)
	if !ok || !tc.Cctp {
		return config.TokenConfig{}, false
	}
	return tc, true
}

// IntentAsset returns the intent bridge asset of symbol on this chain.
func (e *CapabilityEntry) IntentAsset(symbol string) (config.TokenConfig, bool) {
	tc, ok := e.Token(symbol)
	if !ok || tc.IntentAssetID == "" {
		return config.TokenConfig{}, false
	}
	return tc, true
}

// StargateToken returns symbol when both the chain and the token have Stargate pools.
func (e *CapabilityEntry) StargateToken(symbol string) (config.TokenConfig, bool) {
	if e.StargateKey == "" {
		return config.TokenConfig{}, false
	}

	tc, ok := e.Token(symbol)
	if !ok || !tc.Stargate {
		return config.TokenConfig{}, false
	}
	return tc, true
}

// Registry is a read-only chain key -> capability lookup. It is never mutated after
// construction and is safe for concurrent use.
type Registry struct {
	entries map[string]*CapabilityEntry
}

func NewRegistry(entries ...*CapabilityEntry) (*Registry, error) {
	r := &Registry{
		entries: make(map[string]*CapabilityEntry, len(entries)),
	}
	for _, e := range entries {
		if _, ok := r.entries[e.Key]; ok {
			return nil, fmt.Errorf("chain %s registered twice", e.Key)
		}
		r.entries[e.Key] = e
	}
	return r, nil
}

// Lookup returns the capability entry of chain.
func (r *Registry) Lookup(chain string) (*CapabilityEntry, error) {
	e, ok := r.entries[strings.ToLower(chain)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChain, chain)
	}
	return e, nil
}

// Chains returns all registered chain keys in sorted order.
func (r *Registry) Chains() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
