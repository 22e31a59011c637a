// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/sprinter-settlement/cache"
	"github.com/sprintertech/sprinter-settlement/chains"
	"github.com/sprintertech/sprinter-settlement/chains/evm"
	"github.com/sprintertech/sprinter-settlement/chains/evm/client"
	"github.com/sprintertech/sprinter-settlement/chains/solana"
	"github.com/sprintertech/sprinter-settlement/config"
	"github.com/sprintertech/sprinter-settlement/protocol/cctp"
	"github.com/sprintertech/sprinter-settlement/protocol/near"
	"github.com/sprintertech/sprinter-settlement/protocol/stargate"
	"github.com/sprintertech/sprinter-settlement/registry"
	"github.com/sprintertech/sprinter-settlement/settlement"
)

// Engine is the wired settlement engine.
type Engine struct {
	Registry *registry.Registry
	Router   *settlement.Router
}

type chainConfig interface {
	Capabilities() *registry.CapabilityEntry
}

func parseChainConfigs(chainConfigs []map[string]interface{}) ([]chainConfig, error) {
	parsed := make([]chainConfig, 0, len(chainConfigs))
	for _, chainConfig := range chainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				c, err := evm.NewEVMConfig(chainConfig)
				if err != nil {
					return nil, err
				}
				parsed = append(parsed, c)
			}
		case "solana":
			{
				c, err := solana.NewSolanaConfig(chainConfig)
				if err != nil {
					return nil, err
				}
				parsed = append(parsed, c)
			}
		default:
			return nil, fmt.Errorf("type '%s' not recognized", chainConfig["type"])
		}
	}
	return parsed, nil
}

// NewRegistry builds the capability registry from the raw chain configs.
func NewRegistry(chainConfigs []map[string]interface{}) (*registry.Registry, error) {
	parsed, err := parseChainConfigs(chainConfigs)
	if err != nil {
		return nil, err
	}

	entries := make([]*registry.CapabilityEntry, len(parsed))
	for i, c := range parsed {
		entries[i] = c.Capabilities()
	}
	return registry.NewRegistry(entries...)
}

func dialClients(ctx context.Context, chainConfigs []map[string]interface{}) (*chains.Clients, error) {
	parsed, err := parseChainConfigs(chainConfigs)
	if err != nil {
		return nil, err
	}

	clients := chains.NewClients()
	for _, c := range parsed {
		switch c := c.(type) {
		case *evm.EVMConfig:
			{
				backend, err := ethclient.DialContext(ctx, c.GeneralChainConfig.Endpoint)
				if err != nil {
					return nil, fmt.Errorf("failed dialing %s: %w", c.GeneralChainConfig.Name, err)
				}

				log.Info().Str("chain", c.GeneralChainConfig.Key()).Uint64("chainID", c.ChainID).Msgf("Registering EVM chain")
				clients.RegisterEVM(c.GeneralChainConfig.Key(), client.NewEVMClient(
					backend,
					new(big.Int).SetUint64(c.ChainID),
					c.ReceiptTimeout,
					c.ReceiptPollInterval,
					c.GasLimitMultiplier,
				))
			}
		case *solana.SolanaConfig:
			{
				log.Info().Str("chain", c.GeneralChainConfig.Key()).Msgf("Registering Solana chain")
				clients.RegisterSolana(c.GeneralChainConfig.Key(), solana.NewSolanaClient(
					rpc.New(c.GeneralChainConfig.Endpoint),
					c.ReceiptTimeout,
					c.ReceiptPollInterval,
				))
			}
		}
	}
	return clients, nil
}

// NewEngine wires chain clients, protocol APIs and strategies into a router.
// Metrics may be nil.
func NewEngine(ctx context.Context, configuration *config.Config, metrics settlement.Metrics) (*Engine, error) {
	cfg := configuration.SettlementConfig

	reg, err := NewRegistry(configuration.ChainConfigs)
	if err != nil {
		return nil, err
	}
	clients, err := dialClients(ctx, configuration.ChainConfigs)
	if err != nil {
		return nil, err
	}
	policy, err := settlement.NewPolicy(cfg)
	if err != nil {
		return nil, err
	}

	attestationAPI := cctp.NewAttestationAPI(cfg.Cctp.Url, cfg.Policy.AttestationPollInterval)
	intentsAPI := near.NewIntentsAPI(
		cfg.NearIntents.Url,
		cfg.NearIntents.JWTToken,
		float32(cfg.NearIntents.SlippageBps),
		cfg.NearIntents.QuoteTimeout,
		nil,
	)
	stargateAPI := stargate.NewStargateAPI(cfg.Stargate.Url, cfg.Stargate.SlippageBps)

	liquidity, err := settlement.NewLiquidityBridgeStrategy(reg, stargateAPI, cfg.Stargate.Routes)
	if err != nil {
		return nil, err
	}
	strategies := []settlement.Strategy{
		liquidity,
		settlement.NewAttestationBridgeStrategy(reg, clients, attestationAPI, policy),
		settlement.NewIntentBridgeStrategy(reg, clients, intentsAPI, policy.IntentFee, policy.NotifyTimeout),
		settlement.NewGaslessStrategy(reg, clients, policy.GaslessFee),
		settlement.NewStandardBridgeStrategy(reg),
	}

	router, err := settlement.NewRouter(reg, strategies, cache.NewResultCache(ctx, cfg.Policy.ResultCacheTTL), metrics)
	if err != nil {
		return nil, err
	}

	return &Engine{
		Registry: reg,
		Router:   router,
	}, nil
}
