// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/sprinter-settlement/app"
	"github.com/sprintertech/sprinter-settlement/config"
	"github.com/sprintertech/sprinter-settlement/registry"
	"github.com/sprintertech/sprinter-settlement/settlement"
)

func chainConfigs() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"type":        "evm",
			"id":          8453,
			"name":        "base",
			"endpoint":    "http://localhost:8545",
			"stargateKey": "base",
			"cctp": map[string]interface{}{
				"domain":             6,
				"tokenMessenger":     "0x28b5a0e9C621a5BadaA536219b3a228C8168cf5d",
				"messageTransmitter": "0x81D40F21F12A8F0E3252Bccb954D722d4c464B64",
			},
			"tokens": map[string]interface{}{
				"USDC": map[string]interface{}{
					"address":  "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
					"decimals": 6,
					"cctp":     true,
				},
			},
		},
		{
			"type":     "solana",
			"name":     "solana",
			"endpoint": "http://localhost:8899",
			"tokens": map[string]interface{}{
				"USDC": map[string]interface{}{
					"address":  "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
					"decimals": 6,
				},
			},
		},
	}
}

type EngineTestSuite struct {
	suite.Suite
}

func TestRunEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) Test_NewRegistry_UnknownType() {
	_, err := app.NewRegistry([]map[string]interface{}{
		{"type": "bitcoin", "name": "btc", "endpoint": "http://localhost"},
	})

	s.NotNil(err)
}

func (s *EngineTestSuite) Test_NewRegistry_DuplicateChain() {
	configs := chainConfigs()
	configs = append(configs, configs[0])

	_, err := app.NewRegistry(configs)

	s.NotNil(err)
}

func (s *EngineTestSuite) Test_NewRegistry_ValidChains() {
	reg, err := app.NewRegistry(chainConfigs())
	s.Nil(err)

	s.Equal([]string{"base", "solana"}, reg.Chains())

	base, err := reg.Lookup("base")
	s.Nil(err)
	s.Equal(registry.EVMFamily, base.Family)
	s.Equal(uint32(6), base.Cctp.Domain)
	_, ok := base.CctpToken("usdc")
	s.True(ok)

	sol, err := reg.Lookup("solana")
	s.Nil(err)
	s.Equal(registry.SolanaFamily, sol.Family)
}

func (s *EngineTestSuite) Test_NewEngine_InvalidRoute() {
	configuration := &config.Config{ChainConfigs: chainConfigs()}
	configuration.SettlementConfig.Stargate.Routes = []string{"base>solana"}

	_, err := app.NewEngine(context.Background(), configuration, nil)

	s.NotNil(err)
}

func (s *EngineTestSuite) Test_NewEngine_RoutesRequests() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	configuration := &config.Config{ChainConfigs: chainConfigs()}

	engine, err := app.NewEngine(ctx, configuration, nil)
	s.Nil(err)

	strategy, err := engine.Router.Select(&settlement.SettlementRequest{SourceChain: "base", DestChain: "base", Amount: "1"})
	s.Nil(err)
	s.Equal(settlement.GaslessKind, strategy.Kind())

	result := engine.Router.Execute(ctx, &settlement.SettlementRequest{SourceChain: "base", DestChain: "moon", Amount: "1"})
	s.False(result.Success)
	s.Contains(result.ErrorReason, "moon")
}
