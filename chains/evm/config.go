// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/sprintertech/sprinter-settlement/config"
	"github.com/sprintertech/sprinter-settlement/config/chain"
	"github.com/sprintertech/sprinter-settlement/registry"
)

type CctpConfig struct {
	Domain             *uint32 `mapstructure:"domain"`
	TokenMessenger     string  `mapstructure:"tokenMessenger"`
	MessageTransmitter string  `mapstructure:"messageTransmitter"`
}

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig
	ChainID            uint64

	Cctp        *CctpConfig
	StargateKey string

	Tokens map[string]config.TokenConfig

	ReceiptTimeout      time.Duration
	ReceiptPollInterval time.Duration
	// GasLimitMultiplier is applied to estimated gas, in percent.
	GasLimitMultiplier uint64
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	Id                       *uint64                       `mapstructure:"id"`
	Cctp                     *CctpConfig                   `mapstructure:"cctp"`
	StargateKey              string                        `mapstructure:"stargateKey"`
	Tokens                   map[string]config.TokenConfig `mapstructure:"tokens"`
	GasLimitMultiplier       uint64                        `mapstructure:"gasLimitMultiplier" default:"120"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	// viper defaults to 0 for not specified ints
	if c.Id == nil {
		return fmt.Errorf("required field chain.Id empty for chain %s", c.Name)
	}
	if c.Cctp != nil {
		if c.Cctp.Domain == nil {
			return fmt.Errorf("cctp domain missing for chain %s", c.Name)
		}
		if !common.IsHexAddress(c.Cctp.TokenMessenger) || !common.IsHexAddress(c.Cctp.MessageTransmitter) {
			return fmt.Errorf("invalid cctp contracts for chain %s", c.Name)
		}
	}
	for symbol, t := range c.Tokens {
		if t.Native {
			if err := t.ValidateNative(); err != nil {
				return fmt.Errorf("invalid token %s on chain %s: %w", symbol, c.Name, err)
			}
			continue
		}
		if !common.IsHexAddress(t.Address) {
			return fmt.Errorf("invalid address %s for token %s on chain %s", t.Address, symbol, c.Name)
		}
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	tokens := c.Tokens
	if tokens == nil {
		tokens = make(map[string]config.TokenConfig)
	}

	return &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		ChainID:            *c.Id,
		Cctp:               c.Cctp,
		StargateKey:        c.StargateKey,
		Tokens:             tokens,
		// nolint:gosec
		ReceiptTimeout: time.Duration(c.ReceiptTimeout) * time.Second,
		// nolint:gosec
		ReceiptPollInterval: time.Duration(c.ReceiptPollInterval) * time.Millisecond,
		GasLimitMultiplier:  c.GasLimitMultiplier,
	}, nil
}

// Capabilities converts the chain config into its registry entry.
func (c *EVMConfig) Capabilities() *registry.CapabilityEntry {
	var cctp *registry.CctpCapability
	if c.Cctp != nil {
		cctp = &registry.CctpCapability{
			Domain:             *c.Cctp.Domain,
			TokenMessenger:     c.Cctp.TokenMessenger,
			MessageTransmitter: c.Cctp.MessageTransmitter,
		}
	}

	return registry.NewCapabilityEntry(
		c.GeneralChainConfig.Key(),
		registry.EVMFamily,
		c.ChainID,
		cctp,
		c.StargateKey,
		c.GeneralChainConfig.StandardBridge,
		c.Tokens,
	)
}
