package solana

import (
	"fmt"
	"time"

	"github.com/creasty/defaults"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/mitchellh/mapstructure"

	"github.com/sprintertech/sprinter-settlement/config"
	"github.com/sprintertech/sprinter-settlement/config/chain"
	"github.com/sprintertech/sprinter-settlement/registry"
)

type SolanaConfig struct {
	GeneralChainConfig chain.GeneralChainConfig
	Tokens             map[string]config.TokenConfig

	ReceiptTimeout      time.Duration
	ReceiptPollInterval time.Duration
}

type RawSolanaConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	Tokens                   map[string]config.TokenConfig `mapstructure:"tokens"`
}

func (c *RawSolanaConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	for symbol, t := range c.Tokens {
		if t.Native {
			if err := t.ValidateNative(); err != nil {
				return fmt.Errorf("invalid token %s on chain %s: %w", symbol, c.Name, err)
			}
			continue
		}
		if _, err := solanago.PublicKeyFromBase58(t.Address); err != nil {
			return fmt.Errorf("invalid mint %s for token %s: %w", t.Address, symbol, err)
		}
	}
	return nil
}

// NewSolanaConfig decodes and validates a Solana chain config.
func NewSolanaConfig(chainConfig map[string]interface{}) (*SolanaConfig, error) {
	var c RawSolanaConfig
	if err := mapstructure.Decode(chainConfig, &c); err != nil {
		return nil, err
	}

	if err := defaults.Set(&c); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	tokens := c.Tokens
	if tokens == nil {
		tokens = make(map[string]config.TokenConfig)
	}

	return &SolanaConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		Tokens:             tokens,
		// nolint:gosec
		ReceiptTimeout: time.Duration(c.ReceiptTimeout) * time.Second,
		// nolint:gosec
		ReceiptPollInterval: time.Duration(c.ReceiptPollInterval) * time.Millisecond,
	}, nil
}

func (c *SolanaConfig) Capabilities() *registry.CapabilityEntry {
	return registry.NewCapabilityEntry(
		c.GeneralChainConfig.Key(),
		registry.SolanaFamily,
		0,
		nil,
		"",
		c.GeneralChainConfig.StandardBridge,
		c.Tokens,
	)
}
