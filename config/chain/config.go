// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"
	"strings"
)

const (
	EVMType    = "evm"
	SolanaType = "solana"
)

// GeneralChainConfig holds fields shared by every chain family.
type GeneralChainConfig struct {
	// Name is the chain key used by settlement requests, e.g. "base" or "solana".
	Name     string `mapstructure:"name"`
	Type     string `mapstructure:"type"`
	Endpoint string `mapstructure:"endpoint"`
	// StandardBridge marks chains reachable through the deprecated native bridge path.
	StandardBridge bool `mapstructure:"standardBridge"`
	// ReceiptTimeout is the maximum number of seconds to wait for a transaction receipt.
	ReceiptTimeout uint64 `mapstructure:"receiptTimeout" default:"120"`
	// ReceiptPollInterval is the number of milliseconds between receipt polls.
	ReceiptPollInterval uint64 `mapstructure:"receiptPollInterval" default:"2000"`
}

func (c *GeneralChainConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("required field chain.Name empty")
	}
	if c.Endpoint == "" {
		return fmt.Errorf("required field chain.Endpoint empty for chain %s", c.Name)
	}
	if c.ReceiptTimeout == 0 {
		return fmt.Errorf("receipt timeout must be positive for chain %s", c.Name)
	}
	return nil
}

// Key returns the normalized chain key.
func (c *GeneralChainConfig) Key() string {
	return strings.ToLower(c.Name)
}
