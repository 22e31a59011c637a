package config

import "fmt"

// TokenConfig describes one token on one chain and the settlement protocols it can
// be moved with.
type TokenConfig struct {
	Address  string `mapstructure:"address"`
	Decimals uint8  `mapstructure:"decimals"`
	// Native marks the gas asset of the chain. Native tokens have no address.
	Native bool `mapstructure:"native"`

	// Cctp marks the canonical burn-and-mint asset of the attestation bridge.
	Cctp bool `mapstructure:"cctp"`
	// IntentAssetID is the 1Click asset identifier, e.g. "nep141:base-0x8335...omft.near".
	IntentAssetID string `mapstructure:"intentAssetId"`
	// Stargate marks tokens with Stargate pools on this chain.
	Stargate bool `mapstructure:"stargate"`

	// Eip712Name and Eip712Version identify the EIP-712 domain of tokens that
	// accept transfer authorizations. Authorization signatures are verified
	// before submission only when the name is set.
	Eip712Name    string `mapstructure:"eip712Name"`
	Eip712Version string `mapstructure:"eip712Version"`
}

// ValidateNative rejects native token settings that only contract tokens support.
// Native tokens can be moved by the intent bridge alone.
func (t TokenConfig) ValidateNative() error {
	if t.Address != "" {
		return fmt.Errorf("native token cannot have an address")
	}
	if t.Cctp || t.Stargate || t.Eip712Name != "" {
		return fmt.Errorf("native token can only be bridged by intent")
	}
	return nil
}
