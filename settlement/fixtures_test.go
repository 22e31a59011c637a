package settlement_test

import (
	"encoding/hex"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/sprintertech/sprinter-settlement/config"
	"github.com/sprintertech/sprinter-settlement/registry"
	"github.com/sprintertech/sprinter-settlement/settlement"
)

const (
	baseUSDC     = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
	arbitrumUSDC = "0xaf88d065e77c8cC2239327C5EDb3A432268e5831"
	optimismUSDC = "0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85"
	solanaUSDC   = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"

	baseTokenMessenger         = "0x28b5a0e9C621a5BadaA536219b3a228C8168cf5d"
	arbitrumMessageTransmitter = "0x81D40F21F12A8F0E3252Bccb954D722d4c464B64"

	recipient = "0x2222222222222222222222222222222222222222"
	sender    = "0x1111111111111111111111111111111111111111"
)

func testRegistry() *registry.Registry {
	reg, err := registry.NewRegistry(
		registry.NewCapabilityEntry(
			"base",
			registry.EVMFamily,
			8453,
			&registry.CctpCapability{
				Domain:             6,
				TokenMessenger:     baseTokenMessenger,
				MessageTransmitter: "0x81D40F21F12A8F0E3252Bccb954D722d4c464B64",
			},
			"base",
			true,
			map[string]config.TokenConfig{
				"usdc": {
					Address:       baseUSDC,
					Decimals:      6,
					Cctp:          true,
					IntentAssetID: "nep141:base-0x833589fcd6edb6e08f4c7c32d4f71b54bda02913.omft.near",
					Stargate:      true,
				},
				"WETH": {
					Address:  "0x4200000000000000000000000000000000000006",
					Decimals: 18,
				},
				"ETH": {
					Native:        true,
					Decimals:      18,
					IntentAssetID: "nep141:base.omft.near",
				},
			},
		),
		registry.NewCapabilityEntry(
			"arbitrum",
			registry.EVMFamily,
			42161,
			&registry.CctpCapability{
				Domain:             3,
				TokenMessenger:     "0x28b5a0e9C621a5BadaA536219b3a228C8168cf5d",
				MessageTransmitter: arbitrumMessageTransmitter,
			},
			"arbitrum",
			false,
			map[string]config.TokenConfig{
				"USDC": {
					Address:       arbitrumUSDC,
					Decimals:      6,
					Cctp:          true,
					IntentAssetID: "nep141:arb-0xaf88d065e77c8cc2239327c5edb3a432268e5831.omft.near",
					Stargate:      true,
					Eip712Name:    "USD Coin",
					Eip712Version: "2",
				},
			},
		),
		registry.NewCapabilityEntry(
			"optimism",
			registry.EVMFamily,
			10,
			nil,
			"",
			true,
			map[string]config.TokenConfig{
				"USDC": {
					Address:  optimismUSDC,
					Decimals: 6,
				},
			},
		),
		registry.NewCapabilityEntry(
			"solana",
			registry.SolanaFamily,
			0,
			nil,
			"",
			false,
			map[string]config.TokenConfig{
				"USDC": {
					Address:       solanaUSDC,
					Decimals:      6,
					IntentAssetID: "nep141:sol-5ce3bf3a31af18be40ba30f721101b4341690186.omft.near",
				},
			},
		),
		registry.NewCapabilityEntry("stellar", registry.SolanaFamily, 0, nil, "", false, nil),
	)
	if err != nil {
		panic(err)
	}
	return reg
}

func testPolicy() settlement.Policy {
	p := settlement.DefaultPolicy()
	p.BalanceRetries = 3
	p.BalanceRetryInterval = time.Millisecond
	p.NotifyTimeout = time.Second
	return p
}

func facilitator() (string, common.Address) {
	key, err := crypto.GenerateKey()
	if err != nil {
		panic(err)
	}
	return "0x" + hex.EncodeToString(crypto.FromECDSA(key)), crypto.PubkeyToAddress(key.PublicKey)
}
