package settlement

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sprintertech/sprinter-settlement/config"
)

// Policy holds the fees, retry caps and timeouts strategies run with. Fees are
// flat amounts in token units.
type Policy struct {
	GaslessFee     decimal.Decimal
	AttestationFee decimal.Decimal
	IntentFee      decimal.Decimal

	BalanceRetries       int
	BalanceRetryInterval time.Duration
	AttestationTimeout   time.Duration
	NotifyTimeout        time.Duration

	CctpMinMaxFee            decimal.Decimal
	CctpMinFinalityThreshold uint32
}

func DefaultPolicy() Policy {
	return Policy{
		GaslessFee:               decimal.RequireFromString("0.01"),
		AttestationFee:           decimal.RequireFromString("0.02"),
		IntentFee:                decimal.RequireFromString("0.1"),
		BalanceRetries:           5,
		BalanceRetryInterval:     3 * time.Second,
		AttestationTimeout:       2 * time.Minute,
		NotifyTimeout:            15 * time.Second,
		CctpMinMaxFee:            decimal.RequireFromString("0.01"),
		CctpMinFinalityThreshold: 1000,
	}
}

func NewPolicy(cfg config.SettlementConfig) (Policy, error) {
	p := DefaultPolicy()

	fees := []struct {
		name  string
		value string
		dest  *decimal.Decimal
	}{
		{"gaslessFee", cfg.Policy.GaslessFee, &p.GaslessFee},
		{"attestationFee", cfg.Policy.AttestationFee, &p.AttestationFee},
		{"intentFee", cfg.Policy.IntentFee, &p.IntentFee},
		{"cctp.minMaxFee", cfg.Cctp.MinMaxFee, &p.CctpMinMaxFee},
	}
	for _, f := range fees {
		if f.value == "" {
			continue
		}

		d, err := decimal.NewFromString(f.value)
		if err != nil {
			return Policy{}, fmt.Errorf("invalid %s %s: %w", f.name, f.value, err)
		}
		if d.IsNegative() {
			return Policy{}, fmt.Errorf("negative %s %s", f.name, f.value)
		}
		*f.dest = d
	}

	if cfg.Policy.BalanceRetries > 0 {
		p.BalanceRetries = cfg.Policy.BalanceRetries
	}
	if cfg.Policy.BalanceRetryInterval > 0 {
		p.BalanceRetryInterval = cfg.Policy.BalanceRetryInterval
	}
	if cfg.Policy.AttestationTimeout > 0 {
		p.AttestationTimeout = cfg.Policy.AttestationTimeout
	}
	if cfg.Policy.NotifyTimeout > 0 {
		p.NotifyTimeout = cfg.Policy.NotifyTimeout
	}
	if cfg.Cctp.MinFinalityThreshold > 0 {
		p.CctpMinFinalityThreshold = cfg.Cctp.MinFinalityThreshold
	}
	return p, nil
}
