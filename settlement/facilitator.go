package settlement

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func facilitatorKey(hexKey string) (*ecdsa.PrivateKey, common.Address, error) {
	if hexKey == "" {
		return nil, common.Address{}, fmt.Errorf("facilitator key required")
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("invalid facilitator key")
	}
	return key, crypto.PubkeyToAddress(key.PublicKey), nil
}

func hexAddress(name string, address string) (common.Address, error) {
	if !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("invalid %s address %s", name, address)
	}
	return common.HexToAddress(address), nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
