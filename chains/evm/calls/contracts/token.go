// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sprintertech/sprinter-settlement/chains/evm/calls/consts"
)

// TransferAuthorization holds EIP-3009 transferWithAuthorization parameters.
type TransferAuthorization struct {
	From        common.Address
	To          common.Address
	Value       *big.Int
	ValidAfter  *big.Int
	ValidBefore *big.Int
	Nonce       [32]byte
}

func PackTransfer(to common.Address, value *big.Int) ([]byte, error) {
	return consts.ERC20ABI.Pack("transfer", to, value)
}

func PackApprove(spender common.Address, value *big.Int) ([]byte, error) {
	return consts.ERC20ABI.Pack("approve", spender, value)
}

func PackBalanceOf(account common.Address) ([]byte, error) {
	return consts.ERC20ABI.Pack("balanceOf", account)
}

func UnpackBalance(output []byte) (*big.Int, error) {
	res, err := consts.ERC20ABI.Unpack("balanceOf", output)
	if err != nil {
		return nil, err
	}

	return *abi.ConvertType(res[0], new(*big.Int)).(**big.Int), nil
}

// PackTransferWithAuthorization encodes the authorization together with its 65 byte
// r||s||v signature.
func PackTransferWithAuthorization(auth TransferAuthorization, signature []byte) ([]byte, error) {
	if len(signature) != 65 {
		return nil, fmt.Errorf("invalid signature length %d", len(signature))
	}

	var r, s [32]byte
	copy(r[:], signature[:32])
	copy(s[:], signature[32:64])
	v := signature[64]
	if v < 27 {
		v += 27
	}

	return consts.ERC20ABI.Pack(
		"transferWithAuthorization",
		auth.From,
		auth.To,
		auth.Value,
		auth.ValidAfter,
		auth.ValidBefore,
		auth.Nonce,
		v,
		r,
		s,
	)
}

// DecodeTransferLog decodes an ERC20 Transfer event. It reports false for any
// other log.
func DecodeTransferLog(l *types.Log) (common.Address, common.Address, *big.Int, bool) {
	if len(l.Topics) != 3 || l.Topics[0] != consts.ERC20ABI.Events["Transfer"].ID {
		return common.Address{}, common.Address{}, nil, false
	}

	from := common.BytesToAddress(l.Topics[1].Bytes())
	to := common.BytesToAddress(l.Topics[2].Bytes())
	return from, to, new(big.Int).SetBytes(l.Data), true
}

// TransferLog builds the log an ERC20 transfer emits.
func TransferLog(token common.Address, from common.Address, to common.Address, value *big.Int) *types.Log {
	return &types.Log{
		Address: token,
		Topics: []common.Hash{
			consts.ERC20ABI.Events["Transfer"].ID,
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
		},
		Data: common.LeftPadBytes(value.Bytes(), 32),
	}
}
