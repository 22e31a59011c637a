// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-settlement/chains/evm/calls/consts"
)

type BurnParams struct {
	Amount               *big.Int
	DestinationDomain    uint32
	MintRecipient        [32]byte
	BurnToken            common.Address
	DestinationCaller    [32]byte
	MaxFee               *big.Int
	MinFinalityThreshold uint32
}

// AddressToBytes32 left pads an EVM address to the bytes32 form CCTP uses for recipients.
func AddressToBytes32(address common.Address) [32]byte {
	return common.BytesToHash(address.Bytes())
}

func PackDepositForBurn(p BurnParams) ([]byte, error) {
	return consts.TokenMessengerABI.Pack(
		"depositForBurn",
		p.Amount,
		p.DestinationDomain,
		p.MintRecipient,
		p.BurnToken,
		p.DestinationCaller,
		p.MaxFee,
		p.MinFinalityThreshold,
	)
}

func DecodeDepositForBurn(calldata []byte) (*BurnParams, error) {
	method := consts.TokenMessengerABI.Methods["depositForBurn"]
	if len(calldata) < 4 || !bytes.Equal(calldata[:4], method.ID) {
		return nil, fmt.Errorf("calldata is not a depositForBurn call")
	}

	res, err := method.Inputs.Unpack(calldata[4:])
	if err != nil {
		return nil, err
	}

	return &BurnParams{
		Amount:               *abi.ConvertType(res[0], new(*big.Int)).(**big.Int),
		DestinationDomain:    *abi.ConvertType(res[1], new(uint32)).(*uint32),
		MintRecipient:        *abi.ConvertType(res[2], new([32]byte)).(*[32]byte),
		BurnToken:            *abi.ConvertType(res[3], new(common.Address)).(*common.Address),
		DestinationCaller:    *abi.ConvertType(res[4], new([32]byte)).(*[32]byte),
		MaxFee:               *abi.ConvertType(res[5], new(*big.Int)).(**big.Int),
		MinFinalityThreshold: *abi.ConvertType(res[6], new(uint32)).(*uint32),
	}, nil
}

func PackReceiveMessage(message []byte, attestation []byte) ([]byte, error) {
	return consts.MessageTransmitterABI.Pack("receiveMessage", message, attestation)
}
