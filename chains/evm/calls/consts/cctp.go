package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// TokenMessengerABI is the CCTP v2 TokenMessenger burn entry point.
var TokenMessengerABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "name": "depositForBurn",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "amount", "type": "uint256"},
      {"name": "destinationDomain", "type": "uint32"},
      {"name": "mintRecipient", "type": "bytes32"},
      {"name": "burnToken", "type": "address"},
      {"name": "destinationCaller", "type": "bytes32"},
      {"name": "maxFee", "type": "uint256"},
      {"name": "minFinalityThreshold", "type": "uint32"}
    ],
    "outputs": []
  }
]
`))

// MessageTransmitterABI is the CCTP v2 MessageTransmitter mint entry point.
var MessageTransmitterABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "name": "receiveMessage",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "message", "type": "bytes"},
      {"name": "attestation", "type": "bytes"}
    ],
    "outputs": [{"name": "success", "type": "bool"}]
  }
]
`))
