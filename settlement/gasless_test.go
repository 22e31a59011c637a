package settlement_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sprintertech/sprinter-settlement/chains/evm/calls/contracts"
	"github.com/sprintertech/sprinter-settlement/chains/evm/signature"
	"github.com/sprintertech/sprinter-settlement/settlement"
	mock_settlement "github.com/sprintertech/sprinter-settlement/settlement/mock"
)

type GaslessStrategyTestSuite struct {
	suite.Suite

	mockClients *mock_settlement.MockChainClients
	mockClient  *mock_settlement.MockEVMClient
	strategy    *settlement.GaslessStrategy

	facilitatorKey     string
	facilitatorAddress common.Address
	nonce              [32]byte
	signature          []byte
}

func TestRunGaslessStrategyTestSuite(t *testing.T) {
	suite.Run(t, new(GaslessStrategyTestSuite))
}

func (s *GaslessStrategyTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockClients = mock_settlement.NewMockChainClients(ctrl)
	s.mockClient = mock_settlement.NewMockEVMClient(ctrl)
	s.strategy = settlement.NewGaslessStrategy(testRegistry(), s.mockClients, decimal.RequireFromString("0.01"))

	s.facilitatorKey, s.facilitatorAddress = facilitator()
	s.nonce = [32]byte{7}
	s.signature = append(make([]byte, 64, 65), 28)
}

func (s *GaslessStrategyTestSuite) request(amount string, value string) *settlement.SettlementRequest {
	return &settlement.SettlementRequest{
		SourceChain:    "base",
		DestChain:      "base",
		Amount:         amount,
		Recipient:      recipient,
		FacilitatorKey: s.facilitatorKey,
		SignedPayload: &settlement.SignedPayload{
			Authorization: &settlement.TransferAuthorization{
				From:        sender,
				To:          s.facilitatorAddress.Hex(),
				Value:       value,
				ValidAfter:  0,
				ValidBefore: 1900000000,
				Nonce:       hexutil.Encode(s.nonce[:]),
			},
			Signature: hexutil.Encode(s.signature),
		},
	}
}

func (s *GaslessStrategyTestSuite) Test_CanHandle() {
	s.True(s.strategy.CanHandle(&settlement.SettlementRequest{SourceChain: "base", DestChain: "base"}))
	s.True(s.strategy.CanHandle(&settlement.SettlementRequest{SourceChain: "base", DestChain: "BASE", SourceToken: "usdc", DestToken: "USDC"}))
	s.False(s.strategy.CanHandle(&settlement.SettlementRequest{SourceChain: "base", DestChain: "arbitrum"}))
	s.False(s.strategy.CanHandle(&settlement.SettlementRequest{SourceChain: "base", DestChain: "base", DestToken: "WETH"}))
}

func (s *GaslessStrategyTestSuite) Test_Execute_AmountNotCoveringFee() {
	result := s.strategy.Execute(context.Background(), s.request("0.01", "10000"))

	s.False(result.Success)
	s.Contains(result.ErrorReason, "fee")
}

func (s *GaslessStrategyTestSuite) Test_Execute_MissingAuthorization() {
	req := s.request("10", "10000000")
	req.SignedPayload = nil

	result := s.strategy.Execute(context.Background(), req)

	s.False(result.Success)
	s.Contains(result.ErrorReason, "authorization required")
}

func (s *GaslessStrategyTestSuite) Test_Execute_MissingFacilitatorKey() {
	req := s.request("10", "10000000")
	req.FacilitatorKey = ""

	result := s.strategy.Execute(context.Background(), req)

	s.False(result.Success)
	s.Contains(result.ErrorReason, "facilitator key required")
}

func (s *GaslessStrategyTestSuite) Test_Execute_AuthorizationNotPayingFacilitator() {
	req := s.request("10", "10000000")
	req.SignedPayload.Authorization.To = sender

	result := s.strategy.Execute(context.Background(), req)

	s.False(result.Success)
	s.Contains(result.ErrorReason, "does not pay the facilitator")
}

func (s *GaslessStrategyTestSuite) Test_Execute_AuthorizationValueMismatch() {
	result := s.strategy.Execute(context.Background(), s.request("10", "9000000"))

	s.False(result.Success)
	s.Contains(result.ErrorReason, "does not match amount")
}

func (s *GaslessStrategyTestSuite) Test_Execute_UnsupportedFamily() {
	req := s.request("10", "10000000")
	req.SourceChain = "solana"
	req.DestChain = "solana"

	result := s.strategy.Execute(context.Background(), req)

	s.False(result.Success)
}

func (s *GaslessStrategyTestSuite) Test_Execute_NativeTokenRejected() {
	req := s.request("1", "1000000000000000000")
	req.SourceToken = "ETH"

	result := s.strategy.Execute(context.Background(), req)

	s.False(result.Success)
	s.Contains(result.ErrorReason, "native")
}

func (s *GaslessStrategyTestSuite) Test_Execute_AuthorizedTransferReverted() {
	pullHash := common.HexToHash("0x01")
	s.mockClients.EXPECT().EVM("base").Return(s.mockClient, nil)
	s.mockClient.EXPECT().Transact(gomock.Any(), common.HexToAddress(baseUSDC), gomock.Any(), gomock.Any()).Return(pullHash, nil)
	s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), pullHash).Return(&types.Receipt{Status: types.ReceiptStatusFailed}, fmt.Errorf("%w: %s", settlement.ErrReverted, pullHash))

	result := s.strategy.Execute(context.Background(), s.request("10", "10000000"))

	s.False(result.Success)
	s.Equal(pullHash.Hex(), result.TransactionHash)
}

func (s *GaslessStrategyTestSuite) Test_Execute_AuthorizedTransferUnconfirmed() {
	pullHash := common.HexToHash("0x01")
	s.mockClients.EXPECT().EVM("base").Return(s.mockClient, nil)
	s.mockClient.EXPECT().Transact(gomock.Any(), common.HexToAddress(baseUSDC), gomock.Any(), gomock.Any()).Return(pullHash, nil).Times(1)
	s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), pullHash).Return(nil, fmt.Errorf("receipt for %s not found: %w", pullHash, context.DeadlineExceeded))

	result := s.strategy.Execute(context.Background(), s.request("10", "10000000"))

	s.True(result.Success)
	s.True(result.Partial())
	s.Equal(pullHash.Hex(), result.TransactionHash)
	s.Contains(result.ErrorReason, "confirmation unknown")
}

func (s *GaslessStrategyTestSuite) Test_Execute_PayoutFails() {
	pullHash := common.HexToHash("0x01")
	payoutHash := common.HexToHash("0x02")
	s.mockClients.EXPECT().EVM("base").Return(s.mockClient, nil)
	gomock.InOrder(
		s.mockClient.EXPECT().Transact(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(pullHash, nil),
		s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), pullHash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil),
		s.mockClient.EXPECT().Transact(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(payoutHash, nil),
		s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), payoutHash).Return(nil, fmt.Errorf("timeout")),
	)

	result := s.strategy.Execute(context.Background(), s.request("10", "10000000"))

	s.False(result.Success)
	s.Equal(pullHash.Hex(), result.TransactionHash)
	s.Contains(result.ErrorReason, "held by the facilitator")
}

func (s *GaslessStrategyTestSuite) Test_Execute_ValidTransfer() {
	pullHash := common.HexToHash("0x01")
	payoutHash := common.HexToHash("0x02")
	token := common.HexToAddress(baseUSDC)
	expectedPull, err := contracts.PackTransferWithAuthorization(contracts.TransferAuthorization{
		From:        common.HexToAddress(sender),
		To:          s.facilitatorAddress,
		Value:       big.NewInt(10000000),
		ValidAfter:  big.NewInt(0),
		ValidBefore: big.NewInt(1900000000),
		Nonce:       s.nonce,
	}, s.signature)
	s.Nil(err)
	expectedPayout, err := contracts.PackTransfer(common.HexToAddress(recipient), big.NewInt(9990000))
	s.Nil(err)

	s.mockClients.EXPECT().EVM("base").Return(s.mockClient, nil)
	gomock.InOrder(
		s.mockClient.EXPECT().Transact(gomock.Any(), token, expectedPull, gomock.Any()).Return(pullHash, nil),
		s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), pullHash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil),
		s.mockClient.EXPECT().Transact(gomock.Any(), token, expectedPayout, gomock.Any()).Return(payoutHash, nil),
		s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), payoutHash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil),
	)

	result := s.strategy.Execute(context.Background(), s.request("10", "10000000"))

	s.True(result.Success)
	s.Equal(payoutHash.Hex(), result.TransactionHash)
	s.Empty(result.ErrorReason)
}

func (s *GaslessStrategyTestSuite) Test_Preview() {
	result := s.strategy.Preview(context.Background(), s.request("10", "10000000"))

	s.True(result.Success)
	s.Equal(settlement.PendingDepositData, result.Data.Type)
	s.Equal("10000", result.Data.PendingDeposit.Fee)
	s.Equal("9990000", result.Data.PendingDeposit.ExpectedOutput)
	s.Equal(s.facilitatorAddress.Hex(), result.Data.PendingDeposit.DepositAddress)
}

// signedRequest builds an arbitrum request whose authorization is signed by a
// fresh holder key over the USDC EIP-712 domain.
func (s *GaslessStrategyTestSuite) signedRequest() *settlement.SettlementRequest {
	holder, err := crypto.GenerateKey()
	s.Nil(err)
	from := crypto.PubkeyToAddress(holder.PublicKey)

	hash, err := signature.TransferWithAuthorizationHash(signature.Domain{
		Name:              "USD Coin",
		Version:           "2",
		ChainID:           big.NewInt(42161),
		VerifyingContract: common.HexToAddress(arbitrumUSDC),
	}, contracts.TransferAuthorization{
		From:        from,
		To:          s.facilitatorAddress,
		Value:       big.NewInt(10000000),
		ValidAfter:  big.NewInt(0),
		ValidBefore: big.NewInt(1900000000),
		Nonce:       s.nonce,
	})
	s.Nil(err)
	sig, err := crypto.Sign(hash, holder)
	s.Nil(err)
	sig[64] += 27

	req := s.request("10", "10000000")
	req.SourceChain = "arbitrum"
	req.DestChain = "arbitrum"
	req.SignedPayload.Authorization.From = from.Hex()
	req.SignedPayload.Signature = hexutil.Encode(sig)
	return req
}

func (s *GaslessStrategyTestSuite) Test_Execute_SignatureNotFromSender() {
	req := s.signedRequest()
	req.SignedPayload.Authorization.From = sender

	result := s.strategy.Execute(context.Background(), req)

	s.False(result.Success)
	s.Contains(result.ErrorReason, "signature does not match sender")
}

func (s *GaslessStrategyTestSuite) Test_Execute_SignatureOverDifferentValue() {
	req := s.signedRequest()
	req.Amount = "11"
	req.SignedPayload.Authorization.Value = "11000000"

	result := s.strategy.Execute(context.Background(), req)

	s.False(result.Success)
	s.Contains(result.ErrorReason, "signature does not match sender")
}

func (s *GaslessStrategyTestSuite) Test_Execute_VerifiedSignature() {
	pullHash := common.HexToHash("0x01")
	payoutHash := common.HexToHash("0x02")
	s.mockClients.EXPECT().EVM("arbitrum").Return(s.mockClient, nil)
	gomock.InOrder(
		s.mockClient.EXPECT().Transact(gomock.Any(), common.HexToAddress(arbitrumUSDC), gomock.Any(), gomock.Any()).Return(pullHash, nil),
		s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), pullHash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil),
		s.mockClient.EXPECT().Transact(gomock.Any(), common.HexToAddress(arbitrumUSDC), gomock.Any(), gomock.Any()).Return(payoutHash, nil),
		s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), payoutHash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil),
	)

	result := s.strategy.Execute(context.Background(), s.signedRequest())

	s.True(result.Success)
	s.Equal(payoutHash.Hex(), result.TransactionHash)
}
