package settlement

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sprintertech/sprinter-settlement/chains/evm/calls/contracts"
	"github.com/sprintertech/sprinter-settlement/chains/evm/signature"
	"github.com/sprintertech/sprinter-settlement/registry"
)

// GaslessStrategy relays a same chain transfer authorized off-chain by the user.
// The facilitator pays gas for pulling the authorized amount and forwards it,
// less a flat fee, to the recipient.
type GaslessStrategy struct {
	registry *registry.Registry
	clients  ChainClients
	fee      decimal.Decimal
}

func NewGaslessStrategy(registry *registry.Registry, clients ChainClients, fee decimal.Decimal) *GaslessStrategy {
	return &GaslessStrategy{
		registry: registry,
		clients:  clients,
		fee:      fee,
	}
}

func (s *GaslessStrategy) Kind() StrategyKind {
	return GaslessKind
}

func (s *GaslessStrategy) CanHandle(req *SettlementRequest) bool {
	return req.SameChain()
}

type gaslessTransfer struct {
	token       common.Address
	recipient   common.Address
	total       *big.Int
	fee         *big.Int
	net         *big.Int
	authorized  contracts.TransferAuthorization
	sig         []byte
	facilitator common.Address

	// domain is nil for tokens without a configured EIP-712 domain.
	domain *signature.Domain
}

func (s *GaslessStrategy) prepare(req *SettlementRequest) (*gaslessTransfer, error) {
	entry, err := s.registry.Lookup(req.SourceChain)
	if err != nil {
		return nil, err
	}
	if entry.Family != registry.EVMFamily {
		return nil, fmt.Errorf("gasless settlement is not supported on %s chains", entry.Family)
	}

	tc, ok := entry.Token(req.SourceSymbol())
	if !ok {
		return nil, fmt.Errorf("token %s not supported on %s", req.SourceSymbol(), entry.Key)
	}
	if tc.Native {
		return nil, fmt.Errorf("native %s cannot be transferred by authorization", req.SourceSymbol())
	}

	total, fee, net, err := SplitFee(req.Amount, s.fee, tc.Decimals)
	if err != nil {
		return nil, err
	}

	recipient, err := hexAddress("recipient", req.Recipient)
	if err != nil {
		return nil, err
	}

	t := &gaslessTransfer{
		token:     common.HexToAddress(tc.Address),
		recipient: recipient,
		total:     total,
		fee:       fee,
		net:       net,
	}
	if tc.Eip712Name != "" {
		t.domain = &signature.Domain{
			Name:              tc.Eip712Name,
			Version:           tc.Eip712Version,
			ChainID:           new(big.Int).SetUint64(entry.ChainID),
			VerifyingContract: t.token,
		}
	}
	return t, nil
}

func (s *GaslessStrategy) authorization(req *SettlementRequest, t *gaslessTransfer) error {
	payload := req.SignedPayload
	if payload == nil || payload.Authorization == nil || payload.Signature == "" {
		return fmt.Errorf("signed transfer authorization required")
	}
	a := payload.Authorization

	from, err := hexAddress("authorization sender", a.From)
	if err != nil {
		return err
	}
	to, err := hexAddress("authorization recipient", a.To)
	if err != nil {
		return err
	}
	if to != t.facilitator {
		return fmt.Errorf("authorization does not pay the facilitator")
	}

	value, ok := new(big.Int).SetString(a.Value, 10)
	if !ok {
		return fmt.Errorf("invalid authorization value %s", a.Value)
	}
	if value.Cmp(t.total) != 0 {
		return fmt.Errorf("authorization value %s does not match amount %s", value, t.total)
	}

	nonce, err := hexutil.Decode(a.Nonce)
	if err != nil || len(nonce) != 32 {
		return fmt.Errorf("invalid authorization nonce %s", a.Nonce)
	}
	sig, err := hexutil.Decode(payload.Signature)
	if err != nil || len(sig) != 65 {
		return fmt.Errorf("invalid authorization signature")
	}

	t.authorized = contracts.TransferAuthorization{
		From:        from,
		To:          to,
		Value:       value,
		ValidAfter:  big.NewInt(a.ValidAfter),
		ValidBefore: big.NewInt(a.ValidBefore),
	}
	copy(t.authorized.Nonce[:], nonce)
	t.sig = sig

	if t.domain == nil {
		return nil
	}
	hash, err := signature.TransferWithAuthorizationHash(*t.domain, t.authorized)
	if err != nil {
		return err
	}
	signer, err := signature.RecoverSigner(hash, sig)
	if err != nil || signer != from {
		return fmt.Errorf("authorization signature does not match sender %s", from.Hex())
	}
	return nil
}

func (s *GaslessStrategy) Execute(ctx context.Context, req *SettlementRequest) *SettlementResult {
	t, err := s.prepare(req)
	if err != nil {
		return rejection("%s", err)
	}

	key, facilitator, err := facilitatorKey(req.FacilitatorKey)
	if err != nil {
		return rejection("%s", err)
	}
	t.facilitator = facilitator

	if err := s.authorization(req, t); err != nil {
		return rejection("%s", err)
	}

	client, err := s.clients.EVM(req.SourceChain)
	if err != nil {
		return rejection("%s", err)
	}

	logger := zerolog.Ctx(ctx)
	data, err := contracts.PackTransferWithAuthorization(t.authorized, t.sig)
	if err != nil {
		return rejection("%s", err)
	}
	pullHash, err := client.Transact(ctx, t.token, data, key)
	if err != nil {
		return rejection("authorized transfer failed: %s", err)
	}
	if _, err := client.WaitForReceipt(ctx, pullHash); err != nil {
		if errors.Is(err, ErrReverted) {
			return failure(pullHash.Hex(), "authorized transfer failed: %s", err)
		}

		logger.Warn().Str("txHash", pullHash.Hex()).Msgf("Authorized transfer confirmation unknown: %s", err)
		return &SettlementResult{
			Success:         true,
			TransactionHash: pullHash.Hex(),
			ErrorReason:     fmt.Sprintf("authorized transfer confirmation unknown, funds may be held by the facilitator: %s", err),
		}
	}
	logger.Info().Str("txHash", pullHash.Hex()).Msgf("Pulled %s from %s", t.total, t.authorized.From)

	data, err = contracts.PackTransfer(t.recipient, t.net)
	if err != nil {
		return failure(pullHash.Hex(), "payout failed, funds are held by the facilitator: %s", err)
	}
	payoutHash, err := client.Transact(ctx, t.token, data, key)
	if err != nil {
		return failure(pullHash.Hex(), "payout failed, funds are held by the facilitator: %s", err)
	}
	if _, err := client.WaitForReceipt(ctx, payoutHash); err != nil {
		return failure(pullHash.Hex(), "payout %s failed, funds are held by the facilitator: %s", payoutHash.Hex(), err)
	}

	return &SettlementResult{
		Success:         true,
		TransactionHash: payoutHash.Hex(),
	}
}

func (s *GaslessStrategy) Preview(ctx context.Context, req *SettlementRequest) *SettlementResult {
	t, err := s.prepare(req)
	if err != nil {
		return rejection("%s", err)
	}

	deposit := &PendingDeposit{
		Amount:         t.total.String(),
		Fee:            t.fee.String(),
		ExpectedOutput: t.net.String(),
	}
	if _, facilitator, err := facilitatorKey(req.FacilitatorKey); err == nil {
		deposit.DepositAddress = facilitator.Hex()
	}
	return preview(deposit)
}
