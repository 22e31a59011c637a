package settlement

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"

	"github.com/sprintertech/sprinter-settlement/chains/evm/calls/contracts"
	"github.com/sprintertech/sprinter-settlement/config"
	"github.com/sprintertech/sprinter-settlement/registry"
)

// AttestationBridgeStrategy moves the canonical token by burning it on the source
// chain and minting it on the destination chain once the burn is attested.
type AttestationBridgeStrategy struct {
	registry     *registry.Registry
	clients      ChainClients
	attestations AttestationFetcher
	policy       Policy
}

func NewAttestationBridgeStrategy(
	registry *registry.Registry,
	clients ChainClients,
	attestations AttestationFetcher,
	policy Policy,
) *AttestationBridgeStrategy {
	return &AttestationBridgeStrategy{
		registry:     registry,
		clients:      clients,
		attestations: attestations,
		policy:       policy,
	}
}

func (s *AttestationBridgeStrategy) Kind() StrategyKind {
	return AttestationBridgeKind
}

func (s *AttestationBridgeStrategy) CanHandle(req *SettlementRequest) bool {
	if req.SourceSymbol() != req.DestSymbol() {
		return false
	}

	source, dest, err := s.entries(req)
	if err != nil {
		return false
	}
	_, sourceOk := source.CctpToken(req.SourceSymbol())
	_, destOk := dest.CctpToken(req.DestSymbol())
	return sourceOk && destOk
}

func (s *AttestationBridgeStrategy) entries(req *SettlementRequest) (*registry.CapabilityEntry, *registry.CapabilityEntry, error) {
	source, err := s.registry.Lookup(req.SourceChain)
	if err != nil {
		return nil, nil, err
	}
	dest, err := s.registry.Lookup(req.DestChain)
	if err != nil {
		return nil, nil, err
	}
	return source, dest, nil
}

type burn struct {
	source      *registry.CapabilityEntry
	dest        *registry.CapabilityEntry
	token       config.TokenConfig
	recipient   common.Address
	total       *big.Int
	fee         *big.Int
	net         *big.Int
	maxFee      *big.Int
	facilitator common.Address
}

func (s *AttestationBridgeStrategy) prepare(req *SettlementRequest) (*burn, error) {
	source, dest, err := s.entries(req)
	if err != nil {
		return nil, err
	}

	tc, ok := source.CctpToken(req.SourceSymbol())
	if !ok {
		return nil, fmt.Errorf("token %s is not bridgeable from %s", req.SourceSymbol(), source.Key)
	}
	if _, ok := dest.CctpToken(req.DestSymbol()); !ok {
		return nil, fmt.Errorf("token %s is not bridgeable to %s", req.DestSymbol(), dest.Key)
	}

	total, fee, net, err := SplitFee(req.Amount, s.policy.AttestationFee, tc.Decimals)
	if err != nil {
		return nil, err
	}

	recipient, err := hexAddress("recipient", req.Recipient)
	if err != nil {
		return nil, err
	}

	return &burn{
		source:    source,
		dest:      dest,
		token:     tc,
		recipient: recipient,
		total:     total,
		fee:       fee,
		net:       net,
		maxFee:    s.maxFee(net, tc.Decimals),
	}, nil
}

// maxFee caps the fast transfer fee at one percent of the burned amount, never
// going below the configured floor.
func (s *AttestationBridgeStrategy) maxFee(net *big.Int, decimals uint8) *big.Int {
	onePercent := new(big.Int).Div(net, big.NewInt(100))
	floor := s.policy.CctpMinMaxFee.Shift(int32(decimals)).Round(0).BigInt()
	if onePercent.Cmp(floor) < 0 {
		return floor
	}
	return onePercent
}

func (s *AttestationBridgeStrategy) Execute(ctx context.Context, req *SettlementRequest) *SettlementResult {
	b, err := s.prepare(req)
	if err != nil {
		return rejection("%s", err)
	}

	key, facilitator, err := facilitatorKey(req.FacilitatorKey)
	if err != nil {
		return rejection("%s", err)
	}
	b.facilitator = facilitator

	if req.DepositTxHash == "" {
		return pendingDeposit(&PendingDeposit{
			DepositAddress: facilitator.Hex(),
			Amount:         b.total.String(),
			Fee:            b.fee.String(),
			ExpectedOutput: b.net.String(),
		})
	}

	sourceClient, err := s.clients.EVM(b.source.Key)
	if err != nil {
		return rejection("%s", err)
	}
	destClient, err := s.clients.EVM(b.dest.Key)
	if err != nil {
		return rejection("%s", err)
	}

	logger := zerolog.Ctx(ctx)
	if err := s.verifyDeposit(ctx, req.DepositTxHash, b); err != nil {
		return failure(req.DepositTxHash, "deposit verification failed: %s", err)
	}
	if err := s.confirmBalance(ctx, sourceClient, b); err != nil {
		return failure(req.DepositTxHash, "deposit verified but balance insufficient: %s", err)
	}

	token := common.HexToAddress(b.token.Address)
	tokenMessenger := common.HexToAddress(b.source.Cctp.TokenMessenger)
	data, err := contracts.PackApprove(tokenMessenger, abi.MaxUint256)
	if err != nil {
		return failure(req.DepositTxHash, "approval failed: %s", err)
	}
	approveHash, err := sourceClient.Transact(ctx, token, data, key)
	if err != nil {
		return failure(req.DepositTxHash, "approval failed: %s", err)
	}
	if _, err := sourceClient.WaitForReceipt(ctx, approveHash); err != nil {
		return failure(req.DepositTxHash, "approval %s failed: %s", approveHash.Hex(), err)
	}

	data, err = contracts.PackDepositForBurn(contracts.BurnParams{
		Amount:               b.net,
		DestinationDomain:    b.dest.Cctp.Domain,
		MintRecipient:        contracts.AddressToBytes32(b.recipient),
		BurnToken:            token,
		MaxFee:               b.maxFee,
		MinFinalityThreshold: s.policy.CctpMinFinalityThreshold,
	})
	if err != nil {
		return failure(req.DepositTxHash, "burn failed: %s", err)
	}
	burnHash, err := sourceClient.Transact(ctx, tokenMessenger, data, key)
	if err != nil {
		return failure(req.DepositTxHash, "burn failed: %s", err)
	}
	if _, err := sourceClient.WaitForReceipt(ctx, burnHash); err != nil {
		if errors.Is(err, ErrReverted) {
			return &SettlementResult{
				Success:             false,
				TransactionHash:     req.DepositTxHash,
				BurnTransactionHash: burnHash.Hex(),
				ErrorReason:         fmt.Sprintf("burn failed: %s", err),
			}
		}

		logger.Warn().Str("burnTxHash", burnHash.Hex()).Msgf("Burn confirmation unknown: %s", err)
		return &SettlementResult{
			Success:             true,
			BurnTransactionHash: burnHash.Hex(),
			ErrorReason:         fmt.Sprintf("burn confirmation unknown: %s", err),
		}
	}
	logger.Info().Str("burnTxHash", burnHash.Hex()).Msgf("Burned %s on %s", b.net, b.source.Key)

	message, err := s.attestations.RetrieveAttestation(ctx, burnHash.Hex(), b.source.Cctp.Domain, s.policy.AttestationTimeout)
	if err != nil {
		return &SettlementResult{
			Success:             true,
			BurnTransactionHash: burnHash.Hex(),
			ErrorReason:         err.Error(),
		}
	}
	attestation := &Attestation{
		Message:     message.Message,
		Attestation: message.Attestation,
	}

	mintHash, err := s.mint(ctx, destClient, b, attestation, key)
	if err != nil {
		result := &SettlementResult{
			Success:             true,
			BurnTransactionHash: burnHash.Hex(),
			Attestation:         attestation,
			ErrorReason:         fmt.Sprintf("mint execution failed: %s", err),
		}
		if mintHash != (common.Hash{}) {
			result.MintTransactionHash = mintHash.Hex()
		}
		return result
	}

	return &SettlementResult{
		Success:             true,
		TransactionHash:     mintHash.Hex(),
		BurnTransactionHash: burnHash.Hex(),
		MintTransactionHash: mintHash.Hex(),
		Attestation:         attestation,
	}
}

func (s *AttestationBridgeStrategy) verifyDeposit(ctx context.Context, txHash string, b *burn) error {
	ledger, err := s.clients.Ledger(b.source.Key)
	if err != nil {
		return err
	}

	record, err := ledger.DepositRecord(ctx, txHash)
	if err != nil {
		return err
	}
	if !record.Succeeded {
		return fmt.Errorf("deposit transaction %s failed", txHash)
	}

	received := record.Received(common.HexToAddress(b.token.Address).Hex(), b.facilitator.Hex())
	if received.Sign() == 0 {
		return fmt.Errorf("no %s transfer to the facilitator", b.token.Address)
	}
	if received.Cmp(b.total) < 0 {
		return fmt.Errorf("deposited %s is below the requested %s", received, b.total)
	}
	return nil
}

func (s *AttestationBridgeStrategy) confirmBalance(ctx context.Context, client EVMClient, b *burn) error {
	token := common.HexToAddress(b.token.Address)
	balance := big.NewInt(0)
	for i := 0; i < s.policy.BalanceRetries; i++ {
		if i > 0 {
			if err := sleep(ctx, s.policy.BalanceRetryInterval); err != nil {
				return err
			}
		}

		var err error
		balance, err = client.BalanceOf(ctx, token, b.facilitator)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Msgf("Failed fetching facilitator balance: %s", err)
			balance = big.NewInt(0)
			continue
		}
		if balance.Cmp(b.total) >= 0 {
			return nil
		}
	}
	return fmt.Errorf("balance %s below %s", balance, b.total)
}

func (s *AttestationBridgeStrategy) mint(
	ctx context.Context,
	client EVMClient,
	b *burn,
	attestation *Attestation,
	key *ecdsa.PrivateKey,
) (common.Hash, error) {
	message, err := hexutil.Decode(attestation.Message)
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid message: %w", err)
	}
	signatures, err := hexutil.Decode(attestation.Attestation)
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid attestation: %w", err)
	}

	data, err := contracts.PackReceiveMessage(message, signatures)
	if err != nil {
		return common.Hash{}, err
	}
	hash, err := client.Transact(ctx, common.HexToAddress(b.dest.Cctp.MessageTransmitter), data, key)
	if err != nil {
		return common.Hash{}, err
	}
	if _, err := client.WaitForReceipt(ctx, hash); err != nil {
		return hash, err
	}
	return hash, nil
}

func (s *AttestationBridgeStrategy) Preview(ctx context.Context, req *SettlementRequest) *SettlementResult {
	b, err := s.prepare(req)
	if err != nil {
		return rejection("%s", err)
	}

	deposit := &PendingDeposit{
		Amount:         b.total.String(),
		Fee:            b.fee.String(),
		ExpectedOutput: b.net.String(),
	}
	if _, facilitator, err := facilitatorKey(req.FacilitatorKey); err == nil {
		deposit.DepositAddress = facilitator.Hex()
	}
	return preview(deposit)
}
