package signature_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/sprinter-settlement/chains/evm/calls/contracts"
	"github.com/sprintertech/sprinter-settlement/chains/evm/signature"
)

type TransferWithAuthorizationHashTestSuite struct {
	suite.Suite

	domain signature.Domain
	auth   contracts.TransferAuthorization
}

func TestRunTransferWithAuthorizationHashTestSuite(t *testing.T) {
	suite.Run(t, new(TransferWithAuthorizationHashTestSuite))
}

func (s *TransferWithAuthorizationHashTestSuite) SetupTest() {
	s.domain = signature.Domain{
		Name:              "USD Coin",
		Version:           "2",
		ChainID:           big.NewInt(8453),
		VerifyingContract: common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"),
	}
	s.auth = contracts.TransferAuthorization{
		From:        common.HexToAddress("0x1111111111111111111111111111111111111111"),
		To:          common.HexToAddress("0x2222222222222222222222222222222222222222"),
		Value:       big.NewInt(10000000),
		ValidAfter:  big.NewInt(0),
		ValidBefore: big.NewInt(1900000000),
		Nonce:       [32]byte{1},
	}
}

func (s *TransferWithAuthorizationHashTestSuite) Test_Hash_Deterministic() {
	first, err := signature.TransferWithAuthorizationHash(s.domain, s.auth)
	s.Nil(err)
	second, err := signature.TransferWithAuthorizationHash(s.domain, s.auth)
	s.Nil(err)

	s.Len(first, 32)
	s.Equal(first, second)
}

func (s *TransferWithAuthorizationHashTestSuite) Test_Hash_BoundToDomain() {
	hash, err := signature.TransferWithAuthorizationHash(s.domain, s.auth)
	s.Nil(err)

	s.domain.ChainID = big.NewInt(42161)
	otherChain, err := signature.TransferWithAuthorizationHash(s.domain, s.auth)
	s.Nil(err)

	s.NotEqual(hash, otherChain)
}

func (s *TransferWithAuthorizationHashTestSuite) Test_RecoverSigner() {
	key, err := crypto.GenerateKey()
	s.Nil(err)
	hash, err := signature.TransferWithAuthorizationHash(s.domain, s.auth)
	s.Nil(err)
	sig, err := crypto.Sign(hash, key)
	s.Nil(err)
	sig[64] += 27

	signer, err := signature.RecoverSigner(hash, sig)

	s.Nil(err)
	s.Equal(crypto.PubkeyToAddress(key.PublicKey), signer)
	s.True(sig[64] >= 27)
}

func (s *TransferWithAuthorizationHashTestSuite) Test_RecoverSigner_TamperedAuthorization() {
	key, err := crypto.GenerateKey()
	s.Nil(err)
	hash, err := signature.TransferWithAuthorizationHash(s.domain, s.auth)
	s.Nil(err)
	sig, err := crypto.Sign(hash, key)
	s.Nil(err)

	s.auth.Value = big.NewInt(20000000)
	tampered, err := signature.TransferWithAuthorizationHash(s.domain, s.auth)
	s.Nil(err)
	signer, err := signature.RecoverSigner(tampered, sig)

	s.Nil(err)
	s.NotEqual(crypto.PubkeyToAddress(key.PublicKey), signer)
}

func (s *TransferWithAuthorizationHashTestSuite) Test_RecoverSigner_InvalidLength() {
	_, err := signature.RecoverSigner(make([]byte, 32), make([]byte, 64))

	s.NotNil(err)
}
