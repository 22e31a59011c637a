package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sprintertech/sprinter-settlement/api/handlers"
	mock_handlers "github.com/sprintertech/sprinter-settlement/api/handlers/mock"
	"github.com/sprintertech/sprinter-settlement/settlement"
)

type SettlementHandlerTestSuite struct {
	suite.Suite

	mockSettler *mock_handlers.MockSettler
	handler     *handlers.SettlementHandler
}

func TestRunSettlementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementHandlerTestSuite))
}

func (s *SettlementHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockSettler = mock_handlers.NewMockSettler(ctrl)
	s.handler = handlers.NewSettlementHandler(s.mockSettler)
}

func (s *SettlementHandlerTestSuite) body(b interface{}) *bytes.Reader {
	data, _ := json.Marshal(b)
	return bytes.NewReader(data)
}

func (s *SettlementHandlerTestSuite) Test_HandleSettlement_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/v1/settlements", bytes.NewReader([]byte("{")))
	recorder := httptest.NewRecorder()

	s.handler.HandleSettlement(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *SettlementHandlerTestSuite) Test_HandleSettlement_MissingFields() {
	for _, b := range []settlement.SettlementRequest{
		{DestChain: "arbitrum", Amount: "10"},
		{SourceChain: "base", Amount: "10"},
		{SourceChain: "base", DestChain: "arbitrum"},
	} {
		req := httptest.NewRequest(http.MethodPost, "/v1/settlements", s.body(b))
		recorder := httptest.NewRecorder()

		s.handler.HandleSettlement(recorder, req)

		s.Equal(http.StatusBadRequest, recorder.Code)
		s.Contains(recorder.Body.String(), "missing field")
	}
}

func (s *SettlementHandlerTestSuite) Test_HandleSettlement_FailedResult() {
	s.mockSettler.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(&settlement.SettlementResult{
		Success:     false,
		ErrorReason: "no settlement strategy supports base -> moon",
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/settlements", s.body(settlement.SettlementRequest{
		SourceChain: "base",
		DestChain:   "moon",
		Amount:      "10",
	}))
	recorder := httptest.NewRecorder()

	s.handler.HandleSettlement(recorder, req)

	s.Equal(http.StatusUnprocessableEntity, recorder.Code)
	result := &settlement.SettlementResult{}
	s.Nil(json.NewDecoder(recorder.Body).Decode(result))
	s.False(result.Success)
	s.Equal("no settlement strategy supports base -> moon", result.ErrorReason)
}

func (s *SettlementHandlerTestSuite) Test_HandleSettlement_Success() {
	s.mockSettler.EXPECT().Execute(gomock.Any(), &settlement.SettlementRequest{
		SourceChain:   "base",
		DestChain:     "arbitrum",
		Amount:        "10",
		Recipient:     "0x2222222222222222222222222222222222222222",
		DepositTxHash: "0xdeposit",
	}).Return(&settlement.SettlementResult{
		Strategy:            settlement.AttestationBridgeKind,
		Success:             true,
		TransactionHash:     "0xmint",
		BurnTransactionHash: "0xburn",
		MintTransactionHash: "0xmint",
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/settlements", s.body(map[string]string{
		"sourceChain":   "base",
		"destChain":     "arbitrum",
		"amount":        "10",
		"recipient":     "0x2222222222222222222222222222222222222222",
		"depositTxHash": "0xdeposit",
	}))
	recorder := httptest.NewRecorder()

	s.handler.HandleSettlement(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	result := &settlement.SettlementResult{}
	s.Nil(json.NewDecoder(recorder.Body).Decode(result))
	s.True(result.Success)
	s.Equal("0xburn", result.BurnTransactionHash)
	s.Equal(settlement.AttestationBridgeKind, result.Strategy)
}

func (s *SettlementHandlerTestSuite) Test_HandlePreview_Success() {
	s.mockSettler.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(&settlement.SettlementResult{
		Strategy: settlement.IntentBridgeKind,
		Success:  true,
		Data: &settlement.ResultData{
			Type: settlement.PendingDepositData,
			PendingDeposit: &settlement.PendingDeposit{
				Amount:         "9900000",
				Fee:            "100000",
				ExpectedOutput: "9.89",
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/settlements/preview", s.body(settlement.SettlementRequest{
		SourceChain: "base",
		DestChain:   "solana",
		Amount:      "10",
	}))
	recorder := httptest.NewRecorder()

	s.handler.HandlePreview(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	result := &settlement.SettlementResult{}
	s.Nil(json.NewDecoder(recorder.Body).Decode(result))
	s.Equal("9.89", result.Data.PendingDeposit.ExpectedOutput)
}
