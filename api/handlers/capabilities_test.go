package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/sprinter-settlement/api/handlers"
	"github.com/sprintertech/sprinter-settlement/config"
	"github.com/sprintertech/sprinter-settlement/registry"
)

type CapabilitiesHandlerTestSuite struct {
	suite.Suite

	handler *handlers.CapabilitiesHandler
}

func TestRunCapabilitiesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CapabilitiesHandlerTestSuite))
}

func (s *CapabilitiesHandlerTestSuite) SetupTest() {
	reg, err := registry.NewRegistry(
		registry.NewCapabilityEntry(
			"base",
			registry.EVMFamily,
			8453,
			&registry.CctpCapability{Domain: 6},
			"base",
			false,
			map[string]config.TokenConfig{
				"usdc": {Address: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", Decimals: 6, Cctp: true},
			},
		),
	)
	s.Nil(err)
	s.handler = handlers.NewCapabilitiesHandler(reg)
}

func (s *CapabilitiesHandlerTestSuite) Test_HandleRequest_UnknownChain() {
	req := httptest.NewRequest(http.MethodGet, "/v1/chains/moon/capabilities", nil)
	req = mux.SetURLVars(req, map[string]string{
		"chain": "moon",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, req)

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *CapabilitiesHandlerTestSuite) Test_HandleRequest_ValidCapabilities() {
	req := httptest.NewRequest(http.MethodGet, "/v1/chains/BASE/capabilities", nil)
	req = mux.SetURLVars(req, map[string]string{
		"chain": "BASE",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	capabilities := &handlers.ChainCapabilities{}
	s.Nil(json.NewDecoder(recorder.Body).Decode(capabilities))
	s.Equal("base", capabilities.Chain)
	s.Equal("evm", capabilities.Family)
	s.Equal(uint32(6), *capabilities.CctpDomain)
	s.Equal([]handlers.TokenCapabilities{
		{Symbol: "USDC", Address: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", Decimals: 6, Cctp: true},
	}, capabilities.Tokens)
}
