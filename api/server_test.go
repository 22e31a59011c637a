package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sprintertech/sprinter-settlement/api"
	"github.com/sprintertech/sprinter-settlement/api/handlers"
	mock_handlers "github.com/sprintertech/sprinter-settlement/api/handlers/mock"
	"github.com/sprintertech/sprinter-settlement/registry"
	"github.com/sprintertech/sprinter-settlement/settlement"
)

type RouterTestSuite struct {
	suite.Suite

	mockSettler *mock_handlers.MockSettler
	server      *httptest.Server
}

func TestRunRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockSettler = mock_handlers.NewMockSettler(ctrl)

	reg, err := registry.NewRegistry(registry.NewCapabilityEntry("base", registry.EVMFamily, 8453, nil, "", false, nil))
	s.Nil(err)

	s.server = httptest.NewServer(api.NewRouter(
		handlers.NewSettlementHandler(s.mockSettler),
		handlers.NewCapabilitiesHandler(reg),
	))
}

func (s *RouterTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *RouterTestSuite) Test_Settlements_RoutesToExecute() {
	s.mockSettler.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(&settlement.SettlementResult{Success: true})

	resp, err := http.Post(s.server.URL+"/v1/settlements", "application/json", bytes.NewReader([]byte(`{"sourceChain":"base","destChain":"base","amount":"1"}`)))
	s.Nil(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *RouterTestSuite) Test_Preview_RoutesToPreview() {
	s.mockSettler.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(&settlement.SettlementResult{Success: true})

	resp, err := http.Post(s.server.URL+"/v1/settlements/preview", "application/json", bytes.NewReader([]byte(`{"sourceChain":"base","destChain":"solana","amount":"1"}`)))
	s.Nil(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *RouterTestSuite) Test_Settlements_MethodNotAllowed() {
	resp, err := http.Get(s.server.URL + "/v1/settlements")
	s.Nil(err)
	defer resp.Body.Close()

	s.Equal(http.StatusMethodNotAllowed, resp.StatusCode)
}

func (s *RouterTestSuite) Test_Capabilities() {
	resp, err := http.Get(s.server.URL + "/v1/chains/base/capabilities")
	s.Nil(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}
