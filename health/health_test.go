package health_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/sprinter-settlement/health"
	"github.com/sprintertech/sprinter-settlement/registry"
)

type HealthTestSuite struct {
	suite.Suite
}

func TestRunHealthTestSuite(t *testing.T) {
	suite.Run(t, new(HealthTestSuite))
}

func (s *HealthTestSuite) Test_Handler_NoChains() {
	reg, _ := registry.NewRegistry()
	recorder := httptest.NewRecorder()

	health.Handler(reg)(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	s.Equal(http.StatusServiceUnavailable, recorder.Code)
}

func (s *HealthTestSuite) Test_Handler_Ready() {
	reg, _ := registry.NewRegistry(registry.NewCapabilityEntry("base", registry.EVMFamily, 8453, nil, "", false, nil))
	recorder := httptest.NewRecorder()

	health.Handler(reg)(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("ok", recorder.Body.String())
}
