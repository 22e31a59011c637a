package near

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	oneclick "github.com/defuse-protocol/one-click-sdk-go"
	"github.com/stretchr/testify/suite"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

type IntentsAPITestSuite struct {
	suite.Suite

	requests []*http.Request
	api      *IntentsAPI
}

func TestRunIntentsAPITestSuite(t *testing.T) {
	suite.Run(t, new(IntentsAPITestSuite))
}

func (s *IntentsAPITestSuite) SetupTest() {
	s.requests = nil
	httpClient := &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			s.requests = append(s.requests, req)
			return &http.Response{
				StatusCode: http.StatusBadRequest,
				Body:       io.NopCloser(bytes.NewReader([]byte(`{"message":"amount is too low"}`))),
				Header:     http.Header{"Content-Type": []string{"application/json"}},
			}, nil
		}),
	}
	s.api = NewIntentsAPI("https://1click.test", "jwt", 0, 0, httpClient)
}

func (s *IntentsAPITestSuite) Test_QuoteRequest_Parameters() {
	deadline := time.Now().Add(time.Minute)

	req := s.api.quoteRequest(QuoteParams{
		OriginAsset:      "nep141:base-usdc.omft.near",
		DestinationAsset: "nep141:sol-usdc.omft.near",
		Amount:           "9900000",
		RefundTo:         "0xsender",
		Recipient:        "recipient",
	}, deadline)

	s.Equal(false, req.GetDry())
	s.EqualValues(DEFAULT_SLIPPAGE_BPS, req.GetSlippageTolerance())
	s.Equal("nep141:base-usdc.omft.near", req.GetOriginAsset())
	s.Equal("nep141:sol-usdc.omft.near", req.GetDestinationAsset())
	s.Equal("9900000", req.GetAmount())
	s.Equal("0xsender", req.GetRefundTo())
	s.Equal("recipient", req.GetRecipient())
	s.True(deadline.Equal(req.GetDeadline()))
}

func (s *IntentsAPITestSuite) Test_Quote_APIError() {
	_, err := s.api.Quote(context.Background(), QuoteParams{
		OriginAsset:      "a",
		DestinationAsset: "b",
		Amount:           "1",
		RefundTo:         "r",
		Recipient:        "r",
	})

	s.NotNil(err)
	s.Len(s.requests, 1)
	s.Equal("1click.test", s.requests[0].URL.Host)
}

func (s *IntentsAPITestSuite) Test_SubmitDeposit_APIError() {
	err := s.api.SubmitDeposit(context.Background(), DepositProof{
		DepositAddress: "deposit",
		TxHash:         "0xhash",
	})

	s.NotNil(err)
	s.Len(s.requests, 1)
}

func (s *IntentsAPITestSuite) Test_Authorize_SetsAccessToken() {
	ctx := s.api.authorize(context.Background())

	s.Equal("jwt", ctx.Value(oneclick.ContextAccessToken))
}

func (s *IntentsAPITestSuite) Test_Authorize_NoToken() {
	api := NewIntentsAPI("", "", 0, 0, nil)

	ctx := api.authorize(context.Background())

	s.Nil(ctx.Value(oneclick.ContextAccessToken))
}
