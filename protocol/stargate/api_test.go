package stargate_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"testing"

	"github.com/sprintertech/sprinter-settlement/protocol/stargate"
	"github.com/sprintertech/sprinter-settlement/protocol/stargate/mock"
	"github.com/stretchr/testify/assert"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func Test_StargateAPI_Quotes(t *testing.T) {
	params := stargate.QuoteParams{
		SrcChainKey: "base",
		DstChainKey: "arbitrum",
		SrcToken:    "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913",
		DstToken:    "0xaf88d065e77c8cc2239327c5edb3a432268e5831",
		SrcAddress:  "0x1111111111111111111111111111111111111111",
		DstAddress:  "0x2222222222222222222222222222222222222222",
		SrcAmount:   big.NewInt(10000000),
	}

	tests := []struct {
		name         string
		mockResponse []byte
		statusCode   int
		mockError    error
		wantRoutes   []string
		wantErr      bool
	}{
		{
			name:         "successful response",
			mockResponse: []byte(mock.StargateMockResponse),
			statusCode:   http.StatusOK,
			wantRoutes:   []string{"stargate/v2/bus", "stargate/v2/taxi"},
		},
		{
			name:      "HTTP error",
			mockError: errors.New("connection refused"),
			wantErr:   true,
		},
		{
			name:         "non-200 status",
			mockResponse: []byte("Bad request"),
			statusCode:   http.StatusBadRequest,
			wantErr:      true,
		},
		{
			name:         "invalid JSON",
			mockResponse: []byte("{invalid"),
			statusCode:   http.StatusOK,
			wantErr:      true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := stargate.NewStargateAPI("https://stargate.test/api/v1", 0)
			client.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				q := req.URL.Query()
				if req.URL.Path != "/api/v1/quotes" {
					return nil, fmt.Errorf("unexpected path: %s", req.URL.Path)
				}
				if q.Get("srcAmount") != "10000000" || q.Get("dstAmountMin") != "9950000" {
					return nil, fmt.Errorf("unexpected amounts: %s", req.URL.RawQuery)
				}
				if q.Get("srcChainKey") != "base" || q.Get("dstChainKey") != "arbitrum" {
					return nil, fmt.Errorf("unexpected chains: %s", req.URL.RawQuery)
				}

				if tc.mockError != nil {
					return nil, tc.mockError
				}

				return &http.Response{
					StatusCode: tc.statusCode,
					Body:       io.NopCloser(bytes.NewReader(tc.mockResponse)),
					Header:     make(http.Header),
				}, nil
			})

			quotes, err := client.Quotes(context.Background(), params)
			if tc.wantErr {
				assert.NotNil(t, err)
				return
			}

			assert.Nil(t, err)
			routes := make([]string, len(quotes))
			for i, q := range quotes {
				routes[i] = q.Route
			}
			assert.Equal(t, tc.wantRoutes, routes)
		})
	}
}

func Test_StargateAPI_MinimumReceived(t *testing.T) {
	client := stargate.NewStargateAPI("", 100)

	assert.Equal(t, big.NewInt(990), client.MinimumReceived(big.NewInt(1000)))
}

func Test_SelectQuote(t *testing.T) {
	_, err := stargate.SelectQuote(nil)
	assert.NotNil(t, err)

	q, err := stargate.SelectQuote([]stargate.Quote{{Route: "stargate/v2/bus"}, {Route: "stargate/v2/taxi"}})
	assert.Nil(t, err)
	assert.Equal(t, "stargate/v2/taxi", q.Route)

	q, err = stargate.SelectQuote([]stargate.Quote{{Route: "stargate/v2/bus"}, {Route: "oft"}})
	assert.Nil(t, err)
	assert.Equal(t, "stargate/v2/bus", q.Route)
}

func Test_Quote_Step(t *testing.T) {
	q := stargate.Quote{Steps: []stargate.Step{{Type: stargate.StepApprove}, {Type: stargate.StepBridge, ChainKey: "base"}}}

	step, ok := q.Step(stargate.StepBridge)
	assert.True(t, ok)
	assert.Equal(t, "base", step.ChainKey)

	_, ok = (&stargate.Quote{}).Step(stargate.StepApprove)
	assert.False(t, ok)
}
