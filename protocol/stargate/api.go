package stargate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	STARGATE_URL         = "https://stargate.finance/api/v1"
	DEFAULT_SLIPPAGE_BPS = 50
	MAX_RETRIES          = 3
	RETRY_WAIT           = 500 * time.Millisecond
	BPS_DENOMINATOR      = 10000
	PREFERRED_ROUTE      = "taxi"
)

type QuoteParams struct {
	SrcChainKey string
	DstChainKey string
	SrcToken    string
	DstToken    string
	SrcAddress  string
	DstAddress  string
	SrcAmount   *big.Int
}

type StargateAPI struct {
	HTTPClient *http.Client

	url         string
	slippageBps int64
}

func NewStargateAPI(url string, slippageBps int64) *StargateAPI {
	if url == "" {
		url = STARGATE_URL
	}
	if slippageBps <= 0 {
		slippageBps = DEFAULT_SLIPPAGE_BPS
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = MAX_RETRIES - 1 // RetryMax is a number of retries after an initial attempt
	retryClient.RetryWaitMin = RETRY_WAIT
	retryClient.RetryWaitMax = RETRY_WAIT * 4
	retryClient.Logger = nil

	return &StargateAPI{
		HTTPClient:  retryClient.StandardClient(),
		url:         url,
		slippageBps: slippageBps,
	}
}

// MinimumReceived returns the smallest destination amount accepted for amount
// under the configured slippage.
func (a *StargateAPI) MinimumReceived(amount *big.Int) *big.Int {
	minimum := new(big.Int).Mul(amount, big.NewInt(BPS_DENOMINATOR-a.slippageBps))
	return minimum.Div(minimum, big.NewInt(BPS_DENOMINATOR))
}

// Quotes fetches the routes the liquidity pools offer for the transfer. Routes
// that the service reports as failing are omitted.
func (a *StargateAPI) Quotes(ctx context.Context, params QuoteParams) ([]Quote, error) {
	query := url.Values{}
	query.Set("srcToken", params.SrcToken)
	query.Set("dstToken", params.DstToken)
	query.Set("srcAddress", params.SrcAddress)
	query.Set("dstAddress", params.DstAddress)
	query.Set("srcChainKey", params.SrcChainKey)
	query.Set("dstChainKey", params.DstChainKey)
	query.Set("srcAmount", params.SrcAmount.String())
	query.Set("dstAmountMin", a.MinimumReceived(params.SrcAmount).String())

	endpoint := fmt.Sprintf("%s/quotes?%s", a.url, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	r := new(QuotesResponse)
	if err := json.Unmarshal(body, r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	quotes := make([]Quote, 0, len(r.Quotes))
	for _, q := range r.Quotes {
		if q.Error != nil {
			continue
		}
		if _, ok := q.Step(StepBridge); !ok {
			continue
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// SelectQuote picks the taxi route when offered and the first usable route otherwise.
func SelectQuote(quotes []Quote) (*Quote, error) {
	if len(quotes) == 0 {
		return nil, fmt.Errorf("no routes available")
	}

	for i := range quotes {
		if strings.Contains(strings.ToLower(quotes[i].Route), PREFERRED_ROUTE) {
			return &quotes[i], nil
		}
	}
	return &quotes[0], nil
}
