package near

import (
	"context"
	"fmt"
	"net/http"
	"time"

	oneclick "github.com/defuse-protocol/one-click-sdk-go"
)

const (
	ONECLICK_URL         = "https://1click.chaindefuser.com"
	EXACT_INPUT          = "EXACT_INPUT"
	ORIGIN_CHAIN         = "ORIGIN_CHAIN"
	DESTINATION_CHAIN    = "DESTINATION_CHAIN"
	DEFAULT_SLIPPAGE_BPS = 100
	DEFAULT_QUOTE_TTL    = 10 * time.Minute
)

type QuoteParams struct {
	OriginAsset      string
	DestinationAsset string
	// Amount is denominated in origin asset base units.
	Amount    string
	RefundTo  string
	Recipient string
	Dry       bool
}

type Quote struct {
	DepositAddress     string
	DepositMemo        string
	AmountInFormatted  string
	AmountOutFormatted string
	TimeEstimate       float64
	Deadline           time.Time
}

type DepositProof struct {
	DepositAddress string
	TxHash         string
}

// IntentsAPI requests deposit addresses from the 1Click solver network.
type IntentsAPI struct {
	client       *oneclick.APIClient
	jwtToken     string
	slippageBps  float32
	quoteTimeout time.Duration
}

func NewIntentsAPI(
	url string,
	jwtToken string,
	slippageBps float32,
	quoteTimeout time.Duration,
	httpClient *http.Client,
) *IntentsAPI {
	if url == "" {
		url = ONECLICK_URL
	}
	if slippageBps <= 0 {
		slippageBps = DEFAULT_SLIPPAGE_BPS
	}
	if quoteTimeout <= 0 {
		quoteTimeout = DEFAULT_QUOTE_TTL
	}

	cfg := oneclick.NewConfiguration()
	cfg.Servers = oneclick.ServerConfigurations{
		{URL: url},
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return &IntentsAPI{
		client:       oneclick.NewAPIClient(cfg),
		jwtToken:     jwtToken,
		slippageBps:  slippageBps,
		quoteTimeout: quoteTimeout,
	}
}

func (a *IntentsAPI) authorize(ctx context.Context) context.Context {
	if a.jwtToken == "" {
		return ctx
	}
	return context.WithValue(ctx, oneclick.ContextAccessToken, a.jwtToken)
}

func (a *IntentsAPI) quoteRequest(params QuoteParams, deadline time.Time) *oneclick.QuoteRequest {
	return oneclick.NewQuoteRequest(
		params.Dry,
		EXACT_INPUT,
		a.slippageBps,
		params.OriginAsset,
		ORIGIN_CHAIN,
		params.DestinationAsset,
		params.Amount,
		params.RefundTo,
		ORIGIN_CHAIN,
		params.Recipient,
		DESTINATION_CHAIN,
		deadline,
	)
}

// Quote returns a deposit address that, once funded with the quoted amount,
// delivers the destination asset to the recipient.
func (a *IntentsAPI) Quote(ctx context.Context, params QuoteParams) (*Quote, error) {
	deadline := time.Now().Add(a.quoteTimeout)
	req := a.quoteRequest(params, deadline)

	resp, httpResp, err := a.client.OneClickAPI.GetQuote(a.authorize(ctx)).QuoteRequest(*req).Execute()
	if httpResp != nil {
		defer httpResp.Body.Close()
	}
	if err != nil {
		if httpResp != nil {
			return nil, fmt.Errorf("quote request failed with status %d: %w", httpResp.StatusCode, err)
		}
		return nil, fmt.Errorf("quote request failed: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("empty quote response")
	}

	q := resp.GetQuote()
	if !params.Dry && q.GetDepositAddress() == "" {
		return nil, fmt.Errorf("quote without deposit address")
	}

	quote := &Quote{
		DepositAddress:     q.GetDepositAddress(),
		AmountInFormatted:  q.GetAmountInFormatted(),
		AmountOutFormatted: q.GetAmountOutFormatted(),
		TimeEstimate:       float64(q.GetTimeEstimate()),
		Deadline:           deadline,
	}
	if q.HasDepositMemo() {
		quote.DepositMemo = q.GetDepositMemo()
	}
	return quote, nil
}

// SubmitDeposit notifies the solver network that the deposit address was funded.
func (a *IntentsAPI) SubmitDeposit(ctx context.Context, proof DepositProof) error {
	req := oneclick.NewSubmitDepositTxRequest(proof.DepositAddress, proof.TxHash)

	_, httpResp, err := a.client.OneClickAPI.SubmitDepositTx(a.authorize(ctx)).SubmitDepositTxRequest(*req).Execute()
	if httpResp != nil {
		defer httpResp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("failed to submit deposit: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK && httpResp.StatusCode != http.StatusCreated {
		return fmt.Errorf("API returned status code %d", httpResp.StatusCode)
	}

	return nil
}
