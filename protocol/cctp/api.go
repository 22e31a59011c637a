package cctp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	IRIS_URL              = "https://iris-api.circle.com"
	DEFAULT_POLL_INTERVAL = 5 * time.Second
)

var ErrAttestationTimeout = errors.New("attestation timeout")

type AttestationAPI struct {
	HTTPClient *http.Client

	url          string
	pollInterval time.Duration
}

func NewAttestationAPI(url string, pollInterval time.Duration) *AttestationAPI {
	if url == "" {
		url = IRIS_URL
	}
	if pollInterval <= 0 {
		pollInterval = DEFAULT_POLL_INTERVAL
	}

	return &AttestationAPI{
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		url:          url,
		pollInterval: pollInterval,
	}
}

// GetMessages fetches burn messages emitted by txHash on the source domain. A burn
// the service has not indexed yet yields no messages and no error.
func (a *AttestationAPI) GetMessages(ctx context.Context, sourceDomain uint32, txHash string) ([]Message, error) {
	url := fmt.Sprintf("%s/v2/messages/%d?transactionHash=%s", a.url, sourceDomain, txHash)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []Message{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	r := new(MessagesResponse)
	if err := json.Unmarshal(body, r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return r.Messages, nil
}

// RetrieveAttestation polls the attestation service until the burn in txHash is
// attested or timeout elapses. Cancelling ctx ends the polling as a timeout.
func (a *AttestationAPI) RetrieveAttestation(
	ctx context.Context,
	txHash string,
	sourceDomain uint32,
	timeout time.Duration,
) (*Message, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for {
		messages, err := a.GetMessages(ctx, sourceDomain, txHash)
		if err != nil {
			log.Warn().Str("txHash", txHash).Msgf("Failed fetching attestation: %s", err)
		}

		for _, m := range messages {
			if m.Complete() {
				return &m, nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: burn %s after %s", ErrAttestationTimeout, txHash, timeout)
		case <-time.After(a.pollInterval):
		}
	}
}
