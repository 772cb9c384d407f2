// internal/bot/relay.go
package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/producttracker/backend/internal/apperrors"
)

// Payload is the envelope posted to the automation workflow. The workflow
// answers asynchronously through the store; the relay only cares about
// the HTTP status.
type Payload struct {
	Command   string `json:"command"`
	UserQuery string `json:"user_query"`
	UserID    string `json:"user_id"`
	ChannelID string `json:"channel_id"`
}

type RelayClient struct {
	webhookURL string
	httpClient *http.Client
}

func NewRelayClient(webhookURL string, timeout time.Duration) *RelayClient {
	return &RelayClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Dispatch makes exactly one outbound call. There is no retry and no
// queue; a failure is reported once to the caller and dropped.
func (r *RelayClient) Dispatch(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Transport("failed to encode relay payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.webhookURL, bytes.NewReader(body))
	if err != nil {
		return apperrors.Transport("failed to build relay request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return apperrors.Transport("relay request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.Transport(fmt.Sprintf("workflow responded with %d", resp.StatusCode), nil)
	}

	return nil
}
