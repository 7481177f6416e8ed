package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const sendMaxElapsed = 15 * time.Second

// newSendBackoff returns a fresh policy per send; BackOff
// implementations are stateful.
func newSendBackoff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = sendMaxElapsed
	return bo
}

// HTTPProvider posts messages to a transactional email API.
type HTTPProvider struct {
	apiURL string
	apiKey string
	from   string
	client *http.Client
}

func NewHTTPProvider(apiURL, apiKey, from string) *HTTPProvider {
	return &HTTPProvider{
		apiURL: apiURL,
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPProvider) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(struct {
		Message
		From string `json:"from"`
	}{Message: msg, From: p.from})
	if err != nil {
		return err
	}

	bo := newSendBackoff()
	return backoff.Retry(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+p.apiKey)

		resp, err := p.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode < 300:
			return nil
		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			// Rejected payloads never succeed on retry.
			return backoff.Permanent(fmt.Errorf("email provider rejected message: status %d", resp.StatusCode))
		default:
			return fmt.Errorf("email provider unavailable: status %d", resp.StatusCode)
		}
	}, backoff.WithContext(bo, ctx))
}
