// Package captcha verifies client-presented anti-bot challenge tokens
// against an external provider (reCAPTCHA-compatible siteverify endpoint).
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultTimeout bounds the round trip to the provider. Past it the
// verification counts as failed.
const defaultTimeout = 5 * time.Second

// Outcome is the provider's verdict plus the metadata it returns. The server
// secret is never part of it.
type Outcome struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Verifier forwards challenge tokens to the verification endpoint. It fails
// closed: any transport error, timeout, bad status or negative verdict means
// not verified.
type Verifier struct {
	endpoint string
	secret   string
	client   *http.Client
}

// NewVerifier creates a Verifier for the given siteverify endpoint and
// server-held secret.
func NewVerifier(endpoint, secret string) *Verifier {
	return &Verifier{
		endpoint: endpoint,
		secret:   secret,
		client:   &http.Client{Timeout: defaultTimeout},
	}
}

// Verify sends the client token and the server secret to the provider and
// interprets its verdict.
func (v *Verifier) Verify(ctx context.Context, clientToken string) (Outcome, error) {
	if clientToken == "" {
		return Outcome{}, fmt.Errorf("empty challenge token")
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", clientToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Outcome{}, fmt.Errorf("building siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return Outcome{}, fmt.Errorf("calling siteverify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Outcome{}, fmt.Errorf("siteverify returned status %d", resp.StatusCode)
	}

	var outcome Outcome
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		return Outcome{}, fmt.Errorf("decoding siteverify response: %w", err)
	}

	return outcome, nil
}
