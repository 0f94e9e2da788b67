// Package verification checks human-verification tokens against the
// reCAPTCHA siteverify endpoint.
package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrRejected is returned when the verification service answered and
// declined the token. Any other error means the service could not be asked.
var ErrRejected = errors.New("verification rejected")

// maxResponseBytes caps how much of a siteverify answer is read.
const maxResponseBytes = 64 << 10

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// Client is a reCAPTCHA siteverify client. It never retries.
type Client struct {
	verifyURL  string
	secret     string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(verifyURL, secret string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		verifyURL:  verifyURL,
		secret:     secret,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Verify sends token, and remoteIP when known, to the verification service.
// It returns nil only when the service reports success.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) error {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build verification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call verification service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("verification service returned status %d", resp.StatusCode)
	}

	var result siteVerifyResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return fmt.Errorf("decode verification response: %w", err)
	}

	c.log.Debug("Verification response",
		zap.Bool("success", result.Success),
		zap.String("hostname", result.Hostname),
		zap.Strings("error_codes", result.ErrorCodes),
		zap.Duration("duration", time.Since(start)))

	if !result.Success {
		if len(result.ErrorCodes) > 0 {
			return fmt.Errorf("%w: %s", ErrRejected, strings.Join(result.ErrorCodes, ", "))
		}
		return ErrRejected
	}

	return nil
}
