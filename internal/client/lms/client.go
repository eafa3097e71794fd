package lms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/s21platform/meeting-service/internal/config"
	"github.com/s21platform/meeting-service/internal/model"
	"github.com/s21platform/meeting-service/internal/pkg/metrics"
)

const serviceName = "lms"

type Client struct {
	verifyURL  string
	tokens     TokenGenerator
	httpClient *http.Client
}

func New(cfg *config.Config, tokens TokenGenerator) *Client {
	return &Client{
		verifyURL: cfg.LMS.VerifyURL,
		tokens:    tokens,
		httpClient: &http.Client{
			Timeout: cfg.LMS.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// VerifyUser asks the LMS whether username may join. A refusal is reported
// as model.ErrUserNotVerified.
func (c *Client) VerifyUser(ctx context.Context, username string) (err error) {
	defer func(started time.Time) {
		status := metrics.StatusSuccess
		if err != nil {
			status = metrics.StatusFailed
		}
		metrics.RecordRemoteCall(serviceName, "VerifyUser", status, started)
	}(time.Now())

	jsonData, err := json.Marshal(model.LMSVerifyRequest{Username: username})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	token, _, err := c.tokens.GenerateServiceToken(username)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusNotFound:
		return model.ErrUserNotVerified
	default:
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response model.LMSVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Error != "" {
		return fmt.Errorf("lms error: %s", response.Error)
	}
	if !response.Verified {
		return model.ErrUserNotVerified
	}

	return nil
}
