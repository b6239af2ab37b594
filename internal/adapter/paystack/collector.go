package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"royale-campaigns/internal/config/configs"
	"royale-campaigns/internal/core/port"
)

// Client talks to the Paystack REST API. It implements both the
// PaymentCollector and PaymentVerifier ports: Initiate creates a hosted
// transaction and waits for it to reach a terminal state by polling the
// verify endpoint; Verify performs the authoritative post-payment check.
//
// Amounts arrive in whole naira and are converted to kobo on the wire.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	secretKey    string
	pollInterval time.Duration
	logger       *slog.Logger
}

// New creates a Paystack client from configuration.
func New(cfg configs.Paystack, logger *slog.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		baseURL:      strings.TrimRight(cfg.BaseURL.String(), "/"),
		secretKey:    cfg.SecretKey,
		pollInterval: cfg.PollInterval,
		logger:       logger,
	}
}

type initializeRequest struct {
	Email     string            `json:"email"`
	Amount    int64             `json:"amount"` // kobo
	Currency  string            `json:"currency"`
	Reference string            `json:"reference"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"` // success, failed, abandoned, ongoing, pending
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"` // kobo
	} `json:"data"`
}

// Initiate creates a hosted transaction for the request and blocks until
// the customer finishes or abandons it, polling the gateway at the
// configured interval. Cancelling ctx reports a cancelled payment; errors
// are returned only for transport failures before any outcome is known.
func (c *Client) Initiate(ctx context.Context, req port.PaymentRequest) (port.PaymentResult, error) {
	var initResp initializeResponse
	err := c.post(ctx, "/transaction/initialize", initializeRequest{
		Email:     req.Email,
		Amount:    req.Amount * 100,
		Currency:  req.Currency,
		Reference: req.Reference,
		Metadata:  req.Metadata,
	}, &initResp)
	if err != nil {
		return port.PaymentResult{}, err
	}
	if !initResp.Status {
		return port.PaymentResult{State: port.PaymentFailed, Reason: initResp.Message}, nil
	}

	// The hosted page is opened out of band by the caller's front end.
	c.logger.Info("payment initialized",
		slog.String("reference", req.Reference),
		slog.String("authorization_url", initResp.Data.AuthorizationURL))

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return port.PaymentResult{
				State:            port.PaymentCancelled,
				AuthorizationURL: initResp.Data.AuthorizationURL,
			}, nil
		case <-ticker.C:
		}

		status, err := c.transactionStatus(ctx, req.Reference)
		if err != nil {
			// transient gateway trouble; keep waiting
			c.logger.Warn("transaction status check failed",
				slog.String("reference", req.Reference), slog.Any("error", err))
			continue
		}
		switch status {
		case "success":
			return port.PaymentResult{
				State:            port.PaymentSucceeded,
				Reference:        req.Reference,
				AuthorizationURL: initResp.Data.AuthorizationURL,
			}, nil
		case "failed", "abandoned", "reversed":
			return port.PaymentResult{
				State:            port.PaymentFailed,
				Reason:           "gateway reported " + status,
				AuthorizationURL: initResp.Data.AuthorizationURL,
			}, nil
		}
		// pending / ongoing: keep polling
	}
}

// Verify performs the authoritative check on a payment reference. Only a
// gateway-confirmed "success" whose captured amount matches the expected
// charge counts; anything else is an authentic false. The expected amount
// arrives in whole naira and is compared against the gateway's kobo value.
func (c *Client) Verify(ctx context.Context, reference string, amount int64) (bool, error) {
	var resp verifyResponse
	if err := c.get(ctx, "/transaction/verify/"+reference, &resp); err != nil {
		return false, err
	}
	return resp.Status && resp.Data.Status == "success" && resp.Data.Amount == amount*100, nil
}

func (c *Client) transactionStatus(ctx context.Context, reference string) (string, error) {
	var resp verifyResponse
	if err := c.get(ctx, "/transaction/verify/"+reference, &resp); err != nil {
		return "", err
	}
	if !resp.Status {
		return "", fmt.Errorf("paystack: %s", resp.Message)
	}
	return resp.Data.Status, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("paystack: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var (
	_ port.PaymentCollector = (*Client)(nil)
	_ port.PaymentVerifier  = (*Client)(nil)
)
