package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"stayhub/models"
)

var (
	// ErrGateway marks a failed call to the payment gateway.
	ErrGateway = errors.New("payment gateway error")
	// ErrBadSignature marks a callback whose signature did not verify.
	ErrBadSignature = errors.New("payment signature mismatch")
)

// Client talks to the bill-based payment gateway. All calls carry the
// account API key via HTTP basic auth; callbacks are authenticated with
// the separate signature key (see signature.go).
type Client struct {
	baseURL      string
	apiKey       string
	signatureKey string
	collectionID string
	httpClient   *http.Client
	logger       *zap.Logger
}

// NewClient creates a gateway client.
func NewClient(baseURL, apiKey, signatureKey, collectionID string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		signatureKey: signatureKey,
		collectionID: collectionID,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		logger:       logger,
	}
}

// CreateBill opens a bill with the gateway and returns its id and the
// hosted payment URL the payer should be redirected to.
func (c *Client) CreateBill(ctx context.Context, req models.BillRequest) (*models.Bill, error) {
	form := url.Values{}
	form.Set("collection_id", c.collectionID)
	form.Set("email", req.Email)
	form.Set("name", req.PayerName)
	form.Set("amount", strconv.Itoa(req.Amount))
	form.Set("description", req.Description)
	form.Set("callback_url", req.CallbackURL)
	if req.RedirectURL != "" {
		form.Set("redirect_url", req.RedirectURL)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v3/bills", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build bill request: %w", err)
	}
	httpReq.SetBasicAuth(c.apiKey, "")
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrGateway, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("create bill rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, fmt.Errorf("%w: status %d", ErrGateway, resp.StatusCode)
	}

	var payload struct {
		ID     string `json:"id"`
		URL    string `json:"url"`
		Amount int    `json:"amount"`
		Email  string `json:"email"`
		Name   string `json:"name"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrGateway, err)
	}
	if payload.ID == "" {
		return nil, fmt.Errorf("%w: response carried no bill id", ErrGateway)
	}

	return &models.Bill{
		ID:        payload.ID,
		URL:       payload.URL,
		Amount:    payload.Amount,
		PayerName: payload.Name,
		Email:     payload.Email,
		Status:    models.BillStatusPending,
		CreatedAt: time.Now(),
	}, nil
}

// VerifyPayment authenticates a gateway callback and reports whether
// the bill was actually paid. A bad signature is an error; a valid but
// unpaid callback is (false, nil).
func (c *Client) VerifyPayment(cb models.PaymentCallback) (bool, error) {
	if !c.VerifySignature(cb.Params, cb.Signature) {
		return false, ErrBadSignature
	}
	return cb.Paid, nil
}
