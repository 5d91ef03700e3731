package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/suvai-store/internal/models"
)

const (
	defaultBaseURL = "https://api.razorpay.com/v1"
	defaultTimeout = 20 * time.Second
)

var (
	ErrConfigInvalid    = errors.New("razorpay config invalid")
	ErrRequestFailed    = errors.New("razorpay request failed")
	ErrResponseInvalid  = errors.New("razorpay response invalid")
	ErrSignatureInvalid = errors.New("razorpay signature invalid")
)

// Config holds gateway credentials.
type Config struct {
	KeyID     string        `json:"key_id"`
	KeySecret string        `json:"key_secret"`
	BaseURL   string        `json:"base_url"` // override for tests
	Timeout   time.Duration `json:"-"`
}

// CreateIntentInput is the order registration request sent to the gateway.
type CreateIntentInput struct {
	Amount   models.Money
	Currency string
	Receipt  string
	Notes    map[string]string
}

// Intent is the gateway-side order returned on registration.
type Intent struct {
	ID       string
	Amount   int64 // paise
	Currency string
	Receipt  string
	Status   string
}

// Client talks to the gateway. Construct one and inject it; there is no
// package-level singleton.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a gateway client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.KeyID) == "" || strings.TrimSpace(cfg.KeySecret) == "" {
		return nil, fmt.Errorf("%w: key_id and key_secret are required", ErrConfigInvalid)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// KeyID returns the public key id for the hosted checkout widget.
func (c *Client) KeyID() string {
	return c.cfg.KeyID
}

// CreateIntent registers a gateway order. Amount is converted to paise.
func (c *Client) CreateIntent(ctx context.Context, input CreateIntentInput) (*Intent, error) {
	if input.Receipt == "" {
		return nil, fmt.Errorf("%w: receipt is required", ErrConfigInvalid)
	}
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "INR"
	}
	paise := input.Amount.Paise()
	if paise <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrConfigInvalid)
	}

	payload := map[string]interface{}{
		"amount":   paise,
		"currency": currency,
		"receipt":  input.Receipt,
	}
	if len(input.Notes) > 0 {
		payload["notes"] = input.Notes
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/orders"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.KeyID, c.cfg.KeySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, truncateBody(respBody))
	}

	var parsed struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		Receipt  string `json:"receipt"`
		Status   string `json:"status"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	if parsed.ID == "" {
		return nil, fmt.Errorf("%w: missing order id", ErrResponseInvalid)
	}
	return &Intent{
		ID:       parsed.ID,
		Amount:   parsed.Amount,
		Currency: parsed.Currency,
		Receipt:  parsed.Receipt,
		Status:   parsed.Status,
	}, nil
}

// VerifySignature checks the checkout callback signature:
// hex(HMAC-SHA256(secret, intentID + "|" + paymentID)). Comparison is
// constant time.
func (c *Client) VerifySignature(intentID, paymentID, signature string) error {
	return VerifySignature(c.cfg.KeySecret, intentID, paymentID, signature)
}

// VerifySignature is the standalone form used by tests and callers that only
// hold the secret.
func VerifySignature(secret, intentID, paymentID, signature string) error {
	if secret == "" {
		return ErrConfigInvalid
	}
	intentID = strings.TrimSpace(intentID)
	paymentID = strings.TrimSpace(paymentID)
	signature = strings.TrimSpace(signature)
	if intentID == "" || paymentID == "" || signature == "" {
		return ErrSignatureInvalid
	}
	expected := SignPayload(secret, intentID, paymentID)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))) {
		return ErrSignatureInvalid
	}
	return nil
}

// SignPayload computes the hex HMAC-SHA256 over intentID|paymentID.
func SignPayload(secret, intentID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(intentID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func truncateBody(body []byte) string {
	const max = 512
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max])
}
