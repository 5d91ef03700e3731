package razorpay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/suvai-store/internal/models"

	"github.com/shopspring/decimal"
)

func TestVerifySignatureValid(t *testing.T) {
	secret := "test_secret"
	intentID := "order_ABC123"
	paymentID := "pay_XYZ789"
	signature := SignPayload(secret, intentID, paymentID)

	if err := VerifySignature(secret, intentID, paymentID, signature); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}
}

func TestVerifySignatureSingleCharMutation(t *testing.T) {
	secret := "test_secret"
	intentID := "order_ABC123"
	paymentID := "pay_XYZ789"
	signature := SignPayload(secret, intentID, paymentID)

	mutated := []byte(signature)
	if mutated[0] == 'a' {
		mutated[0] = 'b'
	} else {
		mutated[0] = 'a'
	}
	if err := VerifySignature(secret, intentID, paymentID, string(mutated)); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("mutated signature accepted, err=%v", err)
	}
}

func TestVerifySignatureWrongSecret(t *testing.T) {
	signature := SignPayload("secret_a", "order_1", "pay_1")
	if err := VerifySignature("secret_b", "order_1", "pay_1", signature); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("signature under wrong secret accepted, err=%v", err)
	}
}

func TestVerifySignatureEmptyInputs(t *testing.T) {
	if err := VerifySignature("secret", "", "pay_1", "abc"); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("empty intent id accepted, err=%v", err)
	}
	if err := VerifySignature("secret", "order_1", "pay_1", ""); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("empty signature accepted, err=%v", err)
	}
	if err := VerifySignature("", "order_1", "pay_1", "abc"); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("empty secret should be config error, err=%v", err)
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(Config{KeyID: "", KeySecret: "x"}); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("missing key id accepted, err=%v", err)
	}
	if _, err := NewClient(Config{KeyID: "x", KeySecret: ""}); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("missing key secret accepted, err=%v", err)
	}
}

func TestCreateIntentSendsPaise(t *testing.T) {
	var gotBody map[string]interface{}
	var gotUser, gotPass string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, _ = r.BasicAuth()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_test_1",
			"amount":   gotBody["amount"],
			"currency": "INR",
			"receipt":  gotBody["receipt"],
			"status":   "created",
		})
	}))
	defer server.Close()

	client, err := NewClient(Config{KeyID: "rzp_test_key", KeySecret: "rzp_test_secret", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	amount := models.NewMoneyFromDecimal(decimal.RequireFromString("563.50"))
	intent, err := client.CreateIntent(context.Background(), CreateIntentInput{
		Amount:   amount,
		Currency: "INR",
		Receipt:  "ORD20260828120000123456",
		Notes:    map[string]string{"customer_name": "Meena"},
	})
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if intent.ID != "order_test_1" {
		t.Fatalf("intent id want order_test_1 got %s", intent.ID)
	}
	if gotUser != "rzp_test_key" || gotPass != "rzp_test_secret" {
		t.Fatalf("basic auth not sent, got %s/%s", gotUser, gotPass)
	}
	if paise, ok := gotBody["amount"].(float64); !ok || int64(paise) != 56350 {
		t.Fatalf("amount want 56350 paise got %v", gotBody["amount"])
	}
	if gotBody["receipt"] != "ORD20260828120000123456" {
		t.Fatalf("receipt mismatch, got %v", gotBody["receipt"])
	}
}

func TestCreateIntentGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(Config{KeyID: "k", KeySecret: "s", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.CreateIntent(context.Background(), CreateIntentInput{
		Amount:  models.NewMoneyFromInt(100),
		Receipt: "ORD1",
	})
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("gateway failure should map to ErrRequestFailed, got %v", err)
	}
}

func TestCreateIntentRejectsZeroAmount(t *testing.T) {
	client, err := NewClient(Config{KeyID: "k", KeySecret: "s"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.CreateIntent(context.Background(), CreateIntentInput{
		Amount:  models.NewMoneyFromInt(0),
		Receipt: "ORD1",
	})
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("zero amount accepted, err=%v", err)
	}
}
