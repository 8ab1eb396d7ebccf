package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stayhub/models"
	"stayhub/services/payment"
)

func TestCreateBill(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/bills", r.URL.Path)

		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "test-api-key", user)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "col-1", r.PostForm.Get("collection_id"))
		assert.Equal(t, "21600", r.PostForm.Get("amount"))
		assert.Equal(t, "Aisyah", r.PostForm.Get("name"))
		assert.Equal(t, "aisyah@example.com", r.PostForm.Get("email"))
		assert.Equal(t, "https://site.test/callback", r.PostForm.Get("callback_url"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"bill_8F0","url":"https://gateway.test/bills/bill_8F0","amount":21600}`))
	}))
	defer srv.Close()

	client := payment.NewClient(srv.URL, "test-api-key", "sig-key", "col-1", zap.NewNop())

	bill, err := client.CreateBill(context.Background(), models.BillRequest{
		Amount:      21600,
		Description: "2 nights, Deluxe King",
		PayerName:   "Aisyah",
		Email:       "aisyah@example.com",
		CallbackURL: "https://site.test/callback",
	})
	require.NoError(t, err)
	assert.Equal(t, "bill_8F0", bill.ID)
	assert.Equal(t, "https://gateway.test/bills/bill_8F0", bill.URL)
	assert.Equal(t, models.BillStatusPending, bill.Status)
}

func TestCreateBill_GatewayErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid collection"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := payment.NewClient(srv.URL, "key", "sig", "col", zap.NewNop())
	_, err := client.CreateBill(context.Background(), models.BillRequest{Amount: 100})
	assert.ErrorIs(t, err, payment.ErrGateway)
}

func TestCreateBill_MissingBillID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := payment.NewClient(srv.URL, "key", "sig", "col", zap.NewNop())
	_, err := client.CreateBill(context.Background(), models.BillRequest{Amount: 100})
	assert.ErrorIs(t, err, payment.ErrGateway)
}

func TestSignature_RoundTrip(t *testing.T) {
	client := payment.NewClient("https://gateway.test", "key", "secret-sig-key", "col", zap.NewNop())

	params := map[string]string{
		"id":      "bill_8F0",
		"paid":    "true",
		"paid_at": "2025-06-01 10:00:00",
	}
	sig := client.Sign(params)
	require.NotEmpty(t, sig)

	assert.True(t, client.VerifySignature(params, sig))

	// Any parameter tamper breaks the checksum.
	params["paid"] = "false"
	assert.False(t, client.VerifySignature(params, sig))
}

func TestSignature_IgnoresItsOwnField(t *testing.T) {
	client := payment.NewClient("https://gateway.test", "key", "secret-sig-key", "col", zap.NewNop())

	params := map[string]string{"id": "b1", "paid": "true"}
	sig := client.Sign(params)

	withSig := map[string]string{"id": "b1", "paid": "true", "x_signature": sig}
	assert.True(t, client.VerifySignature(withSig, sig))
}

func TestVerifyPayment(t *testing.T) {
	client := payment.NewClient("https://gateway.test", "key", "secret", "col", zap.NewNop())

	params := map[string]string{"id": "b1", "paid": "true"}
	sig := client.Sign(params)

	paid, err := client.VerifyPayment(models.PaymentCallback{
		BillID:    "b1",
		Paid:      true,
		Params:    params,
		Signature: sig,
	})
	require.NoError(t, err)
	assert.True(t, paid)

	// Valid signature, unpaid bill: not an error, just unpaid.
	unpaidParams := map[string]string{"id": "b1", "paid": "false"}
	paid, err = client.VerifyPayment(models.PaymentCallback{
		BillID:    "b1",
		Paid:      false,
		Params:    unpaidParams,
		Signature: client.Sign(unpaidParams),
	})
	require.NoError(t, err)
	assert.False(t, paid)

	// Bad signature is an error.
	_, err = client.VerifyPayment(models.PaymentCallback{
		BillID:    "b1",
		Paid:      true,
		Params:    params,
		Signature: "deadbeef",
	})
	assert.ErrorIs(t, err, payment.ErrBadSignature)
}
