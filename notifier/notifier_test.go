package notifier

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paydesk/models"
)

func TestSendPostsPayload(t *testing.T) {
	bodies := make(chan []byte, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		bodies <- body
	}))
	defer server.Close()

	txn := models.TransactionQueue{
		ID:                  "tx-1",
		MerchantName:        "Acme Stores",
		UTR:                 "UTR12345",
		MerchantCallbackURL: server.URL,
	}

	New().Send(txn, models.StatusApproved)

	var payload Payload
	require.NoError(t, json.Unmarshal(<-bodies, &payload))
	assert.Equal(t, "tx-1", payload.ID)
	assert.Equal(t, "approved", payload.Status)
	assert.Equal(t, "UTR12345", payload.UTR)
	assert.Equal(t, "Acme Stores", payload.Merchant)

	_, err := time.Parse(time.RFC3339, payload.TS)
	assert.NoError(t, err)
}

func TestSendSwallowsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	txn := models.TransactionQueue{ID: "tx-2", MerchantCallbackURL: server.URL}

	// Must not panic or surface anything.
	New().Send(txn, models.StatusDeclined)
}

func TestSendSwallowsUnreachableTarget(t *testing.T) {
	txn := models.TransactionQueue{ID: "tx-3", MerchantCallbackURL: "http://127.0.0.1:1/cb"}
	New().Send(txn, models.StatusApproved)
}

func TestSendSkipsEmptyCallbackURL(t *testing.T) {
	New().Send(models.TransactionQueue{ID: "tx-4"}, models.StatusApproved)
}

func TestDispatchIsDetached(t *testing.T) {
	done := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		done <- struct{}{}
	}))
	defer server.Close()

	txn := models.TransactionQueue{ID: "tx-5", MerchantCallbackURL: server.URL}

	start := time.Now()
	New().Dispatch(txn, models.StatusApproved)
	assert.Less(t, time.Since(start), 100*time.Millisecond, "Dispatch must not wait for delivery")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("callback never delivered")
	}
}
