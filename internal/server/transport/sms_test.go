package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMSSender_Success(t *testing.T) {
	var got smsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := NewSMSSender(srv.URL, "secret", srv.Client())
	require.NoError(t, s.Send(context.Background(), "your register code is: 654321", "09123231976"))

	assert.Equal(t, "09123231976", got.To)
	assert.Equal(t, "your register code is: 654321", got.Message)
}

func TestSMSSender_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
	}))
	defer srv.Close()

	require.NoError(t, NewSMSSender(srv.URL, "", nil).Send(context.Background(), "m", "09123231976"))
}

func TestSMSSender_GatewayRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no credit", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	err := NewSMSSender(srv.URL, "", srv.Client()).Send(context.Background(), "m", "09123231976")
	assert.ErrorContains(t, err, "unexpected status 402")
}

func TestSMSSender_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewSMSSender(url, "", nil).Send(context.Background(), "m", "09123231976")
	assert.ErrorContains(t, err, "sms gateway")
}
