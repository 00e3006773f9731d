package termii

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chowline/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	var got smsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sms/send", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"message":"Successfully Sent"}`))
	}))
	defer srv.Close()

	client := New(config.SMSConfig{BaseURL: srv.URL, SenderID: "Chowline", APIKey: "tk_key"})

	err := client.Send(context.Background(), "+2348000000000", "Your order PSK123 has been received.")

	require.NoError(t, err)
	assert.Equal(t, "+2348000000000", got.To)
	assert.Equal(t, "Chowline", got.From)
	assert.Equal(t, "plain", got.Type)
	assert.Equal(t, "generic", got.Channel)
	assert.Equal(t, "tk_key", got.APIKey)
}

func TestSendGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(config.SMSConfig{BaseURL: srv.URL})

	err := client.Send(context.Background(), "+2348000000000", "hello")

	assert.Error(t, err)
}
