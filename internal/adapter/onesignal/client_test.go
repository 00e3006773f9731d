package onesignal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chowline/internal/config"
	"chowline/internal/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	var got pushRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications", r.URL.Path)
		assert.Equal(t, "Basic os_key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	client := New(config.PushConfig{BaseURL: srv.URL, AppID: "app-1", APIKey: "os_key"})

	err := client.Send(context.Background(), interfaces.PushNotification{
		Title:   "New order received",
		Message: "Order PSK123 for 5000.00 has been paid",
	})

	require.NoError(t, err)
	assert.Equal(t, "app-1", got.AppID)
	assert.Equal(t, "New order received", got.Headings["en"])
	assert.Equal(t, []string{"All"}, got.IncludedSegments)
}

func TestSendGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := New(config.PushConfig{BaseURL: srv.URL})

	err := client.Send(context.Background(), interfaces.PushNotification{Title: "t", Message: "m"})

	assert.Error(t, err)
}
