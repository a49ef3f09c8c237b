package ringcentral

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trucklink/fleetcall/internal/pkg/apperrors"
	"github.com/trucklink/fleetcall/internal/pkg/models"
)

// newTestServer serves the OAuth token endpoint plus the given API handler.
func newTestServer(t *testing.T, tokenCalls *int, apiHandler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/restapi/oauth/token" {
			if tokenCalls != nil {
				*tokenCalls++
			}

			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "client-id", user)
			assert.Equal(t, "client-secret", pass)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token":  "access-token-1",
				"refresh_token": "refresh-token-2",
				"expires_in":    3600,
			})
			return
		}

		apiHandler(w, r)
	}))
}

func newTestClient(serverURL string) *Client {
	return NewClient(models.TelephonyConfig{
		ServerURL:    serverURL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RefreshToken: "refresh-token-1",
		FromNumber:   "+14155550000",
	}, nil)
}

func TestPlaceCall(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := newTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/restapi/v1.0/account/~/extension/~/ring-out", r.URL.Path)
			assert.Equal(t, "Bearer access-token-1", r.Header.Get("Authorization"))

			var req ringOutRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "+14155550000", req.From.PhoneNumber)
			assert.Equal(t, "+14155551234", req.To.PhoneNumber)
			assert.False(t, req.PlayPrompt)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":810281004,"status":{"callStatus":"InProgress"}}`))
		})
		defer server.Close()

		client := newTestClient(server.URL)

		callID, err := client.PlaceCall(context.Background(), "+14155550000", "+14155551234")

		assert.NoError(t, err)
		assert.Equal(t, "810281004", callID)
	})

	t.Run("Provider rejects the call", func(t *testing.T) {
		server := newTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"errorCode":"InsufficientPermissions"}`))
		})
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.PlaceCall(context.Background(), "+14155550000", "+14155551234")

		assert.Equal(t, apperrors.StatusProviderAPIError, apperrors.StatusOf(err))
	})

	t.Run("Network failure", func(t *testing.T) {
		server := newTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {})
		client := newTestClient(server.URL)

		// Prime the token store, then kill the server.
		_, err := client.tokens.AccessToken(context.Background())
		require.NoError(t, err)
		server.Close()

		_, err = client.PlaceCall(context.Background(), "+14155550000", "+14155551234")

		assert.Equal(t, apperrors.StatusNetworkError, apperrors.StatusOf(err))
	})
}

func TestGetCallStatus(t *testing.T) {
	server := newTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/restapi/v1.0/account/~/extension/~/ring-out/810281004", r.URL.Path)
		w.Write([]byte(`{"id":810281004,"status":{"callStatus":"Success","callerStatus":"Success","calleeStatus":"Success"}}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)

	status, err := client.GetCallStatus(context.Background(), "810281004")

	assert.NoError(t, err)
	assert.Equal(t, models.CallStatusSuccess, status.CallStatus)
	assert.Equal(t, "Success", status.CalleeStatus)
	assert.True(t, status.CallStatus.IsTerminal())
}

func TestUnauthorizedTriggersSingleRefresh(t *testing.T) {
	tokenCalls := 0
	apiCalls := 0
	server := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
		if apiCalls == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"records":[]}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)

	calls, err := client.ListActiveCalls(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, calls)
	assert.Equal(t, 2, apiCalls)
	assert.Equal(t, 2, tokenCalls)
}

func TestListActiveCalls(t *testing.T) {
	server := newTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/restapi/v1.0/account/~/extension/~/active-calls", r.URL.Path)
		w.Write([]byte(`{"records":[
			{"sessionId":"s-1","direction":"Outbound","from":{"phoneNumber":"+14155550000"},"to":{"phoneNumber":"+14155551234"},"telephonyStatus":"CallConnected","startTime":"2025-06-01T14:00:00Z"}
		]}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)

	calls, err := client.ListActiveCalls(context.Background())

	assert.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "s-1", calls[0].SessionID)
	assert.Equal(t, "+14155551234", calls[0].To)
	assert.Equal(t, "CallConnected", calls[0].Status)
}

func TestListRecentCalls(t *testing.T) {
	server := newTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/restapi/v1.0/account/~/extension/~/call-log", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("perPage"))
		assert.Equal(t, "Detailed", r.URL.Query().Get("view"))
		w.Write([]byte(`{"records":[
			{"id":"log-1","sessionId":"s-1","direction":"Outbound","from":{"phoneNumber":"+14155550000"},"to":{"phoneNumber":"+14155551234"},"result":"Call connected","startTime":"2025-06-01T14:00:00Z","duration":95}
		]}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)

	records, err := client.ListRecentCalls(context.Background())

	assert.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "log-1", records[0].ID)
	assert.Equal(t, 95, records[0].Duration)
}

func TestTransferCall(t *testing.T) {
	server := newTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/restapi/v1.0/account/~/telephony/sessions/s-1/parties/p-2/transfer", r.URL.Path)

		var req phoneNumberRef
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "+14155559999", req.PhoneNumber)

		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.TransferCall(context.Background(), "s-1", "p-2", "+14155559999")

	assert.NoError(t, err)
}

func TestGetRecording(t *testing.T) {
	server := newTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/restapi/v1.0/account/~/recording/rec-1", r.URL.Path)
		w.Write([]byte(`{"id":401234,"contentUri":"https://media.example.com/rec-1","duration":120,"type":"Automatic"}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)

	recording, err := client.GetRecording(context.Background(), "rec-1")

	assert.NoError(t, err)
	assert.Equal(t, "401234", recording.ID)
	assert.True(t, strings.HasPrefix(recording.ContentURI, "https://media.example.com"))
}

func TestTokenStoreMissingRefreshToken(t *testing.T) {
	store := NewTokenStore(models.TelephonyConfig{
		ServerURL: "http://localhost:0",
		ClientID:  "client-id",
	}, nil)

	_, err := store.AccessToken(context.Background())

	assert.Equal(t, apperrors.StatusConfigurationError, apperrors.StatusOf(err))
}
