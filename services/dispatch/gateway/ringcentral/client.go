package ringcentral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/trucklink/fleetcall/internal/pkg/apperrors"
	"github.com/trucklink/fleetcall/internal/pkg/database"
	httpclient "github.com/trucklink/fleetcall/internal/pkg/http"
	"github.com/trucklink/fleetcall/internal/pkg/logger"
	"github.com/trucklink/fleetcall/internal/pkg/models"
)

const (
	ringOutPath     = "/restapi/v1.0/account/~/extension/~/ring-out"
	activeCallsPath = "/restapi/v1.0/account/~/extension/~/active-calls"
	callLogPath     = "/restapi/v1.0/account/~/extension/~/call-log?perPage=20&view=Detailed"
	transferPath    = "/restapi/v1.0/account/~/telephony/sessions/%s/parties/%s/transfer"
	recordingPath   = "/restapi/v1.0/account/~/recording/%s"
)

// Client is the telephony provider gateway. All requests carry an OAuth
// bearer token from the token store.
type Client struct {
	cfg    models.TelephonyConfig
	client *httpclient.Client
	tokens *TokenStore
}

// NewClient creates a telephony gateway instance
func NewClient(cfg models.TelephonyConfig, redisClient *database.RedisClient) *Client {
	return &Client{
		cfg:    cfg,
		client: httpclient.NewClient(cfg.ServerURL, 15*time.Second),
		tokens: NewTokenStore(cfg, redisClient),
	}
}

type phoneNumberRef struct {
	PhoneNumber string `json:"phoneNumber"`
}

type ringOutRequest struct {
	From       phoneNumberRef `json:"from"`
	To         phoneNumberRef `json:"to"`
	PlayPrompt bool           `json:"playPrompt"`
}

type ringOutResponse struct {
	ID     json.Number `json:"id"`
	Status struct {
		CallStatus   string `json:"callStatus"`
		CallerStatus string `json:"callerStatus"`
		CalleeStatus string `json:"calleeStatus"`
	} `json:"status"`
}

// PlaceCall initiates a two-leg RingOut call and returns the provider
// call ID used for status polling.
func (c *Client) PlaceCall(ctx context.Context, fromNumber, toNumber string) (string, error) {
	reqBody := ringOutRequest{
		From:       phoneNumberRef{PhoneNumber: fromNumber},
		To:         phoneNumberRef{PhoneNumber: toNumber},
		PlayPrompt: false,
	}

	var resp ringOutResponse
	if err := c.do(ctx, http.MethodPost, ringOutPath, reqBody, &resp); err != nil {
		return "", err
	}

	logger.Info("RingOut call placed",
		logger.String("call_id", resp.ID.String()),
		logger.String("call_status", resp.Status.CallStatus))

	return resp.ID.String(), nil
}

// GetCallStatus fetches the current status of an in-flight RingOut call
func (c *Client) GetCallStatus(ctx context.Context, callID string) (*models.RingOutStatus, error) {
	var resp ringOutResponse
	if err := c.do(ctx, http.MethodGet, ringOutPath+"/"+callID, nil, &resp); err != nil {
		return nil, err
	}

	return &models.RingOutStatus{
		CallStatus:   models.CallStatus(resp.Status.CallStatus),
		CallerStatus: resp.Status.CallerStatus,
		CalleeStatus: resp.Status.CalleeStatus,
	}, nil
}

type activeCallRecord struct {
	ID              string         `json:"id"`
	SessionID       string         `json:"sessionId"`
	Direction       string         `json:"direction"`
	From            phoneNumberRef `json:"from"`
	To              phoneNumberRef `json:"to"`
	TelephonyStatus string         `json:"telephonyStatus"`
	Result          string         `json:"result"`
	StartTime       string         `json:"startTime"`
	Duration        int            `json:"duration"`
}

type recordsResponse struct {
	Records []activeCallRecord `json:"records"`
}

// ListActiveCalls returns the in-flight calls on the account extension
func (c *Client) ListActiveCalls(ctx context.Context) ([]models.ActiveCall, error) {
	var resp recordsResponse
	if err := c.do(ctx, http.MethodGet, activeCallsPath, nil, &resp); err != nil {
		return nil, err
	}

	calls := make([]models.ActiveCall, 0, len(resp.Records))
	for _, rec := range resp.Records {
		calls = append(calls, models.ActiveCall{
			SessionID: rec.SessionID,
			Direction: rec.Direction,
			From:      rec.From.PhoneNumber,
			To:        rec.To.PhoneNumber,
			Status:    rec.TelephonyStatus,
			StartTime: rec.StartTime,
		})
	}

	return calls, nil
}

// ListRecentCalls returns the most recent call log entries
func (c *Client) ListRecentCalls(ctx context.Context) ([]models.CallLogRecord, error) {
	var resp recordsResponse
	if err := c.do(ctx, http.MethodGet, callLogPath, nil, &resp); err != nil {
		return nil, err
	}

	records := make([]models.CallLogRecord, 0, len(resp.Records))
	for _, rec := range resp.Records {
		records = append(records, models.CallLogRecord{
			ID:        rec.ID,
			SessionID: rec.SessionID,
			Direction: rec.Direction,
			From:      rec.From.PhoneNumber,
			To:        rec.To.PhoneNumber,
			Result:    rec.Result,
			StartTime: rec.StartTime,
			Duration:  rec.Duration,
		})
	}

	return records, nil
}

// TransferCall moves an answered call party to another number
func (c *Client) TransferCall(ctx context.Context, sessionID, partyID, toNumber string) error {
	path := fmt.Sprintf(transferPath, sessionID, partyID)
	return c.do(ctx, http.MethodPost, path, phoneNumberRef{PhoneNumber: toNumber}, nil)
}

type recordingResponse struct {
	ID         json.Number `json:"id"`
	ContentURI string      `json:"contentUri"`
	Duration   int         `json:"duration"`
	Type       string      `json:"type"`
}

// GetRecording fetches recording metadata by ID
func (c *Client) GetRecording(ctx context.Context, recordingID string) (*models.RecordingInfo, error) {
	var resp recordingResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(recordingPath, recordingID), nil, &resp); err != nil {
		return nil, err
	}

	return &models.RecordingInfo{
		ID:         resp.ID.String(),
		ContentURI: resp.ContentURI,
		Duration:   resp.Duration,
		Type:       resp.Type,
	}, nil
}

// do sends an authenticated request and decodes the response into out.
// A 401 triggers a single forced token refresh and retry.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return err
	}

	status, respBody, err := c.send(ctx, method, path, body, token)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		token, err = c.tokens.Refresh(ctx)
		if err != nil {
			return err
		}
		status, respBody, err = c.send(ctx, method, path, body, token)
		if err != nil {
			return err
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return apperrors.ProviderAPIError("RingCentral", status, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse RingCentral response: %w", err)
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}, token string) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal RingCentral request: %w", err)
		}
		reqBody = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.client.BaseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create RingCentral request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, apperrors.NetworkError("RingCentral", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read RingCentral response: %w", err)
	}

	return resp.StatusCode, respBody, nil
}
