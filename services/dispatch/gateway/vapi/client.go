package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/trucklink/fleetcall/internal/pkg/apperrors"
	httpclient "github.com/trucklink/fleetcall/internal/pkg/http"
	"github.com/trucklink/fleetcall/internal/pkg/logger"
	"github.com/trucklink/fleetcall/internal/pkg/models"
)

// Client is the conversational AI provider gateway. Campaigns fan a
// single assistant out over a list of customers; per-driver context
// travels in assistant variable overrides.
type Client struct {
	cfg    models.VoiceAIConfig
	client *httpclient.Client
}

// NewClient creates a voice AI gateway instance
func NewClient(cfg models.VoiceAIConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: httpclient.NewClient(cfg.BaseURL, 15*time.Second),
	}
}

type assistantOverrides struct {
	VariableValues map[string]string `json:"variableValues"`
}

type campaignCustomer struct {
	Number             string             `json:"number"`
	Name               string             `json:"name"`
	AssistantOverrides assistantOverrides `json:"assistantOverrides"`
}

type campaignRequest struct {
	Name          string             `json:"name"`
	PhoneNumberID string             `json:"phoneNumberId"`
	Customers     []campaignCustomer `json:"customers"`
	AssistantID   string             `json:"assistantId"`
}

type campaignResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// SubmitCampaign creates an outbound calling campaign covering all the
// given customers in a single provider request.
func (c *Client) SubmitCampaign(ctx context.Context, name string, customers []models.CampaignCustomer) (*models.Campaign, error) {
	if c.cfg.APIKey == "" || c.cfg.AssistantID == "" || c.cfg.PhoneNumberID == "" {
		return nil, apperrors.ConfigurationError("voice AI provider credentials are not configured")
	}

	reqBody := campaignRequest{
		Name:          name,
		PhoneNumberID: c.cfg.PhoneNumberID,
		AssistantID:   c.cfg.AssistantID,
		Customers:     make([]campaignCustomer, 0, len(customers)),
	}
	for _, customer := range customers {
		reqBody.Customers = append(reqBody.Customers, campaignCustomer{
			Number:             customer.Number,
			Name:               customer.Name,
			AssistantOverrides: assistantOverrides{VariableValues: customer.Variables},
		})
	}

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal campaign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.client.BaseURL+"/campaign", bytes.NewBuffer(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.HTTPClient.Do(req)
	if err != nil {
		return nil, apperrors.NetworkError("Vapi", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apperrors.ProviderAPIError("Vapi", resp.StatusCode, string(respBody))
	}

	var campaign campaignResponse
	if err := json.Unmarshal(respBody, &campaign); err != nil {
		return nil, fmt.Errorf("failed to parse campaign response: %w", err)
	}

	logger.Info("AI campaign submitted",
		logger.String("campaign_id", campaign.ID),
		logger.Int("customers", len(customers)))

	status := campaign.Status
	if status == "" {
		status = "initiated"
	}

	return &models.Campaign{
		CampaignID: campaign.ID,
		Status:     status,
	}, nil
}
