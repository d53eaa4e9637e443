package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultSendTimeout = 10 * time.Second

type twilioErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TwilioProvider sends SMS messages through the Twilio Messages REST API.
type TwilioProvider struct {
	client     *resty.Client
	baseURL    string
	accountSID string
	fromNumber string
}

func NewTwilioProvider(baseURL, accountSID, authToken, fromNumber string) (*TwilioProvider, error) {
	client := resty.New()
	client.SetTimeout(defaultSendTimeout)
	client.SetRetryCount(0)

	return NewTwilioProviderWithClient(baseURL, accountSID, authToken, fromNumber, client)
}

func NewTwilioProviderWithClient(baseURL, accountSID, authToken, fromNumber string, client *resty.Client) (*TwilioProvider, error) {
	trimmedBaseURL := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmedBaseURL == "" {
		return nil, fmt.Errorf("twilio base url is required")
	}
	if _, err := url.ParseRequestURI(trimmedBaseURL); err != nil {
		return nil, fmt.Errorf("invalid twilio base url: %w", err)
	}
	if strings.TrimSpace(accountSID) == "" {
		return nil, fmt.Errorf("twilio account sid is required")
	}
	if strings.TrimSpace(authToken) == "" {
		return nil, fmt.Errorf("twilio auth token is required")
	}
	if strings.TrimSpace(fromNumber) == "" {
		return nil, fmt.Errorf("twilio sender number is required")
	}
	if client == nil {
		return nil, fmt.Errorf("resty client is required")
	}

	if client.GetClient().Timeout == 0 {
		client.SetTimeout(defaultSendTimeout)
	}
	client.SetRetryCount(0)
	client.SetBasicAuth(strings.TrimSpace(accountSID), strings.TrimSpace(authToken))

	return &TwilioProvider{
		client:     client,
		baseURL:    trimmedBaseURL,
		accountSID: strings.TrimSpace(accountSID),
		fromNumber: strings.TrimSpace(fromNumber),
	}, nil
}

func (p *TwilioProvider) Send(ctx context.Context, to string, body string) error {
	if p == nil || p.client == nil {
		return fmt.Errorf("provider is not initialized")
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", p.baseURL, p.accountSID)

	response, err := p.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"To":   to,
			"From": p.fromNumber,
			"Body": body,
		}).
		Post(endpoint)
	if err != nil {
		return &ProviderError{
			Message: "twilio request failed",
			Cause:   err,
		}
	}
	if response == nil {
		return &ProviderError{
			Message: "twilio returned empty response",
		}
	}

	statusCode := response.StatusCode()
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	return &ProviderError{
		StatusCode: statusCode,
		Message:    twilioErrorMessage(statusCode, response.Body()),
		Rejected:   statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError,
	}
}

func twilioErrorMessage(statusCode int, body []byte) string {
	base := fmt.Sprintf("twilio returned status %d", statusCode)

	var parsed twilioErrorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && strings.TrimSpace(parsed.Message) != "" {
		if parsed.Code > 0 {
			return fmt.Sprintf("%s: %s (code %d)", base, parsed.Message, parsed.Code)
		}
		return fmt.Sprintf("%s: %s", base, parsed.Message)
	}

	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return fmt.Sprintf("%s: %s", base, trimmed)
	}
	return base
}
