package sendgrid

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultAPIURL = "https://api.sendgrid.com/v3"

// Client is the SendGrid v3 API client.
type Client struct {
	apiKey     string
	apiURL     string
	from       Address
	httpClient *http.Client
}

// NewClient creates a new SendGrid client sending from the given address.
func NewClient(apiKey string, from Address) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		from:       from,
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default SendGrid API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SendMail sends a plain text email to a single recipient. A non-empty
// attachment is base64-encoded and attached as a PDF.
func (c *Client) SendMail(ctx context.Context, to Address, subject, body string, attachmentName string, attachment []byte) error {
	endpoint := fmt.Sprintf("%s/mail/send", c.apiURL)

	payload := mailRequest{
		Personalizations: []Personalization{{To: []Address{to}}},
		From:             c.from,
		Subject:          subject,
		Content:          []Content{{Type: "text/plain", Value: body}},
	}
	if len(attachment) > 0 {
		payload.Attachments = []Attachment{{
			Content:     base64.StdEncoding.EncodeToString(attachment),
			Type:        "application/pdf",
			Filename:    attachmentName,
			Disposition: "attachment",
		}}
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call sendgrid API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sendgrid API error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
