package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultAPIVersion = "v59.0"

// Client is the Salesforce REST API client.
type Client struct {
	instanceURL string
	accessToken string
	apiVersion  string
	httpClient  *http.Client
}

// NewClient creates a new Salesforce client for the given org instance.
func NewClient(instanceURL, accessToken string) *Client {
	return &Client{
		instanceURL: strings.TrimRight(instanceURL, "/"),
		accessToken: accessToken,
		apiVersion:  defaultAPIVersion,
		httpClient:  &http.Client{},
	}
}

// SetAPIVersion overrides the default REST API version.
func (c *Client) SetAPIVersion(version string) {
	c.apiVersion = version
}

// EscapeSOQL escapes a string literal for safe interpolation into a SOQL query.
func EscapeSOQL(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// Query runs a SOQL query and returns the matched records.
func (c *Client) Query(ctx context.Context, soql string) (*QueryResponse, error) {
	endpoint := fmt.Sprintf("%s/services/data/%s/query?q=%s",
		c.instanceURL, c.apiVersion, url.QueryEscape(soql))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call salesforce API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("salesforce query error %d: %s", resp.StatusCode, string(raw))
	}

	var result QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// CreateRecords inserts records of the given sObject type in one collection
// call. The write is all-or-none: a single bad record rolls back the batch.
func (c *Client) CreateRecords(ctx context.Context, objectType string, records []map[string]any) ([]SaveResult, error) {
	endpoint := fmt.Sprintf("%s/services/data/%s/composite/sobjects", c.instanceURL, c.apiVersion)

	payload := CollectionRequest{AllOrNone: true, Records: make([]map[string]any, 0, len(records))}
	for _, rec := range records {
		withAttrs := make(map[string]any, len(rec)+1)
		for k, v := range rec {
			withAttrs[k] = v
		}
		withAttrs["attributes"] = Attributes{Type: objectType}
		payload.Records = append(payload.Records, withAttrs)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call salesforce API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("salesforce insert error %d: %s", resp.StatusCode, string(raw))
	}

	var results []SaveResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	for _, r := range results {
		if !r.Success {
			msg := "unknown error"
			if len(r.Errors) > 0 {
				msg = r.Errors[0].Message
			}
			return results, fmt.Errorf("salesforce insert rejected record: %s", msg)
		}
	}

	return results, nil
}

// UpdateRecords partially updates records in one collection call. Each
// record must carry its Id field.
func (c *Client) UpdateRecords(ctx context.Context, objectType string, records []map[string]any) ([]SaveResult, error) {
	endpoint := fmt.Sprintf("%s/services/data/%s/composite/sobjects", c.instanceURL, c.apiVersion)

	payload := CollectionRequest{AllOrNone: true, Records: make([]map[string]any, 0, len(records))}
	for _, rec := range records {
		withAttrs := make(map[string]any, len(rec)+1)
		for k, v := range rec {
			withAttrs[k] = v
		}
		withAttrs["attributes"] = Attributes{Type: objectType}
		payload.Records = append(payload.Records, withAttrs)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call salesforce API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("salesforce update error %d: %s", resp.StatusCode, string(raw))
	}

	var results []SaveResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	for _, r := range results {
		if !r.Success {
			msg := "unknown error"
			if len(r.Errors) > 0 {
				msg = r.Errors[0].Message
			}
			return results, fmt.Errorf("salesforce update rejected record: %s", msg)
		}
	}

	return results, nil
}

// DeleteRecords deletes records by ID in one collection call.
func (c *Client) DeleteRecords(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	endpoint := fmt.Sprintf("%s/services/data/%s/composite/sobjects?ids=%s&allOrNone=false",
		c.instanceURL, c.apiVersion, url.QueryEscape(strings.Join(ids, ",")))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call salesforce API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("salesforce delete error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}

// SubmitForApproval routes records into the org's approval process.
func (c *Client) SubmitForApproval(ctx context.Context, req ApprovalRequest) ([]ApprovalResult, error) {
	endpoint := fmt.Sprintf("%s/services/data/%s/process/approvals/", c.instanceURL, c.apiVersion)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call salesforce API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("salesforce approval error %d: %s", resp.StatusCode, string(raw))
	}

	var results []ApprovalResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return results, nil
}

// PostFeedElement posts a Chatter text message on the given record or user.
func (c *Client) PostFeedElement(ctx context.Context, subjectID, text string) error {
	endpoint := fmt.Sprintf("%s/services/data/%s/chatter/feed-elements", c.instanceURL, c.apiVersion)

	payload := feedElementRequest{
		FeedElementType: "FeedItem",
		SubjectID:       subjectID,
		Body: feedBody{
			MessageSegments: []feedSegment{{Type: "Text", Text: text}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call salesforce API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("salesforce chatter error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
