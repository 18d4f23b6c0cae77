package ehr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks FHIR to a configured provider endpoint.
type Client struct {
	http *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// ProbeResult is the outcome of a metadata probe.
type ProbeResult struct {
	Success     bool
	StatusCode  int
	Message     string
	Latency     time.Duration
	FHIRVersion string
}

// SubmitResult is the outcome of a bundle submission.
type SubmitResult struct {
	Success    bool
	StatusCode int
	Response   map[string]interface{}
	Err        error
}

func applyAuth(req *http.Request, cfg *ProviderConfig) {
	switch cfg.AuthType {
	case AuthAPIKey:
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	case AuthBasic:
		req.SetBasicAuth(cfg.ClientID, cfg.ClientSecret)
	case AuthOAuth2:
		req.Header.Set("Authorization", "Bearer "+cfg.ClientSecret)
	}
}

// Probe issues a GET against the provider's FHIR metadata endpoint.
func (c *Client) Probe(ctx context.Context, cfg *ProviderConfig) ProbeResult {
	start := time.Now()

	url := strings.TrimRight(cfg.BaseURL, "/") + "/metadata"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ProbeResult{Message: fmt.Sprintf("build request: %v", err), Latency: time.Since(start)}
	}
	req.Header.Set("Accept", "application/fhir+json")
	applyAuth(req, cfg)

	resp, err := c.http.Do(req)
	if err != nil {
		return ProbeResult{Message: fmt.Sprintf("connection error: %v", err), Latency: time.Since(start)}
	}
	defer resp.Body.Close()

	result := ProbeResult{
		StatusCode: resp.StatusCode,
		Latency:    time.Since(start),
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		result.Message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		return result
	}

	var capability struct {
		FHIRVersion string `json:"fhirVersion"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&capability); err == nil {
		result.FHIRVersion = capability.FHIRVersion
	}
	result.Success = true
	result.Message = "connection successful"
	return result
}

// Submit POSTs a transaction bundle to the provider base URL.
func (c *Client) Submit(ctx context.Context, cfg *ProviderConfig, bundle map[string]interface{}) SubmitResult {
	payload, err := json.Marshal(bundle)
	if err != nil {
		return SubmitResult{Err: fmt.Errorf("encode bundle: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return SubmitResult{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/fhir+json")
	req.Header.Set("Accept", "application/fhir+json")
	applyAuth(req, cfg)

	resp, err := c.http.Do(req)
	if err != nil {
		return SubmitResult{Err: err}
	}
	defer resp.Body.Close()

	result := SubmitResult{
		StatusCode: resp.StatusCode,
		Success:    resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated,
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err == nil {
		result.Response = parsed
	} else if len(body) > 0 {
		result.Response = map[string]interface{}{"raw": string(body)}
	}

	if !result.Success {
		result.Err = fmt.Errorf("provider returned HTTP %d", resp.StatusCode)
	}
	return result
}
