package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen -source=aiclient.go -destination=../mocks/aiclient_mocks.go -package=mocks

// AIClient generates text completions from the AI provider.
type AIClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	ModelName() string
}

// AIClientConfig carries the provider endpoints and OAuth2 credentials.
type AIClientConfig struct {
	APIURL       string
	OAuthURL     string
	ClientID     string
	ClientSecret string
	Model        string
}

// aiTokenResponse represents the OAuth token response
type aiTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// aiTokenCache represents a cached access token with expiration
type aiTokenCache struct {
	token     string
	expiresAt time.Time
}

type aiChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type aiChatRequest struct {
	Model    string          `json:"model"`
	Messages []aiChatMessage `json:"messages"`
}

type aiChatResponse struct {
	Choices []struct {
		Message aiChatMessage `json:"message"`
	} `json:"choices"`
}

// HTTPAIClient calls a chat-completion API authenticated via OAuth2
// client credentials. Tokens are cached until shortly before expiry.
type HTTPAIClient struct {
	cfg        AIClientConfig
	httpClient *http.Client

	tokenCache    *aiTokenCache
	tokenCacheMux sync.RWMutex
}

// NewHTTPAIClient creates a new AI client
func NewHTTPAIClient(cfg AIClientConfig) *HTTPAIClient {
	return &HTTPAIClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ModelName returns the configured model identifier.
func (c *HTTPAIClient) ModelName() string {
	return c.cfg.Model
}

// Complete sends one system/user prompt pair and returns the completion text.
func (c *HTTPAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	accessToken, err := c.getAccessToken(ctx)
	if err != nil {
		return "", err
	}

	reqBody, err := json.Marshal(aiChatRequest{
		Model: c.cfg.Model,
		Messages: []aiChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+"/v1/chat/completions", strings.NewReader(string(reqBody)))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp aiChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}
	return chatResp.Choices[0].Message.Content, nil
}

// getAccessToken retrieves an access token with caching
func (c *HTTPAIClient) getAccessToken(ctx context.Context) (string, error) {
	c.tokenCacheMux.RLock()
	if c.tokenCache != nil && time.Now().Before(c.tokenCache.expiresAt) {
		token := c.tokenCache.token
		c.tokenCacheMux.RUnlock()
		return token, nil
	}
	c.tokenCacheMux.RUnlock()

	token, expiresIn, err := c.requestNewToken(ctx)
	if err != nil {
		return "", err
	}

	// Expire 5 minutes early to be safe
	expiresAt := time.Now().Add(time.Duration(expiresIn-300) * time.Second)

	c.tokenCacheMux.Lock()
	c.tokenCache = &aiTokenCache{token: token, expiresAt: expiresAt}
	c.tokenCacheMux.Unlock()

	return token, nil
}

// requestNewToken requests a new access token from the OAuth endpoint
func (c *HTTPAIClient) requestNewToken(ctx context.Context) (string, int, error) {
	data := url.Values{}
	data.Set("grant_type", "client_credentials")
	data.Set("client_id", c.cfg.ClientID)
	data.Set("client_secret", c.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.OAuthURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("failed to get access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", 0, fmt.Errorf("token request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResp aiTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", 0, fmt.Errorf("failed to decode token response: %w", err)
	}
	return tokenResp.AccessToken, tokenResp.ExpiresIn, nil
}
