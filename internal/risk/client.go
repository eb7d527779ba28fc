package risk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tokenIssuer "txlens/pkg/jwt"

	"go.uber.org/zap"
)

const (
	analyzePath      = "/analyze"
	tokenAudience    = "risk-engine"
	tokenExpiration  = 5 * time.Minute
	maxErrorBodySize = 4 << 10
)

var ErrUnexpectedStatus error = errors.New("unexpected status from risk engine")

// Client talks to the external risk engine over HTTP.
type Client struct {
	logs       *zap.SugaredLogger
	httpClient HTTPDoer
	baseURL    string
	service    string
	tokens     TokenIssuer
}

// NewClient creates a risk engine client. tokens may be nil, in which case
// requests are sent without an Authorization header.
func NewClient(logger *zap.SugaredLogger, httpClient HTTPDoer, baseURL, service string, tokens TokenIssuer) *Client {
	return &Client{
		logs:       logger,
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		service:    service,
		tokens:     tokens,
	}
}

// Analyze forwards the request to the risk engine and returns its result as is.
func (c *Client) Analyze(ctx context.Context, analysisRequest Request) (Result, error) {
	if analysisRequest.Metadata == nil {
		analysisRequest.Metadata = map[string]any{}
	}

	body, err := json.Marshal(analysisRequest)
	if err != nil {
		return Result{}, fmt.Errorf("marshal analysis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Sign(c.tokens.Generate(tokenIssuer.TokenInfo{
			Subject:    c.service,
			Audience:   tokenAudience,
			Expiration: tokenExpiration,
		}))
		if err != nil {
			return Result{}, fmt.Errorf("sign service token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("call risk engine: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logs.Warnw("failed to close risk engine response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return Result{}, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("decode analysis result: %w", err)
	}

	if err := result.Validate(); err != nil {
		return Result{}, fmt.Errorf("validate analysis result: %w", err)
	}
	result = result.withEmptyLists()

	c.logs.Infow("transaction analyzed",
		"tx_hash", analysisRequest.TxHash,
		"risk_level", result.RiskLevel,
		"compliance_score", result.ComplianceScore)

	return result, nil
}
