package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"StrokeRiskAssessment/internal/models"

	"github.com/rs/zerolog"
)

const DefaultEndpoint = "http://127.0.0.1:5000/predict" // 추론 서버 기본 URL

const maxResponseBytes = 1 << 20

// Client issues a single POST per prediction to the inference endpoint.
// There is no retry; the outcome of the one attempt is returned as is.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(endpoint string, timeout time.Duration, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Predict sends the validated request and maps the reply. A non-2xx reply
// yields *APIError, a failed call yields *TransportError.
func (c *Client) Predict(ctx context.Context, req models.AssessmentRequest) (*models.AssessmentResult, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode assessment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", c.endpoint).Msg("Client.Predict(): request failed")
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", c.endpoint).Msg("Client.Predict(): failed to read response body")
		return nil, &TransportError{Err: err}
	}
	c.logger.Info().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Client.Predict(): inference responded")

	// 본문이 JSON 객체가 아니면 모든 필드에 기본값 적용
	fields := decodeObject(body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			ErrorText:  stringField(fields, "error", DefaultErrorText),
			Details:    stringField(fields, "details", DefaultDetailsText),
		}
	}

	return &models.AssessmentResult{
		RiskLevel:       stringField(fields, "risk_level", models.DefaultRiskLevel),
		RiskProbability: numberField(fields, "risk_probability"),
		Message:         stringField(fields, "message", models.DefaultMessage),
	}, nil
}

func decodeObject(body []byte) map[string]any {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil
	}
	return fields
}

func stringField(fields map[string]any, key, def string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return sanitizeText(s)
	}
	return sanitizeText(fmt.Sprint(v))
}

func numberField(fields map[string]any, key string) float64 {
	switch v := fields[key].(type) {
	case float64:
		return v
	case string:
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return 0
}
