package extraction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/touchlinehq/touchline/internal/platform/logging"
	"github.com/touchlinehq/touchline/internal/platform/resilience"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultExtractPath = "/v1/extract"
)

var errExtractionTransient = crerr.New("extraction transient failure")

type ClientConfig struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client posts stats screenshots to the extraction vendor and maps the OCR
// result back to labeled values. The vendor labels fields however the source
// app printed them; callers normalize downstream.
type Client struct {
	httpClient     *fasthttp.Client
	extractURL     string
	apiKey         string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		extractURL:     baseURL + defaultExtractPath,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		timeout:        timeout,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) ExtractStats(ctx context.Context, image []byte, contentType string) (map[string]any, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("image payload is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			return nil, fmt.Errorf("extraction circuit open: %w", err)
		}
	}

	body, statusCode, err := c.postImage(image, contentType)
	if err != nil {
		c.recordFailure()
		return nil, crerr.Wrap(errExtractionTransient, err.Error())
	}
	if statusCode >= fasthttp.StatusInternalServerError {
		c.recordFailure()
		c.logger.WarnContext(ctx, "extraction vendor 5xx", "status_code", statusCode)
		return nil, crerr.Wrapf(errExtractionTransient, "extraction failed with status %d", statusCode)
	}
	if statusCode != fasthttp.StatusOK {
		c.recordSuccess()
		return nil, fmt.Errorf("extraction failed with status %d", statusCode)
	}
	c.recordSuccess()

	var decoded extractResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal extract response: %w", err)
	}

	out := make(map[string]any, len(decoded.Fields))
	for _, field := range decoded.Fields {
		label := strings.TrimSpace(field.Label)
		if label == "" {
			continue
		}
		out[label] = field.Value
	}

	return out, nil
}

// postImage copies the response body into a pooled buffer before releasing
// the fasthttp response; resp.Body() is only valid until release.
func (c *Client) postImage(image []byte, contentType string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.extractURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.SetContentType(contentType)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.SetBody(image)

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, 0, fmt.Errorf("request extraction: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.Write(resp.Body()); err != nil {
		return nil, 0, fmt.Errorf("copy extraction response: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, resp.StatusCode(), nil
}

func (c *Client) recordSuccess() {
	if c.circuitEnabled {
		c.breaker.RecordSuccess()
	}
}

func (c *Client) recordFailure() {
	if c.circuitEnabled {
		c.breaker.RecordFailure()
	}
}

type extractResponse struct {
	Fields []extractField `json:"fields"`
}

type extractField struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}
