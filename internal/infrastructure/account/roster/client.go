package roster

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/touchlinehq/touchline/internal/domain/user"
	"github.com/touchlinehq/touchline/internal/platform/cache"
	"github.com/touchlinehq/touchline/internal/usecase"
)

// Client verifies access tokens against the roster account service. The
// roster service owns users, roles, and which teams a coach is assigned to.
type Client struct {
	httpClient    *http.Client
	introspectURL string
	adminKey      string
	tokenCache    *cache.Store
	logger        *slog.Logger
}

func NewClient(httpClient *http.Client, baseURL, introspectPath, adminKey string, tokenCache *cache.Store, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		httpClient:    httpClient,
		introspectURL: buildURL(baseURL, introspectPath),
		adminKey:      strings.TrimSpace(adminKey),
		tokenCache:    tokenCache,
		logger:        logger,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	if c.tokenCache != nil {
		if cached, ok := c.tokenCache.Get(ctx, tokenCacheKey(token)); ok {
			if principal, ok := cached.(user.Principal); ok {
				return principal, nil
			}
		}
	}

	principal, err := c.introspect(ctx, token)
	if err != nil {
		return user.Principal{}, err
	}

	if c.tokenCache != nil {
		c.tokenCache.Set(ctx, tokenCacheKey(token), principal)
	}

	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	payload := introspectRequest{Token: token}
	encoded, err := sonic.Marshal(payload)
	if err != nil {
		return user.Principal{}, fmt.Errorf("marshal introspect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, fmt.Errorf("create introspect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.adminKey != "" {
		req.Header.Set("x-admin-key", c.adminKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: request introspection to roster: %v", usecase.ErrDependencyUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	}
	// 403 means our admin key is wrong, not that the caller's token is bad.
	if resp.StatusCode == http.StatusForbidden {
		return user.Principal{}, fmt.Errorf("%w: roster rejected admin key", usecase.ErrDependencyUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, fmt.Errorf("read introspect response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "roster introspection non-200",
			"status_code", resp.StatusCode,
		)
		return user.Principal{}, fmt.Errorf("%w: roster introspection failed with status %d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("unmarshal introspect response: %w", err)
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, fmt.Errorf("invalid introspect response: user_id is empty")
	}

	return user.Principal{
		UserID:  decoded.UserID,
		Email:   decoded.Email,
		Role:    decoded.Role,
		TeamIDs: decoded.TeamIDs,
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active  bool     `json:"active"`
	UserID  string   `json:"user_id"`
	Email   string   `json:"email"`
	Role    string   `json:"role"`
	TeamIDs []string `json:"team_ids"`
}
