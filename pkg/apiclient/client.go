package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/go-playground/validator/v10"

	"github.com/changesci/changes-web/config"
	"github.com/changesci/changes-web/internal"
	"github.com/changesci/changes-web/pkg/auth"
	"github.com/changesci/changes-web/pkg/models"
	"github.com/changesci/changes-web/pkg/observability"
)

var log = internal.GetLogger()

var validate = validator.New()

const (
	AuthPath     = "/api/0/auth/"
	ProjectsPath = "/api/0/projects/"
	MessagesPath = "/api/0/messages/"

	// ServiceTokenHeader carries the changes-web service JWT when a secret is configured
	ServiceTokenHeader = "X-Changes-Service-Token"
)

var _ models.ChangesAPI = &Client{}

// Client reads from the Changes REST API
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	breaker    circuitbreaker.CircuitBreaker[any]
	obs        observability.Service
	cfg        *config.Config
}

// NewClient creates a Client for cfg.API.BaseURL. Calls rejected by the
// circuit breaker are reported to obs as breadcrumbs.
func NewClient(cfg *config.Config, obs observability.Service) (*Client, error) {
	baseURL, err := url.Parse(strings.TrimRight(cfg.API.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api.base_url: %w", err)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: NewRetryableHTTPClient(cfg.API.RetryMax, cfg.API.Timeout),
		breaker:    newBreaker(cfg.API.BreakerThreshold, cfg.API.BreakerDelay),
		obs:        obs,
		cfg:        cfg,
	}, nil
}

// GetSession fetches the auth status of the forwarded browser session
func (c *Client) GetSession(ctx context.Context) (*models.Session, error) {
	var session models.Session
	if err := c.get(ctx, AuthPath, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ListProjects fetches the projects visible to the forwarded browser session
func (c *Client) ListProjects(ctx context.Context) ([]models.ProjectSummary, error) {
	var projects []models.ProjectSummary
	if err := c.get(ctx, ProjectsPath, nil, &projects); err != nil {
		return nil, err
	}
	if err := validate.Var(projects, "dive"); err != nil {
		return nil, fmt.Errorf("invalid project list: %w", err)
	}
	return projects, nil
}

// GetAdminMessage fetches the current admin broadcast. Returns nil when none is set.
func (c *Client) GetAdminMessage(ctx context.Context) (*models.AdminMessage, error) {
	var message *models.AdminMessage
	if err := c.get(ctx, MessagesPath, nil, &message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListBuilds fetches the builds of a project, filtered by the search query
func (c *Client) ListBuilds(
	ctx context.Context,
	projectSlug string,
	query models.ProjectSearchQuery,
) ([]models.BuildSummary, error) {
	path := ProjectsPath + url.PathEscape(projectSlug) + "/builds/"
	var builds []models.BuildSummary
	if err := c.get(ctx, path, query.Values(), &builds); err != nil {
		return nil, err
	}
	return builds, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if c.breaker == nil {
		return c.do(ctx, path, query, out)
	}

	attempted := false
	err := failsafe.Run(func() error {
		attempted = true
		return c.do(ctx, path, query, out)
	}, c.breaker)
	if err != nil && !attempted {
		c.obs.CaptureBreadcrumb(
			observability.CategoryUpstream,
			"circuit breaker rejected call",
			map[string]any{"path": path},
		)
		return fmt.Errorf("GET %s: %w (%w)", path, models.ErrUnavailable, err)
	}
	return err
}

func (c *Client) do(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL.JoinPath(path)
	// JoinPath drops the trailing slash the API routes require
	if strings.HasSuffix(path, "/") && !strings.HasSuffix(endpoint.Path, "/") {
		endpoint.Path += "/"
	}
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for name, values := range forwardedHeaders(ctx) {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if c.cfg.API.AuthSecret != "" {
		token, err := auth.GenerateJWT(c.cfg)
		if err != nil {
			return err
		}
		req.Header.Set(ServiceTokenHeader, token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &models.UpstreamError{Endpoint: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	log.Debugf("GET %s: %d", path, resp.StatusCode)

	return nil
}
