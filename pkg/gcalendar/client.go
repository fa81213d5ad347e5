package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	defaultRequestsPerSecond = 5
	defaultCalendarCacheSize = 64
	defaultCalendarCacheTTL  = 10 * time.Minute
)

// Client wraps the Google Calendar API service.
type Client struct {
	service   *calendar.Service
	limiter   *rate.Limiter
	calendars *expirable.LRU[string, []Calendar]
}

type options struct {
	tokenStore        TokenStore
	requestsPerSecond float64
	cacheTTL          time.Duration
}

// Option customises a Client.
type Option func(*options)

// WithTokenStore sets where installed-app OAuth tokens are read from.
func WithTokenStore(store TokenStore) Option {
	return func(o *options) { o.tokenStore = store }
}

// WithRateLimit caps outgoing API calls per second. Zero or less disables throttling.
func WithRateLimit(rps float64) Option {
	return func(o *options) { o.requestsPerSecond = rps }
}

// WithCalendarCacheTTL sets how long calendar name lookups are cached.
func WithCalendarCacheTTL(ttl time.Duration) Option {
	return func(o *options) { o.cacheTTL = ttl }
}

func buildOptions(opts []Option) options {
	o := options{
		tokenStore:        FileTokenStore{Path: DefaultTokenPath},
		requestsPerSecond: defaultRequestsPerSecond,
		cacheTTL:          defaultCalendarCacheTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newClient(svc *calendar.Service, o options) *Client {
	limit := rate.Inf
	burst := 1
	if o.requestsPerSecond > 0 {
		limit = rate.Limit(o.requestsPerSecond)
		burst = int(o.requestsPerSecond)
		if burst < 1 {
			burst = 1
		}
	}
	return &Client{
		service:   svc,
		limiter:   rate.NewLimiter(limit, burst),
		calendars: expirable.NewLRU[string, []Calendar](defaultCalendarCacheSize, nil, o.cacheTTL),
	}
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string, opts ...Option) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, opts...)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials JSON bytes.
// Service Account keys are used directly; OAuth installed-app credentials need a
// token previously saved by scripts/gcal-auth.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, opts ...Option) (*Client, error) {
	o := buildOptions(opts)

	// Try service account first
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return newClient(svc, o), nil
	}

	// Fallback: OAuth2 installed app credentials
	oauthConfig, cfgErr := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if cfgErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tok, err := o.tokenStore.Load()
	if err != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no usable token: %w", err)
	}

	ts := &persistingTokenSource{
		base:  oauthConfig.TokenSource(ctx, tok),
		store: o.tokenStore,
		last:  tok.AccessToken,
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(oauth2.ReuseTokenSource(tok, ts)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", err)
	}

	return newClient(svc, o), nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts ...Option) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc, buildOptions(opts)), nil
}

func (c *Client) wait(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("gcalendar: rate limiter: %w", err)
	}
	return nil
}

func calendarIDOrPrimary(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}
