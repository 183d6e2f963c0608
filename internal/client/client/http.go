package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/rentpred/internal/client/models"
	"github.com/dmitrijs2005/rentpred/internal/logging"
	"github.com/dmitrijs2005/rentpred/internal/netx"
)

const (
	loginPath   = "/api/auth/login/"
	signupPath  = "/api/auth/signup/"
	logoutPath  = "/api/auth/logout/"
	profilePath = "/api/auth/profile/"
	historyPath = "/api/auth/history/"
	predictPath = "/api/predict/"

	DefaultHealthPath = "/api/health/"
)

type HTTPClient struct {
	baseURL    *url.URL
	healthPath string
	http       *http.Client
	log        logging.Logger
}

// Option customises an HTTPClient.
type Option func(*HTTPClient)

// WithHealthPath overrides the path probed by Ping.
func WithHealthPath(path string) Option {
	return func(c *HTTPClient) {
		if path != "" {
			c.healthPath = path
		}
	}
}

// WithTransport replaces the underlying transport. The auth interceptor is
// still installed on top of it.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) {
		if rt == nil {
			return
		}
		if at, ok := c.http.Transport.(*authTransport); ok {
			at.base = rt
		}
	}
}

// NewHTTPClient builds a client for the API at baseURL. tokens and
// onUnauthorized may be nil, in which case requests go out anonymous and
// 401 responses are only returned to the caller.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, onUnauthorized UnauthorizedHandler, log logging.Logger, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse API base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("API base URL %q must be http or https", baseURL)
	}

	log = log.With("component", "api-client")
	c := &HTTPClient{
		baseURL:    u,
		healthPath: DefaultHealthPath,
		log:        log,
		http: &http.Client{
			Timeout: timeout,
			Transport: &authTransport{
				base:           http.DefaultTransport,
				tokens:         tokens,
				onUnauthorized: onUnauthorized,
				log:            log,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, "login", http.MethodPost, loginPath, models.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if err := checkAuthResponse("login", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup registers a new account. The backend answers 200 or 201.
func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, "signup", http.MethodPost, signupPath, req, &resp); err != nil {
		return nil, err
	}
	if err := checkAuthResponse("signup", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout tells the backend to drop the current token. The body is ignored.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, "logout", http.MethodPost, logoutPath, nil, nil)
}

// Profile returns the current user. Both {"data": user} and a bare user
// object are accepted.
func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "profile", http.MethodGet, profilePath, nil, &raw); err != nil {
		return nil, err
	}

	var wrapped struct {
		Data *models.User `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("profile: %w: %v", ErrMalformedResponse, err)
	}
	user := wrapped.Data
	if user == nil {
		user = &models.User{}
		if err := json.Unmarshal(raw, user); err != nil {
			return nil, fmt.Errorf("profile: %w: %v", ErrMalformedResponse, err)
		}
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("profile: %w: %v", ErrMalformedResponse, err)
	}
	return user, nil
}

func (c *HTTPClient) EstimateHistory(ctx context.Context) ([]models.EstimateRecord, error) {
	var records []models.EstimateRecord
	if err := c.do(ctx, "history", http.MethodGet, historyPath, nil, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.EstimateRecord{}
	}
	return records, nil
}

func (c *HTTPClient) Predict(ctx context.Context, req models.PredictionRequest) (*models.Prediction, error) {
	var p models.Prediction
	if err := c.do(ctx, "predict", http.MethodPost, predictPath, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Ping probes the health endpoint. Any 2xx answer means online.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", http.MethodGet, c.healthPath, nil, nil)
}

// do sends one JSON request and decodes a 2xx body into out (when non-nil).
func (c *HTTPClient) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer netx.DrainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(ctx, op, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrMalformedResponse, err)
	}
	return nil
}

func (c *HTTPClient) apiError(ctx context.Context, op string, resp *http.Response) error {
	apiErr := &APIError{Op: op, StatusCode: resp.StatusCode}

	raw, err := netx.ReadLimited(resp.Body)
	if err == nil && len(raw) > 0 {
		var body models.ErrorResponse
		if json.Unmarshal(raw, &body) == nil {
			apiErr.Message = body.Text()
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	c.log.Info(ctx, "API call rejected", "op", op, "status", resp.StatusCode, "message", apiErr.Message)
	return apiErr
}

func (c *HTTPClient) endpoint(path string) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.TrimLeft(path, "/")
	return u.String()
}

func checkAuthResponse(op string, resp *models.AuthResponse) error {
	if resp.Token == "" {
		return fmt.Errorf("%s: %w: no token in reply", op, ErrMalformedResponse)
	}
	if resp.User == nil {
		return fmt.Errorf("%s: %w: no user in reply", op, ErrMalformedResponse)
	}
	return nil
}
