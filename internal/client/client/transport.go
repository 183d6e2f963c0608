package client

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/rentpred/internal/common"
	"github.com/dmitrijs2005/rentpred/internal/logging"
	"github.com/google/uuid"
)

// authTransport is the request/response interceptor. On the way out it
// attaches the current bearer token and a request id; on the way back it
// reports every 401 to the session owner.
type authTransport struct {
	base           http.RoundTripper
	tokens         TokenSource
	onUnauthorized UnauthorizedHandler
	log            logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	var (
		token      string
		generation uint64
	)
	if t.tokens != nil {
		var err error
		token, generation, err = t.tokens.Token(ctx)
		if err != nil {
			t.log.Warn(ctx, "cannot read bearer token, sending request without it", "error", err)
			token = ""
		}
	}

	out := req.Clone(ctx)
	if token != "" {
		out.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	requestID := uuid.NewString()
	out.Header.Set(common.RequestIDHeaderName, requestID)
	out.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := t.base.RoundTrip(out)
	if err != nil {
		t.log.Debug(ctx, "request failed", "method", out.Method, "path", out.URL.Path, "request_id", requestID, "error", err)
		return nil, err
	}

	t.log.Debug(ctx, "request done",
		"method", out.Method,
		"path", out.URL.Path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode == http.StatusUnauthorized && t.onUnauthorized != nil {
		t.onUnauthorized.HandleUnauthorized(context.WithoutCancel(ctx), generation)
	}
	return resp, nil
}
