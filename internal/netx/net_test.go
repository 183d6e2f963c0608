package netx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUnreachable(t *testing.T) {
	assert.False(t, IsUnreachable(nil))
	assert.False(t, IsUnreachable(errors.New("plain")))
	assert.False(t, IsUnreachable(context.Canceled))
	assert.False(t, IsUnreachable(fmt.Errorf("wrapped: %w", context.Canceled)))
	assert.True(t, IsUnreachable(context.DeadlineExceeded))
}

func TestIsUnreachable_RefusedConnection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := ts.URL
	ts.Close()

	c := &http.Client{Timeout: 2 * time.Second}
	_, err := c.Get(addr)
	require.Error(t, err)
	assert.True(t, IsUnreachable(err))
}

func TestIsUnreachable_CancelledRequest(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	_, err = http.DefaultClient.Do(req)
	require.Error(t, err)
	assert.False(t, IsUnreachable(err))
}

func TestReadLimited_Truncates(t *testing.T) {
	big := strings.Repeat("a", MaxErrorBody+100)
	b, err := ReadLimited(strings.NewReader(big))
	require.NoError(t, err)
	assert.Len(t, b, MaxErrorBody)
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func TestDrainAndClose(t *testing.T) {
	b := &trackingBody{Reader: strings.NewReader("leftover")}
	DrainAndClose(b)
	assert.True(t, b.closed)

	DrainAndClose(nil)
}
