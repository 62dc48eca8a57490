package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWSTokenHandler(t *testing.T) {
	h := newServerHarness(t)

	rec := h.do(httptest.NewRequest(http.MethodPost, "/v1/ws-token", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp WSTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 60, resp.ExpiresIn)
}

func TestWSEventsHandler_TokenAttach(t *testing.T) {
	h := newServerHarness(t)

	srv := httptest.NewServer(h.server.echo)
	defer srv.Close()

	rec := h.do(httptest.NewRequest(http.MethodPost, "/v1/ws-token", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var tokenResp WSTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokenResp))

	ctx := t.Context()
	conn, _, err := websocket.Dial(ctx,
		"ws"+srv.URL[len("http"):]+"/ws/events?ws_token="+tokenResp.Token, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	// The hub greets every new connection.
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var hello struct {
		Type         string `json:"type"`
		ConnectionID string `json:"connection_id"`
	}
	require.NoError(t, json.Unmarshal(data, &hello))
	assert.Equal(t, "connection.established", hello.Type)
	assert.NotEmpty(t, hello.ConnectionID)

	// Tokens are single-use.
	_, resp, err := websocket.Dial(ctx,
		"ws"+srv.URL[len("http"):]+"/ws/events?ws_token="+tokenResp.Token, nil)
	require.Error(t, err)
	if resp != nil {
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestWSEventsHandler_LegacyCredentials(t *testing.T) {
	h := newServerHarness(t)

	srv := httptest.NewServer(h.server.echo)
	defer srv.Close()

	conn, _, err := websocket.Dial(t.Context(),
		"ws"+srv.URL[len("http"):]+"/ws/events?client_id="+h.account.ClientID+"&client_secret="+h.clientSecret, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	_, data, err := conn.Read(t.Context())
	require.NoError(t, err)
	assert.Contains(t, string(data), "connection.established")
}

func TestWSEventsHandler_RejectsMissingAuth(t *testing.T) {
	h := newServerHarness(t)

	srv := httptest.NewServer(h.server.echo)
	defer srv.Close()

	_, resp, err := websocket.Dial(t.Context(), "ws"+srv.URL[len("http"):]+"/ws/events", nil)
	require.Error(t, err)
	if resp != nil {
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestWSEventsHandler_StatsRecorded(t *testing.T) {
	h := newServerHarness(t)

	srv := httptest.NewServer(h.server.echo)
	defer srv.Close()

	conn, _, err := websocket.Dial(t.Context(),
		"ws"+srv.URL[len("http"):]+"/ws/events?client_id="+h.account.ClientID+"&client_secret="+h.clientSecret, nil)
	require.NoError(t, err)
	conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		stats, err := h.stats.GetStats(t.Context(), h.account.ID)
		if err != nil {
			return false
		}
		return stats.WsConnects >= 1
	}, 5*time.Second, 50*time.Millisecond)
}
