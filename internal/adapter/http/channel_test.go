package adapthttp_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "fittrack/internal/adapter/http"
)

func dialChannel(t *testing.T, url string, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(url, "http") + "/ws"
	return websocket.DefaultDialer.Dial(wsURL, header)
}

func readText(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	kind, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.TextMessage, kind)
	return string(payload)
}

func TestChannel_WelcomePingEcho(t *testing.T) {
	ts := newTestServer(t, testEnv{})

	conn, _, err := dialChannel(t, ts.URL, nil)
	require.NoError(t, err)
	defer conn.Close() //nolint:errcheck

	assert.Equal(t, adapthttp.WelcomeMessage, readText(t, conn))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("PING")))
	assert.Equal(t, adapthttp.ReminderMessage, readText(t, conn))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello")))
	assert.Equal(t, "Echo: hello", readText(t, conn))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))
	assert.Equal(t, adapthttp.ReminderMessage, readText(t, conn))
}

func TestChannel_RejectsForeignOrigin(t *testing.T) {
	ts := newTestServer(t, testEnv{})

	header := http.Header{}
	header.Set("Origin", "http://evil.example")
	_, resp, err := dialChannel(t, ts.URL, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestChannel_AllowsConfiguredOrigin(t *testing.T) {
	ts := newTestServer(t, testEnv{})

	header := http.Header{}
	header.Set("Origin", "http://localhost:5173")
	conn, _, err := dialChannel(t, ts.URL, header)
	require.NoError(t, err)
	defer conn.Close() //nolint:errcheck
	assert.Equal(t, adapthttp.WelcomeMessage, readText(t, conn))
}
