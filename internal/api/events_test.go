package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maitred/internal/coordinator"
)

func TestEventBroadcast(t *testing.T) {
	server, hub := newTestServer(t)

	ts := httptest.NewServer(server.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// The handler registers the client after the handshake completes.
	require.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()
		return len(hub.clients) == 1
	}, time.Second, 10*time.Millisecond)

	w := do(t, server, "POST", "/api/v1/reservations",
		`{"customer_name":"Ana","phone":"555-1212","party_size":2,"date":"2024-05-01","time":"19:00"}`)
	require.Equal(t, 201, w.Code)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var event coordinator.Event
	require.NoError(t, json.Unmarshal(message, &event))
	assert.Equal(t, coordinator.EventReservationCreated, event.Type)
	assert.Equal(t, "RES2001", event.ReservationID)
	assert.Equal(t, 1, event.TableNumber)
}
