package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/normanking/signavatar/internal/animation"
	"github.com/normanking/signavatar/internal/config"
	"github.com/normanking/signavatar/internal/nlp"
	"github.com/normanking/signavatar/internal/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.DefaultConfig().Server
	pipe := pipeline.New(animation.DefaultConfig(), nlp.DefaultConfig(), nil)
	srv := New(cfg, pipe, nil, nil)
	ts := httptest.NewServer(srv.httpSrv.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 89, body["signs"])
}

func TestServer_Signs(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/signs")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Count  int      `json:"count"`
		Tokens []string `json:"tokens"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 89, body.Count)
	assert.Contains(t, body.Tokens, "Hello")
	assert.Contains(t, body.Tokens, "0")
}

func TestServer_SignByToken(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/signs/Hello")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var def struct {
		Token      string `json:"token"`
		MotionType string `json:"motion_type"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&def))
	assert.Equal(t, "Hello", def.Token)
	assert.Equal(t, "wave", def.MotionType)
}

func TestServer_SignByToken_NotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/signs/NoSuchSign")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_Translate(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/translate", "application/json",
		strings.NewReader(`{"text":"hello"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		NLP struct {
			Signs []string `json:"signs"`
		} `json:"nlp"`
		Animation struct {
			TotalDuration int `json:"total_duration"`
		} `json:"animation"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"Hello"}, body.NLP.Signs)
	assert.Equal(t, 2100, body.Animation.TotalDuration)
}

func TestServer_Translate_BadRequests(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"invalid json", `{`, http.StatusBadRequest},
		{"empty text", `{"text":""}`, http.StatusBadRequest},
		{"oversized text", `{"text":"` + strings.Repeat("a ", 600) + `"}`, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/translate", "application/json",
				strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestStreamer_Animate(t *testing.T) {
	ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/animate"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"text": "hi"}))

	var header streamMessage
	require.NoError(t, conn.ReadJSON(&header))
	require.Equal(t, "sequence", header.Type)
	require.NotNil(t, header.Sequence)
	assert.Equal(t, []string{"Hello"}, header.Sequence.Signs)

	frames := 0
	for {
		var msg streamMessage
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Type == "complete" {
			break
		}
		require.Equal(t, "frame", msg.Type)
		require.NotNil(t, msg.Frame)
		frames++
	}
	assert.Equal(t, header.Sequence.FrameCount, frames)
}

func TestStreamer_Animate_EmptyTextError(t *testing.T) {
	ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/animate"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"text": ""}))

	var msg streamMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.NotEmpty(t, msg.Error)
}
