package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/normanking/signavatar/internal/animation"
	"github.com/normanking/signavatar/internal/bus"
	"github.com/normanking/signavatar/internal/pipeline"
)

// Streamer serves animation frames over WebSocket, paced to the
// sequence timeline so a thin client can render in real time.
type Streamer struct {
	pipe     *pipeline.Pipeline
	events   *bus.EventBus
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewStreamer builds the WebSocket streamer.
func NewStreamer(pipe *pipeline.Pipeline, events *bus.EventBus) *Streamer {
	return &Streamer{
		pipe:   pipe,
		events: events,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Rendering clients are served from anywhere.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: log.With().Str("component", "stream").Logger(),
	}
}

// animateRequest is one inbound translation request on the socket.
type animateRequest struct {
	Text string `json:"text"`
}

// streamMessage is the envelope for every outbound message.
type streamMessage struct {
	Type     string           `json:"type"` // sequence, frame, complete, error
	Error    string           `json:"error,omitempty"`
	Sequence *sequenceHeader  `json:"sequence,omitempty"`
	Frame    *animation.Frame `json:"frame,omitempty"`
}

// sequenceHeader announces an upcoming frame stream.
type sequenceHeader struct {
	Signs         []string                  `json:"signs"`
	TotalDuration int                       `json:"total_duration"`
	FrameCount    int                       `json:"frame_count"`
	Schedule      []animation.ScheduleEntry `json:"schedule"`
}

// HandleAnimate upgrades the connection and serves translation
// requests until the client disconnects. Each request streams its
// frames at the configured frame rate.
func (st *Streamer) HandleAnimate(w http.ResponseWriter, r *http.Request) {
	conn, err := st.upgrader.Upgrade(w, r, nil)
	if err != nil {
		st.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	st.logger.Info().Str("remote", remote).Msg("animation client connected")
	st.publish(bus.EventTypeClientConnected, map[string]any{"remote": remote})
	defer st.publish(bus.EventTypeClientDisconnected, map[string]any{"remote": remote})

	for {
		var req animateRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				st.logger.Info().Str("remote", remote).Msg("animation client disconnected")
			} else {
				st.logger.Warn().Err(err).Str("remote", remote).Msg("read failed")
			}
			return
		}

		if err := st.streamTranslation(conn, req.Text); err != nil {
			st.logger.Warn().Err(err).Str("remote", remote).Msg("stream aborted")
			return
		}
	}
}

func (st *Streamer) streamTranslation(conn *websocket.Conn, text string) error {
	if strings.TrimSpace(text) == "" {
		return conn.WriteJSON(streamMessage{Type: "error", Error: "empty text"})
	}

	result, err := st.pipe.Translate(context.Background(), text)
	if err != nil {
		return conn.WriteJSON(streamMessage{Type: "error", Error: err.Error()})
	}

	seq := result.Animation
	header := streamMessage{
		Type: "sequence",
		Sequence: &sequenceHeader{
			Signs:         seq.Signs,
			TotalDuration: seq.TotalDuration,
			FrameCount:    len(seq.Frames),
			Schedule:      seq.Schedule,
		},
	}
	if err := conn.WriteJSON(header); err != nil {
		return err
	}

	// Pace frames by their timestamps relative to stream start.
	start := time.Now()
	for i := range seq.Frames {
		frame := &seq.Frames[i]

		due := time.Duration(frame.Timestamp) * time.Millisecond
		if wait := due - time.Since(start); wait > 0 {
			time.Sleep(wait)
		}

		if err := conn.WriteJSON(streamMessage{Type: "frame", Frame: frame}); err != nil {
			return err
		}
		st.publish(bus.EventTypeFrameStreamed, map[string]any{"sign": frame.Sign})
	}

	return conn.WriteJSON(streamMessage{Type: "complete"})
}

func (st *Streamer) publish(t bus.EventType, data map[string]any) {
	if st.events == nil {
		return
	}
	st.events.Publish(bus.Event{Type: t, Data: data})
}
