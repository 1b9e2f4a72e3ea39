package logging

import (
	"encoding/json"
	"testing"
	"time"
)

func newTestLogger(t *testing.T) *Logger {
	t.Helper()
	l, err := New(&Config{
		LogDir:     t.TempDir(),
		Level:      LevelInfo,
		MaxHistory: 16,
		Console:    false,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLogger_CapturesHistory(t *testing.T) {
	l := newTestLogger(t)

	l.log.Info().Str("component", "server").Msg("listening")

	entries := l.GetHistory(1)
	if len(entries) != 1 {
		t.Fatalf("GetHistory(1) returned %d entries", len(entries))
	}
	got := entries[0]
	if got.Level != "info" || got.Message != "listening" {
		t.Errorf("entry = %+v, want info/listening", got)
	}
	if got.Timestamp == "" {
		t.Error("entry has no timestamp")
	}
}

func TestLogEntry_NoEmptyFields(t *testing.T) {
	l := newTestLogger(t)

	c := l.Component("pipeline")
	c.Warn().Msg("vocabulary gap")

	entries := l.GetHistory(1)
	if len(entries) != 1 {
		t.Fatalf("GetHistory(1) returned %d entries", len(entries))
	}

	b, err := json.Marshal(entries[0])
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]string
	if err := json.Unmarshal(b, &fields); err != nil {
		t.Fatal(err)
	}
	for name, value := range fields {
		if value == "" {
			t.Errorf("field %q serialized empty", name)
		}
	}
}

func TestLogger_HistoryRingBounded(t *testing.T) {
	l := newTestLogger(t)

	for i := 0; i < 40; i++ {
		l.log.Info().Int("n", i).Msg("tick")
	}

	if got := len(l.GetHistory(0)); got != 16 {
		t.Errorf("history holds %d entries, want 16", got)
	}
}

func TestLogger_OnLogCallback(t *testing.T) {
	l := newTestLogger(t)

	ch := make(chan LogEntry, 1)
	l.SetOnLog(func(e LogEntry) { ch <- e })

	l.log.Error().Msg("boom")

	select {
	case e := <-ch:
		if e.Message != "boom" || e.Level != "error" {
			t.Errorf("callback entry = %+v", e)
		}
	case <-time.After(time.Second):
		t.Fatal("callback never fired")
	}
}
