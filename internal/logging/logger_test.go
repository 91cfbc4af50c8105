package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Logger = (*ZerologAdapter)(nil)
	_ Logger = (*StdLoggerAdapter)(nil)
)

// decodeEvents parses one JSON object per line of zerolog output.
func decodeEvents(t *testing.T, out string) []map[string]any {
	t.Helper()
	var events []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var ev map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &ev), line)
		events = append(events, ev)
	}
	return events
}

func TestNewLoggerTagsComponent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewLogger(&buf, "calibrate").Info("band calibrated", String("band", "toom22"), Int("crossover", 24))

	events := decodeEvents(t, buf.String())
	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, "calibrate", ev["component"])
	assert.Equal(t, "info", ev["level"])
	assert.Equal(t, "band calibrated", ev["message"])
	assert.Equal(t, "toom22", ev["band"])
	assert.EqualValues(t, 24, ev["crossover"])
	assert.Contains(t, ev, "time")
}

func TestZerologAdapterFieldTypes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := NewZerologAdapter(zerolog.New(&buf))
	l.Info("fields",
		String("op", "mul"),
		Int("limbs", 700),
		Uint64("seed", 1<<63),
		Float64("seconds", 0.25),
		Field{Key: "quick", Value: true},
		Field{Key: "bands", Value: []string{"fft", "fft_square"}},
		Field{Key: "cause", Value: errors.New("overflow")},
	)

	ev := decodeEvents(t, buf.String())[0]
	assert.Equal(t, "mul", ev["op"])
	assert.EqualValues(t, 700, ev["limbs"])
	assert.EqualValues(t, uint64(1<<63), ev["seed"])
	assert.EqualValues(t, 0.25, ev["seconds"])
	assert.Equal(t, true, ev["quick"])
	assert.Equal(t, []any{"fft", "fft_square"}, ev["bands"])
	assert.Equal(t, "overflow", ev["cause"])
}

func TestZerologAdapterLevels(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel))
	l.Debug("thresholds resolved", String("source", "env"))
	l.Error("threshold profile ignored", errors.New("bad json"), String("path", "p.json"))
	l.Printf("%d bands", 9)
	l.Println("calibration", "complete")

	events := decodeEvents(t, buf.String())
	require.Len(t, events, 3, "debug event must be filtered at info level")
	assert.Equal(t, "error", events[0]["level"])
	assert.Equal(t, "bad json", events[0]["error"])
	assert.Equal(t, "p.json", events[0]["path"])
	assert.Equal(t, "9 bands", events[1]["message"])
	assert.Equal(t, "calibration complete", events[2]["message"])
}

func TestNopDiscards(t *testing.T) {
	t.Parallel()
	l := Nop()
	l.Info("ignored")
	l.Error("ignored", errors.New("x"))
	assert.Equal(t, zerolog.Disabled, l.Zerolog().GetLevel())
}

func TestStdLoggerAdapter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		log  func(Logger)
		want string
	}{
		{"info without fields", func(l Logger) { l.Info("starting") }, "[INFO] starting\n"},
		{"info with fields", func(l Logger) { l.Info("band", String("name", "fft"), Int("limbs", 2500)) }, "[INFO] band name=fft limbs=2500\n"},
		{"error puts the error first", func(l Logger) { l.Error("failed", errors.New("mismatch"), Int("limbs", 7)) }, "[ERROR] failed error=mismatch limbs=7\n"},
		{"debug", func(l Logger) { l.Debug("resolved", String("source", "default")) }, "[DEBUG] resolved source=default\n"},
		{"printf", func(l Logger) { l.Printf("%s=%d", "fft", 2500) }, "fft=2500\n"},
		{"println", func(l Logger) { l.Println("a", 1) }, "a 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	assert.Equal(t, Field{"band", "fft"}, String("band", "fft"))
	assert.Equal(t, Field{"limbs", 3}, Int("limbs", 3))
	assert.Equal(t, Field{"seed", uint64(9)}, Uint64("seed", 9))
	assert.Equal(t, Field{"ratio", 1.5}, Float64("ratio", 1.5))
	assert.Equal(t, Field{"error", err}, Err(err))
}
