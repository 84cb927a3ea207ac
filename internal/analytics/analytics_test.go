package analytics

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FakeSink struct {
	name      string
	TrackFunc func(event string, data map[string]any) error
	events    []string
}

func (f *FakeSink) Name() string { return f.name }

func (f *FakeSink) Track(event string, data map[string]any) error {
	f.events = append(f.events, event)
	if f.TrackFunc != nil {
		return f.TrackFunc(event, data)
	}
	return nil
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestEmitTagFuncAddsCategory(t *testing.T) {
	var gotCommand, gotEvent string
	var gotParams map[string]any
	tag := TagFunc(func(command, event string, params map[string]any) {
		gotCommand, gotEvent, gotParams = command, event, params
	})

	NewNotifier(nil, tag).Emit(EventButtonClick, map[string]any{"assistant": "claude"})

	assert.Equal(t, "event", gotCommand)
	assert.Equal(t, EventButtonClick, gotEvent)
	assert.Equal(t, map[string]any{"event_category": Category, "assistant": "claude"}, gotParams)
}

func TestEmitDataLayerShape(t *testing.T) {
	dl := &DataLayer{}
	n := NewNotifier(nil, dl)

	n.Emit(EventShareOpen, map[string]any{"isMobile": true, "title": "Hotend V6"})
	n.Emit(EventShareSuccess, map[string]any{"isMobile": true})

	assert.Equal(t, []string{EventShareOpen, EventShareSuccess}, dl.Events())
	assert.Equal(t, map[string]any{"event": EventShareOpen, "isMobile": true, "title": "Hotend V6"}, dl.Entries()[0])
}

func TestEmitIsolatesSinkFailures(t *testing.T) {
	var logs bytes.Buffer
	log := pterm.DefaultLogger.WithWriter(&logs).WithLevel(pterm.LogLevelWarn)

	failing := &FakeSink{name: "failing", TrackFunc: func(string, map[string]any) error {
		return errors.New("queue closed")
	}}
	panicking := &FakeSink{name: "panicking", TrackFunc: func(string, map[string]any) error {
		panic("gtag is not a function")
	}}
	last := &FakeSink{name: "last"}

	n := NewNotifier(log, failing, panicking, last)
	assert.NotPanics(t, func() {
		n.Emit(EventCopyError, map[string]any{"message": "x"})
	})

	assert.Equal(t, []string{EventCopyError}, failing.events)
	assert.Equal(t, []string{EventCopyError}, panicking.events)
	assert.Equal(t, []string{EventCopyError}, last.events)
	assert.Contains(t, logs.String(), "queue closed")
	assert.Contains(t, logs.String(), "gtag is not a function")
}

func TestEmitSinkCannotMutateOthers(t *testing.T) {
	mutating := &FakeSink{name: "mutating", TrackFunc: func(_ string, data map[string]any) error {
		data["assistant"] = "tampered"
		return nil
	}}
	dl := &DataLayer{}
	data := map[string]any{"assistant": "gemini"}

	NewNotifier(nil, mutating, dl).Emit(EventButtonClick, data)

	assert.Equal(t, "gemini", dl.Entries()[0]["assistant"])
	assert.Equal(t, "gemini", data["assistant"])
}

func TestNewNotifierDropsNilSinks(t *testing.T) {
	var tag TagFunc
	var dl *DataLayer
	var ws *WriterSink
	n := NewNotifier(nil, nil, tag, dl, ws)
	assert.Empty(t, n.sinks)
	assert.NotPanics(t, func() { n.Emit(EventButtonClick, nil) })
}

func TestNilNotifier(t *testing.T) {
	var n *Notifier
	assert.NotPanics(t, func() { n.Emit(EventButtonClick, nil) })
}

func TestWriterSinkWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(nil, NewWriterSink(&buf))

	n.Emit(EventButtonClick, map[string]any{"assistant": "chatgpt"})
	n.Emit(EventDesktopDeeplinkOpen, map[string]any{"assistant": "chatgpt"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "button_click", first["event"])
	assert.Equal(t, "chatgpt", first["assistant"])
}

func TestWriterSinkReportsWriteErrors(t *testing.T) {
	err := NewWriterSink(failingWriter{}).Track(EventButtonClick, nil)
	assert.ErrorContains(t, err, "disk full")
}
