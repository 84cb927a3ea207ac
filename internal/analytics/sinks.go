package analytics

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// TagFunc is a gtag-style tagging function: it is called with the command
// "event", the event name and the event parameters.
type TagFunc func(command, event string, params map[string]any)

// Name implements Sink.
func (f TagFunc) Name() string { return "tag" }

// Track implements Sink. Parameters carry event_category set to Category.
func (f TagFunc) Track(event string, data map[string]any) error {
	params := make(map[string]any, len(data)+1)
	params["event_category"] = Category
	for k, v := range data {
		params[k] = v
	}
	f("event", event, params)
	return nil
}

// DataLayer is an in-memory event queue in the tag-manager data layer shape:
// each entry is the event data plus an "event" key. Safe for concurrent use.
type DataLayer struct {
	mu      sync.Mutex
	entries []map[string]any
}

// Name implements Sink.
func (d *DataLayer) Name() string { return "dataLayer" }

// Track implements Sink.
func (d *DataLayer) Track(event string, data map[string]any) error {
	d.Push(entry(event, data))
	return nil
}

// Push appends a raw entry.
func (d *DataLayer) Push(e map[string]any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = append(d.entries, e)
}

// Entries returns a copy of the queued entries.
func (d *DataLayer) Entries() []map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]map[string]any(nil), d.entries...)
}

// Events returns the event names in the order they were pushed.
func (d *DataLayer) Events() []string {
	entries := d.Entries()
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := e["event"].(string); ok {
			names = append(names, name)
		}
	}
	return names
}

// WriterSink writes each data layer entry as one JSON line.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink writing JSON lines to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Name implements Sink.
func (s *WriterSink) Name() string { return "jsonl" }

// Track implements Sink.
func (s *WriterSink) Track(event string, data map[string]any) error {
	line, err := json.Marshal(entry(event, data))
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

func entry(event string, data map[string]any) map[string]any {
	e := make(map[string]any, len(data)+1)
	for k, v := range data {
		e[k] = v
	}
	e["event"] = event
	return e
}
