// Package analytics fans share-flow events out to optional tagging sinks.
// Emission is best effort: a failing sink is logged and skipped.
package analytics

import (
	"fmt"

	"github.com/hotend/aishare/pkg/util"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
)

// Category is attached to every event sent through a TagFunc.
const Category = "AI Share Mobile"

// Event names emitted by the share flow.
const (
	EventButtonClick           = "button_click"
	EventCopySuccess           = "copy_success"
	EventCopyError             = "copy_error"
	EventShareOpen             = "share_open"
	EventShareSuccess          = "share_success"
	EventShareError            = "share_error"
	EventFallbackCopyTriggered = "fallback_copy_triggered"
	EventWebAssistantOpen      = "web_assistant_open"
	EventDesktopDeeplinkOpen   = "desktop_deeplink_open"
)

// Sink receives events.
type Sink interface {
	Name() string
	Track(event string, data map[string]any) error
}

// Notifier delivers events to its sinks in order.
type Notifier struct {
	sinks []Sink
	log   *pterm.Logger
}

// NewNotifier returns a Notifier. Nil sinks are dropped, so optional sinks
// can be passed unconditionally.
func NewNotifier(log *pterm.Logger, sinks ...Sink) *Notifier {
	if log == nil {
		log = util.DiscardLogger
	}
	return &Notifier{
		sinks: lo.Filter(sinks, func(s Sink, _ int) bool { return !isNil(s) }),
		log:   log,
	}
}

// Emit sends the event to every sink and writes a diagnostic record.
func (n *Notifier) Emit(event string, data map[string]any) {
	if n == nil {
		return
	}
	for _, s := range n.sinks {
		if err := n.track(s, event, data); err != nil {
			n.log.Warn("analytics tracking failed", n.log.Args("sink", s.Name(), "event", event, "error", err))
		}
	}
	n.log.Info("AI Share Analytics: "+event, n.log.ArgsFromMap(data))
}

func (n *Notifier) track(s Sink, event string, data map[string]any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sink panicked: %v", r)
		}
	}()
	// Sinks get their own copy so none can mutate what the next one sees.
	return s.Track(event, clone(data))
}

func clone(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

func isNil(s Sink) bool {
	if s == nil {
		return true
	}
	switch v := s.(type) {
	case TagFunc:
		return v == nil
	case *DataLayer:
		return v == nil
	case *WriterSink:
		return v == nil
	}
	return false
}
