package share

import (
	"fmt"
	"time"
)

// openAssistantWeb opens the assistant web app for the flow's prompt.
func (o *Orchestrator) openAssistantWeb(f *flow) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("open window panicked: %v", r)
		}
		if err != nil {
			o.log.Error("failed to open assistant web version", o.log.Args("assistant", f.assistant, "error", err))
		}
	}()

	url := o.registry.URLFor(f.assistant, f.req.PromptText)
	win, err := o.platform.OpenWindow(url)
	if err != nil {
		return err
	}
	o.schedulePopupCheck(url, win)
	return nil
}

// schedulePopupCheck looks at the window shortly after it was opened. The
// signal is only logged; it does not change the outcome of the flow.
func (o *Orchestrator) schedulePopupCheck(url string, win Window) {
	o.checks.Add(1)
	time.AfterFunc(o.popupDelay, func() {
		defer o.checks.Done()
		if looksBlocked(win) {
			o.log.Debug("popup may have been blocked", o.log.Args("url", url))
		}
	})
}

// looksBlocked treats a window that cannot be inspected as open: a foreign
// origin refuses inspection once it has loaded.
func looksBlocked(win Window) (blocked bool) {
	if win == nil {
		return true
	}
	defer func() {
		if recover() != nil {
			blocked = false
		}
	}()
	if win.Closed() {
		return true
	}
	loc := win.Location()
	return loc == "" || loc == "about:blank"
}
