// Package clipboard writes the prompt to the system clipboard. A primary
// clipboard API is tried first; when it is missing or fails, a legacy path
// copies through a short-lived helper process or the terminal.
package clipboard

import (
	"context"
	"fmt"

	"github.com/hotend/aishare/pkg/util"
	"github.com/pterm/pterm"
)

// Primary is the platform's clipboard API.
type Primary interface {
	Available() bool
	WriteText(ctx context.Context, text string) error
}

// Legacy is the synchronous fallback copy path.
type Legacy interface {
	Copy(ctx context.Context, text string) error
}

// Result reports the outcome of a copy. Err is set when Success is false.
type Result struct {
	Success bool
	Err     error
}

// Writer copies text using Primary and falls back to Legacy.
type Writer struct {
	primary Primary
	legacy  Legacy
	log     *pterm.Logger
}

// NewWriter returns a Writer. Either path may be nil.
func NewWriter(primary Primary, legacy Legacy, log *pterm.Logger) *Writer {
	if log == nil {
		log = util.DiscardLogger
	}
	return &Writer{primary: primary, legacy: legacy, log: log}
}

// Compose builds the clipboard payload: the text, then a blank line and the
// url when one is given.
func Compose(text, url string) string {
	if url == "" {
		return text
	}
	return text + "\n\n" + url
}

// Copy places Compose(text, url) on the clipboard. It never panics; failures
// are logged and returned in the Result.
func (w *Writer) Copy(ctx context.Context, text, url string) (res Result) {
	payload := Compose(text, url)

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("clipboard write panicked: %v", r)
			w.log.Error("clipboard copy failed", w.log.Args("error", err))
			res = Result{Err: err}
		}
	}()

	if w.primary != nil && w.primary.Available() {
		err := w.primary.WriteText(ctx, payload)
		if err == nil {
			return Result{Success: true}
		}
		w.log.Warn("clipboard API failed, using fallback", w.log.Args("error", err))
	}

	return w.legacyCopy(ctx, payload)
}

func (w *Writer) legacyCopy(ctx context.Context, text string) Result {
	if w.legacy == nil {
		err := fmt.Errorf("no clipboard available")
		w.log.Error("legacy copy failed", w.log.Args("error", err))
		return Result{Err: err}
	}
	if err := w.legacy.Copy(ctx, text); err != nil {
		w.log.Error("legacy copy failed", w.log.Args("error", err))
		return Result{Err: fmt.Errorf("legacy copy: %w", err)}
	}
	return Result{Success: true}
}
