package platform

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/hotend/aishare/internal/share"
	"github.com/pterm/pterm"
)

// Toaster shows share-flow messages in the terminal. On an interactive
// terminal the message is removed again after its duration.
type Toaster struct {
	out         io.Writer
	interactive bool
	wg          sync.WaitGroup
}

// NewToaster returns a Toaster writing to stdout.
func NewToaster() *Toaster {
	return &Toaster{out: os.Stdout, interactive: isTerminal(os.Stdout)}
}

// NewPlainToaster returns a Toaster that writes permanent lines to w.
func NewPlainToaster(w io.Writer) *Toaster {
	return &Toaster{out: w}
}

func printerFor(kind share.ToastKind) pterm.PrefixPrinter {
	if kind == share.ToastError {
		return pterm.Error
	}
	return pterm.Success
}

// Show implements share.Toaster.
func (t *Toaster) Show(kind share.ToastKind, message string, d time.Duration) {
	printer := printerFor(kind)
	text := printer.Sprint(message)
	if !t.interactive || d <= 0 {
		pterm.Fprintln(t.out, text)
		return
	}

	area, err := pterm.DefaultArea.WithRemoveWhenDone().Start(text)
	if err != nil {
		pterm.Fprintln(t.out, text)
		return
	}
	t.wg.Add(1)
	time.AfterFunc(d, func() {
		defer t.wg.Done()
		_ = area.Stop()
	})
}

// Wait blocks until every transient message has been removed.
func (t *Toaster) Wait() {
	t.wg.Wait()
}
