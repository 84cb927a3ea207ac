package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
)

// System is the Primary backed by the operating system clipboard.
type System struct{}

// Available reports whether a clipboard backend was found for this OS.
func (System) Available() bool {
	return !clipboard.Unsupported
}

// WriteText writes text, giving up when ctx is done. The underlying write is
// not cancellable and may still complete afterwards.
func (System) WriteText(ctx context.Context, text string) error {
	done := make(chan error, 1)
	go func() {
		done <- clipboard.WriteAll(text)
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
