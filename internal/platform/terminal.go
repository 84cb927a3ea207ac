// Package platform provides the capabilities the share flow needs when it
// runs in a terminal: device detection, launching the system browser, a
// native share target and transient messages.
package platform

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/hotend/aishare/internal/device"
	"github.com/hotend/aishare/internal/share"
	"github.com/hotend/aishare/pkg/util"
	"github.com/mattn/go-isatty"
	"github.com/pkg/browser"
	"github.com/pterm/pterm"
)

// Sharer delivers a payload to a native share target.
type Sharer interface {
	Share(ctx context.Context, p share.Payload) error
}

// Terminal implements share.Platform for a terminal session.
type Terminal struct {
	env    func() device.Environment
	sharer Sharer
	open   func(url string) error
	log    *pterm.Logger
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithEnvironment replaces the detected device environment.
func WithEnvironment(fn func() device.Environment) Option {
	return func(t *Terminal) { t.env = fn }
}

// WithSharer sets the native share target. Nil disables sharing.
func WithSharer(s Sharer) Option {
	return func(t *Terminal) { t.sharer = s }
}

// WithOpener replaces the browser launcher.
func WithOpener(fn func(url string) error) Option {
	return func(t *Terminal) { t.open = fn }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *pterm.Logger) Option {
	return func(t *Terminal) { t.log = l }
}

// NewTerminal returns a Terminal using the process environment and the
// system browser. Sharing is off unless WithSharer is given; DetectSharer
// finds the best target for the session.
func NewTerminal(opts ...Option) *Terminal {
	t := &Terminal{
		env:  device.Current,
		open: openInBrowser,
		log:  util.DiscardLogger,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Environment returns the device environment as detected now.
func (t *Terminal) Environment() device.Environment {
	return t.env()
}

// IsMobile implements share.Platform.
func (t *Terminal) IsMobile() bool {
	return t.env().IsMobile()
}

// CanShare implements share.Platform.
func (t *Terminal) CanShare() bool {
	return t.sharer != nil
}

// Share implements share.Platform.
func (t *Terminal) Share(ctx context.Context, p share.Payload) error {
	if t.sharer == nil {
		return share.ErrShareUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.sharer.Share(ctx, p)
}

// OpenWindow implements share.Platform. The browser is launched as a separate
// process, so the page has no handle back to us.
func (t *Terminal) OpenWindow(url string) (share.Window, error) {
	if err := t.open(url); err != nil {
		return nil, err
	}
	t.log.Debug("opened assistant in browser", t.log.Args("url", url))
	return launched(url), nil
}

// launched is the handle of a browser window started by another process.
// Such a window cannot be observed afterwards; it reports the URL it was
// opened with.
type launched string

func (l launched) Closed() bool     { return false }
func (l launched) Location() string { return string(l) }

func openInBrowser(url string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL(url)
}

// DetectSharer picks termux-share when it is installed, an interactive share
// sheet when both in and out are terminals, and nil otherwise.
func DetectSharer(in, out *os.File, copier share.Copier) Sharer {
	if path, err := exec.LookPath(termuxShareBin); err == nil {
		return &TermuxSharer{bin: path}
	}
	if isTerminal(in) && isTerminal(out) {
		return NewSheet(copier)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
