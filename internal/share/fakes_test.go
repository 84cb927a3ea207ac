package share

import (
	"context"
	"sync"
	"time"

	"github.com/hotend/aishare/internal/clipboard"
)

type FakePlatform struct {
	Mobile         bool
	ShareAvailable bool
	ShareFunc      func(ctx context.Context, p Payload) error
	OpenWindowFunc func(url string) (Window, error)

	mu     sync.Mutex
	shared []Payload
	opened []string
}

func (f *FakePlatform) IsMobile() bool { return f.Mobile }

func (f *FakePlatform) CanShare() bool { return f.ShareAvailable }

func (f *FakePlatform) Share(ctx context.Context, p Payload) error {
	f.mu.Lock()
	f.shared = append(f.shared, p)
	f.mu.Unlock()
	if f.ShareFunc != nil {
		return f.ShareFunc(ctx, p)
	}
	return nil
}

func (f *FakePlatform) OpenWindow(url string) (Window, error) {
	f.mu.Lock()
	f.opened = append(f.opened, url)
	f.mu.Unlock()
	if f.OpenWindowFunc != nil {
		return f.OpenWindowFunc(url)
	}
	return &FakeWindow{location: url}, nil
}

func (f *FakePlatform) Opened() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.opened...)
}

type FakeWindow struct {
	closed   bool
	location string
}

func (w *FakeWindow) Closed() bool     { return w.closed }
func (w *FakeWindow) Location() string { return w.location }

type FakeCopier struct {
	CopyFunc func(ctx context.Context, text, url string) clipboard.Result
	calls    []string
}

func (f *FakeCopier) Copy(ctx context.Context, text, url string) clipboard.Result {
	f.calls = append(f.calls, clipboard.Compose(text, url))
	if f.CopyFunc != nil {
		return f.CopyFunc(ctx, text, url)
	}
	return clipboard.Result{Success: true}
}

type toast struct {
	kind     ToastKind
	message  string
	duration time.Duration
}

type FakeToaster struct {
	mu     sync.Mutex
	toasts []toast
}

func (f *FakeToaster) Show(kind ToastKind, message string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toasts = append(f.toasts, toast{kind: kind, message: message, duration: d})
}
