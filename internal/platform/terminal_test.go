package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/hotend/aishare/internal/device"
	"github.com/hotend/aishare/internal/share"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FakeSharer struct {
	ShareFunc func(ctx context.Context, p share.Payload) error
	shared    []share.Payload
}

func (f *FakeSharer) Share(ctx context.Context, p share.Payload) error {
	f.shared = append(f.shared, p)
	if f.ShareFunc != nil {
		return f.ShareFunc(ctx, p)
	}
	return nil
}

func fixedEnv(env device.Environment) func() device.Environment {
	return func() device.Environment { return env }
}

func TestTerminalDetectsMobileFreshly(t *testing.T) {
	env := device.Environment{UserAgent: "Mozilla/5.0 (Windows NT 10.0)"}
	term := NewTerminal(WithEnvironment(func() device.Environment { return env }))

	assert.False(t, term.IsMobile())
	env.UserAgent = "Mozilla/5.0 (Linux; Android 14)"
	assert.True(t, term.IsMobile())
	assert.Equal(t, env, term.Environment())
}

func TestTerminalWithoutSharer(t *testing.T) {
	term := NewTerminal(WithEnvironment(fixedEnv(device.Environment{})))

	assert.False(t, term.CanShare())
	assert.ErrorIs(t, term.Share(context.Background(), share.Payload{}), share.ErrShareUnavailable)
}

func TestTerminalShareDelegates(t *testing.T) {
	sharer := &FakeSharer{}
	term := NewTerminal(WithSharer(sharer))

	require.True(t, term.CanShare())
	require.NoError(t, term.Share(context.Background(), share.Payload{Title: "T"}))
	assert.Equal(t, []share.Payload{{Title: "T"}}, sharer.shared)
}

func TestTerminalShareHonoursCancelledContext(t *testing.T) {
	sharer := &FakeSharer{}
	term := NewTerminal(WithSharer(sharer))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, term.Share(ctx, share.Payload{}), context.Canceled)
	assert.Empty(t, sharer.shared)
}

func TestTerminalOpenWindow(t *testing.T) {
	var opened []string
	term := NewTerminal(WithOpener(func(url string) error {
		opened = append(opened, url)
		return nil
	}))

	win, err := term.OpenWindow("https://chatgpt.com/?q=x")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://chatgpt.com/?q=x"}, opened)
	assert.False(t, win.Closed())
	assert.Equal(t, "https://chatgpt.com/?q=x", win.Location())
}

func TestTerminalOpenWindowError(t *testing.T) {
	term := NewTerminal(WithOpener(func(url string) error {
		return errors.New("exec: \"xdg-open\": executable file not found in $PATH")
	}))

	win, err := term.OpenWindow("https://claude.ai/new")
	assert.Error(t, err)
	assert.Nil(t, win)
}
