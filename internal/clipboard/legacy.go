package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrNoLegacyHelper is returned when no copy helper is installed and no
// terminal is available for an OSC 52 copy.
var ErrNoLegacyHelper = errors.New("no clipboard helper found (install pbcopy, wl-copy, xclip or xsel)")

const defaultHelperTimeout = 5 * time.Second

type helper struct {
	bin  string
	args []string
}

// Helpers tried in order, per GOOS. Anything not listed uses the linux set.
var helpers = map[string][]helper{
	"darwin":  {{bin: "pbcopy"}},
	"windows": {{bin: "clip"}},
	"linux": {
		{bin: "wl-copy"},
		{bin: "xclip", args: []string{"-selection", "clipboard"}},
		{bin: "xsel", args: []string{"--clipboard", "--input"}},
	},
	"android": {{bin: "termux-clipboard-set"}},
}

// CommandCopier is the Legacy path. It pipes the text into a platform copy
// helper process that exits once the copy is done. Without a helper it writes
// an OSC 52 sequence to Terminal, if set.
type CommandCopier struct {
	GOOS     string
	Terminal io.Writer
	Tmux     bool
	Timeout  time.Duration

	lookPath func(string) (string, error)
	run      func(ctx context.Context, bin string, args []string, stdin string) error
}

// NewCommandCopier returns a CommandCopier for the running OS. terminal may be
// nil to disable the OSC 52 path.
func NewCommandCopier(terminal io.Writer) *CommandCopier {
	return &CommandCopier{
		GOOS:     runtime.GOOS,
		Terminal: terminal,
		Tmux:     os.Getenv("TMUX") != "",
		Timeout:  defaultHelperTimeout,
	}
}

// Copy implements Legacy.
func (c *CommandCopier) Copy(ctx context.Context, text string) error {
	if h, ok := c.findHelper(); ok {
		timeout := c.Timeout
		if timeout <= 0 {
			timeout = defaultHelperTimeout
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return c.runner()(ctx, h.bin, h.args, text)
	}

	if c.Terminal == nil {
		return ErrNoLegacyHelper
	}
	seq := osc52.New(text)
	if c.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.Terminal); err != nil {
		return fmt.Errorf("osc52 copy: %w", err)
	}
	return nil
}

func (c *CommandCopier) findHelper() (helper, bool) {
	lookPath := c.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	candidates, ok := helpers[c.GOOS]
	if !ok {
		candidates = helpers["linux"]
	}
	for _, h := range candidates {
		if path, err := lookPath(h.bin); err == nil {
			return helper{bin: path, args: h.args}, true
		}
	}
	return helper{}, false
}

func (c *CommandCopier) runner() func(context.Context, string, []string, string) error {
	if c.run != nil {
		return c.run
	}
	return runHelper
}

// runHelper always waits for the process, so nothing is left behind even on
// failure or timeout.
func runHelper(ctx context.Context, bin string, args []string, stdin string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", bin, err, msg)
		}
		return fmt.Errorf("%s: %w", bin, err)
	}
	return nil
}
