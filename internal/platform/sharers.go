package platform

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"github.com/hotend/aishare/internal/clipboard"
	"github.com/hotend/aishare/internal/share"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
)

const termuxShareBin = "termux-share"

// TermuxSharer hands the payload to the Android share sheet through
// termux-share.
type TermuxSharer struct {
	bin string
	run func(ctx context.Context, bin string, args []string, stdin string) error
}

// Share implements Sharer.
func (s *TermuxSharer) Share(ctx context.Context, p share.Payload) error {
	run := s.run
	if run == nil {
		run = runShare
	}
	args := []string{"-a", "send", "-c", "text/plain"}
	if p.Title != "" {
		args = append(args, "-t", p.Title)
	}
	return run(ctx, s.bin, args, payloadText(p))
}

func runShare(ctx context.Context, bin string, args []string, stdin string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = strings.NewReader(stdin)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s: %w: %s", bin, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func payloadText(p share.Payload) string {
	return clipboard.Compose(p.Text, p.URL)
}

// Target is one entry of the interactive share sheet.
type Target struct {
	Label   string
	Deliver func(ctx context.Context, p share.Payload) error
}

const (
	copyLabel   = "Copy to clipboard"
	cancelLabel = "Cancel"
)

// Sheet is an interactive share sheet rendered in the terminal. Choosing
// Cancel dismisses it with share.ErrShareCancelled.
type Sheet struct {
	targets []Target
	choose  func(options []string) (string, error)
}

// NewSheet returns a Sheet with the default targets: clipboard, e-mail and
// printing the prompt to the terminal. The clipboard target is left out when
// copier is nil.
func NewSheet(copier share.Copier) *Sheet {
	var targets []Target
	if copier != nil {
		targets = append(targets, Target{Label: copyLabel, Deliver: func(ctx context.Context, p share.Payload) error {
			if res := copier.Copy(ctx, p.Text, p.URL); !res.Success {
				return res.Err
			}
			return nil
		}})
	}
	return NewSheetWithTargets(append(targets,
		Target{Label: "Send by e-mail", Deliver: func(ctx context.Context, p share.Payload) error {
			return openInBrowser(MailtoURL(p))
		}},
		Target{Label: "Print to terminal", Deliver: func(ctx context.Context, p share.Payload) error {
			pterm.DefaultSection.Println(p.Title)
			pterm.Println(payloadText(p))
			return nil
		}},
	)...)
}

// NewSheetWithTargets returns a Sheet offering targets in order, followed by
// Cancel.
func NewSheetWithTargets(targets ...Target) *Sheet {
	return &Sheet{targets: targets, choose: selectOption}
}

// Share implements Sharer.
func (s *Sheet) Share(ctx context.Context, p share.Payload) error {
	options := append(lo.Map(s.targets, func(t Target, _ int) string { return t.Label }), cancelLabel)
	choice, err := s.choose(options)
	if err != nil {
		return fmt.Errorf("share sheet: %w", err)
	}
	target, ok := lo.Find(s.targets, func(t Target) bool { return t.Label == choice })
	if !ok {
		return share.ErrShareCancelled
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return target.Deliver(ctx, p)
}

func selectOption(options []string) (string, error) {
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText("Share prompt via").
		Show()
	if err != nil {
		return "", err
	}
	if choice == "" {
		return "", errors.New("nothing selected")
	}
	return choice, nil
}

// MailtoURL builds a mailto link carrying the payload as subject and body.
func MailtoURL(p share.Payload) string {
	q := url.Values{}
	q.Set("subject", p.Title)
	q.Set("body", payloadText(p))
	// Mail clients do not decode '+' as a space.
	return "mailto:?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}
