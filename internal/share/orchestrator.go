package share

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hotend/aishare/internal/analytics"
	"github.com/hotend/aishare/internal/assistants"
	"github.com/hotend/aishare/internal/clipboard"
	"github.com/hotend/aishare/pkg/util"
	"github.com/pterm/pterm"
)

// DefaultPopupCheckDelay is how long after opening a window the popup
// heuristic looks at it.
const DefaultPopupCheckDelay = 100 * time.Millisecond

// Orchestrator runs the share flow. Each Run is independent; only the Config
// is shared between runs.
type Orchestrator struct {
	platform Platform
	copier   Copier
	registry *assistants.Registry
	notifier *analytics.Notifier
	toaster  Toaster
	log      *pterm.Logger

	popupDelay time.Duration
	newFlowID  func() string

	mu  sync.RWMutex
	cfg Config

	checks sync.WaitGroup
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithConfig replaces the default configuration.
func WithConfig(c Config) Option {
	return func(o *Orchestrator) { o.cfg = c }
}

// WithCopier sets the clipboard writer used when CopyAlways is on.
func WithCopier(c Copier) Option {
	return func(o *Orchestrator) { o.copier = c }
}

// WithNotifier sets the analytics notifier.
func WithNotifier(n *analytics.Notifier) Option {
	return func(o *Orchestrator) { o.notifier = n }
}

// WithToaster sets where transient messages go.
func WithToaster(t Toaster) Option {
	return func(o *Orchestrator) { o.toaster = t }
}

// WithRegistry sets the assistant registry used to build web URLs.
func WithRegistry(r *assistants.Registry) Option {
	return func(o *Orchestrator) { o.registry = r }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *pterm.Logger) Option {
	return func(o *Orchestrator) { o.log = l }
}

// WithPopupCheckDelay changes the delay of the popup heuristic.
func WithPopupCheckDelay(d time.Duration) Option {
	return func(o *Orchestrator) { o.popupDelay = d }
}

// New returns an Orchestrator running against platform.
func New(platform Platform, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		platform:   platform,
		cfg:        DefaultConfig(),
		popupDelay: DefaultPopupCheckDelay,
		newFlowID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = util.DiscardLogger
	}
	if o.registry == nil {
		o.registry = assistants.NewRegistry(o.log)
	}
	if o.notifier == nil {
		o.notifier = analytics.NewNotifier(o.log)
	}
	return o
}

// Config returns the current configuration.
func (o *Orchestrator) Config() Config {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.cfg
}

// SetConfig replaces the whole configuration.
func (o *Orchestrator) SetConfig(c Config) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cfg = c
}

// UpdateConfig merges ov over the current configuration. Runs in progress
// see the change at their next step.
func (o *Orchestrator) UpdateConfig(ov ConfigOverride) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cfg = o.cfg.Merge(ov)
}

// Wait blocks until every scheduled popup check has run.
func (o *Orchestrator) Wait() {
	o.checks.Wait()
}

// flow carries the per-run state.
type flow struct {
	id        string
	req       Request
	assistant string
	isMobile  bool
}

// Run delivers req. It never panics and never returns an error: every failure
// ends up in the Result.
func (o *Orchestrator) Run(ctx context.Context, req Request) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Error("share flow failed", o.log.Args("panic", fmt.Sprint(r)))
			res = Result{Success: false, Error: fmt.Sprintf("share flow failed: %v", r)}
		}
	}()

	f := &flow{id: o.newFlowID(), req: req, assistant: strings.TrimSpace(req.Assistant)}
	if f.assistant == "" {
		f.assistant = o.Config().PreferredAssistant
	}
	f.isMobile = o.platform.IsMobile()
	canShare := o.platform.CanShare()

	o.emit(f, analytics.EventButtonClick, map[string]any{"assistant": f.assistant})

	if o.Config().CopyAlways {
		o.copyPrompt(ctx, f)
	}

	if f.isMobile && o.Config().MobileShareFlow && canShare {
		return o.runShare(ctx, f)
	}
	return o.runWeb(f)
}

func (o *Orchestrator) copyPrompt(ctx context.Context, f *flow) {
	if o.copier == nil {
		o.log.Warn("copy failed but continuing with flow", o.log.Args("error", "no clipboard writer"))
		o.emit(f, analytics.EventCopyError, map[string]any{"isMobile": f.isMobile, "message": "no clipboard writer"})
		return
	}
	res := o.safeCopy(ctx, f)
	if res.Success {
		o.emit(f, analytics.EventCopySuccess, map[string]any{"isMobile": f.isMobile})
		return
	}
	msg := "copy failed"
	if res.Err != nil {
		msg = res.Err.Error()
	}
	o.log.Warn("copy failed but continuing with flow", o.log.Args("error", msg))
	o.emit(f, analytics.EventCopyError, map[string]any{"isMobile": f.isMobile, "message": msg})
}

// safeCopy turns a panicking copier into a failed copy.
func (o *Orchestrator) safeCopy(ctx context.Context, f *flow) (res clipboard.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = clipboard.Result{Success: false, Err: fmt.Errorf("clipboard write panicked: %v", r)}
		}
	}()
	return o.copier.Copy(ctx, f.req.PromptText, f.req.ProductURL)
}

// safeShare turns a panicking share target into a share error.
func (o *Orchestrator) safeShare(ctx context.Context, p Payload) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("share panicked: %v", r)
		}
	}()
	return o.platform.Share(ctx, p)
}

func (o *Orchestrator) runShare(ctx context.Context, f *flow) Result {
	payload := BuildPayload(f.req)
	o.emit(f, analytics.EventShareOpen, map[string]any{"isMobile": true, "title": payload.Title})

	err := o.safeShare(ctx, payload)
	if err == nil {
		o.emit(f, analytics.EventShareSuccess, map[string]any{"isMobile": true})
		o.toast(ToastSuccess, SuccessMessage)
		return Result{Success: true, Method: MethodShare}
	}

	msg := err.Error()
	if isCancellation(err) {
		msg = "User cancelled"
	}
	o.emit(f, analytics.EventShareError, map[string]any{"isMobile": true, "message": msg})

	o.emit(f, analytics.EventFallbackCopyTriggered, map[string]any{"isMobile": true})
	if err := o.openAssistantWeb(f); err != nil {
		o.toast(ToastError, FailureMessage)
		return Result{Success: false, Error: errWebFallbackFailed}
	}
	o.emit(f, analytics.EventWebAssistantOpen, map[string]any{"assistant": f.assistant})
	o.toast(ToastSuccess, SuccessMessage)
	return Result{Success: true, Method: MethodWebFallback}
}

func (o *Orchestrator) runWeb(f *flow) Result {
	if !o.Config().DesktopDeeplinkFlow {
		o.toast(ToastSuccess, SuccessMessage)
		return Result{Success: true, Method: MethodCopyOnly}
	}

	if err := o.openAssistantWeb(f); err != nil {
		o.toast(ToastError, FailureMessage)
		return Result{Success: false, Error: errWebOpenFailed}
	}
	event := analytics.EventDesktopDeeplinkOpen
	if f.isMobile {
		event = analytics.EventWebAssistantOpen
	}
	o.emit(f, event, map[string]any{"assistant": f.assistant})
	o.toast(ToastSuccess, SuccessMessage)
	return Result{Success: true, Method: MethodWeb}
}

func isCancellation(err error) bool {
	return errors.Is(err, ErrShareCancelled) || errors.Is(err, context.Canceled)
}

func (o *Orchestrator) emit(f *flow, event string, data map[string]any) {
	data["flow_id"] = f.id
	o.notifier.Emit(event, data)
}

func (o *Orchestrator) toast(kind ToastKind, msg string) {
	if o.toaster == nil {
		return
	}
	o.toaster.Show(kind, msg, o.Config().ToastDuration)
}
