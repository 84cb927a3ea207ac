// Package share runs the flow that hands an AI prompt to an assistant: native
// share where the device supports it, otherwise a deep link to the
// assistant's web app, with the prompt copied to the clipboard beforehand.
package share

import (
	"context"
	"errors"
	"time"

	"github.com/hotend/aishare/internal/clipboard"
)

// Method is how the prompt was delivered.
type Method string

const (
	MethodShare       Method = "share"
	MethodWebFallback Method = "web_fallback"
	MethodWeb         Method = "web"
	MethodCopyOnly    Method = "copy_only"
)

const (
	errWebFallbackFailed = "Web fallback failed"
	errWebOpenFailed     = "Web open failed"
)

var (
	// ErrShareCancelled means the user dismissed the share sheet.
	ErrShareCancelled = errors.New("share cancelled")
	// ErrShareUnavailable means there is no share capability to invoke.
	ErrShareUnavailable = errors.New("share not available")
)

// Request is one "ask assistant X" action.
type Request struct {
	Assistant    string `json:"assistant"`
	ProductTitle string `json:"product_title"`
	ProductURL   string `json:"product_url"`
	PromptText   string `json:"prompt_text"`
}

// Result is the outcome of Run.
type Result struct {
	Success bool   `json:"success"`
	Method  Method `json:"method,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Payload is handed to the native share capability.
type Payload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

const (
	DefaultShareTitle = "Produkt z Hotend.cz"
	ShareInstruction  = "(Stačí vložit do vstupu AI a odeslat.)"
)

// BuildPayload builds the share payload for a request.
func BuildPayload(req Request) Payload {
	title := req.ProductTitle
	if title == "" {
		title = DefaultShareTitle
	}
	return Payload{
		Title: title,
		Text:  req.PromptText + "\n\n" + ShareInstruction,
		URL:   req.ProductURL,
	}
}

// Window is a browsing context opened for an assistant URL.
type Window interface {
	Closed() bool
	Location() string
}

// Platform is the capability provider the flow runs against.
type Platform interface {
	IsMobile() bool
	CanShare() bool
	Share(ctx context.Context, p Payload) error
	// OpenWindow opens url in a new browsing context that has no link back
	// to the caller. A nil Window with a nil error means the platform gave
	// no handle.
	OpenWindow(url string) (Window, error)
}

// Copier places the prompt on the clipboard.
type Copier interface {
	Copy(ctx context.Context, text, url string) clipboard.Result
}

// ToastKind selects the style of a transient message.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
)

// Toaster shows a transient message to the user.
type Toaster interface {
	Show(kind ToastKind, message string, d time.Duration)
}

const (
	SuccessMessage = "Text je ve schránce – vlož ho do AI a odešli."
	FailureMessage = "Chyba při otevírání AI asistenta."
)
