// Package assistants knows the supported AI chat assistants and how to build
// a web URL that opens each of them, with the query pre-filled where the
// assistant allows it.
package assistants

import (
	"net/url"
	"strings"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
)

// Key identifies an assistant.
type Key string

const (
	Perplexity Key = "perplexity"
	ChatGPT    Key = "chatgpt"
	Claude     Key = "claude"
	Gemini     Key = "gemini"
	Copilot    Key = "copilot"
)

// Default is used whenever a key does not match any assistant.
const Default = Perplexity

const (
	perplexitySearchURL = "https://www.perplexity.ai/search"
	chatGPTURL          = "https://chatgpt.com/"
	copilotURL          = "https://copilot.microsoft.com/"

	// Neither web app reads a query from the URL; the prompt has to be pasted.
	ClaudeNewChatURL = "https://claude.ai/new"
	GeminiAppURL     = "https://gemini.google.com/app"
)

const pasteHint = "Text se zkopíruje - vložte do chatu (Ctrl+V / ⌘+V)"

// Descriptor is the display and capability information for one assistant.
type Descriptor struct {
	Key                Key    `json:"key"`
	Name               string `json:"name"`
	Icon               string `json:"icon"`
	Description        string `json:"description"`
	SupportsURLPrefill bool   `json:"supports_url_prefill"`
}

type entry struct {
	desc  Descriptor
	build func(query string) string
}

var order = []Key{Perplexity, ChatGPT, Claude, Gemini, Copilot}

var table = map[Key]entry{
	Perplexity: {
		desc: Descriptor{
			Key:                Perplexity,
			Name:               "Perplexity",
			Icon:               "🔍",
			Description:        "Proberte tento produkt s vyhledávací AI",
			SupportsURLPrefill: true,
		},
		build: prefilled(perplexitySearchURL),
	},
	ChatGPT: {
		desc: Descriptor{
			Key:                ChatGPT,
			Name:               "ChatGPT",
			Icon:               "💬",
			Description:        "Proberte tento produkt s AI od OpenAI",
			SupportsURLPrefill: true,
		},
		build: prefilled(chatGPTURL),
	},
	Claude: {
		desc: Descriptor{
			Key:         Claude,
			Name:        "Claude",
			Icon:        "🤖",
			Description: pasteHint,
		},
		build: landing(ClaudeNewChatURL),
	},
	Gemini: {
		desc: Descriptor{
			Key:         Gemini,
			Name:        "Gemini",
			Icon:        "✨",
			Description: pasteHint,
		},
		build: landing(GeminiAppURL),
	},
	Copilot: {
		desc: Descriptor{
			Key:                Copilot,
			Name:               "Copilot",
			Icon:               "🚁",
			Description:        "Proberte tento produkt s AI od Microsoft",
			SupportsURLPrefill: true,
		},
		build: prefilled(copilotURL),
	},
}

func prefilled(base string) func(string) string {
	return func(query string) string {
		return base + "?q=" + EncodeQuery(query)
	}
}

func landing(u string) func(string) string {
	return func(string) string { return u }
}

// Parse matches a key case-insensitively.
func Parse(key string) (Key, bool) {
	k := Key(strings.ToLower(strings.TrimSpace(key)))
	_, ok := table[k]
	return k, ok
}

// Keys returns every supported key in display order.
func Keys() []Key {
	return append([]Key(nil), order...)
}

// All returns every descriptor in display order.
func All() []Descriptor {
	return lo.Map(order, func(k Key, _ int) Descriptor {
		return table[k].desc
	})
}

// Registry resolves assistant keys. Unknown keys fall back to Default and
// are reported on the logger.
type Registry struct {
	log *pterm.Logger
}

// NewRegistry returns a Registry that warns on log. A nil logger silences
// the warnings.
func NewRegistry(log *pterm.Logger) *Registry {
	return &Registry{log: log}
}

func (r *Registry) resolve(key string) entry {
	k, ok := Parse(key)
	if !ok {
		if r != nil && r.log != nil {
			r.log.Warn("unknown assistant, defaulting", r.log.Args("assistant", key, "default", string(Default)))
		}
		k = Default
	}
	return table[k]
}

// URLFor builds the web URL that opens the assistant. Prefillable assistants
// carry the encoded query in the q parameter; the others get their landing
// page and rely on the prompt being on the clipboard.
func (r *Registry) URLFor(key, query string) string {
	return r.resolve(key).build(query)
}

// Info returns the descriptor for key. It never fails.
func (r *Registry) Info(key string) Descriptor {
	return r.resolve(key).desc
}

// IsValidURL reports whether s parses as an absolute URL with a host.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
