package share

import (
	"time"

	"github.com/hotend/aishare/internal/assistants"
)

// Config switches the branches of the share flow.
type Config struct {
	MobileShareFlow     bool          `json:"mobile_share_flow"`
	DesktopDeeplinkFlow bool          `json:"desktop_deeplink_flow"`
	CopyAlways          bool          `json:"copy_always"`
	PreferredAssistant  string        `json:"preferred_assistant"`
	ToastDuration       time.Duration `json:"toast_duration"`
}

// DefaultConfig returns the configuration every Orchestrator starts with.
func DefaultConfig() Config {
	return Config{
		MobileShareFlow:     true,
		DesktopDeeplinkFlow: true,
		CopyAlways:          true,
		PreferredAssistant:  string(assistants.Default),
		ToastDuration:       3200 * time.Millisecond,
	}
}

// ConfigOverride sets some fields of a Config. Nil fields are left alone.
type ConfigOverride struct {
	MobileShareFlow     *bool
	DesktopDeeplinkFlow *bool
	CopyAlways          *bool
	PreferredAssistant  *string
	ToastDuration       *time.Duration
}

// IsZero reports whether the override sets nothing.
func (o ConfigOverride) IsZero() bool {
	return o == ConfigOverride{}
}

// Merge returns c with the fields set in o replaced.
func (c Config) Merge(o ConfigOverride) Config {
	if o.MobileShareFlow != nil {
		c.MobileShareFlow = *o.MobileShareFlow
	}
	if o.DesktopDeeplinkFlow != nil {
		c.DesktopDeeplinkFlow = *o.DesktopDeeplinkFlow
	}
	if o.CopyAlways != nil {
		c.CopyAlways = *o.CopyAlways
	}
	if o.PreferredAssistant != nil {
		c.PreferredAssistant = *o.PreferredAssistant
	}
	if o.ToastDuration != nil {
		c.ToastDuration = *o.ToastDuration
	}
	return c
}
