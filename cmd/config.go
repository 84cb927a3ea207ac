package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hotend/aishare/internal/assistants"
	"github.com/hotend/aishare/internal/share"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

const (
	envMobileShareFlow     = "AISHARE_MOBILE_SHARE_FLOW"
	envDesktopDeeplinkFlow = "AISHARE_DESKTOP_DEEPLINK_FLOW"
	envCopyAlways          = "AISHARE_COPY_ALWAYS"
	envPreferredAssistant  = "AISHARE_PREFERRED_ASSISTANT"
	envToastDurationMS     = "AISHARE_TOAST_DURATION_MS"
)

// configFromEnv reads the share flow settings from AISHARE_* variables.
func configFromEnv(lookup func(string) (string, bool)) (share.ConfigOverride, error) {
	var ov share.ConfigOverride

	bools := []struct {
		env string
		dst **bool
	}{
		{envMobileShareFlow, &ov.MobileShareFlow},
		{envDesktopDeeplinkFlow, &ov.DesktopDeeplinkFlow},
		{envCopyAlways, &ov.CopyAlways},
	}
	for _, b := range bools {
		v, ok := lookup(b.env)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return ov, fmt.Errorf("invalid %s: %w", b.env, err)
		}
		*b.dst = lo.ToPtr(parsed)
	}

	if v, ok := lookup(envPreferredAssistant); ok && strings.TrimSpace(v) != "" {
		key, err := parseAssistant(v)
		if err != nil {
			return ov, fmt.Errorf("invalid %s: %w", envPreferredAssistant, err)
		}
		ov.PreferredAssistant = lo.ToPtr(key)
	}

	if v, ok := lookup(envToastDurationMS); ok && strings.TrimSpace(v) != "" {
		ms, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || ms < 0 {
			return ov, fmt.Errorf("invalid %s: %q", envToastDurationMS, v)
		}
		ov.ToastDuration = lo.ToPtr(time.Duration(ms) * time.Millisecond)
	}

	return ov, nil
}

func addConfigFlags(fs *pflag.FlagSet) {
	fs.Bool("mobile-share-flow", true, "Use the native share target on mobile devices")
	fs.Bool("desktop-deeplink-flow", true, "Open the assistant web app (otherwise only copy)")
	fs.Bool("copy-always", true, "Copy the prompt to the clipboard before anything else")
	fs.String("preferred-assistant", string(assistants.Default), "Assistant used when none is given")
	fs.Duration("toast-duration", 3200*time.Millisecond, "How long feedback messages stay visible")
}

// configFromFlags returns an override holding only the flags set explicitly.
func configFromFlags(fs *pflag.FlagSet) (share.ConfigOverride, error) {
	var ov share.ConfigOverride
	if fs.Changed("mobile-share-flow") {
		v, _ := fs.GetBool("mobile-share-flow")
		ov.MobileShareFlow = lo.ToPtr(v)
	}
	if fs.Changed("desktop-deeplink-flow") {
		v, _ := fs.GetBool("desktop-deeplink-flow")
		ov.DesktopDeeplinkFlow = lo.ToPtr(v)
	}
	if fs.Changed("copy-always") {
		v, _ := fs.GetBool("copy-always")
		ov.CopyAlways = lo.ToPtr(v)
	}
	if fs.Changed("preferred-assistant") {
		v, _ := fs.GetString("preferred-assistant")
		key, err := parseAssistant(v)
		if err != nil {
			return ov, err
		}
		ov.PreferredAssistant = lo.ToPtr(key)
	}
	if fs.Changed("toast-duration") {
		v, _ := fs.GetDuration("toast-duration")
		ov.ToastDuration = lo.ToPtr(v)
	}
	return ov, nil
}

func parseAssistant(v string) (string, error) {
	key, ok := assistants.Parse(v)
	if !ok {
		return "", fmt.Errorf("unknown assistant %q (use %s)", v, strings.Join(assistantNames(), ", "))
	}
	return string(key), nil
}

func assistantNames() []string {
	return lo.Map(assistants.Keys(), func(k assistants.Key, _ int) string { return string(k) })
}
