// Package device decides whether the current runtime should be treated as a
// mobile/touch device.
package device

import (
	"os"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

const (
	EnvUserAgent   = "AISHARE_USER_AGENT"
	EnvPlatform    = "AISHARE_PLATFORM"
	EnvTouchPoints = "AISHARE_TOUCH_POINTS"
)

var mobileUserAgent = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// Touch laptops and iPads in desktop mode report a desktop platform token.
var desktopPlatform = regexp.MustCompile(`MacIntel`)

// Environment is the ambient platform state detection looks at.
type Environment struct {
	UserAgent      string `json:"user_agent"`
	Platform       string `json:"platform"`
	MaxTouchPoints int    `json:"max_touch_points"`
}

// IsMobile reports whether env looks like a mobile or touch device.
func IsMobile(env Environment) bool {
	if mobileUserAgent.MatchString(env.UserAgent) {
		return true
	}
	return env.MaxTouchPoints > 2 && desktopPlatform.MatchString(env.Platform)
}

// IsMobile is shorthand for IsMobile(e).
func (e Environment) IsMobile() bool {
	return IsMobile(e)
}

// Current reads the environment of this process. It is computed on every call.
func Current() Environment {
	return fromLookup(os.LookupEnv, runtime.GOOS, runtime.GOARCH)
}

func fromLookup(lookup func(string) (string, bool), goos, goarch string) Environment {
	env := Environment{
		UserAgent: synthesizeUserAgent(goos, goarch),
		Platform:  platformToken(goos, goarch),
	}
	if v, ok := lookup(EnvUserAgent); ok && strings.TrimSpace(v) != "" {
		env.UserAgent = v
	}
	if v, ok := lookup(EnvPlatform); ok && strings.TrimSpace(v) != "" {
		env.Platform = v
	}
	if v, ok := lookup(EnvTouchPoints); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
			env.MaxTouchPoints = n
		}
	}
	return env
}

func synthesizeUserAgent(goos, goarch string) string {
	switch goos {
	case "android":
		return "aishare (Linux; Android; " + goarch + ")"
	case "ios":
		return "aishare (iPhone; iOS; " + goarch + ")"
	case "darwin":
		return "aishare (Macintosh; macOS; " + goarch + ")"
	case "windows":
		return "aishare (Windows NT; " + goarch + ")"
	default:
		return "aishare (X11; " + goos + "; " + goarch + ")"
	}
}

func platformToken(goos, goarch string) string {
	switch goos {
	case "darwin":
		if goarch == "amd64" {
			return "MacIntel"
		}
		return "MacARM"
	case "windows":
		return "Win32"
	case "ios":
		return "iPhone"
	default:
		return "Linux " + goarch
	}
}
