package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMobile(t *testing.T) {
	tests := []struct {
		name     string
		env      Environment
		expected bool
	}{
		{"android phone", Environment{UserAgent: "Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile"}, true},
		{"iphone", Environment{UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"}, true},
		{"ipad ua", Environment{UserAgent: "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)"}, true},
		{"opera mini", Environment{UserAgent: "Opera/9.80 (J2ME/MIDP; Opera Mini/9.80)"}, true},
		{"lowercase token", Environment{UserAgent: "some android browser"}, true},
		{"blackberry", Environment{UserAgent: "BlackBerry9700/5.0"}, true},
		{"desktop chrome", Environment{UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", Platform: "Win32"}, false},
		{"ipad desktop mode", Environment{UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)", Platform: "MacIntel", MaxTouchPoints: 5}, true},
		{"mac no touch", Environment{UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)", Platform: "MacIntel", MaxTouchPoints: 0}, false},
		{"mac two touch points", Environment{Platform: "MacIntel", MaxTouchPoints: 2}, false},
		{"touch windows laptop", Environment{UserAgent: "Mozilla/5.0 (Windows NT 10.0)", Platform: "Win32", MaxTouchPoints: 10}, false},
		{"empty", Environment{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMobile(tt.env))
			assert.Equal(t, tt.expected, tt.env.IsMobile())
		})
	}
}

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	tests := []struct {
		goos     string
		goarch   string
		mobile   bool
		platform string
	}{
		{"android", "arm64", true, "Linux arm64"},
		{"ios", "arm64", true, "iPhone"},
		{"darwin", "amd64", false, "MacIntel"},
		{"darwin", "arm64", false, "MacARM"},
		{"windows", "amd64", false, "Win32"},
		{"linux", "amd64", false, "Linux amd64"},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			env := fromLookup(lookupFrom(nil), tt.goos, tt.goarch)
			assert.Equal(t, tt.mobile, env.IsMobile())
			assert.Equal(t, tt.platform, env.Platform)
			assert.Zero(t, env.MaxTouchPoints)
		})
	}
}

func TestFromLookupOverrides(t *testing.T) {
	env := fromLookup(lookupFrom(map[string]string{
		EnvUserAgent:   "Mozilla/5.0 (Macintosh)",
		EnvPlatform:    "MacIntel",
		EnvTouchPoints: " 5 ",
	}), "linux", "amd64")

	assert.Equal(t, "Mozilla/5.0 (Macintosh)", env.UserAgent)
	assert.Equal(t, "MacIntel", env.Platform)
	assert.Equal(t, 5, env.MaxTouchPoints)
	assert.True(t, env.IsMobile())
}

func TestFromLookupIgnoresBadTouchPoints(t *testing.T) {
	for _, v := range []string{"many", "-3", ""} {
		env := fromLookup(lookupFrom(map[string]string{EnvTouchPoints: v}), "linux", "amd64")
		assert.Zero(t, env.MaxTouchPoints, v)
	}
}
