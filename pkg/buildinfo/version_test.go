package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	unset := Info{Version: "dev", Commit: "none", Date: "unknown"}
	stamped := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	tests := []struct {
		name string
		in   Info
		bi   *debug.BuildInfo
		want Info
	}{
		{"no build info", unset, nil, unset},
		{"from build info", unset, stamped, Info{"v0.3.1", "abc123", "2026-01-02T03:04:05Z"}},
		{"ldflags win", Info{"v1.0.0", "fff", "today"}, stamped, Info{"v1.0.0", "fff", "today"}},
		{"devel module", unset, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, unset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolve(tt.in, tt.bi); got != tt.want {
				t.Errorf("resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version ") {
		t.Errorf("Template() = %q", got)
	}
}
