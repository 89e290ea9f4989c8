// Package version identifies the build. The variables are stamped by
// the linker on release builds; anything left empty falls back to the
// metadata the Go toolchain embeds.
package version

import (
	"fmt"
	"runtime/debug"
)

// Overridable at build time:
//
//	go build -ldflags "-X rosterdb/version.Tag=v1.2.0 -X rosterdb/version.GitCommit=abc1234"
var (
	Tag       = "dev"
	GitCommit = ""
	BuildTime = ""
)

// String returns the identity line printed by the console banner and
// the version subcommand.
func String() string {
	commit := GitCommit
	if commit == "" {
		commit = buildSetting("vcs.revision", 8)
	}
	built := BuildTime
	if built == "" {
		built = buildSetting("vcs.time", 0)
	}
	return fmt.Sprintf("rosterdb %s (commit %s, built %s)",
		Tag, orUnknown(commit), orUnknown(built))
}

// buildSetting reads one key from the embedded build info, truncated
// to maxLen when maxLen > 0.
func buildSetting(key string, maxLen int) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key != key {
			continue
		}
		if maxLen > 0 && len(s.Value) > maxLen {
			return s.Value[:maxLen]
		}
		return s.Value
	}
	return ""
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
