package main

import "strings"

// 构建时通过 -ldflags 注入，例如：
//
//	-ldflags "-X main.version=1.0.0 -X main.commit=$(git rev-parse HEAD) -X main.buildTime=$(date -u +%FT%TZ)"
var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

// buildSummary returns a single-line version string such as "1.0.0 (commit=abc1234, built=2026-01-02T03:04:05Z)".
func buildSummary() string {
	v := version
	if v == "" {
		v = "dev"
	}
	parts := make([]string, 0, 2)
	if commit != "" && commit != "none" {
		c := commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if buildTime != "" && buildTime != "unknown" {
		parts = append(parts, "built="+buildTime)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
