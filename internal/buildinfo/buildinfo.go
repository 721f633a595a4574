// Package buildinfo exposes version data stamped at link time via ldflags:
//
//	-X github.com/glowlab/skinflow/internal/buildinfo.Version=v1.2.3
//	-X github.com/glowlab/skinflow/internal/buildinfo.Date=2024-04-01
//	-X github.com/glowlab/skinflow/internal/buildinfo.Commit=abc1234
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
