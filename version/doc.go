// Package version reports build information for the streams binary.
//
// Version, commit, branch and build time are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/gostreams/version.Version=1.2.0 \
//	    -X github.com/kbukum/gostreams/version.BuildTime=2026-01-15T10:30:00Z" ./cmd/streams
//
// Anything not set by the linker is taken from the VCS stamp the go tool
// embeds, when present.
package version
