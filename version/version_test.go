package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func saveAndRestore(t *testing.T) {
	t.Helper()
	origVersion, origCommit, origBranch, origBuildTime := Version, GitCommit, GitBranch, BuildTime
	t.Cleanup(func() {
		Version = origVersion
		GitCommit = origCommit
		GitBranch = origBranch
		BuildTime = origBuildTime
	})
}

func TestGet_Defaults(t *testing.T) {
	saveAndRestore(t)
	Version, GitCommit, GitBranch, BuildTime = "dev", "", "", ""

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("expected %s, got %s", runtime.Version(), info.GoVersion)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("unexpected platform %q", info.Platform)
	}
}

func TestGet_LinkerValues(t *testing.T) {
	saveAndRestore(t)
	Version = "1.0.0"
	BuildTime = "2026-01-15T10:30:00Z"
	GitCommit = "abc1234def"
	GitBranch = "main"

	info := Get()
	if !info.IsRelease {
		t.Error("1.0.0 should be a release")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected commit shortened to 'abc1234', got %q", info.GitCommit)
	}
	if info.BuildTime != "2026-01-15T10:30:00Z" || info.BuildDate.Year() != 2026 {
		t.Errorf("unexpected build time %q / %v", info.BuildTime, info.BuildDate)
	}
}

func TestGet_DirtyVersion(t *testing.T) {
	saveAndRestore(t)
	Version = "1.0.0-dirty"
	if Get().IsRelease {
		t.Error("dirty version should not be a release")
	}
}

func TestApplyBuildSettings(t *testing.T) {
	info := Info{}
	applyBuildSettings(&info, []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2026-03-01T08:00:00Z"},
	})
	if info.GitCommit != "0123456789" || !info.IsDirty || info.BuildTime != "2026-03-01T08:00:00Z" {
		t.Errorf("unexpected info %+v", info)
	}

	linked := Info{GitCommit: "fromldflags", BuildTime: "2025-01-01T00:00:00Z"}
	applyBuildSettings(&linked, []debug.BuildSetting{
		{Key: "vcs.revision", Value: "vcs"},
		{Key: "vcs.time", Value: "2026-03-01T08:00:00Z"},
	})
	if linked.GitCommit != "fromldflags" || linked.BuildTime != "2025-01-01T00:00:00Z" {
		t.Errorf("linker values should win, got %+v", linked)
	}
}

func TestInfo_Short(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"no commit", Info{Version: "dev"}, "dev"},
		{"commit", Info{Version: "1.0.0", GitCommit: "abc1234"}, "1.0.0-abc1234"},
		{"dirty", Info{Version: "1.0.0", GitCommit: "abc1234", IsDirty: true}, "1.0.0-abc1234-dirty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.Short(); got != tc.want {
				t.Errorf("Short() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInfo_String(t *testing.T) {
	info := Info{Version: "1.0.0", GitCommit: "abc1234", GitBranch: "feature/x", GoVersion: "go1.26.0", Platform: "linux/amd64"}
	got := info.String()
	for _, want := range []string{"1.0.0-abc1234", "(feature/x)", "go1.26.0", "linux/amd64"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}

	info.GitBranch = "main"
	if strings.Contains(info.String(), "(main)") {
		t.Error("main branch should not be shown")
	}
}
