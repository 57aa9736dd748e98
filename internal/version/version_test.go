package version

import (
	"strings"
	"testing"
)

func TestVersionHasDevDefault(t *testing.T) {
	if strings.TrimSpace(Version) == "" {
		t.Fatalf("Version must carry a compiled-in default")
	}
	if !strings.HasSuffix(Version, "-dev") {
		t.Fatalf("a build without ldflags should identify as -dev, got %q", Version)
	}
}

func TestBuildMetadataStartsUnset(t *testing.T) {
	// GitCommit and BuildDate stay empty until the linker injects them;
	// the CLI renders "unknown" for empty values.
	if GitCommit != "" && len(GitCommit) < 7 {
		t.Fatalf("GitCommit %q is neither empty nor a plausible hash", GitCommit)
	}
	_ = BuildDate
}

func TestLdflagsStyleOverride(t *testing.T) {
	saved := [3]string{Version, GitCommit, BuildDate}
	defer func() {
		Version, GitCommit, BuildDate = saved[0], saved[1], saved[2]
	}()

	Version = "2.0.0"
	GitCommit = "deadbeefcafe"
	BuildDate = "2026-08-30T00:00:00Z"

	if Version != "2.0.0" || GitCommit != "deadbeefcafe" || BuildDate != "2026-08-30T00:00:00Z" {
		t.Fatalf("build metadata did not take the injected values: %q %q %q",
			Version, GitCommit, BuildDate)
	}
}
