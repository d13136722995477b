package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v0.3.0", "abc1234", "2026-01-02T03:04:05Z"
	got := Template()

	for _, want := range []string{"{{.Name}} v0.3.0\n", "commit: abc1234\n", "built:  2026-01-02T03:04:05Z\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("Template() = %q, missing %q", got, want)
		}
	}
}
