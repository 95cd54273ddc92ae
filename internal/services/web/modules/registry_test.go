package modules

import (
	"testing"

	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

func TestDefaultModulesInMountOrder(t *testing.T) {
	t.Parallel()

	got := Default(Dependencies{})
	want := []string{"home", "playbook", "framework", "work", "talks", "contact", "health"}
	if len(got) != len(want) {
		t.Fatalf("module count = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID() != id {
			t.Fatalf("module[%d] id = %q, want %q", i, got[i].ID(), id)
		}
	}
}

func TestDefaultModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	seen := map[string]string{}
	for _, m := range Default(Dependencies{}) {
		mount, err := m.Mount()
		if err != nil {
			t.Fatalf("mount %q: %v", m.ID(), err)
		}
		if mount.Handler == nil {
			t.Fatalf("module %q has nil handler", m.ID())
		}
		if previous, ok := seen[mount.Prefix]; ok {
			t.Fatalf("module %q duplicates prefix %q owned by %q", m.ID(), mount.Prefix, previous)
		}
		seen[mount.Prefix] = m.ID()
	}
	if seen[routepath.Root] != "home" {
		t.Fatalf("root prefix owner = %q, want home", seen[routepath.Root])
	}
}
