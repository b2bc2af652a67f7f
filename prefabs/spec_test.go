package prefabs

import (
	"io/fs"
	"strings"
	"testing"
)

func TestLoadGameSpec(t *testing.T) {
	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("load game spec: %v", err)
	}
	if spec.Viewport.Width != 800 || spec.Viewport.Height != 480 {
		t.Fatalf("unexpected viewport %+v", spec.Viewport)
	}
	if spec.DeathPolicy != "reset" || spec.Player != "player.yaml" {
		t.Fatalf("unexpected game spec %+v", spec)
	}
	for _, name := range spec.Scene {
		if _, err := LoadEntityBuildSpec(name); err != nil {
			t.Fatalf("scene prefab %s: %v", name, err)
		}
	}
}

func TestEmbeddedPrefabsParse(t *testing.T) {
	names, err := fs.Glob(PrefabsFS, "*.yaml")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(names) == 0 {
		t.Fatalf("expected embedded prefabs")
	}
	for _, name := range names {
		if name == "game.yaml" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if spec.Name == "" || len(spec.Components) == 0 {
				t.Fatalf("prefab %s has no name or components", name)
			}
			if want := strings.TrimSuffix(name, ".yaml"); spec.Name != want {
				t.Fatalf("expected name %q, got %q", want, spec.Name)
			}
		})
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	raw := map[string]any{"kind": "enemy", "health": 10, "damage": 10, "value": 100}
	spec, err := DecodeComponentSpec[BodyComponentSpec](raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec.Kind != "enemy" || spec.Health != 10 || spec.Value != 100 {
		t.Fatalf("unexpected spec %+v", spec)
	}

	empty, err := DecodeComponentSpec[BodyComponentSpec](nil)
	if err != nil || empty != (BodyComponentSpec{}) {
		t.Fatalf("expected zero spec for nil input, got %+v err=%v", empty, err)
	}

	if _, err := DecodeComponentSpec[BodyComponentSpec](map[string]any{"health": "lots"}); err == nil {
		t.Fatalf("expected an error for a non-numeric health")
	}
}

func TestPaths(t *testing.T) {
	tests := []struct {
		in, prefab, script string
	}{
		{"enemy.yaml", "enemy.yaml", "scripts/enemy.yaml"},
		{"prefabs/enemy.yaml", "enemy.yaml", "scripts/enemy.yaml"},
		{"drift.tengo", "drift.tengo", "scripts/drift.tengo"},
		{"prefabs/scripts/drift.tengo", "scripts/drift.tengo", "scripts/drift.tengo"},
		{"", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := cleanPrefabPath(tc.in); got != tc.prefab {
				t.Fatalf("cleanPrefabPath(%q) = %q, want %q", tc.in, got, tc.prefab)
			}
			if got := cleanScriptPath(tc.in); got != tc.script {
				t.Fatalf("cleanScriptPath(%q) = %q, want %q", tc.in, got, tc.script)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	src, err := LoadScript("drift.tengo")
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	if !strings.Contains(string(src), "vx") {
		t.Fatalf("expected drift script to assign vx")
	}
	if _, err := LoadScript("missing.tengo"); err == nil {
		t.Fatalf("expected an error for a missing script")
	}
}

func TestLoadRejectsEscapingPaths(t *testing.T) {
	for _, name := range []string{"../go.mod", "", "/etc/passwd"} {
		if _, err := Load(name); err == nil {
			t.Fatalf("expected Load(%q) to fail", name)
		}
	}
}
