package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena.yaml")
	body := "seed: 3\nplatforms:\n  count: 2\n  tile: 16\n  border: 1\n  min_width: 2\n  max_width: 4\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunScriptFromStdin(t *testing.T) {
	var out strings.Builder
	script := "gravity -x 0 -y 0\ncmd spawn -n 2 -x 20 -y 20\nstep -n 5\n"
	err := run(writeConfig(t), "-", 10, 16*time.Millisecond, false, strings.NewReader(script), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{"spawned spawn_0", "frame 5:", "frames=15 bodies=10", "gravity=(0, 0)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunDump(t *testing.T) {
	var out strings.Builder
	if err := run(writeConfig(t), "", 1, 16*time.Millisecond, true, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	i := strings.Index(text, "- id:")
	if i < 0 {
		t.Fatalf("no dump in output:\n%s", text)
	}
	var bodies []bodyDump
	if err := yaml.Unmarshal([]byte(text[i:]), &bodies); err != nil {
		t.Fatalf("dump is not YAML: %v", err)
	}
	if len(bodies) != 8 || bodies[0].Name != "player" || bodies[0].Type != "dynamic" {
		t.Errorf("bodies = %+v", bodies)
	}
}

func TestRunScriptError(t *testing.T) {
	var out strings.Builder
	err := run(writeConfig(t), "-", 0, time.Millisecond, false, strings.NewReader("warp -x 1\n"), &out)
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("err = %v, want failure on line 1", err)
	}
}
