package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rosterdb.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Index.Kind != "bst" {
		t.Errorf("index kind = %q, want bst", cfg.Index.Kind)
	}
	if cfg.Index.BTreeDegree != 32 {
		t.Errorf("btree degree = %d, want 32", cfg.Index.BTreeDegree)
	}
	if cfg.Bloom.Enabled {
		t.Error("bloom should default to disabled")
	}
	if cfg.Console.Prompt != "roster> " {
		t.Errorf("prompt = %q, want default", cfg.Console.Prompt)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, `
index:
  kind: avl
bloom:
  enabled: true
  size: 4096
  hashes: 5
console:
  prompt: "db> "
seed: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Index.Kind != "avl" {
		t.Errorf("index kind = %q, want avl", cfg.Index.Kind)
	}
	if !cfg.Bloom.Enabled || cfg.Bloom.Size != 4096 || cfg.Bloom.Hashes != 5 {
		t.Errorf("bloom = %+v", cfg.Bloom)
	}
	if cfg.Console.Prompt != "db> " {
		t.Errorf("prompt = %q, want db> ", cfg.Console.Prompt)
	}
	if !cfg.Seed {
		t.Error("seed should be true")
	}
	// Unset file values keep their defaults.
	if cfg.Index.BTreeDegree != 32 {
		t.Errorf("btree degree = %d, want default 32", cfg.Index.BTreeDegree)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for a named file that does not exist")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "index: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "index:\n  kind: avl\n")
	t.Setenv("ROSTERDB_INDEX", "btree")
	t.Setenv("ROSTERDB_BTREE_DEGREE", "8")
	t.Setenv("ROSTERDB_SEED", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Index.Kind != "btree" {
		t.Errorf("index kind = %q, want btree (env beats file)", cfg.Index.Kind)
	}
	if cfg.Index.BTreeDegree != 8 {
		t.Errorf("btree degree = %d, want 8", cfg.Index.BTreeDegree)
	}
	if !cfg.Seed {
		t.Error("seed should be true from env")
	}
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	path := writeConfig(t, `
index:
  kind: splay
  btree_degree: 1
console:
  prompt: ""
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Index.Kind != "bst" {
		t.Errorf("unknown kind normalized to %q, want bst", cfg.Index.Kind)
	}
	if cfg.Index.BTreeDegree != 32 {
		t.Errorf("degree normalized to %d, want 32", cfg.Index.BTreeDegree)
	}
	if cfg.Console.Prompt != "roster> " {
		t.Errorf("prompt normalized to %q, want default", cfg.Console.Prompt)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("ROSTERDB_TEST_STR", "x")
	t.Setenv("ROSTERDB_TEST_INT", "17")
	t.Setenv("ROSTERDB_TEST_BOOL", "true")
	t.Setenv("ROSTERDB_TEST_BADINT", "seven")

	if got := envStr("ROSTERDB_TEST_STR", "y"); got != "x" {
		t.Errorf("envStr = %q, want x", got)
	}
	if got := envStr("ROSTERDB_TEST_UNSET", "y"); got != "y" {
		t.Errorf("envStr fallback = %q, want y", got)
	}
	if got := envInt("ROSTERDB_TEST_INT", 1); got != 17 {
		t.Errorf("envInt = %d, want 17", got)
	}
	if got := envInt("ROSTERDB_TEST_BADINT", 1); got != 1 {
		t.Errorf("envInt bad value = %d, want fallback 1", got)
	}
	if got := envBool("ROSTERDB_TEST_BOOL", false); got != true {
		t.Errorf("envBool = %v, want true", got)
	}
}
