// Package config resolves the runtime configuration: built-in defaults,
// then an optional YAML file, then ROSTERDB_* environment variables.
// Flag overrides are applied last by the command layer.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Index   IndexConfig   `yaml:"index"`
	Bloom   BloomConfig   `yaml:"bloom"`
	Console ConsoleConfig `yaml:"console"`
	Seed    bool          `yaml:"seed"` // preload the sample records on startup
}

type IndexConfig struct {
	Kind        string `yaml:"kind"`         // bst | avl | btree
	BTreeDegree int    `yaml:"btree_degree"` // fan-out when kind=btree
}

type BloomConfig struct {
	Enabled bool `yaml:"enabled"` // gate reads behind a bloom prefilter
	Size    uint `yaml:"size"`    // filter bits
	Hashes  uint `yaml:"hashes"`  // hash functions per key
}

type ConsoleConfig struct {
	Prompt string `yaml:"prompt"`
	Color  bool   `yaml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Index:   IndexConfig{Kind: "bst", BTreeDegree: 32},
		Bloom:   BloomConfig{Enabled: false, Size: 1 << 16, Hashes: 4},
		Console: ConsoleConfig{Prompt: "roster> ", Color: true},
	}
}

// Load resolves the configuration. path names a YAML file; when empty,
// ./rosterdb.yaml and ./configs/rosterdb.yaml are tried and a missing
// file just means defaults. A .env file in the working directory
// supplies environment variables that are not already set.
func Load(path string) (*Config, error) {
	if fileExists(".env") {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := Default()

	if path == "" {
		for _, p := range []string{"rosterdb.yaml", "configs/rosterdb.yaml"} {
			if fileExists(p) {
				path = p
				break
			}
		}
	} else if !fileExists(path) {
		return nil, fmt.Errorf("config file %s not found", path)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// applyEnv overrides cfg from ROSTERDB_* variables.
func applyEnv(cfg *Config) {
	cfg.Index.Kind = envStr("ROSTERDB_INDEX", cfg.Index.Kind)
	cfg.Index.BTreeDegree = envInt("ROSTERDB_BTREE_DEGREE", cfg.Index.BTreeDegree)
	cfg.Bloom.Enabled = envBool("ROSTERDB_BLOOM", cfg.Bloom.Enabled)
	cfg.Console.Prompt = envStr("ROSTERDB_PROMPT", cfg.Console.Prompt)
	cfg.Console.Color = envBool("ROSTERDB_COLOR", cfg.Console.Color)
	cfg.Seed = envBool("ROSTERDB_SEED", cfg.Seed)
}

// applyDefaults normalizes out-of-range values instead of failing, so a
// hand-edited file can never leave the process unable to start.
func applyDefaults(cfg *Config) {
	switch cfg.Index.Kind {
	case "bst", "avl", "btree":
	default:
		cfg.Index.Kind = "bst"
	}
	if cfg.Index.BTreeDegree < 2 {
		cfg.Index.BTreeDegree = 32
	}
	if cfg.Bloom.Size == 0 {
		cfg.Bloom.Size = 1 << 16
	}
	if cfg.Bloom.Hashes == 0 {
		cfg.Bloom.Hashes = 4
	}
	if cfg.Console.Prompt == "" {
		cfg.Console.Prompt = "roster> "
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
