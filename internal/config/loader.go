package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. PONG_PHYSICS_BALL_SPEED.
const EnvPrefix = "PONG_"

// Load loads the Pong configuration, applies environment overrides and
// validates the result.
// Search order: customPath -> ~/.pong/configs/pong.{yaml,toml} ->
// ./configs/pong.{yaml,toml} -> embedded default.
// Files only need to list the keys they change.
func Load(customPath string) (PongConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (PongConfig, error) {
	cfg := DefaultPongConfig()

	// Try custom path first
	if customPath != "" {
		if err := decodeFile(customPath, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	candidates := make([]string, 0, 4)
	for _, name := range []string{"pong.yaml", "pong.toml"} {
		if p := userConfigPath(name); p != "" {
			candidates = append(candidates, p)
		}
	}
	candidates = append(candidates,
		filepath.Join("configs", "pong.yaml"),
		filepath.Join("configs", "pong.toml"))

	for _, path := range candidates {
		candidate := DefaultPongConfig()
		if err := decodeFile(path, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile reads path into cfg, choosing TOML or YAML by extension.
func decodeFile(path string, cfg *PongConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with any PONG_* environment variables that are set.
func ApplyEnv(cfg *PongConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Save writes cfg to path as YAML or TOML depending on the extension.
func Save(path string, cfg PongConfig) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create config %s: %w", path, err)
	}
	defer f.Close()

	if strings.ToLower(filepath.Ext(path)) == ".toml" {
		err = toml.NewEncoder(f).Encode(cfg)
	} else {
		err = Write(f, cfg)
	}
	if err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

// Write encodes cfg as YAML to w.
func Write(w io.Writer, cfg PongConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", filename)
}
